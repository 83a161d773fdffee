package jsonlio

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
)

const sample = `{"pitcher_id": 694973, "pitcher_name": "Paul Skenes", "position": "SP", "pitch_type": "FF", "pitches": 850, "tj_stuff_plus": 115.0, "pitch_grade": 70}
{"pitcher_id": 661403, "pitcher_name": "Emmanuel Clase", "position": null, "pitch_type": "FC", "pitches": 780, "tj_stuff_plus": 121, "pitch_grade": null}
{"pitcher_id": 605483, "pitcher_name": "Blake Snell", "pitch_type": "CU", "pitches": 520}
`

func TestReadAll(t *testing.T) {
	r := NewReaderFrom(strings.NewReader(sample), ReaderOptions{})
	f, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if f.Rows() != 3 || f.Cols() != 7 {
		t.Fatalf("expected 3x7, got %dx%d", f.Rows(), f.Cols())
	}
	if v := f.Value(0, "tj_stuff_plus"); v != "115.0" {
		t.Fatalf("numbers should keep their literal text, got %v", v)
	}
	if f.Value(1, "position") != nil || f.Value(2, "position") != nil {
		t.Fatal("null and absent keys should be null cells")
	}
}

func TestReadFixedColumns(t *testing.T) {
	r := NewReaderFrom(strings.NewReader(sample), ReaderOptions{Columns: []string{"pitcher_id", "missing"}})
	f, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if f.Cols() != 2 || f.Value(0, "missing") != nil {
		t.Fatal("fixed columns should be honoured")
	}
}

func TestReadRejectsGarbage(t *testing.T) {
	r := NewReaderFrom(strings.NewReader("{\"a\": 1}\nnot json\n"), ReaderOptions{})
	if _, err := r.ReadAll(); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestStreamWriteAndReadBack(t *testing.T) {
	src, err := NewReaderFrom(strings.NewReader(sample), ReaderOptions{}).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "copy.jsonl.gz")
	sw, err := NewStreamWriter(out)
	if err != nil {
		t.Fatal(err)
	}
	if err := fr.RunStream(context.Background(), fr.NewPipeline(), &fr.SliceSource{Frame: src, Size: 2}, sw); err != nil {
		t.Fatal(err)
	}
	r, err := Open(out, ReaderOptions{})
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = r.Close() }()
	back, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if back.Rows() != 3 {
		t.Fatalf("expected 3 rows, got %d", back.Rows())
	}
	if v := back.Value(1, "pitcher_name"); v != "Emmanuel Clase" {
		t.Fatalf("unexpected name %v", v)
	}
	if back.Value(2, "position") != nil {
		t.Fatal("null must survive the round trip")
	}
}
