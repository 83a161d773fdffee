package csvio

import (
	"path/filepath"
	"strings"
	"testing"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
)

func TestReadAllText(t *testing.T) {
	p := filepath.FromSlash("testdata/season_sample.csv")
	r, err := Open(p, ReaderOptions{})
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = r.Close() }()
	f, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if f.Cols() != 7 {
		t.Fatalf("expected 7 columns, got %d", f.Cols())
	}
	if f.Rows() != 14 {
		t.Fatalf("expected 14 rows, got %d", f.Rows())
	}
	for _, cs := range f.Schema().Columns {
		if cs.Type != fr.KindString {
			t.Fatalf("column %s should be read as text, got %s", cs.Name, cs.Type)
		}
	}
	if v := f.Value(0, "pitcher_id"); v != "694973" {
		t.Fatalf("unexpected first id %v", v)
	}
	// empty cells are null
	if f.Value(8, "tj_stuff_plus") != nil || f.Value(13, "position") != nil {
		t.Fatal("empty cells should be null")
	}
	// NaN text is kept for the normalizer to decide
	if v := f.Value(11, "tj_stuff_plus"); v != "NaN" {
		t.Fatalf("expected NaN text, got %v", v)
	}
	if w := r.Warnings(); w != "" {
		t.Fatalf("unexpected warnings %q", w)
	}
}

func TestSniffAndRepair(t *testing.T) {
	in := "\ufeffpitcher_id;pitch_type;pitches\n1;FF;20\n2;SL\n3;CU;30;extra\n"
	r, err := NewReaderFrom(strings.NewReader(in), ReaderOptions{})
	if err != nil {
		t.Fatal(err)
	}
	f, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Schema().Names(); got[0] != "pitcher_id" || len(got) != 3 {
		t.Fatalf("unexpected header %v", got)
	}
	if f.Rows() != 3 {
		t.Fatalf("expected 3 rows, got %d", f.Rows())
	}
	if f.Value(1, "pitches") != nil {
		t.Fatal("short record should leave trailing cells null")
	}
	if w := r.Warnings(); w != "short_records=1, long_records=1" {
		t.Fatalf("unexpected warnings %q", w)
	}

	strict, _ := NewReaderFrom(strings.NewReader(in), ReaderOptions{Strict: true})
	if _, err := strict.ReadAll(); err == nil {
		t.Fatal("strict mode should reject ragged records")
	}
}

func TestEmptyInput(t *testing.T) {
	r, _ := NewReaderFrom(strings.NewReader(""), ReaderOptions{})
	if _, err := r.ReadAll(); err == nil {
		t.Fatal("expected missing header error")
	}
}
