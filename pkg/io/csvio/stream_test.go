package csvio

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
)

func TestStreamReadCSV(t *testing.T) {
	p := filepath.FromSlash("testdata/season_sample.csv")
	sr, err := NewStreamReader(p, ReaderOptions{}, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = sr.Close() }()
	total, chunks := 0, 0
	for {
		f, err := sr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		if f.Rows() > 4 {
			t.Fatalf("chunk too large: %d", f.Rows())
		}
		total += f.Rows()
		chunks++
	}
	if total != 14 || chunks != 4 {
		t.Fatalf("expected 14 rows in 4 chunks, got %d in %d", total, chunks)
	}
}

func TestStreamCopyGzip(t *testing.T) {
	p := filepath.FromSlash("testdata/season_sample.csv")
	sr, err := NewStreamReader(p, ReaderOptions{}, 5)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = sr.Close() }()
	out := filepath.Join(t.TempDir(), "copy.csv.gz")
	sw, err := NewStreamWriter(out, sr.Schema(), WriterOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if err := fr.RunStream(context.Background(), fr.NewPipeline(), sr, sw); err != nil {
		t.Fatal(err)
	}

	r, err := Open(out, ReaderOptions{})
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = r.Close() }()
	f, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if f.Rows() != 14 {
		t.Fatalf("expected 14 rows after copy, got %d", f.Rows())
	}
	if f.Value(13, "pitcher_name") != "Position Player" {
		t.Fatalf("unexpected last row %v", f.Value(13, "pitcher_name"))
	}
}

func TestWriteHeaderLabels(t *testing.T) {
	f := fr.NewFrame(fr.Schema{Columns: []fr.ColumnSchema{
		{Name: "pitcher_id", Type: fr.KindInt, Nullable: true},
		{Name: "tj_stuff_plus", Type: fr.KindInt, Nullable: true},
	}})
	f.AppendNullRow()
	_ = f.SetCell(0, "pitcher_id", int64(7))
	out := filepath.Join(t.TempDir(), "t.csv")
	if err := WriteAll(out, f, WriterOptions{Header: []string{"Pitcher ID", "tjStuff+"}}); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(b); !strings.HasPrefix(got, "Pitcher ID,tjStuff+\n7,\n") {
		t.Fatalf("unexpected output %q", got)
	}
}
