package standardize

import (
	"context"
	"testing"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
)

func textFrame(vals ...any) *fr.Frame {
	f := fr.NewFrame(fr.Schema{Columns: []fr.ColumnSchema{{Name: "s", Type: fr.KindString, Nullable: true}}})
	for i, v := range vals {
		f.AppendNullRow()
		_ = f.SetCell(i, "s", v)
	}
	return f
}

func TestTrim(t *testing.T) {
	f := textFrame("  RHP  ", "   ", nil, "SP")
	out, err := (&Trim{Column: "s"}).Apply(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	if v := out.Value(0, "s"); v != "RHP" {
		t.Fatalf("trim failed, got %v", v)
	}
	if out.Value(1, "s") != nil || out.Value(2, "s") != nil {
		t.Fatal("blank and null cells should be null")
	}
	if v := f.Value(0, "s"); v != "  RHP  " {
		t.Fatalf("input mutated: %v", v)
	}
}

func TestNullify(t *testing.T) {
	f := textFrame("FF", "NA", "nan", "SL")
	out, err := (&Nullify{Column: "s"}).Apply(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	want := []any{"FF", nil, nil, "SL"}
	for i, w := range want {
		if got := out.Value(i, "s"); got != w {
			t.Fatalf("row %d: want %v got %v", i, w, got)
		}
	}
	if f.Value(1, "s") != "NA" {
		t.Fatal("input mutated")
	}

	clean := textFrame("FF")
	same, err := (&Nullify{Column: "s", Values: []string{"?"}}).Apply(context.Background(), clean)
	if err != nil {
		t.Fatal(err)
	}
	if same != clean {
		t.Fatal("a frame without tokens should be returned as is")
	}
}
