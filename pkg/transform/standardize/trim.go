package standardize

import (
	"context"
	"strings"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
)

// Trim strips surrounding whitespace from a text column. Cells that are
// empty after trimming become null.
type Trim struct{ Column string }

func (t *Trim) Name() string { return "trim" }

func (t *Trim) Apply(ctx context.Context, f *fr.Frame) (*fr.Frame, error) {
	col, ok := f.ColumnByName(t.Column)
	if !ok {
		return f, nil
	}
	c, ok := col.(*fr.StringColumn)
	if !ok {
		return f, nil
	}
	out := fr.NewStringColumn(t.Column, c.Len())
	for i := 0; i < c.Len(); i++ {
		v, ok := c.Get(i)
		v = strings.TrimSpace(v)
		if !ok || v == "" {
			out.SetNull(i)
			continue
		}
		out.Set(i, v)
	}
	return f.WithColumn(out)
}
