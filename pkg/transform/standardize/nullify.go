package standardize

import (
	"context"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
)

// DefaultNullTokens are the textual missing-value markers found in exported
// season files.
var DefaultNullTokens = []string{"NA", "N/A", "NaN", "nan", "null", "NULL", "None"}

// Nullify turns any cell of a text column equal to one of Values into null.
type Nullify struct {
	Column string
	Values []string
}

func (t *Nullify) Name() string { return "nullify" }

func (t *Nullify) Apply(ctx context.Context, f *fr.Frame) (*fr.Frame, error) {
	col, ok := f.ColumnByName(t.Column)
	if !ok {
		return f, nil
	}
	c, ok := col.(*fr.StringColumn)
	if !ok {
		return f, nil
	}
	tokens := t.Values
	if tokens == nil {
		tokens = DefaultNullTokens
	}
	set := make(map[string]struct{}, len(tokens))
	for _, v := range tokens {
		set[v] = struct{}{}
	}
	var out *fr.StringColumn
	for i := 0; i < c.Len(); i++ {
		v, ok := c.Get(i)
		if !ok {
			continue
		}
		if _, hit := set[v]; !hit {
			continue
		}
		if out == nil {
			out = c.Clone().(*fr.StringColumn)
		}
		out.SetNull(i)
	}
	if out == nil {
		return f, nil
	}
	return f.WithColumn(out)
}
