// Package filter holds row-dropping transforms. Each returns a new frame
// holding only the kept rows, in their original order.
package filter

import (
	"context"
	"fmt"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
)

func keep(f *fr.Frame, pred func(i int) bool) *fr.Frame {
	idx := make([]int, 0, f.Rows())
	for i := 0; i < f.Rows(); i++ {
		if pred(i) {
			idx = append(idx, i)
		}
	}
	return f.Take(idx)
}

// MinInt keeps rows whose int Column is present and >= Min.
type MinInt struct {
	Column string
	Min    int64
}

func (t *MinInt) Name() string { return "filter_min" }

func (t *MinInt) Apply(ctx context.Context, f *fr.Frame) (*fr.Frame, error) {
	col, ok := f.ColumnByName(t.Column)
	if !ok {
		return nil, fmt.Errorf("filter_min: unknown column %s", t.Column)
	}
	c, ok := col.(*fr.IntColumn)
	if !ok {
		return nil, fmt.Errorf("filter_min: column %s is %s, want int", t.Column, col.Kind())
	}
	return keep(f, func(i int) bool {
		v, ok := c.Get(i)
		return ok && v >= t.Min
	}), nil
}

// NotNull keeps rows where every one of Columns is present.
type NotNull struct {
	Columns []string
}

func (t *NotNull) Name() string { return "filter_not_null" }

func (t *NotNull) Apply(ctx context.Context, f *fr.Frame) (*fr.Frame, error) {
	cols := make([]fr.Column, 0, len(t.Columns))
	for _, name := range t.Columns {
		c, ok := f.ColumnByName(name)
		if !ok {
			return nil, fmt.Errorf("filter_not_null: unknown column %s", name)
		}
		cols = append(cols, c)
	}
	return keep(f, func(i int) bool {
		for _, c := range cols {
			if c.IsNull(i) {
				return false
			}
		}
		return true
	}), nil
}

// InSet keeps rows whose text Column is one of Values. An empty set keeps nothing.
type InSet struct {
	Column string
	Values map[string]struct{}
}

func NewInSet(col string, vals []string) *InSet {
	m := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		m[v] = struct{}{}
	}
	return &InSet{Column: col, Values: m}
}

func (t *InSet) Name() string { return "filter_in" }

func (t *InSet) Apply(ctx context.Context, f *fr.Frame) (*fr.Frame, error) {
	col, ok := f.ColumnByName(t.Column)
	if !ok {
		return nil, fmt.Errorf("filter_in: unknown column %s", t.Column)
	}
	sc, ok := col.(*fr.StringColumn)
	if !ok {
		return nil, fmt.Errorf("filter_in: column %s is %s, want string", t.Column, col.Kind())
	}
	return keep(f, func(i int) bool {
		v, ok := sc.Get(i)
		if !ok {
			return false
		}
		_, hit := t.Values[v]
		return hit
	}), nil
}
