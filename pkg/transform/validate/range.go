package validate

import (
	"context"
	"fmt"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
)

// RangeError reports how many present cells fell outside [Min, Max].
type RangeError struct {
	Column   string
	Bad      int
	FirstRow int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("validate_range: column %s has %d out-of-range values (first at row %d)", e.Column, e.Bad, e.FirstRow)
}

type Range struct {
	Column string
	Min    *float64
	Max    *float64
}

func (t *Range) Name() string { return "validate_range" }

func (t *Range) Apply(ctx context.Context, f *fr.Frame) (*fr.Frame, error) {
	col, ok := f.ColumnByName(t.Column)
	if !ok {
		return f, nil
	}
	bad, first := 0, -1
	check := func(i int, v float64) {
		if (t.Min != nil && v < *t.Min) || (t.Max != nil && v > *t.Max) {
			if first < 0 {
				first = i
			}
			bad++
		}
	}
	switch c := col.(type) {
	case *fr.FloatColumn:
		for i := 0; i < c.Len(); i++ {
			if v, ok := c.Get(i); ok {
				check(i, v)
			}
		}
	case *fr.IntColumn:
		for i := 0; i < c.Len(); i++ {
			if v, ok := c.Get(i); ok {
				check(i, float64(v))
			}
		}
	}
	if bad > 0 {
		return f, &RangeError{Column: t.Column, Bad: bad, FirstRow: first}
	}
	return f, nil
}

// Float is a convenience for building Range bounds.
func Float(v float64) *float64 { return &v }
