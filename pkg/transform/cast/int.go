// Package cast coerces frame columns to strict types.
package cast

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
)

// ConversionError reports a present cell that cannot become an int64.
type ConversionError struct {
	Column string
	Row    int
	Value  string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("column %s row %d: cannot convert %q to int64", e.Column, e.Row, e.Value)
}

// ToInt replaces Column with an int64 column. Empty text and NaN become
// null; fractional values truncate toward zero. Applying it to a column
// that is already int64 is a no-op.
type ToInt struct{ Column string }

func (t *ToInt) Name() string { return "cast_int" }

func (t *ToInt) Apply(ctx context.Context, f *fr.Frame) (*fr.Frame, error) {
	col, ok := f.ColumnByName(t.Column)
	if !ok {
		return f, nil
	}
	out := fr.NewIntColumn(t.Column, col.Len())
	switch c := col.(type) {
	case *fr.IntColumn:
		return f, nil
	case *fr.FloatColumn:
		for i := 0; i < c.Len(); i++ {
			v, ok := c.Get(i)
			if !ok || math.IsNaN(v) {
				out.SetNull(i)
				continue
			}
			n, ok := floatToInt(v)
			if !ok {
				return nil, &ConversionError{Column: t.Column, Row: i, Value: strconv.FormatFloat(v, 'g', -1, 64)}
			}
			out.Set(i, n)
		}
	case *fr.StringColumn:
		for i := 0; i < c.Len(); i++ {
			v, ok := c.Get(i)
			if !ok {
				out.SetNull(i)
				continue
			}
			n, null, err := ParseInt(v)
			if err != nil {
				return nil, &ConversionError{Column: t.Column, Row: i, Value: v}
			}
			if null {
				out.SetNull(i)
				continue
			}
			out.Set(i, n)
		}
	default:
		return nil, fmt.Errorf("column %s: unsupported kind %s", t.Column, col.Kind())
	}
	return f.WithColumn(out)
}

// ParseInt parses s as an integer. null reports an empty or NaN cell.
func ParseInt(s string) (n int64, null bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return 0, true, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, false, nil
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	if math.IsNaN(x) {
		return 0, true, nil
	}
	n, ok := floatToInt(x)
	if !ok {
		return 0, false, fmt.Errorf("%q out of int64 range", s)
	}
	return n, false, nil
}

func floatToInt(v float64) (int64, bool) {
	if math.IsInf(v, 0) || v >= math.MaxInt64 || v < math.MinInt64 {
		return 0, false
	}
	return int64(v), true
}
