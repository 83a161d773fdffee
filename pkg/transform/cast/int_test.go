package cast

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
)

func stringFrame(vals ...any) *fr.Frame {
	f := fr.NewFrame(fr.Schema{Columns: []fr.ColumnSchema{{Name: "v", Type: fr.KindString, Nullable: true}}})
	for i, v := range vals {
		f.AppendNullRow()
		_ = f.SetCell(i, "v", v)
	}
	return f
}

func intsOf(t *testing.T, f *fr.Frame) []any {
	t.Helper()
	out := make([]any, f.Rows())
	for i := range out {
		out[i] = f.Value(i, "v")
	}
	return out
}

func TestToIntFromStrings(t *testing.T) {
	f := stringFrame("101", " 99 ", "", "NaN", nil, "104.7", "-3.9", "1e2")
	out, err := (&ToInt{Column: "v"}).Apply(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(101), int64(99), nil, nil, nil, int64(104), int64(-3), int64(100)}, intsOf(t, out))

	in, _ := f.ColumnByName("v")
	assert.Equal(t, fr.KindString, in.Kind(), "input must not be mutated")
}

func TestToIntFromFloats(t *testing.T) {
	f := fr.NewFrame(fr.Schema{Columns: []fr.ColumnSchema{{Name: "v", Type: fr.KindFloat, Nullable: true}}})
	for i, v := range []float64{110.2, math.NaN(), 95} {
		f.AppendNullRow()
		_ = f.SetCell(i, "v", v)
	}
	out, err := (&ToInt{Column: "v"}).Apply(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(110), nil, int64(95)}, intsOf(t, out))
}

func TestToIntRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"ten", "12abc", "Inf", "1e30"} {
		_, err := (&ToInt{Column: "v"}).Apply(context.Background(), stringFrame("1", bad))
		var ce *ConversionError
		require.True(t, errors.As(err, &ce), "value %q", bad)
		assert.Equal(t, 1, ce.Row)
		assert.Equal(t, bad, ce.Value)
	}
}

func TestToIntIdempotent(t *testing.T) {
	tr := &ToInt{Column: "v"}
	once, err := tr.Apply(context.Background(), stringFrame("7", nil, "8.5"))
	require.NoError(t, err)
	twice, err := tr.Apply(context.Background(), once)
	require.NoError(t, err)
	assert.Equal(t, intsOf(t, once), intsOf(t, twice))
}

func TestToIntMissingColumnIsNoop(t *testing.T) {
	f := stringFrame("1")
	out, err := (&ToInt{Column: "absent"}).Apply(context.Background(), f)
	require.NoError(t, err)
	assert.Same(t, f, out)
}
