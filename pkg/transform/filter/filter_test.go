package filter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
)

func sample() *fr.Frame {
	f := fr.NewFrame(fr.Schema{Columns: []fr.ColumnSchema{
		{Name: "pitch_type", Type: fr.KindString, Nullable: true},
		{Name: "pitches", Type: fr.KindInt, Nullable: true},
		{Name: "pitch_grade", Type: fr.KindInt, Nullable: true},
	}})
	rows := [][]any{
		{"FF", int64(250), int64(60)},
		{"SL", int64(9), int64(55)},
		{nil, int64(40), nil},
		{"CU", nil, int64(45)},
		{"SL", int64(10), int64(70)},
	}
	for i, r := range rows {
		f.AppendNullRow()
		_ = f.SetCell(i, "pitch_type", r[0])
		_ = f.SetCell(i, "pitches", r[1])
		_ = f.SetCell(i, "pitch_grade", r[2])
	}
	return f
}

func column(f *fr.Frame, name string) []any {
	out := make([]any, f.Rows())
	for i := range out {
		out[i] = f.Value(i, name)
	}
	return out
}

func TestMinInt(t *testing.T) {
	out, err := (&MinInt{Column: "pitches", Min: 10}).Apply(context.Background(), sample())
	require.NoError(t, err)
	assert.Equal(t, []any{int64(250), int64(40), int64(10)}, column(out, "pitches"))

	_, err = (&MinInt{Column: "pitch_type", Min: 1}).Apply(context.Background(), sample())
	assert.Error(t, err)
}

func TestNotNull(t *testing.T) {
	out, err := (&NotNull{Columns: []string{"pitch_type", "pitch_grade"}}).Apply(context.Background(), sample())
	require.NoError(t, err)
	assert.Equal(t, []any{"FF", "SL", "CU", "SL"}, column(out, "pitch_type"))
}

func TestInSet(t *testing.T) {
	out, err := NewInSet("pitch_type", []string{"SL"}).Apply(context.Background(), sample())
	require.NoError(t, err)
	assert.Equal(t, []any{int64(9), int64(10)}, column(out, "pitches"))

	empty, err := NewInSet("pitch_type", nil).Apply(context.Background(), sample())
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())
}
