package validate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
)

func pitchesFrame(vals ...any) *fr.Frame {
	f := fr.NewFrame(fr.Schema{Columns: []fr.ColumnSchema{{Name: "pitches", Type: fr.KindInt, Nullable: true}}})
	for i, v := range vals {
		f.AppendNullRow()
		_ = f.SetCell(i, "pitches", v)
	}
	return f
}

func TestRange(t *testing.T) {
	r := &Range{Column: "pitches", Min: Float(0)}
	_, err := r.Apply(context.Background(), pitchesFrame(int64(0), nil, int64(300)))
	require.NoError(t, err)

	_, err = r.Apply(context.Background(), pitchesFrame(int64(5), int64(-1), int64(-2)))
	var re *RangeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 2, re.Bad)
	assert.Equal(t, 1, re.FirstRow)
}

func TestRequired(t *testing.T) {
	f := pitchesFrame(int64(1))
	_, err := (&Required{Columns: []string{"pitches"}}).Apply(context.Background(), f)
	require.NoError(t, err)

	_, err = (&Required{Columns: []string{"pitches", "pitch_type", "position"}}).Apply(context.Background(), f)
	var me *MissingColumnsError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, []string{"pitch_type", "position"}, me.Columns)
}
