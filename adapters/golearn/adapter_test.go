package golearn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
)

func tableFrame() *fr.Frame {
	f := fr.NewFrame(fr.Schema{Columns: []fr.ColumnSchema{
		{Name: "pitch_type", Type: fr.KindString, Nullable: true},
		{Name: "pitch_grade", Type: fr.KindInt, Nullable: true},
		{Name: "tj_stuff_plus", Type: fr.KindInt, Nullable: true},
	}})
	cells := [][]any{
		{"FF", int64(70), int64(115)},
		{"SL", int64(63), nil},
	}
	for i, r := range cells {
		f.AppendNullRow()
		_ = f.SetCell(i, "pitch_type", r[0])
		_ = f.SetCell(i, "pitch_grade", r[1])
		_ = f.SetCell(i, "tj_stuff_plus", r[2])
	}
	return f
}

func TestToDenseInstances(t *testing.T) {
	inst, err := ToDenseInstances(tableFrame(), ClassColumn)
	require.NoError(t, err)
	cols, rows := inst.Size()
	assert.Equal(t, 3, cols)
	assert.Equal(t, 2, rows)

	classes := inst.AllClassAttributes()
	require.Len(t, classes, 1)
	assert.Equal(t, ClassColumn, classes[0].GetName())
}

func TestDenseInstancesRoundTrip(t *testing.T) {
	inst, err := ToDenseInstances(tableFrame(), "")
	require.NoError(t, err)
	back, err := FromDenseInstances(inst)
	require.NoError(t, err)
	require.Equal(t, 2, back.Rows())

	assert.Equal(t, "FF", back.Value(0, "pitch_type"))
	assert.Equal(t, 70.0, back.Value(0, "pitch_grade"))
	assert.Equal(t, 115.0, back.Value(0, "tj_stuff_plus"))
	assert.Nil(t, back.Value(1, "tj_stuff_plus"), "missing metric stays missing")
}

func TestToDenseInstancesEmptySchema(t *testing.T) {
	_, err := ToDenseInstances(fr.NewFrame(fr.Schema{}), ClassColumn)
	assert.Error(t, err)
}
