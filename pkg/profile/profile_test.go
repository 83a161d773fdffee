package profile

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
)

func sample() *fr.Frame {
	f := fr.NewFrame(fr.Schema{Columns: []fr.ColumnSchema{
		{Name: "pitch_type", Type: fr.KindString, Nullable: true},
		{Name: "tj_stuff_plus", Type: fr.KindInt, Nullable: true},
		{Name: "velo", Type: fr.KindFloat, Nullable: true},
	}})
	cells := [][]any{
		{"FF", int64(110), 97.5},
		{"SL", int64(90), 86.0},
		{"FF", nil, nil},
		{nil, int64(100), 95.5},
	}
	for i, r := range cells {
		f.AppendNullRow()
		_ = f.SetCell(i, "pitch_type", r[0])
		_ = f.SetCell(i, "tj_stuff_plus", r[1])
		_ = f.SetCell(i, "velo", r[2])
	}
	return f
}

func TestCollectorStats(t *testing.T) {
	f := sample()
	c := NewCollector(f.Schema(), 5)
	c.ConsumeFrame(f)
	cols := c.Columns()
	require.Len(t, cols, 3)

	pt := cols[0].Str
	assert.Equal(t, 3, pt.Count)
	assert.Equal(t, 1, pt.Nulls)
	assert.Equal(t, 2, pt.Freqs["FF"])

	st := cols[1].Num
	assert.Equal(t, 3, st.Count)
	assert.Equal(t, 1, st.Nulls)
	assert.Equal(t, 90.0, st.Min)
	assert.Equal(t, 110.0, st.Max)
	assert.InDelta(t, 100.0, st.Mean(), 1e-9)
}

func TestCollectorAcrossChunks(t *testing.T) {
	f := sample()
	c := NewCollector(f.Schema(), 0)
	require.NoError(t, c.Write(f.Take([]int{0, 1})))
	require.NoError(t, c.Write(f.Take([]int{2, 3})))
	assert.Equal(t, 3, c.Columns()[1].Num.Count)
	assert.Empty(t, c.Columns()[0].Str.Freqs, "top-k disabled")
}

func TestReports(t *testing.T) {
	f := sample()
	c := NewCollector(f.Schema(), 1)
	c.ConsumeFrame(f)

	txt := c.ReportText()
	assert.True(t, strings.HasPrefix(txt, "Profile Summary\n"))
	assert.Contains(t, txt, "- tj_stuff_plus (int): count=3 nulls=1 min=90 max=110 mean=100")
	assert.Contains(t, txt, `"FF": 2`)
	assert.NotContains(t, txt, `"SL": 1`)

	b, err := json.Marshal(c.ReportJSON())
	require.NoError(t, err)
	assert.Contains(t, string(b), `"mean":100`)
	assert.Contains(t, string(b), `"top":{"FF":2}`)
}

func TestReportEmptyColumnIsValidJSON(t *testing.T) {
	f := fr.NewFrame(fr.Schema{Columns: []fr.ColumnSchema{{Name: "pitches", Type: fr.KindInt, Nullable: true}}})
	c := NewCollector(f.Schema(), 3)
	c.ConsumeFrame(f)
	_, err := json.Marshal(c.ReportJSON())
	require.NoError(t, err)
	assert.Contains(t, c.ReportText(), "count=0 nulls=0")
}
