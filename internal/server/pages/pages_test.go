package pages

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdm0006/tjstuff/pkg/dataset"
)

func TestDashboardEscapes(t *testing.T) {
	d := DashboardData{
		Title:      "tjStuff+ <2024>",
		PitchTypes: []PitchOption{{Code: "FF", Name: "4-Seam Fastball", Colour: "#FF007D", Selected: true}},
		Pitchers:   []PitcherOption{{Value: "1", Label: "O'Neil & Co - 1"}},
		Columns:    []string{"Pitcher ID", "Pitcher Name"},
		Rows: []dataset.PitchRow{{
			PitcherID:   dataset.Int(1),
			PitcherName: dataset.Str("<script>"),
			PitchType:   dataset.Str("FF"),
			Pitches:     dataset.Int(12),
			TJStuffPlus: dataset.Int(101),
			PitchGrade:  dataset.Int(55),
		}},
		ChartURL: "/api/v1/pitchers/1/chart.png",
	}
	var buf bytes.Buffer
	require.NoError(t, Dashboard(d).Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, "<title>tjStuff+ &lt;2024&gt;</title>")
	assert.Contains(t, html, `<option value="FF" style="color:#FF007D" selected>4-Seam Fastball</option>`)
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, `src="/api/v1/pitchers/1/chart.png"`)
	assert.Contains(t, html, "1 rows")
}

func TestTableMissingValuesRenderBlank(t *testing.T) {
	var buf bytes.Buffer
	rows := []dataset.PitchRow{{PitcherID: dataset.Int(3), PitcherName: dataset.Str("X")}}
	require.NoError(t, Table([]string{"a"}, rows).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), `<td class="num"></td>`)
}
