package chart

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdm0006/tjstuff/pkg/dataset"
)

func row(id int64, pos, code string, stuff, grade int64) dataset.PitchRow {
	return dataset.PitchRow{
		PitcherID:   dataset.Int(id),
		PitcherName: dataset.Str("P"),
		Position:    dataset.Str(pos),
		PitchType:   dataset.Str(code),
		Pitches:     dataset.Int(100),
		TJStuffPlus: dataset.Int(stuff),
		PitchGrade:  dataset.Int(grade),
	}
}

func sampleInput() Input {
	rows := []dataset.PitchRow{
		row(1, "SP", "FF", 115, 70),
		row(1, "SP", "SL", 109, 63),
		row(2, "SP", "FF", 104, 57),
		row(2, "SP", "SL", 140, 85),
		row(3, "SP", "CU", 108, 62),
		{PitcherID: dataset.Int(1), PitcherName: dataset.Str("P"), Position: dataset.Str("SP"), PitchType: dataset.Str("CH"), Pitches: dataset.Int(50)},
	}
	return Input{PitcherID: 1, PitcherName: "Paul Skenes", Position: "SP", Plot: dataset.PlotView(rows, 1, "SP")}
}

func TestRenderPNG(t *testing.T) {
	r := New(Options{Width: 800, Height: 900, Season: 2024})
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, sampleInput()))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 900, img.Bounds().Dy())
}

func TestRenderDeterministic(t *testing.T) {
	r := New(Options{Width: 600, Height: 600, Season: 2024})
	var a, b bytes.Buffer
	require.NoError(t, r.Render(&a, sampleInput()))
	require.NoError(t, r.Render(&b, sampleInput()))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestRenderPlaceholder(t *testing.T) {
	r := New(Options{Width: 400, Height: 400})
	var buf bytes.Buffer
	in := Input{PitcherName: "Nobody", Plot: dataset.PlotView(nil, 9, "")}
	require.NoError(t, r.Render(&buf, in))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestTitle(t *testing.T) {
	r := New(Options{Season: 2024})
	assert.Equal(t, "Paul Skenes tjStuff+ 2024 Season - SP", r.Title(Input{PitcherName: "Paul Skenes", Position: "SP"}))
	assert.Equal(t, "Someone tjStuff+ 2024 Season - N/A", r.Title(Input{PitcherName: "Someone"}))
}

func TestJitterBounded(t *testing.T) {
	in := sampleInput()
	for i, r := range in.Plot.PeerRows {
		j := jitter(r, i)
		assert.LessOrEqual(t, j, jitterWidth/2)
		assert.GreaterOrEqual(t, j, -jitterWidth/2)
		assert.Equal(t, j, jitter(r, i))
	}
}

func TestClamp(t *testing.T) {
	p := panels[0]
	assert.Equal(t, 130.0, clamp(p, 150))
	assert.Equal(t, 70.0, clamp(p, 12))
	assert.Equal(t, 99.0, clamp(p, 99))
	assert.False(t, inRange(p, 140))
}
