// Package chart renders a pitcher's tjStuff+ and grade comparison as a PNG:
// two stacked strip plots with one column per pitch type, the pitcher's
// values drawn over faint dots for every peer at the same position.
package chart

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/wdm0006/tjstuff/pkg/dataset"
	"github.com/wdm0006/tjstuff/pkg/pitch"
)

const (
	footerHeight = 28
	jitterWidth  = 0.6
	peerAlpha    = 70
)

// Options size the rendered image.
type Options struct {
	Width  int
	Height int
	Season int
}

// Input is one pitcher's plot view plus the labels around it.
type Input struct {
	PitcherID   int64
	PitcherName string
	Position    string
	Plot        dataset.Plot
}

// panel describes one strip plot.
type panel struct {
	title     string
	value     func(dataset.PitchRow) dataset.NullInt
	min, max  float64
	reference float64
	step      float64
}

var panels = []panel{
	{
		title:     "tjStuff+",
		value:     func(r dataset.PitchRow) dataset.NullInt { return r.TJStuffPlus },
		min:       70,
		max:       130,
		reference: 100,
		step:      10,
	},
	{
		title:     "Pitch Grade",
		value:     func(r dataset.PitchRow) dataset.NullInt { return r.PitchGrade },
		min:       20,
		max:       80,
		reference: 50,
		step:      10,
	},
}

type Renderer struct {
	opt Options
}

func New(opt Options) *Renderer {
	if opt.Width <= 0 {
		opt.Width = 1000
	}
	if opt.Height <= 0 {
		opt.Height = 1100
	}
	return &Renderer{opt: opt}
}

// Title is the heading drawn above the top panel.
func (r *Renderer) Title(in Input) string {
	pos := in.Position
	if pos == "" {
		pos = "N/A"
	}
	return fmt.Sprintf("%s tjStuff+ %d Season - %s", in.PitcherName, r.opt.Season, pos)
}

// Render writes the chart for in as a PNG. A pitcher without qualifying
// pitch types gets a placeholder image.
func (r *Renderer) Render(w io.Writer, in Input) error {
	var img image.Image
	if in.Plot.Empty() {
		img = r.placeholder(fmt.Sprintf("No qualifying pitches for %s", in.PitcherName))
	} else {
		var err error
		if img, err = r.compose(in); err != nil {
			return err
		}
	}
	return png.Encode(w, img)
}

func (r *Renderer) compose(in Input) (image.Image, error) {
	panelH := (r.opt.Height - footerHeight) / len(panels)
	canvas := image.NewRGBA(image.Rect(0, 0, r.opt.Width, r.opt.Height))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	for i, p := range panels {
		title := p.title
		if i == 0 {
			title = r.Title(in)
		}
		img, err := r.renderPanel(p, title, in, panelH)
		if err != nil {
			return nil, fmt.Errorf("render %s panel: %w", p.title, err)
		}
		dst := image.Rect(0, i*panelH, r.opt.Width, (i+1)*panelH)
		draw.Draw(canvas, dst, img, img.Bounds().Min, draw.Src)
	}
	y := r.opt.Height - footerHeight/2 + 4
	drawText(canvas, "By: @TJStats", 12, y)
	data := "Data: MLB"
	drawText(canvas, data, r.opt.Width-12-textWidth(data), y)
	return canvas, nil
}

func (r *Renderer) renderPanel(p panel, title string, in Input, height int) (image.Image, error) {
	types := in.Plot.PitchTypes
	slot := make(map[string]int, len(types))
	for i, code := range types {
		slot[code] = i
	}
	n := float64(len(types))

	var series []chart.Series
	peers := map[string]*chart.ContinuousSeries{}
	for i, row := range in.Plot.PeerRows {
		x, ok := slot[row.PitchType.String]
		v := p.value(row)
		if !ok || !v.Valid || !inRange(p, v.Int64) {
			continue
		}
		s := peers[row.PitchType.String]
		if s == nil {
			s = &chart.ContinuousSeries{
				Name:  row.PitchType.String + " peers",
				Style: dotStyle(colour(row.PitchType.String).WithAlpha(peerAlpha), 4),
			}
			peers[row.PitchType.String] = s
		}
		s.XValues = append(s.XValues, float64(x)+jitter(row, i))
		s.YValues = append(s.YValues, float64(v.Int64))
	}
	for _, code := range types {
		if s := peers[code]; s != nil {
			series = append(series, *s)
		}
	}

	series = append(series, chart.ContinuousSeries{
		Name:    "reference",
		XValues: []float64{-0.5, n - 0.5},
		YValues: []float64{p.reference, p.reference},
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("808080"),
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{6, 4},
		},
	})

	var notes []chart.Value2
	for _, row := range in.Plot.PitcherRows {
		x, ok := slot[row.PitchType.String]
		v := p.value(row)
		if !ok || !v.Valid {
			continue
		}
		y := clamp(p, float64(v.Int64))
		series = append(series, chart.ContinuousSeries{
			Name:    row.PitchType.String,
			XValues: []float64{float64(x)},
			YValues: []float64{y},
			Style:   dotStyle(colour(row.PitchType.String), 14),
		})
		notes = append(notes, chart.Value2{XValue: float64(x), YValue: y, Label: strconv.FormatInt(v.Int64, 10)})
	}
	if len(notes) > 0 {
		series = append(series, chart.AnnotationSeries{Annotations: notes})
	}

	xTicks := []chart.Tick{{Value: -0.5, Label: ""}}
	for i, code := range types {
		xTicks = append(xTicks, chart.Tick{Value: float64(i), Label: pitch.NameOf(code)})
	}
	xTicks = append(xTicks, chart.Tick{Value: n - 0.5, Label: ""})
	var yTicks []chart.Tick
	for v := p.min; v <= p.max; v += p.step {
		yTicks = append(yTicks, chart.Tick{Value: v, Label: strconv.Itoa(int(v))})
	}

	ch := chart.Chart{
		Title:      title,
		Width:      r.opt.Width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 24, Bottom: 16}},
		XAxis:      chart.XAxis{Ticks: xTicks, Range: &chart.ContinuousRange{Min: -0.5, Max: n - 0.5}},
		YAxis:      chart.YAxis{Name: p.title, Ticks: yTicks, Range: &chart.ContinuousRange{Min: p.min, Max: p.max}},
		Series:     series,
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

func (r *Renderer) placeholder(msg string) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, r.opt.Width, r.opt.Height/2))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	drawText(img, msg, (r.opt.Width-textWidth(msg))/2, r.opt.Height/4)
	return img
}

// dotStyle draws points only.
func dotStyle(c drawing.Color, width float64) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    width,
		DotColor:    c,
	}
}

func colour(code string) drawing.Color {
	hex := pitch.ColourOf(code)
	return drawing.ColorFromHex(hex[1:])
}

// jitter spreads peer dots horizontally. It depends only on the row, so a
// chart renders identically every time.
func jitter(row dataset.PitchRow, i int) float64 {
	h := fnv.New32a()
	fmt.Fprintf(h, "%d/%s/%d", row.PitcherID.Int64, row.PitchType.String, i)
	return (float64(h.Sum32())/float64(^uint32(0)) - 0.5) * jitterWidth
}

func inRange(p panel, v int64) bool {
	return float64(v) >= p.min && float64(v) <= p.max
}

func clamp(p panel, v float64) float64 {
	switch {
	case v < p.min:
		return p.min
	case v > p.max:
		return p.max
	}
	return v
}

func drawText(dst draw.Image, text string, x, y int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{R: 40, G: 40, B: 40, A: 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

func textWidth(text string) int {
	return font.MeasureString(basicfont.Face7x13, text).Ceil()
}
