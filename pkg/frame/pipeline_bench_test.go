package frame

import (
	"context"
	"testing"
)

func makeFrame(rows int) *Frame {
	s := Schema{Columns: []ColumnSchema{
		{Name: "tj_stuff_plus", Type: KindFloat, Nullable: true},
		{Name: "pitches", Type: KindInt, Nullable: true},
		{Name: "pitch_type", Type: KindString, Nullable: true},
	}}
	f := NewFrame(s)
	for i := 0; i < rows; i++ {
		f.AppendNullRow()
		_ = f.SetCell(i, "tj_stuff_plus", float64(70+i%60))
		_ = f.SetCell(i, "pitches", int64(i%300))
		_ = f.SetCell(i, "pitch_type", "SL")
	}
	return f
}

type noopTransform struct{}

func (n *noopTransform) Name() string                                        { return "noop" }
func (n *noopTransform) Apply(ctx context.Context, f *Frame) (*Frame, error) { return f, nil }

func BenchmarkPipeline(b *testing.B) {
	f := makeFrame(100000)
	p := NewPipeline().Add(&noopTransform{}).Add(&noopTransform{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.Run(context.Background(), f)
	}
}

func BenchmarkTake(b *testing.B) {
	f := makeFrame(100000)
	idx := make([]int, 0, f.Rows()/2)
	for i := 0; i < f.Rows(); i += 2 {
		idx = append(idx, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Take(idx)
	}
}
