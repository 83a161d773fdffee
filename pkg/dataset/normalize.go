package dataset

import (
	"context"
	"errors"
	"fmt"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
	"github.com/wdm0006/tjstuff/pkg/transform/cast"
	std "github.com/wdm0006/tjstuff/pkg/transform/standardize"
	"github.com/wdm0006/tjstuff/pkg/transform/validate"
)

// NormalizePipeline returns the steps Normalize runs, in order.
func NormalizePipeline() *fr.Pipeline {
	p := fr.NewPipeline().Add(&validate.Required{Columns: Columns})
	for _, name := range textColumns {
		p.Add(&std.Trim{Column: name}).Add(&std.Nullify{Column: name})
	}
	for _, name := range intColumns {
		p.Add(&std.Nullify{Column: name}).Add(&cast.ToInt{Column: name})
	}
	return p.Add(&validate.Range{Column: ColPitches, Min: validate.Float(0)})
}

// Normalize coerces the metric and id columns of raw to int64 and cleans the
// text columns. The input frame is left untouched; running Normalize on its
// own output returns an equal frame.
func Normalize(ctx context.Context, raw *fr.Frame) (*fr.Frame, error) {
	out, err := NormalizePipeline().Run(ctx, raw)
	if err == nil {
		return out, nil
	}
	var ce *cast.ConversionError
	if errors.As(err, &ce) {
		return nil, &TypeConversionError{Column: ce.Column, Row: ce.Row, Value: ce.Value, Err: err}
	}
	var me *validate.MissingColumnsError
	if errors.As(err, &me) {
		return nil, &MissingColumnError{Columns: me.Columns}
	}
	var re *validate.RangeError
	if errors.As(err, &re) {
		return nil, fmt.Errorf("normalize: %d rows with negative pitches (first at data row %d): %w", re.Bad, re.FirstRow+1, err)
	}
	return nil, fmt.Errorf("normalize: %w", err)
}
