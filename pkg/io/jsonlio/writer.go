package jsonlio

import (
	"encoding/json"
	"io"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
	iox "github.com/wdm0006/tjstuff/pkg/io/ioutils"
)

// WriteAll writes one JSON object per row to path (gzip for .gz, stdout for "-").
func WriteAll(path string, f *fr.Frame) error {
	out, err := iox.CreateMaybeCompressed(path)
	if err != nil {
		return err
	}
	if err := Write(out, f); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// Write encodes the rows of f to w. Null cells are written as JSON null.
func Write(w io.Writer, f *fr.Frame) error {
	enc := json.NewEncoder(w)
	cols := f.Schema().Names()
	for r := 0; r < f.Rows(); r++ {
		m := make(map[string]any, len(cols))
		for _, c := range cols {
			m[c] = f.Value(r, c)
		}
		if err := enc.Encode(m); err != nil {
			return err
		}
	}
	return nil
}
