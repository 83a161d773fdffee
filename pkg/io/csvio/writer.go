package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
	iox "github.com/wdm0006/tjstuff/pkg/io/ioutils"
)

type WriterOptions struct {
	Delimiter rune     // default ','
	Header    []string // display labels, one per column; default column names
}

// WriteAll writes a Frame with a header to path (gzip for .gz, stdout for "-").
func WriteAll(path string, f *fr.Frame, opt WriterOptions) error {
	out, err := iox.CreateMaybeCompressed(path)
	if err != nil {
		return err
	}
	if err := Write(out, f, opt); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// Write writes a Frame with a header to w.
func Write(w io.Writer, f *fr.Frame, opt WriterOptions) error {
	cw := newCSVWriter(w, opt)
	if err := cw.Write(headerRow(f.Schema(), opt)); err != nil {
		return err
	}
	if err := writeRows(cw, f); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func newCSVWriter(w io.Writer, opt WriterOptions) *csv.Writer {
	cw := csv.NewWriter(w)
	if opt.Delimiter != 0 {
		cw.Comma = opt.Delimiter
	}
	return cw
}

func headerRow(s fr.Schema, opt WriterOptions) []string {
	if len(opt.Header) == len(s.Columns) {
		return opt.Header
	}
	return s.Names()
}

func writeRows(cw *csv.Writer, f *fr.Frame) error {
	cols := f.Schema().Columns
	row := make([]string, len(cols))
	for r := 0; r < f.Rows(); r++ {
		for c, cs := range cols {
			row[c] = FormatCell(f.Value(r, cs.Name))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// FormatCell renders a frame value as CSV text; nil is the empty string.
func FormatCell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case string:
		return t
	}
	return ""
}
