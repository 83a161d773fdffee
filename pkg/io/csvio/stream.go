package csvio

import (
	"encoding/csv"
	"io"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
	iox "github.com/wdm0006/tjstuff/pkg/io/ioutils"
)

// StreamReader reads CSV into Frame chunks of up to ChunkSize rows.
type StreamReader struct {
	r         *Reader
	schema    fr.Schema
	chunkSize int
}

// NewStreamReader opens path and reads its header. Close releases the file.
func NewStreamReader(path string, opt ReaderOptions, chunkSize int) (*StreamReader, error) {
	rr, err := Open(path, opt)
	if err != nil {
		return nil, err
	}
	schema, err := rr.Schema()
	if err != nil {
		_ = rr.Close()
		return nil, err
	}
	if chunkSize <= 0 {
		chunkSize = 1024
	}
	return &StreamReader{r: rr, schema: schema, chunkSize: chunkSize}, nil
}

// Next returns the next chunk frame or io.EOF when complete.
func (s *StreamReader) Next() (*fr.Frame, error) {
	f := fr.NewFrame(s.schema)
	for f.Rows() < s.chunkSize {
		ok, err := s.r.readRecord(f)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}
	if f.Rows() == 0 {
		return nil, io.EOF
	}
	return f, nil
}

func (s *StreamReader) Schema() fr.Schema { return s.schema }
func (s *StreamReader) Warnings() string  { return s.r.Warnings() }
func (s *StreamReader) Close() error      { return s.r.Close() }

// StreamWriter appends frames to a CSV file with a header (written once).
type StreamWriter struct {
	out         io.WriteCloser
	w           *csv.Writer
	opt         WriterOptions
	wroteHeader bool
	schema      fr.Schema
}

func NewStreamWriter(path string, schema fr.Schema, opt WriterOptions) (*StreamWriter, error) {
	out, err := iox.CreateMaybeCompressed(path)
	if err != nil {
		return nil, err
	}
	return &StreamWriter{out: out, w: newCSVWriter(out, opt), opt: opt, schema: schema}, nil
}

func (s *StreamWriter) Write(f *fr.Frame) error {
	if !s.wroteHeader {
		if err := s.w.Write(headerRow(s.schema, s.opt)); err != nil {
			return err
		}
		s.wroteHeader = true
	}
	if err := writeRows(s.w, f); err != nil {
		return err
	}
	s.w.Flush()
	return s.w.Error()
}

// Close writes the header for an empty stream, then flushes and closes.
func (s *StreamWriter) Close() error {
	if !s.wroteHeader {
		_ = s.w.Write(headerRow(s.schema, s.opt))
		s.wroteHeader = true
	}
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		_ = s.out.Close()
		return err
	}
	return s.out.Close()
}
