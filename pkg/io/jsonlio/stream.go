package jsonlio

import (
	"io"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
	iox "github.com/wdm0006/tjstuff/pkg/io/ioutils"
)

// StreamWriter appends frames to a JSONL file.
type StreamWriter struct {
	out io.WriteCloser
}

func NewStreamWriter(path string) (*StreamWriter, error) {
	out, err := iox.CreateMaybeCompressed(path)
	if err != nil {
		return nil, err
	}
	return &StreamWriter{out: out}, nil
}

func (s *StreamWriter) Write(f *fr.Frame) error { return Write(s.out, f) }
func (s *StreamWriter) Close() error            { return s.out.Close() }
