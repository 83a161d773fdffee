package frame

import (
	"context"
	"errors"
	"io"
)

// ChunkSource yields frames in chunks until io.EOF.
type ChunkSource interface {
	Next() (*Frame, error)
}

// ChunkSink consumes frames, typically writing them out.
type ChunkSink interface {
	Write(*Frame) error
	Close() error
}

// SliceSource replays an in-memory frame in chunks of Size rows.
type SliceSource struct {
	Frame *Frame
	Size  int
	off   int
}

func (s *SliceSource) Next() (*Frame, error) {
	if s.Frame == nil || s.off >= s.Frame.Rows() {
		return nil, io.EOF
	}
	n := s.Size
	if n <= 0 {
		n = 1024
	}
	end := s.off + n
	if end > s.Frame.Rows() {
		end = s.Frame.Rows()
	}
	idx := make([]int, 0, end-s.off)
	for i := s.off; i < end; i++ {
		idx = append(idx, i)
	}
	s.off = end
	return s.Frame.Take(idx), nil
}

// RunStream pulls chunks from src, applies the pipeline, and writes to sink.
// The sink is closed on return; a close error is reported when nothing else failed.
func RunStream(ctx context.Context, p *Pipeline, src ChunkSource, sink ChunkSink) (err error) {
	defer func() {
		if cerr := sink.Close(); err == nil {
			err = cerr
		}
	}()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		f, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		out, err := p.Run(ctx, f)
		if err != nil {
			return err
		}
		if err := sink.Write(out); err != nil {
			return err
		}
	}
}
