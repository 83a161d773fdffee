package parquetio

import (
	"fmt"

	local "github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	pw "github.com/xitongsys/parquet-go/writer"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
)

// WriteAll writes a Frame holding the pitch columns to a Parquet file.
func WriteAll(path string, f *fr.Frame) error {
	sw, err := NewStreamWriter(path)
	if err != nil {
		return err
	}
	if err := sw.Write(f); err != nil {
		_ = sw.Close()
		return err
	}
	return sw.Close()
}

// StreamWriter writes Frames to a Parquet file incrementally.
type StreamWriter struct {
	file   source.ParquetFile
	writer *pw.ParquetWriter
}

func NewStreamWriter(path string) (*StreamWriter, error) {
	pf, err := local.NewLocalFileWriter(path)
	if err != nil {
		return nil, err
	}
	w, err := pw.NewParquetWriter(pf, new(pitchRecord), 4)
	if err != nil {
		_ = pf.Close()
		return nil, fmt.Errorf("parquet writer init: %w", err)
	}
	return &StreamWriter{file: pf, writer: w}, nil
}

func (s *StreamWriter) Write(f *fr.Frame) error {
	for r := 0; r < f.Rows(); r++ {
		rec, err := recordFromFrame(f, r)
		if err != nil {
			return err
		}
		if err := s.writer.Write(rec); err != nil {
			return fmt.Errorf("parquet write row %d: %w", r, err)
		}
	}
	return nil
}

func (s *StreamWriter) Close() error {
	if err := s.writer.WriteStop(); err != nil {
		_ = s.file.Close()
		return fmt.Errorf("parquet write stop: %w", err)
	}
	return s.file.Close()
}
