// Package ioutils opens inputs and outputs with transparent gzip handling.
package ioutils

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var gzipMagic = []byte{0x1f, 0x8b}

// OpenMaybeCompressed opens a file path or stdin ("-") and returns a reader.
// Input that is gzip (by extension or magic) is decompressed.
func OpenMaybeCompressed(path string) (io.ReadCloser, error) {
	if path == "-" || path == "" {
		return wrapReader(bufio.NewReader(os.Stdin), func() error { return nil })
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := wrapReader(bufio.NewReader(f), f.Close)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return rc, nil
}

func wrapReader(br *bufio.Reader, closeFn func() error) (io.ReadCloser, error) {
	if b, err := br.Peek(2); err == nil && b[0] == gzipMagic[0] && b[1] == gzipMagic[1] {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return readCloser{Reader: zr, closeFn: func() error { _ = zr.Close(); return closeFn() }}, nil
	}
	return readCloser{Reader: br, closeFn: closeFn}, nil
}

// CreateMaybeCompressed creates a file (or stdout if path is "-") and
// returns a buffered writer. A .gz path is gzip compressed.
func CreateMaybeCompressed(path string) (io.WriteCloser, error) {
	if path == "-" || path == "" {
		bw := bufio.NewWriter(os.Stdout)
		return writeCloser{Writer: bw, closeFn: bw.Flush}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if IsGzip(path) {
		zw := gzip.NewWriter(f)
		return writeCloser{Writer: zw, closeFn: func() error {
			if err := zw.Close(); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		}}, nil
	}
	bw := bufio.NewWriter(f)
	return writeCloser{Writer: bw, closeFn: func() error {
		if err := bw.Flush(); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}}, nil
}

// IsGzip reports whether path carries a .gz suffix.
func IsGzip(path string) bool { return filepath.Ext(path) == ".gz" }

// BaseExt returns the data extension of path ignoring a trailing .gz,
// lower-cased and without the dot: "season.csv.gz" -> "csv".
func BaseExt(path string) string {
	p := strings.TrimSuffix(path, ".gz")
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(p)), ".")
}

type readCloser struct {
	io.Reader
	closeFn func() error
}

func (r readCloser) Close() error { return r.closeFn() }

type writeCloser struct {
	io.Writer
	closeFn func() error
}

func (w writeCloser) Close() error { return w.closeFn() }
