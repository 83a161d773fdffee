// Package jsonlio reads and writes newline-delimited JSON season files.
package jsonlio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
	iox "github.com/wdm0006/tjstuff/pkg/io/ioutils"
)

type ReaderOptions struct {
	// Columns fixes the frame columns; nil collects the union of keys, sorted.
	Columns []string
}

type Reader struct {
	rc  io.ReadCloser
	dec *json.Decoder
	opt ReaderOptions
}

// Open opens a (possibly gzip compressed) JSONL file, or stdin for "-".
func Open(path string, opt ReaderOptions) (*Reader, error) {
	rc, err := iox.OpenMaybeCompressed(path)
	if err != nil {
		return nil, err
	}
	return &Reader{rc: rc, dec: newDecoder(rc), opt: opt}, nil
}

// NewReaderFrom reads JSONL from an arbitrary io.Reader.
func NewReaderFrom(r io.Reader, opt ReaderOptions) *Reader {
	return &Reader{rc: io.NopCloser(r), dec: newDecoder(r), opt: opt}
}

func newDecoder(r io.Reader) *json.Decoder {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return dec
}

func (r *Reader) Close() error { return r.rc.Close() }

// ReadAll decodes every object into a Frame of text columns. Numbers keep
// their literal text and JSON null becomes a null cell.
func (r *Reader) ReadAll() (*fr.Frame, error) {
	var recs []map[string]any
	keys := map[string]struct{}{}
	for line := 1; ; line++ {
		var m map[string]any
		if err := r.dec.Decode(&m); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("jsonl record %d: %w", line, err)
		}
		recs = append(recs, m)
		for k := range m {
			keys[k] = struct{}{}
		}
	}
	cols := r.opt.Columns
	if cols == nil {
		cols = make([]string, 0, len(keys))
		for k := range keys {
			cols = append(cols, k)
		}
		sort.Strings(cols)
	}
	schema := fr.Schema{Columns: make([]fr.ColumnSchema, len(cols))}
	for i, c := range cols {
		schema.Columns[i] = fr.ColumnSchema{Name: c, Type: fr.KindString, Nullable: true}
	}
	f := fr.NewFrame(schema)
	for _, m := range recs {
		f.AppendNullRow()
		row := f.Rows() - 1
		for _, c := range cols {
			v, ok := m[c]
			if !ok {
				continue
			}
			if s, ok := textOf(v); ok {
				_ = f.SetCell(row, c, s)
			}
		}
	}
	return f, nil
}

func textOf(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(t); err != nil {
			return "", false
		}
		return string(bytes.TrimSpace(buf.Bytes())), true
	}
}
