// Package csvio reads and writes delimited season files.
//
// Readers are header driven and load every column as text; typing is left
// to the normalization pipeline so that a bad cell surfaces as a conversion
// error instead of being silently dropped.
package csvio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
	iox "github.com/wdm0006/tjstuff/pkg/io/ioutils"
)

type ReaderOptions struct {
	Delimiter rune // 0 = sniff, default ','
	Strict    bool // if true, error on short/long records
}

type Reader struct {
	rc     io.ReadCloser
	r      *csv.Reader
	opt    ReaderOptions
	header []string
	line   int
	// repair/warning counters
	shortRecords int
	longRecords  int
}

// Open opens a (possibly gzip compressed) CSV file, or stdin for "-".
// The caller must Close the reader.
func Open(path string, opt ReaderOptions) (*Reader, error) {
	rc, err := iox.OpenMaybeCompressed(path)
	if err != nil {
		return nil, err
	}
	r, err := newReader(rc, opt)
	if err != nil {
		_ = rc.Close()
		return nil, err
	}
	return r, nil
}

// NewReaderFrom constructs a Reader from an arbitrary io.Reader (stdin, pipe, HTTP body).
func NewReaderFrom(r io.Reader, opt ReaderOptions) (*Reader, error) {
	return newReader(io.NopCloser(r), opt)
}

func newReader(rc io.ReadCloser, opt ReaderOptions) (*Reader, error) {
	br := bufio.NewReader(rc)
	rr := csv.NewReader(br)
	if opt.Delimiter == 0 {
		sample, _ := br.Peek(4096)
		d, lazy := sniffDelimiterAndQuotes(sample)
		rr.Comma = d
		rr.LazyQuotes = lazy
	} else {
		rr.Comma = opt.Delimiter
	}
	rr.FieldsPerRecord = -1
	rr.ReuseRecord = true
	return &Reader{rc: rc, r: rr, opt: opt}, nil
}

// Header reads (once) and returns the header row.
func (r *Reader) Header() ([]string, error) {
	if r.header != nil {
		return r.header, nil
	}
	rec, err := r.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("csv: missing header row")
		}
		return nil, err
	}
	r.line++
	names := make([]string, len(rec))
	for i := range rec {
		names[i] = strings.TrimSpace(strings.ToValidUTF8(rec[i], "?"))
	}
	// strip BOM on first header cell if present
	if len(names) > 0 {
		names[0] = strings.TrimPrefix(names[0], "\ufeff")
	}
	r.header = names
	return names, nil
}

// Schema returns an all-text schema over the header columns.
func (r *Reader) Schema() (fr.Schema, error) {
	names, err := r.Header()
	if err != nil {
		return fr.Schema{}, err
	}
	s := fr.Schema{Columns: make([]fr.ColumnSchema, len(names))}
	for i, n := range names {
		s.Columns[i] = fr.ColumnSchema{Name: n, Type: fr.KindString, Nullable: true}
	}
	return s, nil
}

// ReadAll loads the rest of the file into a Frame of text columns. Empty
// cells are null.
func (r *Reader) ReadAll() (*fr.Frame, error) {
	schema, err := r.Schema()
	if err != nil {
		return nil, err
	}
	f := fr.NewFrame(schema)
	for {
		ok, err := r.readRecord(f)
		if err != nil {
			return nil, err
		}
		if !ok {
			return f, nil
		}
	}
}

// readRecord appends one record to f; it reports false at end of input.
func (r *Reader) readRecord(f *fr.Frame) (bool, error) {
	rec, err := r.r.Read()
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	r.line++
	cols := f.Schema().Columns
	if len(rec) > len(cols) {
		r.longRecords++
		if r.opt.Strict {
			return false, fmt.Errorf("csv long record at line %d: need %d fields, got %d", r.line, len(cols), len(rec))
		}
	}
	if len(rec) < len(cols) {
		r.shortRecords++
		if r.opt.Strict {
			return false, fmt.Errorf("csv short record at line %d: need %d fields, got %d", r.line, len(cols), len(rec))
		}
	}
	f.AppendNullRow()
	row := f.Rows() - 1
	for i, cs := range cols {
		if i >= len(rec) {
			break
		}
		val := strings.ToValidUTF8(strings.TrimSpace(rec[i]), "?")
		if val == "" {
			continue
		}
		if err := f.SetCell(row, cs.Name, val); err != nil {
			return false, err
		}
	}
	return true, nil
}

// Close releases the underlying file.
func (r *Reader) Close() error { return r.rc.Close() }

func sniffDelimiterAndQuotes(sample []byte) (rune, bool) {
	if len(sample) == 0 {
		return ',', false
	}
	// only the header line decides, data rows may hold quoted commas
	if i := strings.IndexByte(string(sample), '\n'); i > 0 {
		sample = sample[:i]
	}
	candidates := []byte{',', '\t', ';', '|'}
	best := byte(',')
	bestCount := 0
	for _, c := range candidates {
		cnt := 0
		for _, b := range sample {
			if b == c {
				cnt++
			}
		}
		if cnt > bestCount {
			bestCount = cnt
			best = c
		}
	}
	quoteCount := 0
	for _, b := range sample {
		if b == '"' {
			quoteCount++
		}
	}
	return rune(best), quoteCount%2 != 0
}

// Warnings returns a summary string of any repairs/mismatches encountered.
func (r *Reader) Warnings() string {
	if r.shortRecords == 0 && r.longRecords == 0 {
		return ""
	}
	parts := []string{}
	if r.shortRecords > 0 {
		parts = append(parts, fmt.Sprintf("short_records=%d", r.shortRecords))
	}
	if r.longRecords > 0 {
		parts = append(parts, fmt.Sprintf("long_records=%d", r.longRecords))
	}
	return strings.Join(parts, ", ")
}
