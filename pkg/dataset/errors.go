package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// TypeConversionError is returned when a present value in a numeric column
// cannot be represented as an integer. The whole load fails.
type TypeConversionError struct {
	Column string
	Row    int // zero-based data row
	Value  string
	Err    error
}

func (e *TypeConversionError) Error() string {
	return fmt.Sprintf("type conversion: column %s, data row %d: %q is not an integer", e.Column, e.Row+1, e.Value)
}

func (e *TypeConversionError) Unwrap() error { return e.Err }

// MissingColumnError is returned when a season file lacks required columns.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// ErrUnknownPitcher is returned when a pitcher selection does not resolve.
var ErrUnknownPitcher = errors.New("unknown pitcher")
