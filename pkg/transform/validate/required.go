package validate

import (
	"context"
	"fmt"
	"strings"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
)

// MissingColumnsError lists required columns absent from a frame.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("validate_required: missing columns: %s", strings.Join(e.Columns, ", "))
}

// Required fails when any of Columns is absent from the schema.
type Required struct {
	Columns []string
}

func (t *Required) Name() string { return "validate_required" }

func (t *Required) Apply(ctx context.Context, f *fr.Frame) (*fr.Frame, error) {
	var missing []string
	for _, name := range t.Columns {
		if _, ok := f.ColumnByName(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return f, &MissingColumnsError{Columns: missing}
	}
	return f, nil
}
