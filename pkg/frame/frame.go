package frame

import (
	"fmt"
	"math"
)

// Schema describes the logical shape of a dataset.
type Schema struct {
	Columns []ColumnSchema
}

type ColumnSchema struct {
	Name     string
	Type     Kind
	Nullable bool
}

// Names returns the column names in schema order.
func (s Schema) Names() []string {
	out := make([]string, len(s.Columns))
	for i, cs := range s.Columns {
		out[i] = cs.Name
	}
	return out
}

// Kind enumerates supported logical types.
type Kind int

const (
	KindInvalid Kind = iota
	KindInt
	KindFloat
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// Column is a typed, nullable column.
type Column interface {
	Name() string
	Kind() Kind
	Len() int
	IsNull(i int) bool
	SetNull(i int)
	// Clone returns a deep copy that shares no storage with the receiver.
	Clone() Column
	take(idx []int) Column
}

type IntColumn struct {
	name  string
	data  []int64
	nulls []bool
}

func NewIntColumn(name string, n int) *IntColumn {
	return &IntColumn{name: name, data: make([]int64, n), nulls: make([]bool, n)}
}
func (c *IntColumn) Name() string            { return c.name }
func (c *IntColumn) Kind() Kind              { return KindInt }
func (c *IntColumn) Len() int                { return len(c.data) }
func (c *IntColumn) IsNull(i int) bool       { return c.nulls[i] }
func (c *IntColumn) SetNull(i int)           { c.data[i] = 0; c.nulls[i] = true }
func (c *IntColumn) Get(i int) (int64, bool) { return c.data[i], !c.nulls[i] }
func (c *IntColumn) Set(i int, v int64)      { c.data[i] = v; c.nulls[i] = false }
func (c *IntColumn) AppendNull()             { c.data = append(c.data, 0); c.nulls = append(c.nulls, true) }
func (c *IntColumn) Append(v int64)          { c.data = append(c.data, v); c.nulls = append(c.nulls, false) }
func (c *IntColumn) Clone() Column {
	return &IntColumn{name: c.name, data: append([]int64(nil), c.data...), nulls: append([]bool(nil), c.nulls...)}
}
func (c *IntColumn) take(idx []int) Column {
	out := &IntColumn{name: c.name, data: make([]int64, len(idx)), nulls: make([]bool, len(idx))}
	for i, j := range idx {
		out.data[i], out.nulls[i] = c.data[j], c.nulls[j]
	}
	return out
}

type FloatColumn struct {
	name  string
	data  []float64
	nulls []bool
}

func NewFloatColumn(name string, n int) *FloatColumn {
	return &FloatColumn{name: name, data: make([]float64, n), nulls: make([]bool, n)}
}
func (c *FloatColumn) Name() string      { return c.name }
func (c *FloatColumn) Kind() Kind        { return KindFloat }
func (c *FloatColumn) Len() int          { return len(c.data) }
func (c *FloatColumn) IsNull(i int) bool { return c.nulls[i] }
func (c *FloatColumn) SetNull(i int)     { c.data[i] = 0; c.nulls[i] = true }

// Get reports NaN cells as present; callers that treat NaN as missing check math.IsNaN.
func (c *FloatColumn) Get(i int) (float64, bool) { return c.data[i], !c.nulls[i] }
func (c *FloatColumn) Set(i int, v float64)      { c.data[i] = v; c.nulls[i] = false }
func (c *FloatColumn) AppendNull()               { c.data = append(c.data, 0); c.nulls = append(c.nulls, true) }
func (c *FloatColumn) Append(v float64)          { c.data = append(c.data, v); c.nulls = append(c.nulls, false) }
func (c *FloatColumn) Clone() Column {
	return &FloatColumn{name: c.name, data: append([]float64(nil), c.data...), nulls: append([]bool(nil), c.nulls...)}
}
func (c *FloatColumn) take(idx []int) Column {
	out := &FloatColumn{name: c.name, data: make([]float64, len(idx)), nulls: make([]bool, len(idx))}
	for i, j := range idx {
		out.data[i], out.nulls[i] = c.data[j], c.nulls[j]
	}
	return out
}

type StringColumn struct {
	name  string
	data  []string
	nulls []bool
}

func NewStringColumn(name string, n int) *StringColumn {
	return &StringColumn{name: name, data: make([]string, n), nulls: make([]bool, n)}
}
func (c *StringColumn) Name() string             { return c.name }
func (c *StringColumn) Kind() Kind               { return KindString }
func (c *StringColumn) Len() int                 { return len(c.data) }
func (c *StringColumn) IsNull(i int) bool        { return c.nulls[i] }
func (c *StringColumn) SetNull(i int)            { c.data[i] = ""; c.nulls[i] = true }
func (c *StringColumn) Get(i int) (string, bool) { return c.data[i], !c.nulls[i] }
func (c *StringColumn) Set(i int, v string)      { c.data[i] = v; c.nulls[i] = false }
func (c *StringColumn) AppendNull()              { c.data = append(c.data, ""); c.nulls = append(c.nulls, true) }
func (c *StringColumn) Append(v string)          { c.data = append(c.data, v); c.nulls = append(c.nulls, false) }
func (c *StringColumn) Clone() Column {
	return &StringColumn{name: c.name, data: append([]string(nil), c.data...), nulls: append([]bool(nil), c.nulls...)}
}
func (c *StringColumn) take(idx []int) Column {
	out := &StringColumn{name: c.name, data: make([]string, len(idx)), nulls: make([]bool, len(idx))}
	for i, j := range idx {
		out.data[i], out.nulls[i] = c.data[j], c.nulls[j]
	}
	return out
}

func newColumn(cs ColumnSchema, n int) Column {
	switch cs.Type {
	case KindInt:
		return NewIntColumn(cs.Name, n)
	case KindFloat:
		return NewFloatColumn(cs.Name, n)
	case KindString:
		return NewStringColumn(cs.Name, n)
	default:
		panic(fmt.Sprintf("invalid column kind for %q", cs.Name))
	}
}

// Frame is a columnar container for tabular data. Transforms treat frames
// as immutable and return new ones; columns may be shared between frames.
type Frame struct {
	schema Schema
	cols   []Column
	index  map[string]int // name -> col index
	nrows  int
}

func NewFrame(s Schema) *Frame {
	f := &Frame{schema: s, cols: make([]Column, len(s.Columns)), index: make(map[string]int)}
	for i, cs := range s.Columns {
		f.cols[i] = newColumn(cs, 0)
		f.index[cs.Name] = i
	}
	return f
}

func (f *Frame) Schema() Schema { return f.schema }
func (f *Frame) Rows() int      { return f.nrows }
func (f *Frame) Cols() int      { return len(f.cols) }

func (f *Frame) ColumnByName(name string) (Column, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.cols[i], true
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	out := f.shallow()
	for i, c := range f.cols {
		out.cols[i] = c.Clone()
	}
	return out
}

// Take returns a new frame holding the rows at idx, in that order.
func (f *Frame) Take(idx []int) *Frame {
	out := f.shallow()
	for i, c := range f.cols {
		out.cols[i] = c.take(idx)
	}
	out.nrows = len(idx)
	return out
}

// WithColumn returns a frame that shares every column with f except the one
// named c.Name(), which is replaced (or appended when absent).
func (f *Frame) WithColumn(c Column) (*Frame, error) {
	if c.Len() != f.nrows {
		return nil, fmt.Errorf("column %s has %d rows, frame has %d", c.Name(), c.Len(), f.nrows)
	}
	out := f.shallow()
	cs := ColumnSchema{Name: c.Name(), Type: c.Kind(), Nullable: true}
	if i, ok := out.index[c.Name()]; ok {
		out.cols[i] = c
		out.schema.Columns[i] = cs
		return out, nil
	}
	out.index[c.Name()] = len(out.cols)
	out.cols = append(out.cols, c)
	out.schema.Columns = append(out.schema.Columns, cs)
	return out, nil
}

func (f *Frame) shallow() *Frame {
	out := &Frame{
		schema: Schema{Columns: append([]ColumnSchema(nil), f.schema.Columns...)},
		cols:   append([]Column(nil), f.cols...),
		index:  make(map[string]int, len(f.index)),
		nrows:  f.nrows,
	}
	for k, v := range f.index {
		out.index[k] = v
	}
	return out
}

// AppendNullRow appends a row with all-null values.
func (f *Frame) AppendNullRow() {
	for _, c := range f.cols {
		switch col := c.(type) {
		case *IntColumn:
			col.AppendNull()
		case *FloatColumn:
			col.AppendNull()
		case *StringColumn:
			col.AppendNull()
		default:
			panic("unknown column type")
		}
	}
	f.nrows++
}

// SetCell sets a single cell value by name (row must exist). A nil value
// or a NaN float stores a null.
func (f *Frame) SetCell(row int, name string, v any) error {
	i, ok := f.index[name]
	if !ok {
		return fmt.Errorf("unknown column: %s", name)
	}
	if v == nil {
		f.cols[i].SetNull(row)
		return nil
	}
	switch col := f.cols[i].(type) {
	case *IntColumn:
		switch t := v.(type) {
		case int:
			col.Set(row, int64(t))
		case int32:
			col.Set(row, int64(t))
		case int64:
			col.Set(row, t)
		case float64:
			if math.IsNaN(t) {
				col.SetNull(row)
				return nil
			}
			col.Set(row, int64(t))
		default:
			return fmt.Errorf("column %s expects int/int64, got %T", name, v)
		}
	case *FloatColumn:
		switch t := v.(type) {
		case float32:
			col.Set(row, float64(t))
		case float64:
			if math.IsNaN(t) {
				col.SetNull(row)
				return nil
			}
			col.Set(row, t)
		case int:
			col.Set(row, float64(t))
		case int64:
			col.Set(row, float64(t))
		default:
			return fmt.Errorf("column %s expects float64, got %T", name, v)
		}
	case *StringColumn:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("column %s expects string, got %T", name, v)
		}
		col.Set(row, s)
	default:
		return fmt.Errorf("unknown column kind")
	}
	return nil
}

// Value returns the cell at row as int64, float64 or string, or nil when null.
func (f *Frame) Value(row int, name string) any {
	c, ok := f.ColumnByName(name)
	if !ok || c.IsNull(row) {
		return nil
	}
	switch col := c.(type) {
	case *IntColumn:
		v, _ := col.Get(row)
		return v
	case *FloatColumn:
		v, _ := col.Get(row)
		return v
	case *StringColumn:
		v, _ := col.Get(row)
		return v
	}
	return nil
}
