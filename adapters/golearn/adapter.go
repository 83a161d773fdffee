// Package golearn converts table views to and from golearn DenseInstances so
// graded pitches can be fed to golearn classifiers.
package golearn

import (
	"fmt"
	"math"

	"github.com/sjwhitworth/golearn/base"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
)

// ClassColumn is the default class attribute for pitch tables.
const ClassColumn = "pitch_grade"

// ToDenseInstances converts f into DenseInstances. Numeric columns become
// float attributes with missing values stored as NaN; text columns become
// categorical, missing text as "". class names the class attribute; when it
// is empty or absent the last column is used.
func ToDenseInstances(f *fr.Frame, class string) (*base.DenseInstances, error) {
	cols := f.Schema().Columns
	if len(cols) == 0 {
		return nil, fmt.Errorf("golearn: frame has no columns")
	}
	attrs := make([]base.Attribute, len(cols))
	classIdx := len(cols) - 1
	for i, cs := range cols {
		switch cs.Type {
		case fr.KindFloat, fr.KindInt:
			attrs[i] = base.NewFloatAttribute(cs.Name)
		default:
			ca := new(base.CategoricalAttribute)
			ca.SetName(cs.Name)
			attrs[i] = ca
		}
		if cs.Name == class {
			classIdx = i
		}
	}
	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(attrs))
	for i, a := range attrs {
		specs[i] = inst.AddAttribute(a)
	}
	if err := inst.Extend(f.Rows()); err != nil {
		return nil, err
	}
	for c, cs := range cols {
		col, _ := f.ColumnByName(cs.Name)
		for r := 0; r < f.Rows(); r++ {
			switch col := col.(type) {
			case *fr.FloatColumn:
				v, ok := col.Get(r)
				if !ok {
					v = math.NaN()
				}
				inst.Set(specs[c], r, base.PackFloatToBytes(v))
			case *fr.IntColumn:
				v, ok := col.Get(r)
				fv := float64(v)
				if !ok {
					fv = math.NaN()
				}
				inst.Set(specs[c], r, base.PackFloatToBytes(fv))
			case *fr.StringColumn:
				v, _ := col.Get(r)
				inst.Set(specs[c], r, attrs[c].GetSysValFromString(v))
			}
		}
	}
	if err := inst.AddClassAttribute(attrs[classIdx]); err != nil {
		return nil, err
	}
	return inst, nil
}

// FromDenseInstances converts DenseInstances into a frame. Float attributes
// come back as float columns with NaN as null; categorical "" is null.
func FromDenseInstances(inst *base.DenseInstances) (*fr.Frame, error) {
	attrs := inst.AllAttributes()
	schema := fr.Schema{Columns: make([]fr.ColumnSchema, len(attrs))}
	specs := make([]base.AttributeSpec, len(attrs))
	for i, a := range attrs {
		k := fr.KindString
		if a.GetType() == base.Float64Type {
			k = fr.KindFloat
		}
		schema.Columns[i] = fr.ColumnSchema{Name: a.GetName(), Type: k, Nullable: true}
		spec, err := inst.GetAttribute(a)
		if err != nil {
			return nil, err
		}
		specs[i] = spec
	}
	f := fr.NewFrame(schema)
	_, nrows := inst.Size()
	for r := 0; r < nrows; r++ {
		f.AppendNullRow()
		for c, cs := range schema.Columns {
			raw := inst.Get(specs[c], r)
			if cs.Type == fr.KindFloat {
				// NaN is stored as null by SetCell
				_ = f.SetCell(r, cs.Name, base.UnpackBytesToFloat(raw))
				continue
			}
			if v := specs[c].GetAttribute().GetStringFromSysVal(raw); v != "" {
				_ = f.SetCell(r, cs.Name, v)
			}
		}
	}
	return f, nil
}
