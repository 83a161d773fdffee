// Package parquetio reads and writes season files in Parquet using a fixed
// pitch record schema with optional fields.
package parquetio

import (
	"fmt"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
)

// pitchRecord is the on-disk row. Pointer fields encode missing values.
type pitchRecord struct {
	PitcherID   *int64  `parquet:"name=pitcher_id, type=INT64, repetitiontype=OPTIONAL"`
	PitcherName *string `parquet:"name=pitcher_name, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	Position    *string `parquet:"name=position, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	PitchType   *string `parquet:"name=pitch_type, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	Pitches     *int64  `parquet:"name=pitches, type=INT64, repetitiontype=OPTIONAL"`
	TJStuffPlus *int64  `parquet:"name=tj_stuff_plus, type=INT64, repetitiontype=OPTIONAL"`
	PitchGrade  *int64  `parquet:"name=pitch_grade, type=INT64, repetitiontype=OPTIONAL"`
}

// Schema is the frame shape produced by ReadAll and expected by the writers.
var Schema = fr.Schema{Columns: []fr.ColumnSchema{
	{Name: "pitcher_id", Type: fr.KindInt, Nullable: true},
	{Name: "pitcher_name", Type: fr.KindString, Nullable: true},
	{Name: "position", Type: fr.KindString, Nullable: true},
	{Name: "pitch_type", Type: fr.KindString, Nullable: true},
	{Name: "pitches", Type: fr.KindInt, Nullable: true},
	{Name: "tj_stuff_plus", Type: fr.KindInt, Nullable: true},
	{Name: "pitch_grade", Type: fr.KindInt, Nullable: true},
}}

func (p *pitchRecord) fields() []any {
	return []any{p.PitcherID, p.PitcherName, p.Position, p.PitchType, p.Pitches, p.TJStuffPlus, p.PitchGrade}
}

func appendRecord(f *fr.Frame, rec *pitchRecord) {
	f.AppendNullRow()
	row := f.Rows() - 1
	for i, v := range rec.fields() {
		name := Schema.Columns[i].Name
		switch t := v.(type) {
		case *int64:
			if t != nil {
				_ = f.SetCell(row, name, *t)
			}
		case *string:
			if t != nil {
				_ = f.SetCell(row, name, *t)
			}
		}
	}
}

func recordFromFrame(f *fr.Frame, row int) (*pitchRecord, error) {
	rec := &pitchRecord{}
	ints := map[string]**int64{
		"pitcher_id":    &rec.PitcherID,
		"pitches":       &rec.Pitches,
		"tj_stuff_plus": &rec.TJStuffPlus,
		"pitch_grade":   &rec.PitchGrade,
	}
	strs := map[string]**string{
		"pitcher_name": &rec.PitcherName,
		"position":     &rec.Position,
		"pitch_type":   &rec.PitchType,
	}
	for name, dst := range ints {
		switch v := f.Value(row, name).(type) {
		case nil:
		case int64:
			*dst = &v
		case float64:
			n := int64(v)
			*dst = &n
		default:
			return nil, fmt.Errorf("parquet: column %s row %d: want int, got %T", name, row, v)
		}
	}
	for name, dst := range strs {
		switch v := f.Value(row, name).(type) {
		case nil:
		case string:
			*dst = &v
		default:
			return nil, fmt.Errorf("parquet: column %s row %d: want string, got %T", name, row, v)
		}
	}
	return rec, nil
}
