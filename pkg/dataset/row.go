package dataset

import (
	"fmt"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
)

// Column names of a season file.
const (
	ColPitcherID   = "pitcher_id"
	ColPitcherName = "pitcher_name"
	ColPosition    = "position"
	ColPitchType   = "pitch_type"
	ColPitches     = "pitches"
	ColStuffPlus   = "tj_stuff_plus"
	ColPitchGrade  = "pitch_grade"
)

var (
	intColumns  = []string{ColStuffPlus, ColPitches, ColPitcherID, ColPitchGrade}
	textColumns = []string{ColPitcherName, ColPosition, ColPitchType}

	// Columns lists every required column in file order.
	Columns = []string{ColPitcherID, ColPitcherName, ColPosition, ColPitchType, ColPitches, ColStuffPlus, ColPitchGrade}

	// Labels are the table headings for Columns, minus position.
	Labels = map[string]string{
		ColPitcherID:   "Pitcher ID",
		ColPitcherName: "Pitcher Name",
		ColPosition:    "Position",
		ColPitchType:   "Pitch Type",
		ColPitches:     "Pitches",
		ColStuffPlus:   "tjStuff+",
		ColPitchGrade:  "Grade",
	}
)

// PitchRow is one season aggregate for a pitcher and pitch type.
type PitchRow struct {
	PitcherID   NullInt    `json:"pitcher_id"`
	PitcherName NullString `json:"pitcher_name"`
	Position    NullString `json:"position"`
	PitchType   NullString `json:"pitch_type"`
	Pitches     NullInt    `json:"pitches"`
	TJStuffPlus NullInt    `json:"tj_stuff_plus"`
	PitchGrade  NullInt    `json:"pitch_grade"`
}

// Qualified reports whether the row was thrown at least minPitches times.
func (r PitchRow) Qualified(minPitches int64) bool {
	return r.Pitches.Valid && r.Pitches.Int64 >= minPitches
}

// Graded reports whether both metrics are present.
func (r PitchRow) Graded() bool {
	return r.TJStuffPlus.Valid && r.PitchGrade.Valid
}

// RowsFromFrame reads rows out of a normalized frame.
func RowsFromFrame(f *fr.Frame) ([]PitchRow, error) {
	ints := make(map[string]*fr.IntColumn, len(intColumns))
	for _, name := range intColumns {
		c, ok := f.ColumnByName(name)
		if !ok {
			return nil, &MissingColumnError{Columns: []string{name}}
		}
		ic, ok := c.(*fr.IntColumn)
		if !ok {
			return nil, fmt.Errorf("column %s is %s, want int; normalize the frame first", name, c.Kind())
		}
		ints[name] = ic
	}
	texts := make(map[string]*fr.StringColumn, len(textColumns))
	for _, name := range textColumns {
		c, ok := f.ColumnByName(name)
		if !ok {
			return nil, &MissingColumnError{Columns: []string{name}}
		}
		sc, ok := c.(*fr.StringColumn)
		if !ok {
			return nil, fmt.Errorf("column %s is %s, want string", name, c.Kind())
		}
		texts[name] = sc
	}
	getInt := func(name string, i int) NullInt {
		v, ok := ints[name].Get(i)
		return NullInt{Int64: v, Valid: ok}
	}
	getStr := func(name string, i int) NullString {
		v, ok := texts[name].Get(i)
		return NullString{String: v, Valid: ok}
	}
	rows := make([]PitchRow, f.Rows())
	for i := range rows {
		rows[i] = PitchRow{
			PitcherID:   getInt(ColPitcherID, i),
			PitcherName: getStr(ColPitcherName, i),
			Position:    getStr(ColPosition, i),
			PitchType:   getStr(ColPitchType, i),
			Pitches:     getInt(ColPitches, i),
			TJStuffPlus: getInt(ColStuffPlus, i),
			PitchGrade:  getInt(ColPitchGrade, i),
		}
	}
	return rows, nil
}

// ToFrame converts rows into a typed frame with Columns in file order.
func ToFrame(rows []PitchRow) *fr.Frame {
	s := fr.Schema{Columns: make([]fr.ColumnSchema, len(Columns))}
	for i, name := range Columns {
		k := fr.KindInt
		if name == ColPitcherName || name == ColPosition || name == ColPitchType {
			k = fr.KindString
		}
		s.Columns[i] = fr.ColumnSchema{Name: name, Type: k, Nullable: true}
	}
	f := fr.NewFrame(s)
	for i, r := range rows {
		f.AppendNullRow()
		setInt(f, i, ColPitcherID, r.PitcherID)
		setStr(f, i, ColPitcherName, r.PitcherName)
		setStr(f, i, ColPosition, r.Position)
		setStr(f, i, ColPitchType, r.PitchType)
		setInt(f, i, ColPitches, r.Pitches)
		setInt(f, i, ColStuffPlus, r.TJStuffPlus)
		setInt(f, i, ColPitchGrade, r.PitchGrade)
	}
	return f
}

func setInt(f *fr.Frame, row int, name string, v NullInt) {
	if v.Valid {
		_ = f.SetCell(row, name, v.Int64)
	}
}

func setStr(f *fr.Frame, row int, name string, v NullString) {
	if v.Valid {
		_ = f.SetCell(row, name, v.String)
	}
}
