package dataset

import (
	"sort"

	"github.com/wdm0006/tjstuff/pkg/pitch"
)

// DefaultMinPitches is the sample size below which rows are hidden.
const DefaultMinPitches int64 = 10

// TableView returns the qualified, graded rows matching f. Without a filter
// rows are ordered by pitcher name then pitch type; with one they are ranked
// by tjStuff+ descending. Both sorts are stable and rows is not modified.
func TableView(rows []PitchRow, f Filter, minPitches int64) []PitchRow {
	var codes map[string]struct{}
	if f.Active() {
		cc := f.Codes()
		if len(cc) == 0 {
			return []PitchRow{}
		}
		codes = make(map[string]struct{}, len(cc))
		for _, c := range cc {
			codes[c] = struct{}{}
		}
	}
	out := make([]PitchRow, 0, len(rows))
	for _, r := range rows {
		if !r.Qualified(minPitches) || !r.Graded() {
			continue
		}
		if codes != nil {
			if !r.PitchType.Valid {
				continue
			}
			if _, ok := codes[r.PitchType.String]; !ok {
				continue
			}
		}
		out = append(out, r)
	}
	if codes == nil {
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i], out[j]
			if a.PitcherName != b.PitcherName {
				return lessText(a.PitcherName, b.PitcherName)
			}
			return lessText(a.PitchType, b.PitchType)
		})
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TJStuffPlus.Int64 > out[j].TJStuffPlus.Int64
	})
	return out
}

// missing text sorts last
func lessText(a, b NullString) bool {
	switch {
	case !a.Valid:
		return false
	case !b.Valid:
		return true
	}
	return a.String < b.String
}

// Plot holds what the comparison chart needs for one pitcher.
type Plot struct {
	PitcherRows []PitchRow `json:"pitcher_rows"`
	PeerRows    []PitchRow `json:"peer_rows"`
	PitchTypes  []string   `json:"pitch_types"`
}

// Empty reports whether the pitcher has no qualifying pitch types.
func (p Plot) Empty() bool { return len(p.PitchTypes) == 0 }

// PlotView selects a pitcher's qualified rows in canonical pitch order and
// the qualified rows of everyone sharing position. An unknown pitcher or an
// empty position yields empty slices, never an error.
func PlotView(rows []PitchRow, pitcherID int64, position string) Plot {
	p := Plot{PitcherRows: []PitchRow{}, PeerRows: []PitchRow{}, PitchTypes: []string{}}
	seen := make(map[string]struct{})
	for _, r := range rows {
		if !r.Qualified(DefaultMinPitches) {
			continue
		}
		if r.PitcherID.Valid && r.PitcherID.Int64 == pitcherID {
			p.PitcherRows = append(p.PitcherRows, r)
			if r.PitchType.Valid {
				seen[r.PitchType.String] = struct{}{}
			}
		}
		if position != "" && r.Position.Valid && r.Position.String == position && r.PitchType.Valid {
			p.PeerRows = append(p.PeerRows, r)
		}
	}
	sort.SliceStable(p.PitcherRows, func(i, j int) bool {
		return canonicalRank(p.PitcherRows[i]) < canonicalRank(p.PitcherRows[j])
	})
	for _, code := range pitch.CanonicalOrder() {
		if _, ok := seen[code]; ok {
			p.PitchTypes = append(p.PitchTypes, code)
		}
	}
	return p
}

// unranked codes sort after every ranked one
func canonicalRank(r PitchRow) int {
	if r.PitchType.Valid {
		if i, ok := pitch.Rank(r.PitchType.String); ok {
			return i
		}
	}
	return len(pitch.CanonicalOrder())
}
