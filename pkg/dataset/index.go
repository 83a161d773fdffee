package dataset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// PitcherIndex maps pitcher ids to names, selection labels and positions.
type PitcherIndex struct {
	IDToName     map[int64]string
	IDToLabel    map[int64]string
	LabelToID    map[string]int64
	IDToPosition map[int64]string
}

// PitcherEntry is one option in a pitcher selector.
type PitcherEntry struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Label    string `json:"label"`
	Position string `json:"position,omitempty"`
}

// Label formats the selection label of a pitcher.
func Label(name string, id int64) string {
	return fmt.Sprintf("%s - %d", name, id)
}

// BuildPitcherIndex indexes rows by pitcher id. Later rows overwrite earlier
// ones for the same id; rows without an id are skipped.
func BuildPitcherIndex(rows []PitchRow) *PitcherIndex {
	ix := &PitcherIndex{
		IDToName:     map[int64]string{},
		IDToLabel:    map[int64]string{},
		LabelToID:    map[string]int64{},
		IDToPosition: map[int64]string{},
	}
	for _, r := range rows {
		if !r.PitcherID.Valid {
			continue
		}
		id := r.PitcherID.Int64
		if old, ok := ix.IDToLabel[id]; ok {
			delete(ix.LabelToID, old)
		}
		ix.IDToName[id] = r.PitcherName.String
		label := Label(r.PitcherName.String, id)
		ix.IDToLabel[id] = label
		ix.LabelToID[label] = id
		if r.Position.Valid {
			ix.IDToPosition[id] = r.Position.String
		}
	}
	return ix
}

// Position returns the pitcher's position; ok is false when it was never given.
func (ix *PitcherIndex) Position(id int64) (string, bool) {
	p, ok := ix.IDToPosition[id]
	return p, ok
}

// Pitchers lists every indexed pitcher sorted by label.
func (ix *PitcherIndex) Pitchers() []PitcherEntry {
	out := make([]PitcherEntry, 0, len(ix.IDToName))
	for id, name := range ix.IDToName {
		out = append(out, PitcherEntry{ID: id, Name: name, Label: ix.IDToLabel[id], Position: ix.IDToPosition[id]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Label != out[j].Label {
			return out[i].Label < out[j].Label
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Resolve turns a selector label or a bare numeric id into a pitcher id.
func (ix *PitcherIndex) Resolve(selection string) (int64, error) {
	selection = strings.TrimSpace(selection)
	if id, ok := ix.LabelToID[selection]; ok {
		return id, nil
	}
	if id, err := strconv.ParseInt(selection, 10, 64); err == nil {
		if _, ok := ix.IDToName[id]; ok {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPitcher, selection)
}
