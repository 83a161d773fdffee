package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wdm0006/tjstuff/internal/chart"
	"github.com/wdm0006/tjstuff/internal/server/pages"
	"github.com/wdm0006/tjstuff/pkg/dataset"
	"github.com/wdm0006/tjstuff/pkg/pitch"
)

// TableColumns are the headings of the table view, in display order.
var TableColumns = []string{
	dataset.Labels[dataset.ColPitcherID],
	dataset.Labels[dataset.ColPitcherName],
	dataset.Labels[dataset.ColPitchType],
	dataset.Labels[dataset.ColPitches],
	dataset.Labels[dataset.ColStuffPlus],
	dataset.Labels[dataset.ColPitchGrade],
}

type pitchTypeInfo struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Colour string `json:"colour"`
}

// pitchTypeList lists the canonical order first, then every other known type.
func pitchTypeList() []pitchTypeInfo {
	seen := map[string]bool{}
	var out []pitchTypeInfo
	add := func(code string) {
		if seen[code] {
			return
		}
		seen[code] = true
		out = append(out, pitchTypeInfo{Code: code, Name: pitch.NameOf(code), Colour: pitch.ColourOf(code)})
	}
	for _, code := range pitch.CanonicalOrder() {
		add(code)
	}
	for _, t := range pitch.Known() {
		add(t.Code())
	}
	return out
}

type tableResponse struct {
	Columns    []string           `json:"columns"`
	Filter     string             `json:"filter"`
	MinPitches int64              `json:"min_pitches"`
	Rows       []dataset.PitchRow `json:"rows"`
}

type plotResponse struct {
	Pitcher dataset.PitcherEntry `json:"pitcher"`
	Plot    dataset.Plot         `json:"plot"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"rows":        s.data.Len(),
		"fingerprint": s.data.Fingerprint(),
	})
}

func (s *Server) handlePitchTypes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, pitchTypeList())
}

// requestFilter reads pitch_type query values. ok is false when the query
// does not mention pitch_type at all.
func requestFilter(q url.Values) (dataset.Filter, bool) {
	vals, ok := q["pitch_type"]
	if !ok {
		return dataset.NoFilter(), false
	}
	var sels []string
	for _, v := range vals {
		if v != "" {
			sels = append(sels, v)
		}
	}
	return dataset.AnyOf(sels...), true
}

func minPitches(q url.Values) (int64, error) {
	v := q.Get("min_pitches")
	if v == "" {
		return -1, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("min_pitches must be a non-negative integer, got %q", v)
	}
	return n, nil
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	minP, err := minPitches(q)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	f, ok := requestFilter(q)
	if !ok {
		if sel, stored := loadSelection(s.session(r)); stored {
			f = dataset.ParseFilter(sel.PitchTypes)
		}
	}
	rows := s.data.Table(r.Context(), f, minP)
	if minP < 0 {
		minP = s.data.MinPitches()
	}
	respondJSON(w, http.StatusOK, tableResponse{Columns: TableColumns, Filter: f.Key(), MinPitches: minP, Rows: rows})
}

func (s *Server) handlePitchers(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.data.Index().Pitchers())
}

// pitcher resolves the {id} path parameter, writing a 404 when it is unknown.
func (s *Server) pitcher(w http.ResponseWriter, r *http.Request) (dataset.PitcherEntry, bool) {
	ix := s.data.Index()
	id, err := ix.Resolve(chi.URLParam(r, "id"))
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, dataset.ErrUnknownPitcher) {
			status = http.StatusNotFound
		}
		respondError(w, status, err.Error())
		return dataset.PitcherEntry{}, false
	}
	pos, _ := ix.Position(id)
	return dataset.PitcherEntry{ID: id, Name: ix.IDToName[id], Label: ix.IDToLabel[id], Position: pos}, true
}

func (s *Server) handlePlot(w http.ResponseWriter, r *http.Request) {
	p, ok := s.pitcher(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, plotResponse{Pitcher: p, Plot: s.data.Plot(r.Context(), p.ID)})
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	p, ok := s.pitcher(w, r)
	if !ok {
		return
	}
	in := chart.Input{PitcherID: p.ID, PitcherName: p.Name, Position: p.Position, Plot: s.data.Plot(r.Context(), p.ID)}
	var buf bytes.Buffer
	if err := s.charts.Render(&buf, in); err != nil {
		s.logger.Error("chart render failed", "pitcher", p.ID, "err", err)
		respondError(w, http.StatusInternalServerError, "chart render failed")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=300")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess := s.session(r)
	sel, _ := loadSelection(sess)
	if err := sess.Save(r, w); err != nil {
		s.logger.Warn("session save failed", "err", err)
	}
	respondJSON(w, http.StatusOK, map[string]any{"session_id": sessionID(sess), "selection": sel})
}

func (s *Server) handleSetSelection(w http.ResponseWriter, r *http.Request) {
	var sel Selection
	if err := decodeJSON(w, r, &sel); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if sel.Pitcher != "" {
		if _, err := s.data.Index().Resolve(sel.Pitcher); err != nil {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
	}
	sess := s.session(r)
	if err := s.saveSelection(w, r, sess, sel); err != nil {
		respondError(w, http.StatusInternalServerError, "could not save session")
		return
	}
	s.logger.Debug("selection stored", "session", sessionID(sess), "pitch_types", sel.PitchTypes, "pitcher", sel.Pitcher)
	respondJSON(w, http.StatusOK, map[string]any{"session_id": sessionID(sess), "selection": sel})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sess := s.session(r)
	sel, _ := loadSelection(sess)
	q := r.URL.Query()
	// the form always sends an empty pitch_type, so nothing chosen means all
	if f, ok := requestFilter(q); ok {
		sel.PitchTypes = nil
		if codes := f.Codes(); len(codes) > 0 {
			sel.PitchTypes = codes
		}
	}
	if q.Has("pitcher") {
		sel.Pitcher = q.Get("pitcher")
	}
	if err := s.saveSelection(w, r, sess, sel); err != nil {
		s.logger.Warn("session save failed", "err", err)
	}

	ix := s.data.Index()
	data := pages.DashboardData{
		Title:   "tjStuff+ Pitch Dashboard",
		Columns: TableColumns,
		Rows:    s.data.Table(r.Context(), dataset.ParseFilter(sel.PitchTypes), -1),
	}
	chosen := map[string]bool{}
	for _, c := range dataset.ParseFilter(sel.PitchTypes).Codes() {
		chosen[c] = true
	}
	for _, pt := range pitchTypeList() {
		data.PitchTypes = append(data.PitchTypes, pages.PitchOption{Code: pt.Code, Name: pt.Name, Colour: pt.Colour, Selected: chosen[pt.Code]})
	}

	entries := ix.Pitchers()
	var current int64
	if sel.Pitcher != "" {
		id, err := ix.Resolve(sel.Pitcher)
		if err != nil {
			data.Message = fmt.Sprintf("No data for pitcher %q", sel.Pitcher)
		} else {
			current = id
		}
	} else if len(entries) > 0 {
		current = entries[0].ID
	}
	for _, e := range entries {
		data.Pitchers = append(data.Pitchers, pages.PitcherOption{Value: strconv.FormatInt(e.ID, 10), Label: e.Label, Selected: e.ID == current})
	}
	if _, known := ix.IDToName[current]; known {
		data.ChartURL = fmt.Sprintf("/api/v1/pitchers/%d/chart.png", current)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Dashboard(data).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
