// Package pages holds the HTML components of the dashboard.
package pages

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/wdm0006/tjstuff/pkg/dataset"
)

// PitchOption is one entry of the pitch type selector.
type PitchOption struct {
	Code     string
	Name     string
	Colour   string
	Selected bool
}

// PitcherOption is one entry of the pitcher selector.
type PitcherOption struct {
	Value    string
	Label    string
	Selected bool
}

// DashboardData is everything the dashboard page shows.
type DashboardData struct {
	Title      string
	PitchTypes []PitchOption
	Pitchers   []PitcherOption
	Columns    []string
	Rows       []dataset.PitchRow
	ChartURL   string // empty hides the chart
	Message    string
}

// Dashboard renders the full page.
func Dashboard(d DashboardData) templ.Component {
	return Layout(d.Title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<form method="get" action="/" class="controls"><input type="hidden" name="pitch_type" value="">`); err != nil {
			return err
		}
		if err := pitchTypeSelect(d.PitchTypes).Render(ctx, w); err != nil {
			return err
		}
		if err := pitcherSelect(d.Pitchers).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<button type="submit">Update</button></form>`); err != nil {
			return err
		}
		if d.Message != "" {
			if _, err := fmt.Fprintf(w, `<p class="message">%s</p>`, templ.EscapeString(d.Message)); err != nil {
				return err
			}
		}
		if d.ChartURL != "" {
			if _, err := fmt.Fprintf(w, `<img class="chart" alt="pitcher chart" src="%s">`, templ.EscapeString(d.ChartURL)); err != nil {
				return err
			}
		}
		return Table(d.Columns, d.Rows).Render(ctx, w)
	}))
}

// Layout wraps body in the page shell.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>%s</title>`+
			`<style>body{font-family:sans-serif;margin:2rem}table{border-collapse:collapse}td,th{padding:2px 8px;border-bottom:1px solid #ddd}td.num{text-align:right}.chart{max-width:100%%;display:block;margin:1rem 0}</style>`+
			`</head><body><h1>%s</h1>`, templ.EscapeString(title), templ.EscapeString(title)); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func pitchTypeSelect(opts []PitchOption) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<label>Pitch Type <select name="pitch_type" multiple size="6">`); err != nil {
			return err
		}
		for _, o := range opts {
			if _, err := fmt.Fprintf(w, `<option value="%s" style="color:%s"%s>%s</option>`,
				templ.EscapeString(o.Code), templ.EscapeString(o.Colour), selected(o.Selected), templ.EscapeString(o.Name)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</select></label>`)
		return err
	})
}

func pitcherSelect(opts []PitcherOption) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<label>Pitcher <select name="pitcher">`); err != nil {
			return err
		}
		for _, o := range opts {
			if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`,
				templ.EscapeString(o.Value), selected(o.Selected), templ.EscapeString(o.Label)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</select></label>`)
		return err
	})
}

// Table renders the table view with the given column headings.
func Table(columns []string, rows []dataset.PitchRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<table><thead><tr>`); err != nil {
			return err
		}
		for _, c := range columns {
			if _, err := fmt.Fprintf(w, `<th>%s</th>`, templ.EscapeString(c)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</tr></thead><tbody>`); err != nil {
			return err
		}
		for _, r := range rows {
			if _, err := fmt.Fprintf(w, `<tr><td class="num">%s</td><td><a href="/?pitcher=%s">%s</a></td><td>%s</td><td class="num">%s</td><td class="num">%s</td><td class="num">%s</td></tr>`,
				r.PitcherID.String(),
				url.QueryEscape(r.PitcherID.String()),
				templ.EscapeString(r.PitcherName.String),
				templ.EscapeString(r.PitchType.String),
				r.Pitches.String(), r.TJStuffPlus.String(), r.PitchGrade.String()); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table><p>`+strconv.Itoa(len(rows))+` rows</p>`)
		return err
	})
}

func selected(b bool) string {
	if b {
		return " selected"
	}
	return ""
}
