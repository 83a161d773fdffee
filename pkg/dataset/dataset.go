// Package dataset turns a season file into typed pitch rows and derives the
// table and plot views served to every session.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
)

// ViewCache stores encoded views. Implementations must be safe for
// concurrent use.
type ViewCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte) error
}

// Option configures a Dataset.
type Option func(*Dataset)

// WithCache memoizes views in c.
func WithCache(c ViewCache) Option { return func(d *Dataset) { d.cache = c } }

// WithLogger sets the logger used for cache failures.
func WithLogger(l *slog.Logger) Option { return func(d *Dataset) { d.log = l } }

// WithMinPitches changes the default table threshold.
func WithMinPitches(n int64) Option { return func(d *Dataset) { d.minPitches = n } }

// Dataset is the immutable base row set shared by all sessions.
type Dataset struct {
	rows        []PitchRow
	index       *PitcherIndex
	fingerprint string
	minPitches  int64
	cache       ViewCache
	log         *slog.Logger
}

var fingerprintSpace = uuid.MustParse("6f1c2b8e-4d1a-5a53-9f0e-7c1d2a3b4c5d")

func New(rows []PitchRow, opts ...Option) *Dataset {
	d := &Dataset{
		rows:       append([]PitchRow(nil), rows...),
		minPitches: DefaultMinPitches,
		log:        slog.Default(),
	}
	for _, o := range opts {
		o(d)
	}
	d.index = BuildPitcherIndex(d.rows)
	b, _ := json.Marshal(d.rows)
	d.fingerprint = uuid.NewSHA1(fingerprintSpace, b).String()
	return d
}

// Rows returns a copy of the base rows.
func (d *Dataset) Rows() []PitchRow { return append([]PitchRow(nil), d.rows...) }

func (d *Dataset) Len() int             { return len(d.rows) }
func (d *Dataset) Index() *PitcherIndex { return d.index }
func (d *Dataset) MinPitches() int64    { return d.minPitches }
func (d *Dataset) Fingerprint() string  { return d.fingerprint }
func (d *Dataset) Frame() *fr.Frame     { return ToFrame(d.rows) }

// Table is TableView over the base set, using minPitches when it is non-negative
// and the dataset default otherwise.
func (d *Dataset) Table(ctx context.Context, f Filter, minPitches int64) []PitchRow {
	if minPitches < 0 {
		minPitches = d.minPitches
	}
	key := d.key("table", f.Key(), strconv.FormatInt(minPitches, 10))
	return memo(ctx, d, key, func() []PitchRow { return TableView(d.rows, f, minPitches) })
}

// Plot is PlotView for a pitcher at their indexed position.
func (d *Dataset) Plot(ctx context.Context, pitcherID int64) Plot {
	pos, _ := d.index.Position(pitcherID)
	key := d.key("plot", strconv.FormatInt(pitcherID, 10), pos)
	return memo(ctx, d, key, func() Plot { return PlotView(d.rows, pitcherID, pos) })
}

func (d *Dataset) key(kind string, parts ...string) string {
	k := "tjstuff:" + d.fingerprint + ":" + kind
	for _, p := range parts {
		k += ":" + p
	}
	return k
}

// memo serves a view from the cache when possible. Cache failures are
// logged and the view is recomputed.
func memo[T any](ctx context.Context, d *Dataset, key string, compute func() T) T {
	if d.cache == nil {
		return compute()
	}
	b, ok, err := d.cache.Get(ctx, key)
	if err != nil {
		d.log.Warn("view cache get failed", "key", key, "err", err)
	}
	if ok && err == nil {
		var v T
		if err := json.Unmarshal(b, &v); err == nil {
			return v
		}
		d.log.Warn("view cache entry unreadable", "key", key)
	}
	v := compute()
	b, err = json.Marshal(v)
	if err != nil {
		d.log.Warn("view encode failed", "key", key, "err", err)
		return v
	}
	if err := d.cache.Set(ctx, key, b); err != nil {
		d.log.Warn("view cache set failed", "key", key, "err", err)
	}
	return v
}

// Summary describes the dataset for logs.
func (d *Dataset) Summary() string {
	return fmt.Sprintf("%d rows, %d pitchers", len(d.rows), len(d.index.IDToName))
}
