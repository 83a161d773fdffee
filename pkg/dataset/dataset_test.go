package dataset_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wdm0006/tjstuff/internal/testutil"
	"github.com/wdm0006/tjstuff/pkg/dataset"
)

func TestDatasetMemoizesViews(t *testing.T) {
	ctx := context.Background()
	c := newMapCache()
	d := dataset.New(seasonRows(t), dataset.WithCache(c), dataset.WithLogger(testutil.NewTestLogger(t)))

	first := d.Table(ctx, dataset.AnyOf("FF", "SL"), -1)
	second := d.Table(ctx, dataset.AnyOf("Slider", "4-Seam Fastball"), -1)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.hits)

	p1 := d.Plot(ctx, 694973)
	p2 := d.Plot(ctx, 694973)
	assert.Equal(t, p1, p2)
	assert.Equal(t, 2, c.hits)
	assert.Len(t, c.m, 2)
	for k := range c.m {
		assert.Contains(t, k, d.Fingerprint())
	}
}

func TestDatasetCacheFailureRecomputes(t *testing.T) {
	ctx := context.Background()
	c := newMapCache()
	c.fail = true
	rows := seasonRows(t)
	d := dataset.New(rows, dataset.WithCache(c), dataset.WithLogger(testutil.NewTestLogger(t)))
	assert.Equal(t, dataset.TableView(rows, dataset.NoFilter(), 10), d.Table(ctx, dataset.NoFilter(), -1))
	assert.Equal(t, 1, c.gets)
}

func TestDatasetIsolation(t *testing.T) {
	rows := seasonRows(t)
	d := dataset.New(rows, dataset.WithMinPitches(500))
	rows[0].PitcherName = dataset.Str("Mutated")
	assert.Equal(t, "Paul Skenes", d.Rows()[0].PitcherName.String)

	got := d.Table(context.Background(), dataset.NoFilter(), -1)
	for _, r := range got {
		assert.GreaterOrEqual(t, r.Pitches.Int64, int64(500))
	}
	assert.Equal(t, 14, d.Frame().Rows())
}

func TestFingerprintTracksContent(t *testing.T) {
	rows := seasonRows(t)
	a := dataset.New(rows)
	b := dataset.New(rows)
	c := dataset.New(rows[1:])
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}
