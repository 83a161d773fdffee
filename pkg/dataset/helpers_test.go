package dataset_test

import (
	"context"
	"errors"
	"sync"

	"github.com/wdm0006/tjstuff/pkg/dataset"
	fr "github.com/wdm0006/tjstuff/pkg/frame"
	"github.com/wdm0006/tjstuff/pkg/io/parquetio"
)

func writeParquet(path string, f *fr.Frame) error { return parquetio.WriteAll(path, f) }

func row(id int64, name, position, code string, pitches, stuff, grade int64) dataset.PitchRow {
	r := dataset.PitchRow{
		PitcherID:   dataset.Int(id),
		PitcherName: dataset.Str(name),
		PitchType:   dataset.Str(code),
		Pitches:     dataset.Int(pitches),
		TJStuffPlus: dataset.Int(stuff),
		PitchGrade:  dataset.Int(grade),
	}
	if position != "" {
		r.Position = dataset.Str(position)
	}
	return r
}

type mapCache struct {
	mu   sync.Mutex
	m    map[string][]byte
	gets int
	hits int
	fail bool
}

func newMapCache() *mapCache { return &mapCache{m: map[string][]byte{}} }

func (c *mapCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.fail {
		return nil, false, errors.New("cache down")
	}
	v, ok := c.m[key]
	if ok {
		c.hits++
	}
	return v, ok, nil
}

func (c *mapCache) Set(ctx context.Context, key string, val []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("cache down")
	}
	c.m[key] = val
	return nil
}
