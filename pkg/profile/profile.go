// Package profile summarizes the columns of a frame so a season file can be
// audited before it is served.
package profile

import (
	"fmt"
	"math"
	"sort"
	"strings"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
)

type NumStats struct {
	Count int     `json:"count"`
	Nulls int     `json:"nulls"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Sum   float64 `json:"sum"`
}

// Mean is zero for a column with no present values.
func (n *NumStats) Mean() float64 {
	if n.Count == 0 {
		return 0
	}
	return n.Sum / float64(n.Count)
}

func (n *NumStats) add(v float64) {
	n.Count++
	n.Min = math.Min(n.Min, v)
	n.Max = math.Max(n.Max, v)
	n.Sum += v
}

type StringStats struct {
	Count int
	Nulls int
	Freqs map[string]int
}

type ColumnProfile struct {
	Name string
	Kind fr.Kind
	Num  *NumStats
	Str  *StringStats
}

// Collector accumulates column statistics over one or more frames that share
// a schema.
type Collector struct {
	cols  []ColumnProfile
	index map[string]int
	topK  int
}

func NewCollector(schema fr.Schema, topK int) *Collector {
	c := &Collector{index: make(map[string]int), topK: topK}
	c.cols = make([]ColumnProfile, len(schema.Columns))
	for i, cs := range schema.Columns {
		cp := ColumnProfile{Name: cs.Name, Kind: cs.Type}
		switch cs.Type {
		case fr.KindFloat, fr.KindInt:
			cp.Num = &NumStats{Min: math.Inf(1), Max: math.Inf(-1)}
		default:
			cp.Str = &StringStats{Freqs: make(map[string]int)}
		}
		c.cols[i] = cp
		c.index[cs.Name] = i
	}
	return c
}

// Write consumes a chunk, so a Collector can be the sink of a stream.
func (c *Collector) Write(f *fr.Frame) error {
	c.ConsumeFrame(f)
	return nil
}

func (c *Collector) Close() error { return nil }

// ConsumeFrame adds f to the running statistics. Columns not in the
// collector's schema are ignored.
func (c *Collector) ConsumeFrame(f *fr.Frame) {
	for _, cs := range f.Schema().Columns {
		idx, ok := c.index[cs.Name]
		if !ok {
			continue
		}
		cp := &c.cols[idx]
		col, _ := f.ColumnByName(cs.Name)
		switch col := col.(type) {
		case *fr.FloatColumn:
			for i := 0; i < col.Len(); i++ {
				v, ok := col.Get(i)
				if !ok || math.IsNaN(v) {
					cp.Num.Nulls++
					continue
				}
				cp.Num.add(v)
			}
		case *fr.IntColumn:
			for i := 0; i < col.Len(); i++ {
				v, ok := col.Get(i)
				if !ok {
					cp.Num.Nulls++
					continue
				}
				cp.Num.add(float64(v))
			}
		case *fr.StringColumn:
			if cp.Str == nil {
				continue
			}
			for i := 0; i < col.Len(); i++ {
				v, ok := col.Get(i)
				if !ok {
					cp.Str.Nulls++
					continue
				}
				cp.Str.Count++
				if c.topK > 0 {
					cp.Str.Freqs[v]++
				}
			}
		}
	}
}

// Columns returns the collected profiles in schema order.
func (c *Collector) Columns() []ColumnProfile { return c.cols }

type freq struct {
	Value string
	Count int
}

// top returns the k most frequent values, ties broken by value.
func top(freqs map[string]int, k int) []freq {
	arr := make([]freq, 0, len(freqs))
	for v, n := range freqs {
		arr = append(arr, freq{v, n})
	}
	sort.Slice(arr, func(i, j int) bool {
		if arr[i].Count != arr[j].Count {
			return arr[i].Count > arr[j].Count
		}
		return arr[i].Value < arr[j].Value
	})
	if k > 0 && k < len(arr) {
		arr = arr[:k]
	}
	return arr
}

func (c *Collector) ReportText() string {
	var b strings.Builder
	b.WriteString("Profile Summary\n")
	for _, cp := range c.cols {
		fmt.Fprintf(&b, "- %s (%v): ", cp.Name, cp.Kind)
		if cp.Num != nil {
			if cp.Num.Count == 0 {
				fmt.Fprintf(&b, "count=0 nulls=%d\n", cp.Num.Nulls)
				continue
			}
			fmt.Fprintf(&b, "count=%d nulls=%d min=%.6g max=%.6g mean=%.6g\n", cp.Num.Count, cp.Num.Nulls, cp.Num.Min, cp.Num.Max, cp.Num.Mean())
			continue
		}
		fmt.Fprintf(&b, "count=%d nulls=%d distinct=%d\n", cp.Str.Count, cp.Str.Nulls, len(cp.Str.Freqs))
		for _, kv := range top(cp.Str.Freqs, c.topK) {
			fmt.Fprintf(&b, "    %q: %d\n", kv.Value, kv.Count)
		}
	}
	return b.String()
}

type JSONProfile struct {
	Columns []JSONColumn `json:"columns"`
}

type JSONColumn struct {
	Name string    `json:"name"`
	Kind string    `json:"kind"`
	Num  *JSONNum  `json:"num,omitempty"`
	Str  *JSONText `json:"str,omitempty"`
}

type JSONNum struct {
	NumStats
	Mean float64 `json:"mean"`
}

type JSONText struct {
	Count    int            `json:"count"`
	Nulls    int            `json:"nulls"`
	Distinct int            `json:"distinct"`
	Top      map[string]int `json:"top,omitempty"`
}

func (c *Collector) ReportJSON() JSONProfile {
	out := JSONProfile{Columns: make([]JSONColumn, 0, len(c.cols))}
	for _, cp := range c.cols {
		jc := JSONColumn{Name: cp.Name, Kind: cp.Kind.String()}
		if cp.Num != nil {
			n := *cp.Num
			if n.Count == 0 {
				n.Min, n.Max = 0, 0
			}
			jc.Num = &JSONNum{NumStats: n, Mean: n.Mean()}
		} else {
			jt := &JSONText{Count: cp.Str.Count, Nulls: cp.Str.Nulls, Distinct: len(cp.Str.Freqs)}
			if kvs := top(cp.Str.Freqs, c.topK); len(kvs) > 0 {
				jt.Top = make(map[string]int, len(kvs))
				for _, kv := range kvs {
					jt.Top[kv.Value] = kv.Count
				}
			}
			jc.Str = jt
		}
		out.Columns = append(out.Columns, jc)
	}
	return out
}
