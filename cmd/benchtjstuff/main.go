// Command benchtjstuff streams a synthetic season through normalization and
// the qualification filters, reporting throughput. With -out it also writes
// the generated season so it can be fed to `tjstuff serve`.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/wdm0006/tjstuff/pkg/dataset"
	fr "github.com/wdm0006/tjstuff/pkg/frame"
	"github.com/wdm0006/tjstuff/pkg/io/csvio"
	"github.com/wdm0006/tjstuff/pkg/pitch"
)

var positions = []string{"SP", "RP"}

// genSource yields raw text frames shaped like a freshly read season file.
type genSource struct {
	schema  fr.Schema
	codes   []string
	remain  int
	chunk   int
	missp   float64
	rnd     *rand.Rand
	pitcher int
}

func (g *genSource) Next() (*fr.Frame, error) {
	if g.remain <= 0 {
		return nil, io.EOF
	}
	n := g.chunk
	if n > g.remain {
		n = g.remain
	}
	g.remain -= n
	f := fr.NewFrame(g.schema)
	for i := 0; i < n; i++ {
		// every pitcher throws a handful of pitch types on consecutive rows
		if i%len(g.codes) == 0 || g.rnd.Intn(4) == 0 {
			g.pitcher++
		}
		id := 600000 + g.pitcher
		f.AppendNullRow()
		_ = f.SetCell(i, dataset.ColPitcherID, strconv.Itoa(id))
		_ = f.SetCell(i, dataset.ColPitcherName, fmt.Sprintf(" Pitcher %d ", id))
		_ = f.SetCell(i, dataset.ColPosition, positions[id%len(positions)])
		_ = f.SetCell(i, dataset.ColPitchType, g.codes[g.rnd.Intn(len(g.codes))])
		_ = f.SetCell(i, dataset.ColPitches, strconv.Itoa(g.rnd.Intn(1200)))
		if g.rnd.Float64() >= g.missp {
			_ = f.SetCell(i, dataset.ColStuffPlus, strconv.FormatFloat(70+g.rnd.Float64()*60, 'f', 1, 64))
		} else {
			_ = f.SetCell(i, dataset.ColStuffPlus, "NaN")
		}
		if g.rnd.Float64() >= g.missp {
			_ = f.SetCell(i, dataset.ColPitchGrade, strconv.Itoa(20+g.rnd.Intn(61)))
		}
	}
	return f, nil
}

// stage runs a whole pipeline as one step of another.
type stage struct {
	name string
	p    *fr.Pipeline
}

func (s *stage) Name() string { return s.name }
func (s *stage) Apply(ctx context.Context, f *fr.Frame) (*fr.Frame, error) {
	return s.p.Run(ctx, f)
}

type blackholeSink struct{ rows int }

func (b *blackholeSink) Write(f *fr.Frame) error { b.rows += f.Rows(); return nil }
func (b *blackholeSink) Close() error            { return nil }

type countingSink struct {
	next fr.ChunkSink
	rows int
}

func (c *countingSink) Write(f *fr.Frame) error { c.rows += f.Rows(); return c.next.Write(f) }
func (c *countingSink) Close() error            { return c.next.Close() }

func main() {
	var (
		rows       = flag.Int("rows", 1_000_000, "total rows to generate")
		chunk      = flag.Int("chunk", 50_000, "rows per chunk")
		missp      = flag.Float64("missing", 0.03, "probability of a missing metric")
		minPitches = flag.Int64("min-pitches", dataset.DefaultMinPitches, "qualification threshold")
		out        = flag.String("out", "", "also write the generated season to this csv path")
		jsonOut    = flag.Bool("json", false, "emit JSON summary")
		seed       = flag.Int64("seed", 42, "random seed")
	)
	flag.Parse()

	schema := fr.Schema{}
	for _, c := range dataset.Columns {
		schema.Columns = append(schema.Columns, fr.ColumnSchema{Name: c, Type: fr.KindString, Nullable: true})
	}
	src := &genSource{
		schema: schema,
		codes:  pitch.CanonicalOrder()[1:],
		remain: *rows,
		chunk:  *chunk,
		missp:  *missp,
		rnd:    rand.New(rand.NewSource(*seed)),
	}

	var (
		p    = fr.NewPipeline().Add(&stage{name: "normalize", p: dataset.NormalizePipeline()})
		sink fr.ChunkSink
	)
	if *out != "" {
		w, err := csvio.NewStreamWriter(*out, schema, csvio.WriterOptions{})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		sink = w
	} else {
		p.Add(&stage{name: "qualify", p: dataset.QualifiedPipeline(dataset.NoFilter(), *minPitches)})
		sink = &blackholeSink{}
	}
	counter := &countingSink{next: sink}

	runtime.GC()
	time.Sleep(100 * time.Millisecond)

	var msBefore, msAfter runtime.MemStats
	runtime.ReadMemStats(&msBefore)
	start := time.Now()
	if err := fr.RunStream(context.Background(), p, src, counter); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	elapsed := time.Since(start)
	runtime.ReadMemStats(&msAfter)

	rowsPerSec := float64(*rows) / elapsed.Seconds()
	summary := map[string]any{
		"rows":                  *rows,
		"rows_out":              counter.rows,
		"pitchers":              src.pitcher,
		"elapsed_ms":            elapsed.Milliseconds(),
		"rows_per_sec":          rowsPerSec,
		"mem_alloc_bytes":       msAfter.Alloc,
		"mem_total_alloc_bytes": msAfter.TotalAlloc - msBefore.TotalAlloc,
		"gc_num":                msAfter.NumGC - msBefore.NumGC,
		"chunk":                 *chunk,
		"missing_prob":          *missp,
		"steps":                 p.Steps(),
	}

	if *jsonOut {
		b, _ := json.MarshalIndent(summary, "", "  ")
		fmt.Println(string(b))
		return
	}
	fmt.Printf("Rows: %d in, %d out (%d pitchers)\n", *rows, counter.rows, src.pitcher)
	fmt.Printf("Elapsed: %s\n", elapsed)
	fmt.Printf("Throughput: %.0f rows/s\n", rowsPerSec)
	fmt.Printf("Current Alloc: %d MB\n", msAfter.Alloc/1024/1024)
	fmt.Printf("Total Alloc (delta): %d MB\n", (msAfter.TotalAlloc-msBefore.TotalAlloc)/1024/1024)
	fmt.Printf("GC cycles (delta): %d\n", msAfter.NumGC-msBefore.NumGC)
	if *out != "" {
		fmt.Printf("Wrote %s\n", *out)
	}
}
