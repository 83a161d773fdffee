package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wdm0006/tjstuff/pkg/dataset"
	fr "github.com/wdm0006/tjstuff/pkg/frame"
	"github.com/wdm0006/tjstuff/pkg/io/csvio"
	"github.com/wdm0006/tjstuff/pkg/io/jsonlio"
	"github.com/wdm0006/tjstuff/pkg/io/parquetio"
)

func newExportCommand() *cobra.Command {
	var (
		pitchTypes []string
		chunkSize  int
	)
	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Write the qualifying rows to a csv, tsv, jsonl or parquet file",
		Long: `Stream the normalized season through the qualification filters and write
it out. The output format follows the file extension; a .gz suffix
compresses csv and jsonl output.`,
		Example: `  tjstuff export --data season.csv qualified.parquet
  tjstuff export --data season.csv --pitch-type FF --min-pitches 200 fastballs.jsonl.gz`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			d, cleanup, err := loadDataset(cmd, false)
			if err != nil {
				return err
			}
			defer cleanup()

			f := dataset.NoFilter()
			if cmd.Flags().Changed("pitch-type") {
				f = dataset.AnyOf(pitchTypes...)
			}
			frame := d.Frame()
			sink, err := newSink(args[0], frame.Schema())
			if err != nil {
				return err
			}
			counter := &countingSink{next: sink}
			src := &fr.SliceSource{Frame: frame, Size: chunkSize}
			if err := fr.RunStream(cmd.Context(), dataset.QualifiedPipeline(f, d.MinPitches()), src, counter); err != nil {
				return fmt.Errorf("export %s: %w", args[0], err)
			}
			e.log.Info("export finished", "path", args[0], "rows", counter.rows, "filter", f.Key())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", counter.rows, args[0])
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&pitchTypes, "pitch-type", nil, "Pitch type code or name (repeatable)")
	cmd.Flags().Int64("min-pitches", dataset.DefaultMinPitches, "Minimum pitches for a row to qualify")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", 1024, "Rows per streamed chunk")
	return cmd
}

func newSink(path string, schema fr.Schema) (fr.ChunkSink, error) {
	format, err := dataset.DetectFormat(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case dataset.FormatCSV:
		return csvio.NewStreamWriter(path, schema, csvio.WriterOptions{})
	case dataset.FormatTSV:
		return csvio.NewStreamWriter(path, schema, csvio.WriterOptions{Delimiter: '\t'})
	case dataset.FormatJSONL:
		return jsonlio.NewStreamWriter(path)
	case dataset.FormatParquet:
		return parquetio.NewStreamWriter(path)
	default:
		return nil, fmt.Errorf("cannot export to %s", format)
	}
}

type countingSink struct {
	next fr.ChunkSink
	rows int
}

func (c *countingSink) Write(f *fr.Frame) error {
	c.rows += f.Rows()
	return c.next.Write(f)
}

func (c *countingSink) Close() error { return c.next.Close() }
