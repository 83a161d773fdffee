package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	golearnadapter "github.com/wdm0006/tjstuff/adapters/golearn"
	"github.com/wdm0006/tjstuff/internal/server"
	"github.com/wdm0006/tjstuff/pkg/dataset"
	"github.com/wdm0006/tjstuff/pkg/io/csvio"
)

// Output modes shared by the listing commands.
const (
	outputTable     = "table"
	outputCSV       = "csv"
	outputJSON      = "json"
	outputInstances = "instances"
)

func newTableCommand() *cobra.Command {
	var (
		pitchTypes []string
		output     string
	)
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the tjStuff+ table",
		Long: `Print qualifying rows. Without --pitch-type rows are ordered by pitcher
name and pitch type; with it they are ranked by tjStuff+, best first.`,
		Example: `  # All pitch types
  tjstuff table --data season.csv

  # Sliders and sweepers, ranked
  tjstuff table --data season.csv --pitch-type Slider --pitch-type ST

  # Feed a golearn model
  tjstuff table --data season.csv -o instances`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, cleanup, err := loadDataset(cmd, false)
			if err != nil {
				return err
			}
			defer cleanup()

			f := dataset.NoFilter()
			if cmd.Flags().Changed("pitch-type") {
				f = dataset.AnyOf(pitchTypes...)
			}
			rows := d.Table(cmd.Context(), f, -1)
			return renderRows(cmd.OutOrStdout(), output, rows)
		},
	}
	cmd.Flags().StringArrayVar(&pitchTypes, "pitch-type", nil, "Pitch type code or name (repeatable)")
	cmd.Flags().Int64("min-pitches", dataset.DefaultMinPitches, "Minimum pitches for a row to qualify")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format (table|csv|json|instances)")
	return cmd
}

func renderRows(w io.Writer, output string, rows []dataset.PitchRow) error {
	switch output {
	case outputTable:
		return renderTable(w, rows)
	case outputCSV:
		f := dataset.ToFrame(rows)
		header := make([]string, 0, len(dataset.Columns))
		for _, c := range f.Schema().Names() {
			header = append(header, dataset.Labels[c])
		}
		return csvio.Write(w, f, csvio.WriterOptions{Header: header})
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case outputInstances:
		inst, err := golearnadapter.ToDenseInstances(dataset.ToFrame(rows), golearnadapter.ClassColumn)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, inst)
		return err
	default:
		return fmt.Errorf("unknown output format %q (want table, csv, json or instances)", output)
	}
}

func renderTable(w io.Writer, rows []dataset.PitchRow) error {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault

	header := make(table.Row, len(server.TableColumns))
	for i, c := range server.TableColumns {
		header[i] = c
	}
	t.AppendHeader(header)
	for _, r := range rows {
		t.AppendRow(table.Row{
			r.PitcherID.String(),
			r.PitcherName.String,
			r.PitchType.String,
			r.Pitches.String(),
			r.TJStuffPlus.String(),
			r.PitchGrade.String(),
		})
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", len(rows))
	return nil
}
