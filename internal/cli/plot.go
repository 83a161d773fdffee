package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wdm0006/tjstuff/internal/chart"
	"github.com/wdm0006/tjstuff/pkg/dataset"
)

func newPlotCommand() *cobra.Command {
	var (
		out      string
		jsonView bool
	)
	cmd := &cobra.Command{
		Use:   "plot <pitcher>",
		Short: "Render a pitcher's tjStuff+ chart",
		Long: `Render the two panel chart for one pitcher. The pitcher is a selection
label ("Paul Skenes - 694973") or a bare pitcher id.`,
		Example: `  tjstuff plot 694973 --data season.csv
  tjstuff plot "Paul Skenes - 694973" --data season.csv --out skenes.png
  tjstuff plot 694973 --data season.csv --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			d, cleanup, err := loadDataset(cmd, false)
			if err != nil {
				return err
			}
			defer cleanup()

			ix := d.Index()
			id, err := ix.Resolve(args[0])
			if err != nil {
				return err
			}
			view := d.Plot(cmd.Context(), id)
			if jsonView {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			}

			pos, _ := ix.Position(id)
			in := chart.Input{PitcherID: id, PitcherName: ix.IDToName[id], Position: pos, Plot: view}
			if out == "" {
				out = fmt.Sprintf("%d.png", id)
			}
			return writeChart(out, chart.New(chart.Options{Width: e.cfg.Chart.Width, Height: e.cfg.Chart.Height, Season: e.cfg.Chart.Season}), in, cmd)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "Output PNG path (default <pitcher id>.png)")
	cmd.Flags().BoolVar(&jsonView, "json", false, "Print the plot view as JSON instead of rendering")
	cmd.Flags().Int("season", 0, "Season shown in the chart title")
	return cmd
}

func writeChart(path string, r *chart.Renderer, in chart.Input, cmd *cobra.Command) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := r.Render(f, in); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	if in.Plot.Empty() {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "no qualifying pitches for %s\n", dataset.Label(in.PitcherName, in.PitcherID))
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
