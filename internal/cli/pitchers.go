package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

func newPitchersCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "pitchers",
		Short: "List pitchers and their selection labels",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, cleanup, err := loadDataset(cmd, false)
			if err != nil {
				return err
			}
			defer cleanup()

			entries := d.Index().Pitchers()
			w := cmd.OutOrStdout()
			if output == outputJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}
			if output != outputTable {
				return fmt.Errorf("unknown output format %q (want table or json)", output)
			}

			t := table.NewWriter()
			t.SetOutputMirror(w)
			t.SetStyle(table.StyleLight)
			t.Style().Format.Header = text.FormatDefault
			t.AppendHeader(table.Row{"Pitcher ID", "Pitcher Name", "Position", "Label"})
			for _, e := range entries {
				t.AppendRow(table.Row{e.ID, e.Name, e.Position, e.Label})
			}
			t.Render()
			_, _ = fmt.Fprintf(w, "(%d pitchers)\n", len(entries))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format (table|json)")
	return cmd
}
