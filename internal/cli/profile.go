package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	fr "github.com/wdm0006/tjstuff/pkg/frame"
	"github.com/wdm0006/tjstuff/pkg/profile"
)

func newProfileCommand() *cobra.Command {
	var (
		output string
		topK   int
	)
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Summarize every column of the normalized season",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, cleanup, err := loadDataset(cmd, false)
			if err != nil {
				return err
			}
			defer cleanup()

			frame := d.Frame()
			c := profile.NewCollector(frame.Schema(), topK)
			if err := fr.RunStream(cmd.Context(), fr.NewPipeline(), &fr.SliceSource{Frame: frame}, c); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			switch output {
			case outputTable:
				_, err := fmt.Fprint(w, c.ReportText())
				return err
			case outputJSON:
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(c.ReportJSON())
			default:
				return fmt.Errorf("unknown output format %q (want table or json)", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format (table|json)")
	cmd.Flags().IntVar(&topK, "top", 5, "Most frequent values shown per text column")
	return cmd
}
