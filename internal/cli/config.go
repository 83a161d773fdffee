package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the merged configuration as YAML: defaults, then the config file,
then TJSTUFF_ environment variables, then command line flags.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := envFrom(cmd)
			b, err := e.cfg.YAML()
			if err != nil {
				return err
			}
			if e.cfg.FileUsed != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", e.cfg.FileUsed)
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
