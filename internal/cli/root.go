// Package cli provides the tjstuff command line interface.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/wdm0006/tjstuff/internal/cache"
	"github.com/wdm0006/tjstuff/internal/config"
	"github.com/wdm0006/tjstuff/pkg/dataset"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

type envKey struct{}

// env is what PersistentPreRunE hands to every subcommand.
type env struct {
	cfg *config.Config
	log *slog.Logger
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "tjstuff",
		Short: "tjStuff+ pitch dashboard",
		Long: `tjstuff serves and queries a season of per-pitcher, per-pitch-type
tjStuff+ ratings: a filterable leaderboard table and a per-pitcher chart
comparing each pitch against same-position peers.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			lvl, err := cfg.Log.SlogLevel()
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
			if cfg.FileUsed != "" {
				logger.Debug("using config file", "path", cfg.FileUsed)
			}
			cmd.SetContext(context.WithValue(cmd.Context(), envKey{}, &env{cfg: cfg, log: logger}))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./tjstuff.yaml)")
	rootCmd.PersistentFlags().String("data", "", "Path to the season file (csv, tsv, jsonl or parquet)")
	rootCmd.PersistentFlags().String("format", "", "Season file format, overrides the extension")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")

	rootCmd.AddCommand(newVersionCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newTableCommand())
	rootCmd.AddCommand(newPitchersCommand())
	rootCmd.AddCommand(newPlotCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newProfileCommand())
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func envFrom(cmd *cobra.Command) *env {
	if e, ok := cmd.Context().Value(envKey{}).(*env); ok {
		return e
	}
	cfg, err := config.Load("", nil)
	if err != nil {
		cfg = &config.Config{}
	}
	return &env{cfg: cfg, log: slog.Default()}
}

// loadDataset reads and normalizes the configured season file. With
// withCache the configured view cache is attached; the returned func
// releases it.
func loadDataset(cmd *cobra.Command, withCache bool) (*dataset.Dataset, func(), error) {
	e := envFrom(cmd)
	if err := e.cfg.Validate(); err != nil {
		return nil, nil, err
	}
	ctx := cmd.Context()
	rows, err := dataset.Load(ctx, e.cfg.Data.Path, dataset.LoadOptions{Format: e.cfg.Data.Format, Logger: e.log})
	if err != nil {
		return nil, nil, err
	}
	opts := []dataset.Option{dataset.WithLogger(e.log), dataset.WithMinPitches(e.cfg.Data.MinPitches)}
	cleanup := func() {}
	if withCache {
		c, err := cache.New(ctx, cache.Options{Backend: e.cfg.Cache.Backend, TTL: e.cfg.Cache.TTL, RedisURL: e.cfg.Cache.RedisURL})
		if err != nil {
			return nil, nil, err
		}
		if c != nil {
			opts = append(opts, dataset.WithCache(c))
			cleanup = func() {
				if err := c.Close(); err != nil {
					e.log.Warn("closing view cache", "err", err)
				}
			}
		}
	}
	return dataset.New(rows, opts...), cleanup, nil
}
