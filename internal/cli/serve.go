package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wdm0006/tjstuff/internal/chart"
	"github.com/wdm0006/tjstuff/internal/server"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard web server",
		Example: `  # Serve a season file on the default port
  tjstuff serve --data tjstuff_plus_pitch_data_2024.csv

  # Share the view cache between replicas
  tjstuff serve --data season.parquet --cache redis --redis-url redis://cache:6379/0`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := envFrom(cmd)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			d, cleanup, err := loadDataset(cmd, true)
			if err != nil {
				return err
			}
			defer cleanup()

			srv := server.New(server.Config{
				Dataset:           d,
				Charts:            chart.New(chart.Options{Width: e.cfg.Chart.Width, Height: e.cfg.Chart.Height, Season: e.cfg.Chart.Season}),
				Addr:              e.cfg.Server.Addr,
				SessionSecret:     e.cfg.Server.SessionSecret,
				CORSOrigins:       e.cfg.Server.CORSOrigins,
				ReadHeaderTimeout: e.cfg.Server.ReadHeaderTimeout,
				Logger:            e.log,
			})
			return srv.Serve(ctx)
		},
	}
	cmd.Flags().String("addr", "", "Listen address (default :8050)")
	cmd.Flags().String("cache", "", "View cache backend (memory|redis|none)")
	cmd.Flags().Duration("cache-ttl", 0, "View cache entry lifetime")
	cmd.Flags().String("redis-url", "", "Redis URL for the redis cache backend")
	cmd.Flags().Int("season", 0, "Season shown in chart titles")
	return cmd
}
