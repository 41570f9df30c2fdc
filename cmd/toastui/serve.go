package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/toastui/internal/preview"
)

func serveCmd(g *globals) *cobra.Command {
	var (
		port    int
		host    string
		fixture string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Start the preview server.

The gallery page connects back over WebSocket: swiping or closing a toast
dismisses it on every open page.

Examples:
  toastui serve
  toastui serve --port=8080 --host=0.0.0.0
  toastui serve --fixture toasts.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			f, err := loadFixture(cfg, fixture)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			success(out, "Preview at %s", cfg.URL())
			if cfg.Metrics.Enabled {
				info(out, "Metrics at %s%s", cfg.URL(), cfg.Metrics.Path)
			}

			srv := preview.New(cfg, f, preview.WithLogger(logger))
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().StringVar(&fixture, "fixture", "", "Gallery fixture YAML (default from config or built-in)")

	return cmd
}
