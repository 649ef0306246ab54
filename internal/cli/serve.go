// SPDX-License-Identifier: MIT
// Package: ivivc/internal/cli
//
// serve.go — serve command running the HTTP API.

package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ivivc/internal/server"
	"github.com/katalvlaran/ivivc/internal/telemetry"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the JSON HTTP API",
		Long: `Serve the analyses over HTTP. Settings come from IVIVC_* environment
variables; OTLP metric export is enabled with IVIVC_OTEL_ENABLED=true.

Examples:
  ivivc serve                # listen on $IVIVC_ADDR or :8080
  ivivc serve --addr :3000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if addr != "" {
				cfg.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var rec telemetry.Recorder = telemetry.NewNoOp()
			if cfg.OTel.Enabled {
				exp, err := telemetry.NewExporter(ctx, cfg.OTel)
				if err != nil {
					a.log.Warn("metrics export disabled", "err", err)
				} else {
					rec = exp
					a.log.Info("exporting metrics", "endpoint", cfg.OTel.Endpoint)
				}
			}
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
				defer cancel()
				if err := rec.Close(shutdownCtx); err != nil {
					a.log.Warn("metrics flush", "err", err)
				}
			}()

			return server.New(a.engine, a.log, rec).Start(ctx, cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides $IVIVC_ADDR)")

	return cmd
}
