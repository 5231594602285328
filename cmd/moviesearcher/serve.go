package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/moviesearcher/internal/bootstrap"
	"github.com/at-ishikawa/moviesearcher/internal/server"
)

func newServeCommand() *cobra.Command {
	var port int
	serveCommand := &cobra.Command{
		Use:   "serve",
		Short: "Serve the movie lookup HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}

			ctx := cmd.Context()
			service, err := newLookupService(ctx, cfg, true)
			if err != nil {
				return err
			}

			app := bootstrap.New()
			app.AddShutdownHook("lookup service", func(context.Context) error {
				return service.close()
			})
			srv := server.NewServer(cfg.Server.Port, service.resolver, slog.Default())
			app.AddShutdownHook("http server", srv.Shutdown)

			return app.Run(ctx, func(ctx context.Context) error {
				slog.Info("Starting server", "addr", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("serve http: %w", err)
				}
				return nil
			})
		},
	}
	serveCommand.Flags().IntVar(&port, "port", 0, "port to listen on, overriding server.port")
	return serveCommand
}
