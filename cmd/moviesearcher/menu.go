package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/moviesearcher/internal/cli"
)

func newMenuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Search movies interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			service, err := newLookupService(ctx, cfg, true)
			if err != nil {
				return err
			}
			defer func() {
				if err := service.close(); err != nil {
					slog.Warn("Failed to close", "error", err)
				}
			}()

			menu := cli.NewMenuCLI(service.resolver, os.Stdin, cmd.OutOrStdout())
			return cli.Run(ctx, menu, cmd.OutOrStdout())
		},
	}
}
