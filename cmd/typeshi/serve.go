package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/seven7ty/typeshi/pkg/mcpsrv"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the typeshi MCP server on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := mcpsrv.NewServer(mcpsrv.WithConfig(a.cfg))
			if err != nil {
				return err
			}
			defer server.Close()

			slog.Info("starting typeshi MCP server on stdio")
			if err := server.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			slog.Info("server stopped")
			return nil
		},
	}

	f := cmd.Flags()
	addGenerationFlags(cmd, a.cfg)
	f.IntVar(&a.cfg.CacheMaxItems, "cache-size", a.cfg.CacheMaxItems, "Generated modules kept for resource reads")
	return cmd
}
