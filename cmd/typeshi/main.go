package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/seven7ty/typeshi/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Defaults come from the environment (TYPESHI_*, LOG_*); see
	// internal/config. Flags override them per invocation.
	if err := newRootCmd(config.Load()).ExecuteContext(ctx); err != nil {
		slog.Error("typeshi failed", "error", err)
		os.Exit(1)
	}
}
