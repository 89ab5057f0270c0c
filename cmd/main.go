package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"wallet_checker/internal/application"
	"wallet_checker/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	slog.SetDefault(logx.NewLogger(os.Stderr, slog.LevelWarn, !isatty.IsTerminal(os.Stderr.Fd())))

	// Failures are already on the screen; the exit status stays 0 either way.
	if err := application.Run(ctx); err != nil {
		slog.Debug("application finished with error", logx.Error(err))
	}
}
