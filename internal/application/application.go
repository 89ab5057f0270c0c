package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"wallet_checker/internal/config"
	"wallet_checker/internal/domain/service/eligibility"
	"wallet_checker/internal/infrastructure/streamflow"
	"wallet_checker/internal/infrastructure/walletfile"
	"wallet_checker/internal/transport/console"
	"wallet_checker/internal/worker"
	"wallet_checker/pkg/contextx"
	"wallet_checker/pkg/httpx"
	"wallet_checker/pkg/logx"
	"wallet_checker/pkg/metrics"
)

// Run loads the configuration and performs one check run. Every error it
// returns has already been shown to the user.
func Run(ctx context.Context) error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		console.NewStdoutRenderer(streamflow.DefaultChain).Failure(err)
		return fmt.Errorf("config load: %w", err)
	}

	// 2. Logger
	log := logx.NewLogger(os.Stderr, cfg.Log.SlogLevel(), !isatty.IsTerminal(os.Stderr.Fd()))
	slog.SetDefault(log)

	// 3. Run
	_, err = Execute(ctx, cfg, console.NewStdoutRenderer(cfg.API.Chain), log)

	return err
}

// Execute wires the checker for cfg and runs it against renderer.
func Execute(
	ctx context.Context,
	cfg config.Config,
	renderer worker.Renderer,
	log *slog.Logger,
) (worker.Report, error) {
	runID := contextx.NewRunID()

	ctx = contextx.WithRunID(ctx, runID)
	ctx = contextx.WithLogger(ctx, log.With(logx.Stringer(logx.FieldRunID, runID)))

	logger(ctx).Info("run started", slog.String("config", cfg.String()))

	// The run has no per-request timeout; an interrupt is the only way to stop
	// a hanging request.
	httpClient := &http.Client{
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithLogFieldMaxLen(cfg.Log.FieldMaxLen),
			httpx.WithAddressMasking(cfg.Log.MaskAddresses),
		),
	}

	client, err := streamflow.NewClient(cfg.API.Endpoint, cfg.API.Chain, httpClient)
	if err != nil {
		renderer.Failure(err)
		return worker.Report{}, fmt.Errorf("streamflow.NewClient: %w", err)
	}

	checker := eligibility.NewChecker(client)
	if cfg.Input.Dedupe {
		checker = checker.WithDedupe()
	}

	runner := worker.NewRunner(cfg.Input.WalletFile, walletfile.Read, checker, renderer)

	var runMetrics *metrics.RunMetrics
	if cfg.Metrics.Textfile != "" {
		runMetrics = metrics.NewRunMetrics()
		runner = runner.WithRecorder(runMetrics)
	}

	report, err := runner.Run(ctx)
	if err != nil {
		return worker.Report{}, fmt.Errorf("runner.Run: %w", err)
	}

	if runMetrics != nil {
		if err := runMetrics.WriteTextfile(cfg.Metrics.Textfile, time.Now()); err != nil {
			logger(ctx).Error("metrics textfile not written", slog.String("path", cfg.Metrics.Textfile), logx.Error(err))
		}
	}

	return report, nil
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
