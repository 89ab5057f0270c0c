package worker

import (
	"context"
	"log/slog"

	"wallet_checker/internal/domain/entity"
	"wallet_checker/pkg/contextx"
	"wallet_checker/pkg/errcodes"
	"wallet_checker/pkg/logx"
	"wallet_checker/pkg/metrics"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Checker interface {
	Check(ctx context.Context, address string) entity.EligibilityResult
}

type Renderer interface {
	Banner()
	Reading(path string)
	Progress(done, total int)
	Completed()
	Results(results []entity.EligibilityResult, summary entity.Summary)
	Interrupted(checked, total int)
	Failure(err error)
}

type Recorder interface {
	ObserveCheck(outcome metrics.Outcome, points int64)
}

// AddressLoader returns the addresses to check in the order they must be
// checked.
type AddressLoader func(path string) ([]string, error)

type Report struct {
	Results     []entity.EligibilityResult
	Summary     entity.Summary
	Interrupted bool
}

// Runner checks every address of the wallet file one after another and
// renders the outcome. Exactly one result is kept per address.
type Runner struct {
	walletPath string
	load       AddressLoader
	checker    Checker
	renderer   Renderer
	recorder   Recorder
}

func NewRunner(
	walletPath string,
	load AddressLoader,
	checker Checker,
	renderer Renderer,
) *Runner {
	return &Runner{
		walletPath: walletPath,
		load:       load,
		checker:    checker,
		renderer:   renderer,
		recorder:   nopRecorder{},
	}
}

func (r *Runner) WithRecorder(recorder Recorder) *Runner {
	if recorder != nil {
		r.recorder = recorder
	}
	return r
}

// Run returns an error only when the run could not start; the error has
// already been rendered by then. An interrupted run still renders the
// results collected so far.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	r.renderer.Banner()
	r.renderer.Reading(r.walletPath)

	addresses, err := r.load(r.walletPath)
	if err != nil {
		logger(ctx).Info("wallet file load failed", slog.String(logx.FieldWalletFile, r.walletPath), logx.Error(err))
		r.renderer.Failure(err)

		return Report{}, err
	}

	logger(ctx).Info("wallet file loaded", slog.String(logx.FieldWalletFile, r.walletPath), slog.Int("addresses", len(addresses)))

	results := make([]entity.EligibilityResult, 0, len(addresses))

	for i, address := range addresses {
		if ctx.Err() != nil {
			break
		}

		r.renderer.Progress(i+1, len(addresses))

		result := r.checker.Check(ctx, address)
		results = append(results, result)

		r.recorder.ObserveCheck(outcomeOf(result), result.Points)
	}

	// A signal that lands during the last check still marks the run.
	interrupted := ctx.Err() != nil

	summary := entity.Summarize(results)

	r.renderer.Completed()
	r.renderer.Results(results, summary)

	if interrupted {
		logger(ctx).Info(
			"run interrupted",
			slog.String(logx.FieldErrorCode, errcodes.RunInterrupted.String()),
			slog.Int("checked", len(results)),
			slog.Int("total", len(addresses)),
		)
		r.renderer.Interrupted(len(results), len(addresses))
	}

	logger(ctx).Info(
		"run completed",
		slog.Int("total", summary.Total),
		slog.Int("eligible", summary.Eligible),
		slog.Int("failed", summary.Failed),
		slog.Int64("total-points", summary.TotalPoints),
	)

	return Report{
		Results:     results,
		Summary:     summary,
		Interrupted: interrupted,
	}, nil
}

func outcomeOf(result entity.EligibilityResult) metrics.Outcome {
	switch {
	case result.Failed():
		return metrics.OutcomeFailed
	case result.Eligible:
		return metrics.OutcomeEligible
	default:
		return metrics.OutcomeIneligible
	}
}

type nopRecorder struct{}

func (nopRecorder) ObserveCheck(metrics.Outcome, int64) {}
