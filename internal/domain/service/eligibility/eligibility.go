package eligibility

import (
	"context"
	"log/slog"

	"github.com/patrickmn/go-cache"

	"wallet_checker/internal/domain"
	"wallet_checker/internal/domain/entity"
	"wallet_checker/pkg/contextx"
	"wallet_checker/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Client interface {
	CheckEligibility(ctx context.Context, address string) (entity.Eligibility, error)
}

// Checker turns one address into one EligibilityResult. Failures of the
// remote call are recorded in the result and never returned.
type Checker struct {
	client Client
	seen   *cache.Cache
}

func NewChecker(client Client) *Checker {
	return &Checker{
		client: client,
	}
}

// WithDedupe makes repeated addresses reuse the first result instead of
// issuing another request. Failed results are not reused.
func (c *Checker) WithDedupe() *Checker {
	c.seen = cache.New(cache.NoExpiration, 0)
	return c
}

func (c *Checker) Check(ctx context.Context, address string) entity.EligibilityResult {
	if c.seen != nil {
		if cached, found := c.seen.Get(address); found {
			logger(ctx).Debug("duplicate address, reusing result", slog.String(logx.FieldAddress, address))
			return cached.(entity.EligibilityResult) //nolint:forcetypeassert
		}
	}

	eligibility, err := c.client.CheckEligibility(ctx, address)
	if err != nil {
		code, _ := domain.GetCode(err)

		logger(ctx).Info(
			"eligibility check failed",
			slog.String(logx.FieldAddress, address),
			slog.String(logx.FieldErrorCode, code.String()),
			logx.Error(err),
		)

		return entity.FailedResult(address, err)
	}

	result := entity.EligibilityResult{
		Address:  address,
		Eligible: eligibility.IsEligible,
		Points:   eligibility.Points,
	}

	if c.seen != nil {
		c.seen.Set(address, result, cache.NoExpiration)
	}

	logger(ctx).Info(
		"eligibility checked",
		slog.String(logx.FieldAddress, address),
		slog.Bool(logx.FieldEligible, result.Eligible),
		slog.Int64(logx.FieldPoints, result.Points),
	)

	return result
}
