package httpx

import "wallet_checker/pkg/logx"

type Option func(*LoggingRoundTripper)

// WithLogFieldMaxLen caps the size of each dumped request and response.
// Zero disables the cap.
func WithLogFieldMaxLen(logFieldMaxLen int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = logFieldMaxLen
	}
}

func WithSensitiveDataMasker(sensitiveDataMasker sensitiveDataMasker) Option {
	return func(rt *LoggingRoundTripper) {
		rt.sensitiveDataMasker = sensitiveDataMasker
	}
}

// WithAddressMasking switches between the wallet address masker and the
// no-op one.
func WithAddressMasking(enabled bool) Option {
	if !enabled {
		return WithSensitiveDataMasker(logx.NewNopSensitiveDataMasker())
	}

	return WithSensitiveDataMasker(logx.NewSensitiveDataMasker())
}
