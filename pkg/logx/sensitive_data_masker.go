package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

// Wallet addresses are not secrets, but dumps shared in bug reports should not
// link a person to their wallets.
//
//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	regexp.MustCompile(`([?&]address=)[^&\s]+()`),
	regexp.MustCompile(`(?s)("address":\s?").+?(")`),
	regexp.MustCompile(`(?s)(Authorization: Bearer ).+?(\r)`),
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}
