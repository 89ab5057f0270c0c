package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalError  failure.ErrorCode = "InternalError"
	InvalidConfig  failure.ErrorCode = "InvalidConfig"
	RunInterrupted failure.ErrorCode = "RunInterrupted"

	WalletFileMissing    failure.ErrorCode = "WalletFileMissing"
	WalletFileUnreadable failure.ErrorCode = "WalletFileUnreadable"

	EligibilityRequestFailed failure.ErrorCode = "EligibilityRequestFailed" // transport error, cancellation
	EligibilityBadStatus     failure.ErrorCode = "EligibilityBadStatus"     // non-2xx response
	EligibilityBadPayload    failure.ErrorCode = "EligibilityBadPayload"    // body is not JSON
)
