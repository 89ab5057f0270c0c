package logx

const (
	FieldAddress        = "address"
	FieldAppName        = "app-name"
	FieldAppVersion     = "app-version"
	FieldChain          = "chain"
	FieldDurationMs     = "duration-ms"
	FieldEligible       = "eligible"
	FieldError          = "error"
	FieldErrorCode      = "error-code"
	FieldHTTPRequest    = "http-request"
	FieldHTTPResponse   = "http-response"
	FieldPoints         = "points"
	FieldProgress       = "progress"
	FieldRequestBody    = "request-body"
	FieldRequestID      = "request-id"
	FieldResponseBody   = "response-body"
	FieldResponseStatus = "response-status"
	FieldRunID          = "run-id"
	FieldURL            = "url"
	FieldWalletFile     = "wallet-file"
)
