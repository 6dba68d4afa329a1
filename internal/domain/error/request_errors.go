package error

// RequestErrorCode defines error codes raised before a request reaches a use case.
type RequestErrorCode string

const (
	ErrCodeInvalidID   RequestErrorCode = "REQ-010001"
	ErrCodeRateLimited RequestErrorCode = "REQ-020001"
	ErrCodeInternal    RequestErrorCode = "REQ-990001"
)
