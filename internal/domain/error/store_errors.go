package error

import "errors"

// Store errors. Both are transient: the caller may retry the same request.
var (
	// ErrStoreTimeout is returned when a store call exceeds its deadline.
	ErrStoreTimeout = errors.New("record store timed out")

	// ErrStoreUnavailable is returned when the store connection fails.
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// StoreErrorCode defines error codes for record store failures.
type StoreErrorCode string

const (
	// Transient errors (05XXXX)
	ErrCodeStoreTimeout     StoreErrorCode = "STR-050001"
	ErrCodeStoreUnavailable StoreErrorCode = "STR-050002"
)

// StoreError represents a transient record store failure.
type StoreError struct {
	Code    StoreErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given code and message.
func NewStoreError(code StoreErrorCode, message string, err error) *StoreError {
	return &StoreError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsTransient reports whether err is a store failure worth retrying.
func IsTransient(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}
