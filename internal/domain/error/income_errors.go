package error

import "errors"

// Income domain errors.
var (
	// ErrIncomeNotFound is returned when an income entry is not found.
	ErrIncomeNotFound = errors.New("income not found")

	// ErrIncomeSourceRequired is returned when the income source is blank.
	ErrIncomeSourceRequired = errors.New("income source is required")

	// ErrInvalidIncomeType is returned when the income type is not recognised.
	ErrInvalidIncomeType = errors.New("invalid income type")
)

// IncomeErrorCode defines error codes for income errors.
// Format: INC-XXYYYY where XX is category and YYYY is specific error.
type IncomeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingIncomeFields   IncomeErrorCode = "INC-010001"
	ErrCodeInvalidIncomeAmount   IncomeErrorCode = "INC-010002"
	ErrCodeIncomeAmountPrecision IncomeErrorCode = "INC-010003"
	ErrCodeIncomeSourceRequired  IncomeErrorCode = "INC-010004"
	ErrCodeInvalidIncomeType     IncomeErrorCode = "INC-010005"
	ErrCodeInvalidIncomeDate     IncomeErrorCode = "INC-010006"

	// Lookup errors (02XXXX)
	ErrCodeIncomeNotFound IncomeErrorCode = "INC-020001"
)

// IncomeError represents an income error with code and message.
type IncomeError struct {
	Code    IncomeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *IncomeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *IncomeError) Unwrap() error {
	return e.Err
}

// NewIncomeError creates a new IncomeError with the given code and message.
func NewIncomeError(code IncomeErrorCode, message string, err error) *IncomeError {
	return &IncomeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
