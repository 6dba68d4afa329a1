package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidPeriod is returned when the analysis period is not valid.
	ErrInvalidPeriod = errors.New("period must be: daily, weekly, or monthly")

	// ErrInvalidMonth is returned when a month filter is malformed.
	ErrInvalidMonth = errors.New("invalid month format, expected YYYY-MM")

	// ErrInvalidDateFormat is returned when date format is invalid.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidDateRange is returned when end_date is before start_date.
	ErrInvalidDateRange = errors.New("end_date must not be before start_date")

	// ErrInvalidLimit is returned when a result limit is out of range.
	ErrInvalidLimit = errors.New("invalid limit")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriod     DashboardErrorCode = "DSH-010001"
	ErrCodeInvalidMonth      DashboardErrorCode = "DSH-010002"
	ErrCodeInvalidDateFormat DashboardErrorCode = "DSH-010003"
	ErrCodeInvalidDateRange  DashboardErrorCode = "DSH-010004"
	ErrCodeInvalidLimit      DashboardErrorCode = "DSH-010005"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
