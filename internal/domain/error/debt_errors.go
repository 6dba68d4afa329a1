package error

import "errors"

// Debt domain errors.
var (
	// ErrDebtNotFound is returned when a debt is not found.
	ErrDebtNotFound = errors.New("debt not found")

	// ErrDebtNameRequired is returned when the debt name is blank.
	ErrDebtNameRequired = errors.New("debt name is required")

	// ErrTotalBelowPaid is returned when an edit would lower the total under what was already paid.
	ErrTotalBelowPaid = errors.New("total amount cannot be lower than the paid amount")

	// ErrDebtAlreadyPaid is returned when a payment targets a debt that is already settled.
	ErrDebtAlreadyPaid = errors.New("debt is already paid")

	// ErrOverpayment is returned when a payment exceeds the remaining balance.
	ErrOverpayment = errors.New("payment exceeds remaining balance")
)

// DebtErrorCode defines error codes for debt errors.
// Format: DBT-XXYYYY where XX is category and YYYY is specific error.
type DebtErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingDebtFields    DebtErrorCode = "DBT-010001"
	ErrCodeDebtNameRequired     DebtErrorCode = "DBT-010002"
	ErrCodeInvalidTotalAmount   DebtErrorCode = "DBT-010003"
	ErrCodeDebtAmountPrecision  DebtErrorCode = "DBT-010004"
	ErrCodeInvalidDueDate       DebtErrorCode = "DBT-010005"
	ErrCodeInvalidPaymentAmount DebtErrorCode = "DBT-010006"
	ErrCodeTotalBelowPaid       DebtErrorCode = "DBT-010007"

	// Lookup errors (02XXXX)
	ErrCodeDebtNotFound DebtErrorCode = "DBT-020001"

	// State errors (03XXXX)
	ErrCodeDebtAlreadyPaid DebtErrorCode = "DBT-030001"
	ErrCodeOverpayment     DebtErrorCode = "DBT-030002"
)

// DebtError represents a debt error with code and message.
type DebtError struct {
	Code    DebtErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DebtError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DebtError) Unwrap() error {
	return e.Err
}

// NewDebtError creates a new DebtError with the given code and message.
func NewDebtError(code DebtErrorCode, message string, err error) *DebtError {
	return &DebtError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
