package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrExpenseDescriptionRequired is returned when the expense description is blank.
	ErrExpenseDescriptionRequired = errors.New("expense description is required")

	// ErrInvalidCategoryID is returned when a category reference is not a valid id.
	ErrInvalidCategoryID = errors.New("invalid category id")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingExpenseFields       ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseAmount       ExpenseErrorCode = "EXP-010002"
	ErrCodeExpenseAmountPrecision     ExpenseErrorCode = "EXP-010003"
	ErrCodeExpenseDescriptionRequired ExpenseErrorCode = "EXP-010004"
	ErrCodeInvalidExpenseDate         ExpenseErrorCode = "EXP-010005"
	ErrCodeInvalidExpenseCategoryID   ExpenseErrorCode = "EXP-010006"

	// Lookup errors (02XXXX)
	ErrCodeExpenseNotFound ExpenseErrorCode = "EXP-020001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
