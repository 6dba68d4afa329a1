package error

import "errors"

// Amount validation errors shared by every money-carrying entity.
var (
	// ErrNegativeAmount is returned when an amount is below zero.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrNonPositiveAmount is returned when an amount must be strictly positive.
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")

	// ErrAmountPrecision is returned when an amount has more than two fractional digits.
	ErrAmountPrecision = errors.New("amount must have at most 2 decimal places")

	// ErrInvalidDate is returned when a date is missing or malformed.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD or RFC 3339")
)
