package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents money spent on a given date.
type Expense struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Description string
	CategoryID  *uuid.UUID // Optional, may dangle after the category is deleted
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(amount decimal.Decimal, description string, categoryID *uuid.UUID, date time.Time) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		Amount:      amount,
		Description: description,
		CategoryID:  categoryID,
		Date:        NormalizeDate(date),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
