package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeType classifies an income entry.
type IncomeType string

const (
	IncomeTypeFixedMonthly IncomeType = "Fixed-Monthly"
	IncomeTypeAdditional   IncomeType = "Additional"
)

// IsValid reports whether t is a known income type.
func (t IncomeType) IsValid() bool {
	return t == IncomeTypeFixedMonthly || t == IncomeTypeAdditional
}

// Income represents money received on a given date.
type Income struct {
	ID        uuid.UUID
	Amount    decimal.Decimal
	Source    string
	Type      IncomeType
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewIncome creates a new Income entity.
func NewIncome(amount decimal.Decimal, source string, incomeType IncomeType, date time.Time) *Income {
	now := time.Now().UTC()

	return &Income{
		ID:        uuid.New(),
		Amount:    amount,
		Source:    source,
		Type:      incomeType,
		Date:      NormalizeDate(date),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
