package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// DebtStatus is derived from the paid and total amounts of a debt.
type DebtStatus string

const (
	DebtStatusActive DebtStatus = "Active"
	DebtStatusPaid   DebtStatus = "Paid"
)

var hundred = decimal.NewFromInt(100)

// Debt represents an amount owed that is settled through incremental payments.
// Status is never stored on the entity; it is computed from PaidAmount and TotalAmount.
type Debt struct {
	ID          uuid.UUID
	Name        string
	TotalAmount decimal.Decimal
	PaidAmount  decimal.Decimal
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewDebt creates a new Debt entity with nothing paid.
func NewDebt(name string, totalAmount decimal.Decimal, dueDate *time.Time) *Debt {
	now := time.Now().UTC()

	return &Debt{
		ID:          uuid.New(),
		Name:        name,
		TotalAmount: totalAmount,
		PaidAmount:  decimal.Zero,
		DueDate:     normalizeOptionalDate(dueDate),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Status returns Paid once the paid amount reaches the total, Active otherwise.
func (d *Debt) Status() DebtStatus {
	if d.PaidAmount.GreaterThanOrEqual(d.TotalAmount) {
		return DebtStatusPaid
	}
	return DebtStatusActive
}

// IsPaid reports whether the debt is settled.
func (d *Debt) IsPaid() bool {
	return d.Status() == DebtStatusPaid
}

// Remaining returns the outstanding balance.
func (d *Debt) Remaining() decimal.Decimal {
	remaining := d.TotalAmount.Sub(d.PaidAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// PercentPaid returns the paid share of the total as a percentage rounded to two places.
func (d *Debt) PercentPaid() decimal.Decimal {
	if !d.TotalAmount.IsPositive() {
		return decimal.Zero
	}
	return d.PaidAmount.Div(d.TotalAmount).Mul(hundred).Round(MoneyScale)
}

// ApplyPayment adds amount to the paid balance.
// Payments that would push the paid amount past the total are rejected and leave the debt untouched.
func (d *Debt) ApplyPayment(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewDebtError(
			domainerror.ErrCodeInvalidPaymentAmount,
			"payment amount must be greater than zero",
			domainerror.ErrNonPositiveAmount,
		)
	}
	if !HasMoneyScale(amount) {
		return domainerror.NewDebtError(
			domainerror.ErrCodeDebtAmountPrecision,
			"payment amount must have at most 2 decimal places",
			domainerror.ErrAmountPrecision,
		)
	}
	if d.IsPaid() {
		return domainerror.NewDebtError(
			domainerror.ErrCodeDebtAlreadyPaid,
			"debt is already paid",
			domainerror.ErrDebtAlreadyPaid,
		)
	}

	newPaid := d.PaidAmount.Add(amount)
	if newPaid.GreaterThan(d.TotalAmount) {
		return domainerror.NewDebtError(
			domainerror.ErrCodeOverpayment,
			fmt.Sprintf("payment of %s exceeds remaining balance of %s",
				amount.StringFixed(MoneyScale), d.Remaining().StringFixed(MoneyScale)),
			domainerror.ErrOverpayment,
		)
	}

	d.PaidAmount = newPaid
	d.UpdatedAt = time.Now().UTC()
	return nil
}

// Revise replaces the editable fields of the debt. The paid amount is kept.
func (d *Debt) Revise(name string, totalAmount decimal.Decimal, dueDate *time.Time) error {
	if totalAmount.LessThan(d.PaidAmount) {
		return domainerror.NewDebtError(
			domainerror.ErrCodeTotalBelowPaid,
			fmt.Sprintf("total amount cannot be lower than the paid amount of %s", d.PaidAmount.StringFixed(MoneyScale)),
			domainerror.ErrTotalBelowPaid,
		)
	}

	d.Name = name
	d.TotalAmount = totalAmount
	d.DueDate = normalizeOptionalDate(dueDate)
	d.UpdatedAt = time.Now().UTC()
	return nil
}

// TotalActiveDebt sums the remaining balance of every active debt.
func TotalActiveDebt(debts []*Debt) decimal.Decimal {
	total := decimal.Zero
	for _, d := range debts {
		if d.Status() == DebtStatusActive {
			total = total.Add(d.Remaining())
		}
	}
	return total
}

func normalizeOptionalDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	normalized := NormalizeDate(*t)
	return &normalized
}
