package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// DebtRequest represents the request body for debt creation and update.
// A status or paidAmount field in the body is ignored.
type DebtRequest struct {
	Name        string           `json:"name" binding:"required"`
	TotalAmount *decimal.Decimal `json:"totalAmount" binding:"required"`
	DueDate     *string          `json:"dueDate"`
}

// PayDebtRequest represents the request body for a debt payment.
type PayDebtRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

// DebtResponse represents a single debt in API responses.
type DebtResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	TotalAmount     float64   `json:"totalAmount"`
	PaidAmount      float64   `json:"paidAmount"`
	RemainingAmount float64   `json:"remainingAmount"`
	PercentPaid     float64   `json:"percentPaid"`
	DueDate         *string   `json:"dueDate"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToDebtResponse converts a domain Debt entity to a DebtResponse DTO.
func ToDebtResponse(debt *entity.Debt) DebtResponse {
	var dueDate *string
	if debt.DueDate != nil {
		d := formatDate(*debt.DueDate)
		dueDate = &d
	}

	return DebtResponse{
		ID:              debt.ID.String(),
		Name:            debt.Name,
		TotalAmount:     money(debt.TotalAmount),
		PaidAmount:      money(debt.PaidAmount),
		RemainingAmount: money(debt.Remaining()),
		PercentPaid:     money(debt.PercentPaid()),
		DueDate:         dueDate,
		Status:          string(debt.Status()),
		CreatedAt:       debt.CreatedAt,
	}
}

// ToDebtListResponse converts debts to their response form.
func ToDebtListResponse(debts []*entity.Debt) []DebtResponse {
	response := make([]DebtResponse, len(debts))
	for i, debt := range debts {
		response[i] = ToDebtResponse(debt)
	}
	return response
}
