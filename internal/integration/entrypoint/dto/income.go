package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// IncomeRequest represents the request body for income creation and update.
type IncomeRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
	Source string           `json:"source" binding:"required"`
	Type   string           `json:"type" binding:"required"`
	Date   string           `json:"date" binding:"required"`
}

// IncomeResponse represents a single income in API responses.
type IncomeResponse struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Source    string    `json:"source"`
	Type      string    `json:"type"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToIncomeResponse converts a domain Income entity to an IncomeResponse DTO.
func ToIncomeResponse(income *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:        income.ID.String(),
		Amount:    money(income.Amount),
		Source:    income.Source,
		Type:      string(income.Type),
		Date:      formatDate(income.Date),
		CreatedAt: income.CreatedAt,
	}
}

// ToIncomeListResponse converts incomes to their response form.
func ToIncomeListResponse(incomes []*entity.Income) []IncomeResponse {
	response := make([]IncomeResponse, len(incomes))
	for i, income := range incomes {
		response[i] = ToIncomeResponse(income)
	}
	return response
}
