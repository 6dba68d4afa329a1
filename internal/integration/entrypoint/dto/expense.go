package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/usecase/expense"
)

// ExpenseRequest represents the request body for expense creation and update.
type ExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Description string           `json:"description" binding:"required"`
	CategoryID  *string          `json:"categoryId"`
	Date        string           `json:"date" binding:"required"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID           string    `json:"id"`
	Amount       float64   `json:"amount"`
	Description  string    `json:"description"`
	CategoryID   *string   `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	Date         string    `json:"date"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToExpenseResponse converts an expense view to an ExpenseResponse DTO.
func ToExpenseResponse(view expense.ExpenseView) ExpenseResponse {
	var categoryID *string
	if view.Expense.CategoryID != nil {
		id := view.Expense.CategoryID.String()
		categoryID = &id
	}

	return ExpenseResponse{
		ID:           view.Expense.ID.String(),
		Amount:       money(view.Expense.Amount),
		Description:  view.Expense.Description,
		CategoryID:   categoryID,
		CategoryName: view.CategoryName,
		Date:         formatDate(view.Expense.Date),
		CreatedAt:    view.Expense.CreatedAt,
	}
}

// ToExpenseListResponse converts expense views to their response form.
func ToExpenseListResponse(views []expense.ExpenseView) []ExpenseResponse {
	response := make([]ExpenseResponse, len(views))
	for i, view := range views {
		response[i] = ToExpenseResponse(view)
	}
	return response
}
