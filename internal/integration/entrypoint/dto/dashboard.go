package dto

import (
	"github.com/budget-tracker/backend/internal/application/usecase/dashboard"
)

// SummaryResponse represents the dashboard summary.
type SummaryResponse struct {
	Month           string  `json:"month"`
	TotalIncome     float64 `json:"totalIncome"`
	TotalExpense    float64 `json:"totalExpense"`
	NetBalance      float64 `json:"netBalance"`
	TotalActiveDebt float64 `json:"totalActiveDebt"`
}

// BarPointResponse represents one bucket of the expense trend.
type BarPointResponse struct {
	Date   string  `json:"date"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// PieSliceResponse represents the expense total of one category.
type PieSliceResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ExpenseAnalysisResponse represents the expense analysis view.
type ExpenseAnalysisResponse struct {
	Period  string             `json:"period"`
	BarData []BarPointResponse `json:"barData"`
	PieData []PieSliceResponse `json:"pieData"`
}

// RecentTransactionResponse represents one entry of the activity feed.
type RecentTransactionResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
}

// ToSummaryResponse converts a Summary to its response form.
func ToSummaryResponse(s dashboard.Summary) SummaryResponse {
	return SummaryResponse{
		Month:           s.Month.String(),
		TotalIncome:     money(s.TotalIncome),
		TotalExpense:    money(s.TotalExpense),
		NetBalance:      money(s.NetBalance),
		TotalActiveDebt: money(s.TotalActiveDebt),
	}
}

// ToExpenseAnalysisResponse converts an ExpenseAnalysis to its response form.
func ToExpenseAnalysisResponse(a dashboard.ExpenseAnalysis) ExpenseAnalysisResponse {
	bars := make([]BarPointResponse, len(a.BarData))
	for i, b := range a.BarData {
		bars[i] = BarPointResponse{
			Date:   formatDate(b.Date),
			Label:  b.Label,
			Amount: money(b.Amount),
		}
	}

	slices := make([]PieSliceResponse, len(a.PieData))
	for i, p := range a.PieData {
		slices[i] = PieSliceResponse{
			Name:  p.Name,
			Value: money(p.Value),
		}
	}

	return ExpenseAnalysisResponse{
		Period:  string(a.Period),
		BarData: bars,
		PieData: slices,
	}
}

// ToRecentTransactionsResponse converts the activity feed to its response form.
func ToRecentTransactionsResponse(transactions []dashboard.RecentTransaction) []RecentTransactionResponse {
	response := make([]RecentTransactionResponse, len(transactions))
	for i, tx := range transactions {
		response[i] = RecentTransactionResponse{
			ID:          tx.ID.String(),
			Type:        string(tx.Kind),
			Amount:      money(tx.Amount),
			Description: tx.Description,
			Category:    tx.Category,
			Date:        formatDate(tx.Date),
		}
	}
	return response
}
