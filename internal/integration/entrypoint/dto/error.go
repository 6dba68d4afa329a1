// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// money converts an amount to its wire form, rounded to cents.
func money(d decimal.Decimal) float64 {
	return entity.RoundMoney(d).InexactFloat64()
}

func formatDate(t time.Time) string {
	return t.Format(entity.DateLayout)
}
