// Package income contains income-related use cases.
package income

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// CreateIncomeInput represents the input for income creation.
type CreateIncomeInput struct {
	Amount decimal.Decimal
	Source string
	Type   entity.IncomeType
	Date   string // YYYY-MM-DD or RFC 3339
}

// CreateIncomeOutput represents the output of income creation.
type CreateIncomeOutput struct {
	Income *entity.Income
}

// CreateIncomeUseCase handles income creation logic.
type CreateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(incomeRepo adapter.IncomeRepository) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income creation.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
	fields, err := validateFields(input.Amount, input.Source, input.Type, input.Date)
	if err != nil {
		return nil, err
	}

	income := entity.NewIncome(input.Amount, fields.source, input.Type, fields.date)

	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	slog.Info("Income created", "income_id", income.ID, "amount", income.Amount.String())

	return &CreateIncomeOutput{
		Income: income,
	}, nil
}

type validatedFields struct {
	source string
	date   time.Time
}

// validateFields checks every editable field so that nothing is written on failure.
func validateFields(amount decimal.Decimal, source string, incomeType entity.IncomeType, rawDate string) (*validatedFields, error) {
	// Validate amount
	if amount.IsNegative() {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidIncomeAmount,
			"amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	if !entity.HasMoneyScale(amount) {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeIncomeAmountPrecision,
			"amount must have at most 2 decimal places",
			domainerror.ErrAmountPrecision,
		)
	}

	// Validate source
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeIncomeSourceRequired,
			"source is required",
			domainerror.ErrIncomeSourceRequired,
		)
	}

	// Validate type
	if !incomeType.IsValid() {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidIncomeType,
			fmt.Sprintf("type must be '%s' or '%s'", entity.IncomeTypeFixedMonthly, entity.IncomeTypeAdditional),
			domainerror.ErrInvalidIncomeType,
		)
	}

	// Validate date
	date, err := entity.ParseDate(rawDate)
	if err != nil {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidIncomeDate,
			"date must be YYYY-MM-DD or RFC 3339",
			domainerror.ErrInvalidDate,
		)
	}

	return &validatedFields{source: trimmed, date: date}, nil
}
