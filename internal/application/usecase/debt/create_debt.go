// Package debt contains debt ledger use cases.
package debt

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

// CreateDebtInput represents the input for debt creation.
type CreateDebtInput struct {
	Name        string
	TotalAmount decimal.Decimal
	DueDate     *string // Optional, YYYY-MM-DD or RFC 3339
}

// CreateDebtOutput represents the output of debt creation.
type CreateDebtOutput struct {
	Debt *entity.Debt
}

// CreateDebtUseCase handles debt creation logic.
type CreateDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewCreateDebtUseCase creates a new CreateDebtUseCase instance.
func NewCreateDebtUseCase(debtRepo adapter.DebtRepository) *CreateDebtUseCase {
	return &CreateDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the debt creation.
func (uc *CreateDebtUseCase) Execute(ctx context.Context, input CreateDebtInput) (*CreateDebtOutput, error) {
	fields, err := validateFields(input.Name, input.TotalAmount, input.DueDate)
	if err != nil {
		return nil, err
	}

	debt := entity.NewDebt(fields.name, input.TotalAmount, fields.dueDate)

	if err := uc.debtRepo.Create(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to create debt: %w", err)
	}

	slog.Info("Debt created", "debt_id", debt.ID, "total_amount", debt.TotalAmount.String())

	return &CreateDebtOutput{
		Debt: debt,
	}, nil
}

type validatedFields struct {
	name    string
	dueDate *time.Time
}

// validateFields checks the editable debt fields. A total of zero is rejected so that
// percent paid is always defined.
func validateFields(name string, totalAmount decimal.Decimal, rawDueDate *string) (*validatedFields, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeDebtNameRequired,
			"name is required",
			domainerror.ErrDebtNameRequired,
		)
	}

	if !totalAmount.IsPositive() {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeInvalidTotalAmount,
			"total amount must be greater than zero",
			domainerror.ErrNonPositiveAmount,
		)
	}
	if !entity.HasMoneyScale(totalAmount) {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeDebtAmountPrecision,
			"total amount must have at most 2 decimal places",
			domainerror.ErrAmountPrecision,
		)
	}

	var dueDate *time.Time
	if rawDueDate != nil && strings.TrimSpace(*rawDueDate) != "" {
		parsed, err := entity.ParseDate(*rawDueDate)
		if err != nil {
			return nil, domainerror.NewDebtError(
				domainerror.ErrCodeInvalidDueDate,
				"due date must be YYYY-MM-DD or RFC 3339",
				domainerror.ErrInvalidDate,
			)
		}
		dueDate = &parsed
	}

	return &validatedFields{name: trimmed, dueDate: dueDate}, nil
}
