package debt

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// UpdateDebtInput represents the input for debt update.
// Name, total and due date are replaced; the paid amount is never taken from input.
type UpdateDebtInput struct {
	DebtID      uuid.UUID
	Name        string
	TotalAmount decimal.Decimal
	DueDate     *string
}

// UpdateDebtOutput represents the output of debt update.
type UpdateDebtOutput struct {
	Debt *entity.Debt
}

// UpdateDebtUseCase handles debt update logic.
type UpdateDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewUpdateDebtUseCase creates a new UpdateDebtUseCase instance.
func NewUpdateDebtUseCase(debtRepo adapter.DebtRepository) *UpdateDebtUseCase {
	return &UpdateDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the debt update under the row lock shared with payments.
func (uc *UpdateDebtUseCase) Execute(ctx context.Context, input UpdateDebtInput) (*UpdateDebtOutput, error) {
	fields, err := validateFields(input.Name, input.TotalAmount, input.DueDate)
	if err != nil {
		return nil, err
	}

	debt, err := uc.debtRepo.UpdateWithLock(ctx, input.DebtID, func(d *entity.Debt) error {
		return d.Revise(fields.name, input.TotalAmount, fields.dueDate)
	})
	if err != nil {
		return nil, notFoundOr(err, "failed to update debt")
	}

	return &UpdateDebtOutput{
		Debt: debt,
	}, nil
}

// notFoundOr converts a missing-row error to a DebtError. Domain errors raised inside a
// locked mutation pass through unchanged.
func notFoundOr(err error, action string) error {
	if errors.Is(err, domainerror.ErrDebtNotFound) {
		return domainerror.NewDebtError(
			domainerror.ErrCodeDebtNotFound,
			"debt not found",
			domainerror.ErrDebtNotFound,
		)
	}
	var debtErr *domainerror.DebtError
	if errors.As(err, &debtErr) {
		return err
	}
	return fmt.Errorf("%s: %w", action, err)
}
