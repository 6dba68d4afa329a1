package debt

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// ListDebtsUseCase handles listing debts.
type ListDebtsUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewListDebtsUseCase creates a new ListDebtsUseCase instance.
func NewListDebtsUseCase(debtRepo adapter.DebtRepository) *ListDebtsUseCase {
	return &ListDebtsUseCase{
		debtRepo: debtRepo,
	}
}

// Execute lists every debt.
func (uc *ListDebtsUseCase) Execute(ctx context.Context) ([]*entity.Debt, error) {
	debts, err := uc.debtRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	return debts, nil
}

// GetDebtUseCase retrieves a single debt.
type GetDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewGetDebtUseCase creates a new GetDebtUseCase instance.
func NewGetDebtUseCase(debtRepo adapter.DebtRepository) *GetDebtUseCase {
	return &GetDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute retrieves the debt with the given id.
func (uc *GetDebtUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Debt, error) {
	debt, err := uc.debtRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "failed to find debt")
	}
	return debt, nil
}
