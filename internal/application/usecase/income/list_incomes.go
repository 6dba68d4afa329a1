package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// ListIncomesUseCase handles listing income entries.
type ListIncomesUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewListIncomesUseCase creates a new ListIncomesUseCase instance.
func NewListIncomesUseCase(incomeRepo adapter.IncomeRepository) *ListIncomesUseCase {
	return &ListIncomesUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute lists every income entry, newest first.
func (uc *ListIncomesUseCase) Execute(ctx context.Context) ([]*entity.Income, error) {
	incomes, err := uc.incomeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}
	return incomes, nil
}

// GetIncomeUseCase retrieves a single income entry.
type GetIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewGetIncomeUseCase creates a new GetIncomeUseCase instance.
func NewGetIncomeUseCase(incomeRepo adapter.IncomeRepository) *GetIncomeUseCase {
	return &GetIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute retrieves the income entry with the given id.
func (uc *GetIncomeUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Income, error) {
	income, err := uc.incomeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "failed to find income")
	}
	return income, nil
}
