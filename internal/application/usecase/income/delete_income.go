package income

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
)

// DeleteIncomeUseCase handles income deletion logic.
type DeleteIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(incomeRepo adapter.IncomeRepository) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute deletes the income entry with the given id.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.incomeRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "failed to delete income")
	}

	slog.Info("Income deleted", "income_id", id)
	return nil
}
