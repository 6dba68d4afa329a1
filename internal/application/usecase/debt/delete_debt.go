package debt

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
)

// DeleteDebtUseCase handles debt deletion logic.
type DeleteDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewDeleteDebtUseCase creates a new DeleteDebtUseCase instance.
func NewDeleteDebtUseCase(debtRepo adapter.DebtRepository) *DeleteDebtUseCase {
	return &DeleteDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute deletes the debt with the given id.
func (uc *DeleteDebtUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.debtRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "failed to delete debt")
	}

	slog.Info("Debt deleted", "debt_id", id)
	return nil
}
