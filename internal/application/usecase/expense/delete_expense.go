package expense

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
)

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute deletes the expense with the given id.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.expenseRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "failed to delete expense")
	}

	slog.Info("Expense deleted", "expense_id", id)
	return nil
}
