package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// ListExpensesUseCase lists expenses with their category names resolved.
type ListExpensesUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository, categoryRepo adapter.CategoryRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute lists every expense, newest first.
func (uc *ListExpensesUseCase) Execute(ctx context.Context) ([]ExpenseView, error) {
	expenses, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	index := entity.NewCategoryIndex(categories)

	views := make([]ExpenseView, len(expenses))
	for i, e := range expenses {
		views[i] = ExpenseView{Expense: e, CategoryName: index.NameOf(e.CategoryID)}
	}
	return views, nil
}

// GetExpenseUseCase retrieves a single expense.
type GetExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
}

// NewGetExpenseUseCase creates a new GetExpenseUseCase instance.
func NewGetExpenseUseCase(expenseRepo adapter.ExpenseRepository, categoryRepo adapter.CategoryRepository) *GetExpenseUseCase {
	return &GetExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute retrieves the expense with the given id. A dangling category resolves to the fallback name.
func (uc *GetExpenseUseCase) Execute(ctx context.Context, id uuid.UUID) (*ExpenseView, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "failed to find expense")
	}

	name := entity.UnknownCategoryName
	if expense.CategoryID != nil {
		category, err := uc.categoryRepo.FindByID(ctx, *expense.CategoryID)
		switch {
		case err == nil:
			name = category.Name
		case !errors.Is(err, domainerror.ErrCategoryNotFound):
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
	}

	return &ExpenseView{Expense: expense, CategoryName: name}, nil
}
