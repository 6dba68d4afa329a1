package expense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for expense update. Every field is replaced.
type UpdateExpenseInput struct {
	ExpenseID   uuid.UUID
	Amount      decimal.Decimal
	Description string
	CategoryID  *uuid.UUID
	Date        string
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense ExpenseView
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository, categoryRepo adapter.CategoryRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	fields, err := validateFields(input.Amount, input.Description, input.Date)
	if err != nil {
		return nil, err
	}

	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return nil, notFoundOr(err, "failed to find expense")
	}

	categoryName, err := resolveCategory(ctx, uc.categoryRepo, input.CategoryID)
	if err != nil {
		return nil, err
	}

	expense.Amount = input.Amount
	expense.Description = fields.description
	expense.CategoryID = input.CategoryID
	expense.Date = fields.date
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, notFoundOr(err, "failed to update expense")
	}

	return &UpdateExpenseOutput{
		Expense: ExpenseView{Expense: expense, CategoryName: categoryName},
	}, nil
}

func notFoundOr(err error, action string) error {
	if errors.Is(err, domainerror.ErrExpenseNotFound) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}
	return fmt.Errorf("%s: %w", action, err)
}
