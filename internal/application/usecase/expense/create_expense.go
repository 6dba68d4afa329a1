// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// ExpenseView pairs an expense with its resolved category name.
type ExpenseView struct {
	Expense      *entity.Expense
	CategoryName string
}

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	Amount      decimal.Decimal
	Description string
	CategoryID  *uuid.UUID // Optional
	Date        string     // YYYY-MM-DD or RFC 3339
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense ExpenseView
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, categoryRepo adapter.CategoryRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	fields, err := validateFields(input.Amount, input.Description, input.Date)
	if err != nil {
		return nil, err
	}

	categoryName, err := resolveCategory(ctx, uc.categoryRepo, input.CategoryID)
	if err != nil {
		return nil, err
	}

	expense := entity.NewExpense(input.Amount, fields.description, input.CategoryID, fields.date)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	slog.Info("Expense created", "expense_id", expense.ID, "amount", expense.Amount.String())

	return &CreateExpenseOutput{
		Expense: ExpenseView{Expense: expense, CategoryName: categoryName},
	}, nil
}

type validatedFields struct {
	description string
	date        time.Time
}

// validateFields checks every editable field so that nothing is written on failure.
func validateFields(amount decimal.Decimal, description, rawDate string) (*validatedFields, error) {
	// Validate amount
	if amount.IsNegative() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	if !entity.HasMoneyScale(amount) {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseAmountPrecision,
			"amount must have at most 2 decimal places",
			domainerror.ErrAmountPrecision,
		)
	}

	// Validate description
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDescriptionRequired,
			"description is required",
			domainerror.ErrExpenseDescriptionRequired,
		)
	}

	// Validate date
	date, err := entity.ParseDate(rawDate)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			"date must be YYYY-MM-DD or RFC 3339",
			domainerror.ErrInvalidDate,
		)
	}

	return &validatedFields{description: trimmed, date: date}, nil
}

// resolveCategory checks that a referenced category exists and returns its name.
// A nil reference is allowed and resolves to the fallback name.
func resolveCategory(ctx context.Context, categoryRepo adapter.CategoryRepository, id *uuid.UUID) (string, error) {
	if id == nil {
		return entity.UnknownCategoryName, nil
	}

	category, err := categoryRepo.FindByID(ctx, *id)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return "", domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return "", fmt.Errorf("failed to find category: %w", err)
	}
	return category.Name, nil
}
