package income

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// UpdateIncomeInput represents the input for income update. Every field is replaced.
type UpdateIncomeInput struct {
	IncomeID uuid.UUID
	Amount   decimal.Decimal
	Source   string
	Type     entity.IncomeType
	Date     string
}

// UpdateIncomeOutput represents the output of income update.
type UpdateIncomeOutput struct {
	Income *entity.Income
}

// UpdateIncomeUseCase handles income update logic.
type UpdateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(incomeRepo adapter.IncomeRepository) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income update.
func (uc *UpdateIncomeUseCase) Execute(ctx context.Context, input UpdateIncomeInput) (*UpdateIncomeOutput, error) {
	fields, err := validateFields(input.Amount, input.Source, input.Type, input.Date)
	if err != nil {
		return nil, err
	}

	income, err := uc.incomeRepo.FindByID(ctx, input.IncomeID)
	if err != nil {
		return nil, notFoundOr(err, "failed to find income")
	}

	income.Amount = input.Amount
	income.Source = fields.source
	income.Type = input.Type
	income.Date = fields.date
	income.UpdatedAt = time.Now().UTC()

	if err := uc.incomeRepo.Update(ctx, income); err != nil {
		return nil, notFoundOr(err, "failed to update income")
	}

	return &UpdateIncomeOutput{
		Income: income,
	}, nil
}

func notFoundOr(err error, action string) error {
	if errors.Is(err, domainerror.ErrIncomeNotFound) {
		return domainerror.NewIncomeError(
			domainerror.ErrCodeIncomeNotFound,
			"income not found",
			domainerror.ErrIncomeNotFound,
		)
	}
	return fmt.Errorf("%s: %w", action, err)
}
