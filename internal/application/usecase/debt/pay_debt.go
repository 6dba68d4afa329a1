package debt

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// PayDebtInput represents the input for a debt payment.
type PayDebtInput struct {
	DebtID uuid.UUID
	Amount decimal.Decimal
}

// PayDebtOutput represents the output of a debt payment.
type PayDebtOutput struct {
	Debt *entity.Debt
}

// PayDebtUseCase applies a payment to a debt.
type PayDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewPayDebtUseCase creates a new PayDebtUseCase instance.
func NewPayDebtUseCase(debtRepo adapter.DebtRepository) *PayDebtUseCase {
	return &PayDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute applies the payment atomically. Rejected payments leave the debt unchanged.
func (uc *PayDebtUseCase) Execute(ctx context.Context, input PayDebtInput) (*PayDebtOutput, error) {
	debt, err := uc.debtRepo.UpdateWithLock(ctx, input.DebtID, func(d *entity.Debt) error {
		return d.ApplyPayment(input.Amount)
	})
	if err != nil {
		return nil, notFoundOr(err, "failed to apply payment")
	}

	slog.Info("Debt payment applied",
		"debt_id", debt.ID,
		"amount", input.Amount.String(),
		"paid_amount", debt.PaidAmount.String(),
		"status", string(debt.Status()),
	)

	return &PayDebtOutput{
		Debt: debt,
	}, nil
}
