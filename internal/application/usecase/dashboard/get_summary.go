package dashboard

import (
	"context"

	"github.com/budget-tracker/backend/internal/application/adapter"
)

// GetSummaryInput represents the input for the summary view.
type GetSummaryInput struct {
	Month *Month // Optional, defaults to the current UTC month
}

// GetSummaryOutput represents the output of the summary view.
type GetSummaryOutput struct {
	Summary Summary
}

// GetSummaryUseCase computes month totals and the outstanding active debt.
type GetSummaryUseCase struct {
	loader *RecordLoader
	cache  adapter.DashboardCache
	now    Clock
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(loader *RecordLoader, cache adapter.DashboardCache, now Clock) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		loader: loader,
		cache:  cache,
		now:    now,
	}
}

// Execute computes the summary view.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	month := MonthOf(uc.now())
	if input.Month != nil {
		month = *input.Month
	}

	summary, err := cached(ctx, uc.cache, "summary:"+month.String(), func() (Summary, error) {
		records, err := uc.loader.load(ctx, loadIncomes, loadExpenses, loadDebts)
		if err != nil {
			return Summary{}, err
		}
		return ComputeSummary(records.Incomes, records.Expenses, records.Debts, month), nil
	})
	if err != nil {
		return nil, err
	}

	return &GetSummaryOutput{Summary: summary}, nil
}
