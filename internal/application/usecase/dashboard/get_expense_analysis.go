package dashboard

import (
	"context"
	"fmt"

	"github.com/budget-tracker/backend/internal/application/adapter"
)

// GetExpenseAnalysisInput represents the input for the expense analysis view.
type GetExpenseAnalysisInput struct {
	Period Period
	Window DateRange // Narrows the trend series only
}

// GetExpenseAnalysisOutput represents the output of the expense analysis view.
type GetExpenseAnalysisOutput struct {
	Analysis ExpenseAnalysis
}

// GetExpenseAnalysisUseCase builds the expense trend series and category breakdown.
type GetExpenseAnalysisUseCase struct {
	loader *RecordLoader
	cache  adapter.DashboardCache
}

// NewGetExpenseAnalysisUseCase creates a new GetExpenseAnalysisUseCase instance.
func NewGetExpenseAnalysisUseCase(loader *RecordLoader, cache adapter.DashboardCache) *GetExpenseAnalysisUseCase {
	return &GetExpenseAnalysisUseCase{
		loader: loader,
		cache:  cache,
	}
}

// Execute computes the expense analysis view.
func (uc *GetExpenseAnalysisUseCase) Execute(ctx context.Context, input GetExpenseAnalysisInput) (*GetExpenseAnalysisOutput, error) {
	period, err := ParsePeriod(string(input.Period))
	if err != nil {
		return nil, err
	}
	if err := input.Window.Validate(); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("analysis:%s:%s", period, input.Window.key())
	analysis, err := cached(ctx, uc.cache, key, func() (ExpenseAnalysis, error) {
		records, err := uc.loader.load(ctx, loadExpenses, loadCategories)
		if err != nil {
			return ExpenseAnalysis{}, err
		}
		return ComputeExpenseAnalysis(records.Expenses, records.Categories, period, input.Window), nil
	})
	if err != nil {
		return nil, err
	}

	return &GetExpenseAnalysisOutput{Analysis: analysis}, nil
}
