package dashboard

import (
	"context"
	"fmt"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// MaxRecentLimit caps the number of entries a caller may request.
const MaxRecentLimit = 100

// GetRecentTransactionsInput represents the input for the recent transactions view.
type GetRecentTransactionsInput struct {
	Limit int // Zero selects the configured default
}

// GetRecentTransactionsOutput represents the output of the recent transactions view.
type GetRecentTransactionsOutput struct {
	Transactions []RecentTransaction
}

// GetRecentTransactionsUseCase builds the merged activity feed.
type GetRecentTransactionsUseCase struct {
	loader       *RecordLoader
	cache        adapter.DashboardCache
	defaultLimit int
}

// NewGetRecentTransactionsUseCase creates a new GetRecentTransactionsUseCase instance.
func NewGetRecentTransactionsUseCase(loader *RecordLoader, cache adapter.DashboardCache, defaultLimit int) *GetRecentTransactionsUseCase {
	return &GetRecentTransactionsUseCase{
		loader:       loader,
		cache:        cache,
		defaultLimit: defaultLimit,
	}
}

// Execute computes the recent transactions view.
func (uc *GetRecentTransactionsUseCase) Execute(ctx context.Context, input GetRecentTransactionsInput) (*GetRecentTransactionsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = uc.defaultLimit
	}
	if limit < 1 || limit > MaxRecentLimit {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidLimit,
			fmt.Sprintf("limit must be between 1 and %d", MaxRecentLimit),
			domainerror.ErrInvalidLimit,
		)
	}

	key := fmt.Sprintf("recent:%d", limit)
	transactions, err := cached(ctx, uc.cache, key, func() ([]RecentTransaction, error) {
		records, err := uc.loader.load(ctx, loadIncomes, loadExpenses, loadCategories)
		if err != nil {
			return nil, err
		}
		index := entity.NewCategoryIndex(records.Categories)
		return RecentTransactions(records.Incomes, records.Expenses, index, limit), nil
	})
	if err != nil {
		return nil, err
	}

	return &GetRecentTransactionsOutput{Transactions: transactions}, nil
}
