package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// Clock returns the current time. Tests replace it to pin the current month.
type Clock func() time.Time

type recordKind int

const (
	loadCategories recordKind = iota
	loadIncomes
	loadExpenses
	loadDebts
)

// Records is a best-effort snapshot of the record store.
// Collections are read independently, so a write landing mid-load may be seen by one and not another.
type Records struct {
	Categories []*entity.Category
	Incomes    []*entity.Income
	Expenses   []*entity.Expense
	Debts      []*entity.Debt
}

// RecordLoader reads the collections a dashboard view needs concurrently.
type RecordLoader struct {
	categoryRepo adapter.CategoryRepository
	incomeRepo   adapter.IncomeRepository
	expenseRepo  adapter.ExpenseRepository
	debtRepo     adapter.DebtRepository
}

// NewRecordLoader creates a new RecordLoader instance.
func NewRecordLoader(
	categoryRepo adapter.CategoryRepository,
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	debtRepo adapter.DebtRepository,
) *RecordLoader {
	return &RecordLoader{
		categoryRepo: categoryRepo,
		incomeRepo:   incomeRepo,
		expenseRepo:  expenseRepo,
		debtRepo:     debtRepo,
	}
}

func (l *RecordLoader) load(ctx context.Context, kinds ...recordKind) (*Records, error) {
	records := &Records{}
	g, gctx := errgroup.WithContext(ctx)

	for _, kind := range kinds {
		switch kind {
		case loadCategories:
			g.Go(func() (err error) {
				records.Categories, err = l.categoryRepo.FindAll(gctx)
				return wrapLoadError("categories", err)
			})
		case loadIncomes:
			g.Go(func() (err error) {
				records.Incomes, err = l.incomeRepo.FindAll(gctx)
				return wrapLoadError("incomes", err)
			})
		case loadExpenses:
			g.Go(func() (err error) {
				records.Expenses, err = l.expenseRepo.FindAll(gctx)
				return wrapLoadError("expenses", err)
			})
		case loadDebts:
			g.Go(func() (err error) {
				records.Debts, err = l.debtRepo.FindAll(gctx)
				return wrapLoadError("debts", err)
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func wrapLoadError(collection string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", collection, err)
}

// cached serves key from cache when possible and stores freshly computed values.
// Cache failures are logged and never fail the request.
func cached[T any](ctx context.Context, cache adapter.DashboardCache, key string, compute func() (T, error)) (T, error) {
	var value T
	var generation int64
	cacheable := cache != nil
	if cacheable {
		gen, found, err := cache.Get(ctx, key, &value)
		switch {
		case err != nil:
			slog.Warn("Dashboard cache read failed", "key", key, "error", err)
			cacheable = false
		case found:
			return value, nil
		default:
			generation = gen
		}
	}

	value, err := compute()
	if err != nil {
		return value, err
	}

	if cacheable {
		if err := cache.Set(ctx, key, generation, value); err != nil {
			slog.Warn("Dashboard cache write failed", "key", key, "error", err)
		}
	}
	return value, nil
}
