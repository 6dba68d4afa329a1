package dashboard

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

type fakeCategoryRepo struct {
	adapter.CategoryRepository
	items []*entity.Category
	err   error
}

func (f *fakeCategoryRepo) FindAll(context.Context) ([]*entity.Category, error) {
	return f.items, f.err
}

type fakeIncomeRepo struct {
	adapter.IncomeRepository
	items  []*entity.Income
	err    error
	calls  int
	onRead func()
}

func (f *fakeIncomeRepo) FindAll(context.Context) ([]*entity.Income, error) {
	f.calls++
	items := f.items
	if f.onRead != nil {
		f.onRead()
	}
	return items, f.err
}

type fakeExpenseRepo struct {
	adapter.ExpenseRepository
	items []*entity.Expense
	err   error
}

func (f *fakeExpenseRepo) FindAll(context.Context) ([]*entity.Expense, error) {
	return f.items, f.err
}

type fakeDebtRepo struct {
	adapter.DebtRepository
	items []*entity.Debt
	err   error
}

func (f *fakeDebtRepo) FindAll(context.Context) ([]*entity.Debt, error) {
	return f.items, f.err
}

// memoryCache round-trips values through JSON and keys them by generation like the Redis implementation does.
type memoryCache struct {
	generation int64
	entries    map[string][]byte
	getErr     error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) key(generation int64, key string) string {
	return fmt.Sprintf("%d:%s", generation, key)
}

func (c *memoryCache) Get(_ context.Context, key string, dest any) (int64, bool, error) {
	if c.getErr != nil {
		return 0, false, c.getErr
	}
	raw, ok := c.entries[c.key(c.generation, key)]
	if !ok {
		return c.generation, false, nil
	}
	return c.generation, true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, generation int64, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[c.key(generation, key)] = raw
	return nil
}

func (c *memoryCache) Invalidate(context.Context) error {
	c.generation++
	return nil
}
