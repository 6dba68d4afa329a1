package persistence

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
)

// newTestDB opens a private in-memory database. A single connection keeps every
// statement on the same database and serializes transactions.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.AllModels()...))
	return db
}

func date(s string) time.Time {
	d, err := entity.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCategoryRepository_CRUD(t *testing.T) {
	repo := NewCategoryRepository(newTestDB(t))
	ctx := context.Background()

	transport := entity.NewCategory("Transport")
	food := entity.NewCategory("Food")
	require.NoError(t, repo.Create(ctx, transport))
	require.NoError(t, repo.Create(ctx, food))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Food", all[0].Name)
	assert.Equal(t, "Transport", all[1].Name)

	transport.Name = "Commute"
	require.NoError(t, repo.Update(ctx, transport))
	got, err := repo.FindByID(ctx, transport.ID)
	require.NoError(t, err)
	assert.Equal(t, "Commute", got.Name)

	require.NoError(t, repo.Delete(ctx, transport.ID))
	_, err = repo.FindByID(ctx, transport.ID)
	assert.ErrorIs(t, err, domainerror.ErrCategoryNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, transport.ID), domainerror.ErrCategoryNotFound)
	assert.ErrorIs(t, repo.Update(ctx, transport), domainerror.ErrCategoryNotFound)
}

func TestIncomeRepository_RoundTripAndOrdering(t *testing.T) {
	repo := NewIncomeRepository(newTestDB(t))
	ctx := context.Background()

	salary := entity.NewIncome(decimal.RequireFromString("3000.10"), "Salary", entity.IncomeTypeFixedMonthly, date("2024-03-01"))
	bonus := entity.NewIncome(decimal.RequireFromString("0.20"), "Bonus", entity.IncomeTypeAdditional, date("2024-03-15"))
	require.NoError(t, repo.Create(ctx, salary))
	require.NoError(t, repo.Create(ctx, bonus))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, bonus.ID, all[0].ID)
	assert.Equal(t, salary.ID, all[1].ID)

	got, err := repo.FindByID(ctx, salary.ID)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("3000.1")))
	assert.Equal(t, entity.IncomeTypeFixedMonthly, got.Type)
	assert.Equal(t, "2024-03-01", got.Date.Format(entity.DateLayout))

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerror.ErrIncomeNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), domainerror.ErrIncomeNotFound)
}

func TestExpenseRepository_KeepsDanglingCategory(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	expenses := NewExpenseRepository(db)
	ctx := context.Background()

	food := entity.NewCategory("Food")
	require.NoError(t, categories.Create(ctx, food))
	lunch := entity.NewExpense(decimal.RequireFromString("12.50"), "Lunch", &food.ID, date("2024-02-10"))
	coffee := entity.NewExpense(decimal.RequireFromString("3"), "Coffee", nil, date("2024-02-10"))
	require.NoError(t, expenses.Create(ctx, lunch))
	require.NoError(t, expenses.Create(ctx, coffee))

	require.NoError(t, categories.Delete(ctx, food.ID))

	got, err := expenses.FindByID(ctx, lunch.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CategoryID)
	assert.Equal(t, food.ID, *got.CategoryID)

	got, err = expenses.FindByID(ctx, coffee.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID)

	coffee.Amount = decimal.RequireFromString("3.75")
	require.NoError(t, expenses.Update(ctx, coffee))
	got, err = expenses.FindByID(ctx, coffee.ID)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("3.75")))
}

func TestDebtRepository_UpdateWithLock(t *testing.T) {
	repo := NewDebtRepository(newTestDB(t))
	ctx := context.Background()

	debt := entity.NewDebt("Car Loan", decimal.NewFromInt(1000), nil)
	require.NoError(t, repo.Create(ctx, debt))

	updated, err := repo.UpdateWithLock(ctx, debt.ID, func(d *entity.Debt) error {
		return d.ApplyPayment(decimal.NewFromInt(300))
	})
	require.NoError(t, err)
	assert.True(t, updated.PaidAmount.Equal(decimal.NewFromInt(300)))

	rejected := errors.New("rejected")
	_, err = repo.UpdateWithLock(ctx, debt.ID, func(d *entity.Debt) error {
		d.PaidAmount = decimal.NewFromInt(999)
		return rejected
	})
	assert.ErrorIs(t, err, rejected)

	got, err := repo.FindByID(ctx, debt.ID)
	require.NoError(t, err)
	assert.True(t, got.PaidAmount.Equal(decimal.NewFromInt(300)))

	_, err = repo.UpdateWithLock(ctx, uuid.New(), func(*entity.Debt) error { return nil })
	assert.ErrorIs(t, err, domainerror.ErrDebtNotFound)
}

func TestDebtRepository_PersistsStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewDebtRepository(db)
	ctx := context.Background()

	debt := entity.NewDebt("Phone", decimal.NewFromInt(100), nil)
	require.NoError(t, repo.Create(ctx, debt))
	_, err := repo.UpdateWithLock(ctx, debt.ID, func(d *entity.Debt) error {
		return d.ApplyPayment(decimal.NewFromInt(100))
	})
	require.NoError(t, err)

	var stored model.DebtModel
	require.NoError(t, db.First(&stored, "id = ?", debt.ID).Error)
	assert.Equal(t, string(entity.DebtStatusPaid), stored.Status)
}

func TestDebtRepository_ConcurrentPayments(t *testing.T) {
	repo := NewDebtRepository(newTestDB(t))
	ctx := context.Background()

	debt := entity.NewDebt("Card", decimal.NewFromInt(100), nil)
	require.NoError(t, repo.Create(ctx, debt))

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.UpdateWithLock(ctx, debt.ID, func(d *entity.Debt) error {
				return d.ApplyPayment(decimal.NewFromInt(10))
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	accepted := 0
	for err := range errs {
		if err == nil {
			accepted++
		}
	}
	assert.Equal(t, 10, accepted)

	got, err := repo.FindByID(ctx, debt.ID)
	require.NoError(t, err)
	assert.True(t, got.PaidAmount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, entity.DebtStatusPaid, got.Status())
}

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantIs    error
		transient bool
	}{
		{"nil", nil, nil, false},
		{"record not found", gorm.ErrRecordNotFound, domainerror.ErrDebtNotFound, false},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), domainerror.ErrStoreTimeout, true},
		{"bad conn", driver.ErrBadConn, domainerror.ErrStoreUnavailable, true},
		{"other", errors.New("constraint failed"), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err, domainerror.ErrDebtNotFound)

			if tt.err == nil {
				assert.NoError(t, got)
				return
			}
			if tt.wantIs != nil {
				assert.ErrorIs(t, got, tt.wantIs)
			}
			assert.Equal(t, tt.transient, domainerror.IsTransient(got))
		})
	}
}
