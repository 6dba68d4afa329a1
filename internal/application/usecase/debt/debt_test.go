package debt

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

type memoryDebtRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]entity.Debt
}

func newMemoryDebtRepo() *memoryDebtRepo {
	return &memoryDebtRepo{items: make(map[uuid.UUID]entity.Debt)}
}

func (r *memoryDebtRepo) Create(_ context.Context, d *entity.Debt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[d.ID] = *d
	return nil
}

func (r *memoryDebtRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Debt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.items[id]
	if !ok {
		return nil, domainerror.ErrDebtNotFound
	}
	return &d, nil
}

func (r *memoryDebtRepo) FindAll(context.Context) ([]*entity.Debt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Debt, 0, len(r.items))
	for _, d := range r.items {
		d := d
		out = append(out, &d)
	}
	return out, nil
}

func (r *memoryDebtRepo) UpdateWithLock(_ context.Context, id uuid.UUID, mutate adapter.DebtMutation) (*entity.Debt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.items[id]
	if !ok {
		return nil, domainerror.ErrDebtNotFound
	}
	if err := mutate(&d); err != nil {
		return nil, err
	}
	r.items[id] = d
	return &d, nil
}

func (r *memoryDebtRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domainerror.ErrDebtNotFound
	}
	delete(r.items, id)
	return nil
}

func createDebt(t *testing.T, repo *memoryDebtRepo, total string) *entity.Debt {
	t.Helper()
	out, err := NewCreateDebtUseCase(repo).Execute(context.Background(), CreateDebtInput{
		Name:        "Car Loan",
		TotalAmount: decimal.RequireFromString(total),
	})
	require.NoError(t, err)
	return out.Debt
}

func debtCode(t *testing.T, err error) domainerror.DebtErrorCode {
	t.Helper()
	var debtErr *domainerror.DebtError
	require.True(t, errors.As(err, &debtErr), "expected DebtError, got %v", err)
	return debtErr.Code
}

func TestCreateDebtUseCase(t *testing.T) {
	repo := newMemoryDebtRepo()
	due := "2025-06-30"

	out, err := NewCreateDebtUseCase(repo).Execute(context.Background(), CreateDebtInput{
		Name:        "  Car Loan ",
		TotalAmount: decimal.RequireFromString("1000"),
		DueDate:     &due,
	})

	require.NoError(t, err)
	assert.Equal(t, "Car Loan", out.Debt.Name)
	assert.True(t, out.Debt.PaidAmount.IsZero())
	assert.Equal(t, entity.DebtStatusActive, out.Debt.Status())
	require.NotNil(t, out.Debt.DueDate)
	assert.Equal(t, due, out.Debt.DueDate.Format(entity.DateLayout))
}

func TestCreateDebtUseCase_Rejections(t *testing.T) {
	bad := "30/06/2025"

	tests := []struct {
		name     string
		input    CreateDebtInput
		wantCode domainerror.DebtErrorCode
	}{
		{"blank name", CreateDebtInput{Name: " ", TotalAmount: decimal.NewFromInt(1)}, domainerror.ErrCodeDebtNameRequired},
		{"zero total", CreateDebtInput{Name: "x", TotalAmount: decimal.Zero}, domainerror.ErrCodeInvalidTotalAmount},
		{"negative total", CreateDebtInput{Name: "x", TotalAmount: decimal.NewFromInt(-5)}, domainerror.ErrCodeInvalidTotalAmount},
		{"three decimals", CreateDebtInput{Name: "x", TotalAmount: decimal.RequireFromString("1.005")}, domainerror.ErrCodeDebtAmountPrecision},
		{"bad due date", CreateDebtInput{Name: "x", TotalAmount: decimal.NewFromInt(1), DueDate: &bad}, domainerror.ErrCodeInvalidDueDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryDebtRepo()

			_, err := NewCreateDebtUseCase(repo).Execute(context.Background(), tt.input)

			assert.Equal(t, tt.wantCode, debtCode(t, err))
			assert.Empty(t, repo.items)
		})
	}
}

func TestPayDebtUseCase_Lifecycle(t *testing.T) {
	repo := newMemoryDebtRepo()
	debt := createDebt(t, repo, "1000")
	pay := NewPayDebtUseCase(repo)

	out, err := pay.Execute(context.Background(), PayDebtInput{DebtID: debt.ID, Amount: decimal.NewFromInt(300)})
	require.NoError(t, err)
	assert.True(t, out.Debt.PaidAmount.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, entity.DebtStatusActive, out.Debt.Status())

	out, err = pay.Execute(context.Background(), PayDebtInput{DebtID: debt.ID, Amount: decimal.NewFromInt(700)})
	require.NoError(t, err)
	assert.Equal(t, entity.DebtStatusPaid, out.Debt.Status())
	assert.True(t, out.Debt.Remaining().IsZero())

	_, err = pay.Execute(context.Background(), PayDebtInput{DebtID: debt.ID, Amount: decimal.NewFromInt(1)})
	assert.Equal(t, domainerror.ErrCodeDebtAlreadyPaid, debtCode(t, err))
}

func TestPayDebtUseCase_OverpaymentLeavesDebtUnchanged(t *testing.T) {
	repo := newMemoryDebtRepo()
	debt := createDebt(t, repo, "100")
	pay := NewPayDebtUseCase(repo)

	_, err := pay.Execute(context.Background(), PayDebtInput{DebtID: debt.ID, Amount: decimal.NewFromInt(50)})
	require.NoError(t, err)

	_, err = pay.Execute(context.Background(), PayDebtInput{DebtID: debt.ID, Amount: decimal.RequireFromString("50.01")})
	assert.Equal(t, domainerror.ErrCodeOverpayment, debtCode(t, err))
	assert.True(t, repo.items[debt.ID].PaidAmount.Equal(decimal.NewFromInt(50)))
}

func TestPayDebtUseCase_NotFound(t *testing.T) {
	_, err := NewPayDebtUseCase(newMemoryDebtRepo()).Execute(context.Background(), PayDebtInput{
		DebtID: uuid.New(),
		Amount: decimal.NewFromInt(1),
	})

	assert.Equal(t, domainerror.ErrCodeDebtNotFound, debtCode(t, err))
	assert.ErrorIs(t, err, domainerror.ErrDebtNotFound)
}

func TestPayDebtUseCase_ConcurrentPaymentsNeverExceedTotal(t *testing.T) {
	repo := newMemoryDebtRepo()
	debt := createDebt(t, repo, "100")
	pay := NewPayDebtUseCase(repo)

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := pay.Execute(context.Background(), PayDebtInput{DebtID: debt.ID, Amount: decimal.NewFromInt(10)})
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, accepted)
	assert.True(t, repo.items[debt.ID].PaidAmount.Equal(decimal.NewFromInt(100)))
}

func TestUpdateDebtUseCase(t *testing.T) {
	repo := newMemoryDebtRepo()
	debt := createDebt(t, repo, "1000")
	_, err := NewPayDebtUseCase(repo).Execute(context.Background(), PayDebtInput{DebtID: debt.ID, Amount: decimal.NewFromInt(400)})
	require.NoError(t, err)
	update := NewUpdateDebtUseCase(repo)

	out, err := update.Execute(context.Background(), UpdateDebtInput{
		DebtID:      debt.ID,
		Name:        "Car Loan (refinanced)",
		TotalAmount: decimal.NewFromInt(800),
	})
	require.NoError(t, err)
	assert.Equal(t, "Car Loan (refinanced)", out.Debt.Name)
	assert.True(t, out.Debt.PaidAmount.Equal(decimal.NewFromInt(400)))
	assert.Equal(t, "50", out.Debt.PercentPaid().String())

	_, err = update.Execute(context.Background(), UpdateDebtInput{
		DebtID:      debt.ID,
		Name:        "Car Loan",
		TotalAmount: decimal.NewFromInt(399),
	})
	assert.Equal(t, domainerror.ErrCodeTotalBelowPaid, debtCode(t, err))
	assert.True(t, repo.items[debt.ID].TotalAmount.Equal(decimal.NewFromInt(800)))

	_, err = update.Execute(context.Background(), UpdateDebtInput{
		DebtID:      uuid.New(),
		Name:        "x",
		TotalAmount: decimal.NewFromInt(1),
	})
	assert.Equal(t, domainerror.ErrCodeDebtNotFound, debtCode(t, err))
}

func TestGetListDeleteDebt(t *testing.T) {
	repo := newMemoryDebtRepo()
	debt := createDebt(t, repo, "250")

	got, err := NewGetDebtUseCase(repo).Execute(context.Background(), debt.ID)
	require.NoError(t, err)
	assert.Equal(t, debt.ID, got.ID)

	all, err := NewListDebtsUseCase(repo).Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, NewDeleteDebtUseCase(repo).Execute(context.Background(), debt.ID))

	_, err = NewGetDebtUseCase(repo).Execute(context.Background(), debt.ID)
	assert.Equal(t, domainerror.ErrCodeDebtNotFound, debtCode(t, err))
	err = NewDeleteDebtUseCase(repo).Execute(context.Background(), debt.ID)
	assert.Equal(t, domainerror.ErrCodeDebtNotFound, debtCode(t, err))
}
