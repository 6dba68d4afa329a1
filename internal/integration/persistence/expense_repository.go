package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	result := r.db.WithContext(ctx).Create(model.ExpenseFromEntity(expense))
	return translateError(result.Error, domainerror.ErrExpenseNotFound)
}

// FindByID retrieves an expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		return nil, translateError(result.Error, domainerror.ErrExpenseNotFound)
	}
	return expenseModel.ToEntity(), nil
}

// FindAll retrieves every expense, most recent first.
func (r *expenseRepository) FindAll(ctx context.Context) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Order("date DESC").
		Order("created_at DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, translateError(result.Error, domainerror.ErrExpenseNotFound)
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToEntity()
	}
	return expenses, nil
}

// Update updates an existing expense in the database.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	m := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("id = ?", expense.ID).
		Updates(map[string]any{
			"amount":      m.Amount,
			"description": m.Description,
			"category_id": m.CategoryID,
			"date":        m.Date,
			"updated_at":  m.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error, domainerror.ErrExpenseNotFound)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

// Delete removes an expense from the database.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error, domainerror.ErrExpenseNotFound)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}
