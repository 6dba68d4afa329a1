package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
)

// debtRepository implements the adapter.DebtRepository interface.
type debtRepository struct {
	db *gorm.DB
}

// NewDebtRepository creates a new debt repository instance.
func NewDebtRepository(db *gorm.DB) adapter.DebtRepository {
	return &debtRepository{
		db: db,
	}
}

// Create creates a new debt in the database.
func (r *debtRepository) Create(ctx context.Context, debt *entity.Debt) error {
	result := r.db.WithContext(ctx).Create(model.DebtFromEntity(debt))
	return translateError(result.Error, domainerror.ErrDebtNotFound)
}

// FindByID retrieves a debt by its ID.
func (r *debtRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error) {
	var debtModel model.DebtModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&debtModel)
	if result.Error != nil {
		return nil, translateError(result.Error, domainerror.ErrDebtNotFound)
	}
	return debtModel.ToEntity(), nil
}

// FindAll retrieves every debt, oldest first.
func (r *debtRepository) FindAll(ctx context.Context) ([]*entity.Debt, error) {
	var debtModels []model.DebtModel
	result := r.db.WithContext(ctx).
		Order("created_at ASC").
		Order("id ASC").
		Find(&debtModels)
	if result.Error != nil {
		return nil, translateError(result.Error, domainerror.ErrDebtNotFound)
	}

	debts := make([]*entity.Debt, len(debtModels))
	for i := range debtModels {
		debts[i] = debtModels[i].ToEntity()
	}
	return debts, nil
}

// UpdateWithLock reads the debt with SELECT ... FOR UPDATE, applies mutate and writes it back
// in the same transaction. An error from mutate rolls the transaction back.
func (r *debtRepository) UpdateWithLock(ctx context.Context, id uuid.UUID, mutate adapter.DebtMutation) (*entity.Debt, error) {
	var updated *entity.Debt

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var debtModel model.DebtModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&debtModel).Error; err != nil {
			return err
		}

		debt := debtModel.ToEntity()
		if err := mutate(debt); err != nil {
			return err
		}

		m := model.DebtFromEntity(debt)
		if err := tx.Model(&model.DebtModel{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"name":         m.Name,
				"total_amount": m.TotalAmount,
				"paid_amount":  m.PaidAmount,
				"status":       m.Status,
				"due_date":     m.DueDate,
				"updated_at":   m.UpdatedAt,
			}).Error; err != nil {
			return err
		}

		updated = debt
		return nil
	})
	if err != nil {
		return nil, translateError(err, domainerror.ErrDebtNotFound)
	}

	return updated, nil
}

// Delete removes a debt from the database.
func (r *debtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.DebtModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error, domainerror.ErrDebtNotFound)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrDebtNotFound
	}
	return nil
}
