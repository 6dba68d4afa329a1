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

// incomeRepository implements the adapter.IncomeRepository interface.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository instance.
func NewIncomeRepository(db *gorm.DB) adapter.IncomeRepository {
	return &incomeRepository{
		db: db,
	}
}

func (r *incomeRepository) Create(ctx context.Context, income *entity.Income) error {
	result := r.db.WithContext(ctx).Create(model.IncomeFromEntity(income))
	return translateError(result.Error, domainerror.ErrIncomeNotFound)
}

func (r *incomeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error) {
	var incomeModel model.IncomeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&incomeModel)
	if result.Error != nil {
		return nil, translateError(result.Error, domainerror.ErrIncomeNotFound)
	}
	return incomeModel.ToEntity(), nil
}

// FindAll retrieves every income, most recent first.
func (r *incomeRepository) FindAll(ctx context.Context) ([]*entity.Income, error) {
	var incomeModels []model.IncomeModel
	result := r.db.WithContext(ctx).
		Order("date DESC").
		Order("created_at DESC").
		Find(&incomeModels)
	if result.Error != nil {
		return nil, translateError(result.Error, domainerror.ErrIncomeNotFound)
	}

	incomes := make([]*entity.Income, len(incomeModels))
	for i := range incomeModels {
		incomes[i] = incomeModels[i].ToEntity()
	}
	return incomes, nil
}

func (r *incomeRepository) Update(ctx context.Context, income *entity.Income) error {
	m := model.IncomeFromEntity(income)
	result := r.db.WithContext(ctx).
		Model(&model.IncomeModel{}).
		Where("id = ?", income.ID).
		Updates(map[string]any{
			"amount":     m.Amount,
			"source":     m.Source,
			"type":       m.Type,
			"date":       m.Date,
			"updated_at": m.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error, domainerror.ErrIncomeNotFound)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrIncomeNotFound
	}
	return nil
}

func (r *incomeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.IncomeModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error, domainerror.ErrIncomeNotFound)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrIncomeNotFound
	}
	return nil
}
