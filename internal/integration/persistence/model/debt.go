package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// DebtModel represents the debts table in the database.
// Status is written on every save so it can be filtered on; ToEntity ignores it.
type DebtModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaidAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Status      string          `gorm:"type:varchar(10);not null;index"`
	DueDate     *time.Time      `gorm:"type:date"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the DebtModel.
func (DebtModel) TableName() string {
	return "debts"
}

// ToEntity converts a DebtModel to a domain Debt entity.
func (m *DebtModel) ToEntity() *entity.Debt {
	var dueDate *time.Time
	if m.DueDate != nil {
		d := entity.NormalizeDate(*m.DueDate)
		dueDate = &d
	}

	return &entity.Debt{
		ID:          m.ID,
		Name:        m.Name,
		TotalAmount: m.TotalAmount,
		PaidAmount:  m.PaidAmount,
		DueDate:     dueDate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// DebtFromEntity creates a DebtModel from a domain Debt entity.
func DebtFromEntity(debt *entity.Debt) *DebtModel {
	return &DebtModel{
		ID:          debt.ID,
		Name:        debt.Name,
		TotalAmount: debt.TotalAmount,
		PaidAmount:  debt.PaidAmount,
		Status:      string(debt.Status()),
		DueDate:     debt.DueDate,
		CreatedAt:   debt.CreatedAt,
		UpdatedAt:   debt.UpdatedAt,
	}
}

// AllModels lists every model managed by AutoMigrate.
func AllModels() []any {
	return []any{
		&CategoryModel{},
		&IncomeModel{},
		&ExpenseModel{},
		&DebtModel{},
	}
}
