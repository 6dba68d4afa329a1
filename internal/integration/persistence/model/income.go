package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// IncomeModel represents the incomes table in the database.
type IncomeModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Source    string          `gorm:"type:varchar(255);not null"`
	Type      string          `gorm:"type:varchar(20);not null"`
	Date      time.Time       `gorm:"type:date;not null;index"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "incomes"
}

// ToEntity converts an IncomeModel to a domain Income entity.
func (m *IncomeModel) ToEntity() *entity.Income {
	return &entity.Income{
		ID:        m.ID,
		Amount:    m.Amount,
		Source:    m.Source,
		Type:      entity.IncomeType(m.Type),
		Date:      entity.NormalizeDate(m.Date),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// IncomeFromEntity creates an IncomeModel from a domain Income entity.
func IncomeFromEntity(income *entity.Income) *IncomeModel {
	return &IncomeModel{
		ID:        income.ID,
		Amount:    income.Amount,
		Source:    income.Source,
		Type:      string(income.Type),
		Date:      income.Date,
		CreatedAt: income.CreatedAt,
		UpdatedAt: income.UpdatedAt,
	}
}
