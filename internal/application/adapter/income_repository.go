package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// IncomeRepository defines the interface for income persistence operations.
type IncomeRepository interface {
	// Create creates a new income entry in the database.
	Create(ctx context.Context, income *entity.Income) error

	// FindByID retrieves an income entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error)

	// FindAll retrieves every income entry, newest date first.
	FindAll(ctx context.Context) ([]*entity.Income, error)

	// Update replaces an existing income entry.
	Update(ctx context.Context, income *entity.Income) error

	// Delete removes an income entry from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
