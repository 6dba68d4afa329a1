package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// DebtMutation changes a debt loaded under lock. Returning an error aborts the write.
type DebtMutation func(debt *entity.Debt) error

// DebtRepository defines the interface for debt persistence operations.
type DebtRepository interface {
	// Create creates a new debt in the database.
	Create(ctx context.Context, debt *entity.Debt) error

	// FindByID retrieves a debt by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error)

	// FindAll retrieves every debt, oldest first.
	FindAll(ctx context.Context) ([]*entity.Debt, error)

	// UpdateWithLock loads the debt with a row lock, applies mutate and saves the result
	// in one transaction. Concurrent calls for the same id are serialized.
	UpdateWithLock(ctx context.Context, id uuid.UUID, mutate DebtMutation) (*entity.Debt, error)

	// Delete removes a debt from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
