package category

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update.
type UpdateCategoryInput struct {
	CategoryID uuid.UUID
	Name       string
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	// Validate before touching the store
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}

	// Find the existing category
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, notFoundOr(err, "failed to find category")
	}

	category.Name = name
	category.UpdatedAt = time.Now().UTC()

	// Save updated category
	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, notFoundOr(err, "failed to update category")
	}

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}

// notFoundOr converts a missing-row error to a CategoryError and wraps anything else.
func notFoundOr(err error, action string) error {
	if errors.Is(err, domainerror.ErrCategoryNotFound) {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}
	return fmt.Errorf("%s: %w", action, err)
}
