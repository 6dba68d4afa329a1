package category

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct{}

// DeleteCategoryUseCase handles category deletion logic.
// Expenses that reference the category are left untouched and render with a fallback name.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	if err := uc.categoryRepo.Delete(ctx, input.CategoryID); err != nil {
		return nil, notFoundOr(err, "failed to delete category")
	}

	slog.Info("Category deleted", "category_id", input.CategoryID)

	return &DeleteCategoryOutput{}, nil
}
