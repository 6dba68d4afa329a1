package dto

import (
	"time"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// CategoryRequest represents the request body for category creation and update.
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        cat.ID.String(),
		Name:      cat.Name,
		CreatedAt: cat.CreatedAt,
	}
}

// ToCategoryListResponse converts categories to their response form. The result is never nil.
func ToCategoryListResponse(categories []*entity.Category) []CategoryResponse {
	response := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		response[i] = ToCategoryResponse(cat)
	}
	return response
}
