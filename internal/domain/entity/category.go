// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UnknownCategoryName labels expenses whose category is missing or was deleted.
const UnknownCategoryName = "Unknown"

// Category represents an expense category.
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CategoryIndex resolves category ids to names without failing on dangling references.
type CategoryIndex map[uuid.UUID]string

// NewCategoryIndex builds an index over the given categories.
func NewCategoryIndex(categories []*Category) CategoryIndex {
	idx := make(CategoryIndex, len(categories))
	for _, c := range categories {
		idx[c.ID] = c.Name
	}
	return idx
}

// Lookup returns the category name and whether the id resolved.
func (idx CategoryIndex) Lookup(id *uuid.UUID) (string, bool) {
	if id == nil {
		return "", false
	}
	name, ok := idx[*id]
	return name, ok
}

// NameOf returns the category name, or UnknownCategoryName when it cannot be resolved.
func (idx CategoryIndex) NameOf(id *uuid.UUID) string {
	if name, ok := idx.Lookup(id); ok {
		return name
	}
	return UnknownCategoryName
}
