package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCategoryIndex(t *testing.T) {
	food := NewCategory("Food")
	idx := NewCategoryIndex([]*Category{food})
	dangling := uuid.New()

	name, ok := idx.Lookup(&food.ID)
	assert.True(t, ok)
	assert.Equal(t, "Food", name)

	_, ok = idx.Lookup(&dangling)
	assert.False(t, ok)

	assert.Equal(t, "Food", idx.NameOf(&food.ID))
	assert.Equal(t, UnknownCategoryName, idx.NameOf(&dangling))
	assert.Equal(t, UnknownCategoryName, idx.NameOf(nil))
}
