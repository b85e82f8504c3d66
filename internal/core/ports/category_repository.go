package ports

import (
	"context"

	"github.com/stormapp/canteen-api/internal/core/domain"
)

// CategoryUpdate carries the optional fields of a category update.
// Nil pointers mean "leave unchanged".
type CategoryUpdate struct {
	Name *string
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) error
	FindByID(ctx context.Context, categoryID string) (*domain.Category, error)
	FindAll(ctx context.Context) ([]domain.Category, error)
	// Update applies the non-nil fields and returns the updated document,
	// or domain.ErrCategoryNotFound when the id is absent.
	Update(ctx context.Context, categoryID string, fields CategoryUpdate) (*domain.Category, error)
	// Delete returns domain.ErrCategoryNotFound unless exactly one document was removed.
	Delete(ctx context.Context, categoryID string) error
}
