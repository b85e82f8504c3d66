package ports

import (
	"context"

	"github.com/stormapp/canteen-api/internal/core/domain"
)

// UpdateCategoryInput carries the optional fields of a category update
// request. A nil Name means the field was not provided.
type UpdateCategoryInput struct {
	Name *string
}

// CategoryService defines use-case operations for categories.
type CategoryService interface {
	Create(ctx context.Context, name string) (*domain.Category, error)
	Get(ctx context.Context, categoryID string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, categoryID string, input UpdateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, categoryID string) error
}
