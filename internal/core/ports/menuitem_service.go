package ports

import (
	"context"

	"github.com/stormapp/canteen-api/internal/core/domain"
)

// CreateMenuItemInput carries the data needed to create a menu item.
type CreateMenuItemInput struct {
	Name        string
	Description string
	Categories  []string
}

// UpdateMenuItemInput carries the optional fields of a menu item update
// request. Nil pointers mean "not provided".
type UpdateMenuItemInput struct {
	Name        *string
	Description *string
	Categories  *[]string
}

// MenuItemService defines use-case operations for menu items.
type MenuItemService interface {
	Create(ctx context.Context, input CreateMenuItemInput) (*domain.MenuItem, error)
	Get(ctx context.Context, menuItemID string) (*domain.MenuItem, error)
	// List returns all menu items, filtered by exact category name when
	// category is non-empty.
	List(ctx context.Context, category string) ([]domain.MenuItem, error)
	Update(ctx context.Context, menuItemID string, input UpdateMenuItemInput) (*domain.MenuItem, error)
	Delete(ctx context.Context, menuItemID string) error
}
