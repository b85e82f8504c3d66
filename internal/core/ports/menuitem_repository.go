package ports

import (
	"context"

	"github.com/stormapp/canteen-api/internal/core/domain"
)

// MenuItemUpdate carries the optional fields of a menu item update.
// Nil pointers mean "leave unchanged"; a non-nil Categories pointer
// replaces the stored list wholesale.
type MenuItemUpdate struct {
	Name        *string
	Description *string
	Categories  *[]string
}

// MenuItemRepository defines persistence operations for menu items.
type MenuItemRepository interface {
	Create(ctx context.Context, m *domain.MenuItem) error
	FindByID(ctx context.Context, menuItemID string) (*domain.MenuItem, error)
	// FindAll returns every menu item, or only those tagged with the given
	// category name when category is non-empty (exact match).
	FindAll(ctx context.Context, category string) ([]domain.MenuItem, error)
	Update(ctx context.Context, menuItemID string, fields MenuItemUpdate) (*domain.MenuItem, error)
	Delete(ctx context.Context, menuItemID string) error
}
