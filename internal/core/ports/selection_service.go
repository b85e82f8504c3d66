package ports

import (
	"context"

	"github.com/stormapp/canteen-api/internal/core/domain"
)

// SelectionService defines use-case operations for per-user meal selections.
type SelectionService interface {
	// GetForDate returns the caller's selection record for the given day,
	// or domain.ErrSelectionNotFound when none exists.
	GetForDate(ctx context.Context, userID, date string) (*domain.UserSelection, error)
	// Submit upserts the caller's selections for the given day, replacing
	// any previous map wholesale. The bool reports whether a new record
	// was created (true) or an existing one overwritten (false).
	Submit(ctx context.Context, userID, date string, selections map[string]string) (*domain.UserSelection, bool, error)
}
