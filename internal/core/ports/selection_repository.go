package ports

import (
	"context"

	"github.com/stormapp/canteen-api/internal/core/domain"
)

// SelectionRepository defines persistence operations for user selections.
type SelectionRepository interface {
	FindByUserAndDate(ctx context.Context, userID, date string) (*domain.UserSelection, error)
	// FindByDate returns every selection for the given calendar day in
	// stable store order. Malformed documents are dropped, not surfaced.
	FindByDate(ctx context.Context, date string) ([]domain.UserSelection, error)
	// Upsert atomically inserts sel or, when a document for the same
	// (user_id, date) already exists, replaces its selections map wholesale
	// while keeping the stored user_selection_id. It returns the document
	// as persisted and whether a new one was created.
	Upsert(ctx context.Context, sel *domain.UserSelection) (*domain.UserSelection, bool, error)
}
