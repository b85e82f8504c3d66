package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/stormapp/canteen-api/internal/core/domain"
	"github.com/stormapp/canteen-api/internal/core/ports"
)

// SelectionService implements per-user, per-day meal selection reads and
// the insert-or-replace submission path.
type SelectionService struct {
	repo   ports.SelectionRepository
	logger zerolog.Logger
}

func NewSelectionService(repo ports.SelectionRepository, logger zerolog.Logger) *SelectionService {
	return &SelectionService{repo: repo, logger: logger}
}

func (s *SelectionService) GetForDate(ctx context.Context, userID, date string) (*domain.UserSelection, error) {
	if err := domain.ValidateDate(date); err != nil {
		return nil, err
	}
	return s.repo.FindByUserAndDate(ctx, userID, date)
}

// Submit stores the user's selections for a day. The write is a single
// atomic upsert against the unique (user_id, date) index: concurrent
// submissions cannot produce two records. An existing record keeps its
// user_selection_id and has its selections map replaced wholesale —
// courses missing from the new payload are dropped, not merged.
func (s *SelectionService) Submit(ctx context.Context, userID, date string, selections map[string]string) (*domain.UserSelection, bool, error) {
	if err := domain.ValidateDate(date); err != nil {
		return nil, false, err
	}
	if len(selections) == 0 {
		return nil, false, domain.ErrEmptySelections
	}

	candidate := &domain.UserSelection{
		UserSelectionID: uuid.NewString(),
		UserID:          userID,
		Date:            date,
		Selections:      selections,
	}

	saved, created, err := s.repo.Upsert(ctx, candidate)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Str("date", date).Msg("failed to upsert user selections")
		return nil, false, err
	}

	if created {
		s.logger.Info().Str("user_id", userID).Str("date", date).Msg("user selections created")
	} else {
		s.logger.Info().Str("user_id", userID).Str("date", date).Msg("user selections updated")
	}

	return saved, created, nil
}
