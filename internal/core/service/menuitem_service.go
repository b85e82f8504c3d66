package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/stormapp/canteen-api/internal/core/domain"
	"github.com/stormapp/canteen-api/internal/core/ports"
)

// MenuItemService implements menu item CRUD.
type MenuItemService struct {
	repo   ports.MenuItemRepository
	logger zerolog.Logger
}

func NewMenuItemService(repo ports.MenuItemRepository, logger zerolog.Logger) *MenuItemService {
	return &MenuItemService{repo: repo, logger: logger}
}

// Create persists a new menu item. Name and description are trimmed; a
// missing categories list is stored as an empty one, never as null.
func (s *MenuItemService) Create(ctx context.Context, input ports.CreateMenuItemInput) (*domain.MenuItem, error) {
	categories := input.Categories
	if categories == nil {
		categories = []string{}
	}

	item := &domain.MenuItem{
		MenuItemID:  uuid.NewString(),
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Categories:  categories,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		s.logger.Error().Err(err).Msg("failed to create menu item")
		return nil, err
	}

	created, err := s.repo.FindByID(ctx, item.MenuItemID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("menu_item_id", created.MenuItemID).Msg("menu item created")
	return created, nil
}

func (s *MenuItemService) Get(ctx context.Context, menuItemID string) (*domain.MenuItem, error) {
	return s.repo.FindByID(ctx, menuItemID)
}

func (s *MenuItemService) List(ctx context.Context, category string) ([]domain.MenuItem, error) {
	return s.repo.FindAll(ctx, category)
}

// Update applies the provided fields. The categories list, when present,
// replaces the stored one wholesale — there is no element-level merge.
func (s *MenuItemService) Update(ctx context.Context, menuItemID string, input ports.UpdateMenuItemInput) (*domain.MenuItem, error) {
	if _, err := s.repo.FindByID(ctx, menuItemID); err != nil {
		return nil, err
	}

	fields := ports.MenuItemUpdate{}
	hasUpdates := false

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		fields.Name = &name
		hasUpdates = true
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		fields.Description = &description
		hasUpdates = true
	}
	if input.Categories != nil {
		fields.Categories = input.Categories
		hasUpdates = true
	}

	if !hasUpdates {
		return nil, domain.ErrNoUpdateFields
	}

	updated, err := s.repo.Update(ctx, menuItemID, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("menu_item_id", menuItemID).Msg("menu item updated")
	return updated, nil
}

func (s *MenuItemService) Delete(ctx context.Context, menuItemID string) error {
	if err := s.repo.Delete(ctx, menuItemID); err != nil {
		return err
	}
	s.logger.Info().Str("menu_item_id", menuItemID).Msg("menu item deleted")
	return nil
}
