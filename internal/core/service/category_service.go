package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/stormapp/canteen-api/internal/core/domain"
	"github.com/stormapp/canteen-api/internal/core/ports"
)

// CategoryService implements category CRUD on top of a document store.
type CategoryService struct {
	repo   ports.CategoryRepository
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger}
}

// Create persists a new category with a server-generated id. The name is
// trimmed before it is stored; leading or trailing whitespace never lands
// in the collection.
func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	category := &domain.Category{
		CategoryID: uuid.NewString(),
		Name:       strings.TrimSpace(name),
	}

	if err := s.repo.Create(ctx, category); err != nil {
		s.logger.Error().Err(err).Msg("failed to create category")
		return nil, err
	}

	// Read back what was saved so the response reflects the store.
	created, err := s.repo.FindByID(ctx, category.CategoryID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("category_id", created.CategoryID).Str("name", created.Name).Msg("category created")
	return created, nil
}

func (s *CategoryService) Get(ctx context.Context, categoryID string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, categoryID)
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.FindAll(ctx)
}

// Update changes the category name when one is provided. An update with no
// fields echoes the current record unchanged.
func (s *CategoryService) Update(ctx context.Context, categoryID string, input ports.UpdateCategoryInput) (*domain.Category, error) {
	existing, err := s.repo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if input.Name == nil {
		return existing, nil
	}

	name := strings.TrimSpace(*input.Name)
	updated, err := s.repo.Update(ctx, categoryID, ports.CategoryUpdate{Name: &name})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("category_id", categoryID).Msg("category updated")
	return updated, nil
}

// Delete removes the category. Menu items referencing its name are left
// untouched; the association is free text with no cascade.
func (s *CategoryService) Delete(ctx context.Context, categoryID string) error {
	if err := s.repo.Delete(ctx, categoryID); err != nil {
		return err
	}
	s.logger.Info().Str("category_id", categoryID).Msg("category deleted")
	return nil
}
