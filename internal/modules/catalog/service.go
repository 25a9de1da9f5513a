package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"recipehub/internal/domain"
)

var ErrNotFound = errors.New("not found")

type TagRepository interface {
	List(ctx context.Context) ([]domain.Tag, error)
	GetByID(ctx context.Context, id int64) (*domain.Tag, error)
}

type IngredientRepository interface {
	List(ctx context.Context, name string) ([]domain.Ingredient, error)
	GetByID(ctx context.Context, id int64) (*domain.Ingredient, error)
}

type Service struct {
	tags        TagRepository
	ingredients IngredientRepository
}

func NewService(tags TagRepository, ingredients IngredientRepository) *Service {
	return &Service{tags: tags, ingredients: ingredients}
}

func (s *Service) ListTags(ctx context.Context) ([]domain.Tag, error) {
	return s.tags.List(ctx)
}

func (s *Service) GetTag(ctx context.Context, id int64) (*domain.Tag, error) {
	tag, err := s.tags.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return tag, nil
}

// ListIngredients narrows the catalog by a case-insensitive name substring
// when the filter is non-empty.
func (s *Service) ListIngredients(ctx context.Context, name string) ([]domain.Ingredient, error) {
	return s.ingredients.List(ctx, name)
}

func (s *Service) GetIngredient(ctx context.Context, id int64) (*domain.Ingredient, error) {
	ingredient, err := s.ingredients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ingredient, nil
}
