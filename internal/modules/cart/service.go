package cart

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"recipehub/internal/domain"
	"recipehub/internal/repository"
)

type Service struct {
	items   CartRepository
	recipes RecipeGetter
}

func NewService(items CartRepository, recipes RecipeGetter) *Service {
	return &Service{items: items, recipes: recipes}
}

// Add puts the recipe into the acting user's shopping cart. Adding twice
// fails; the unique index on (user_id, recipe_id) settles concurrent
// duplicates.
func (s *Service) Add(ctx context.Context, userID, recipeID int64) (*RecipeBrief, error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	exists, err := s.items.Exists(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyInCart
	}

	item := &domain.ShoppingCartItem{UserID: userID, RecipeID: recipeID}
	if err := s.items.Create(ctx, item); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyInCart
		}
		return nil, err
	}

	brief := ToRecipeBrief(recipe)
	return &brief, nil
}

func (s *Service) Remove(ctx context.Context, userID, recipeID int64) error {
	if _, err := s.recipes.GetByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}

	deleted, err := s.items.Delete(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotInCart
	}
	return nil
}

// BuildShoppingList aggregates the user's cart into the downloadable report.
func (s *Service) BuildShoppingList(ctx context.Context, userID int64) (string, error) {
	items, err := s.items.ListByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	return RenderReport(Aggregate(items)), nil
}
