package favorite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"recipehub/internal/domain"
	"recipehub/internal/repository"
)

type Service struct {
	favorites FavoriteRepository
	recipes   RecipeGetter
}

func NewService(favorites FavoriteRepository, recipes RecipeGetter) *Service {
	return &Service{favorites: favorites, recipes: recipes}
}

// Add puts the recipe into the acting user's favorites. Adding twice fails;
// the unique index on (user_id, recipe_id) settles concurrent duplicates.
func (s *Service) Add(ctx context.Context, userID, recipeID int64) (*RecipeBrief, error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	exists, err := s.favorites.Exists(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyFavorited
	}

	fav := &domain.Favorite{UserID: userID, RecipeID: recipeID}
	if err := s.favorites.Create(ctx, fav); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyFavorited
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

	deleted, err := s.favorites.Delete(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFavorited
	}
	return nil
}
