package favorite

import (
	"context"

	"recipehub/internal/domain"
)

type FavoriteRepository interface {
	Create(ctx context.Context, f *domain.Favorite) error
	Delete(ctx context.Context, userID, recipeID int64) (bool, error)
	Exists(ctx context.Context, userID, recipeID int64) (bool, error)
}

type RecipeGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
}
