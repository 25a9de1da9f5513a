package cart

import (
	"context"

	"recipehub/internal/domain"
)

type CartRepository interface {
	Create(ctx context.Context, item *domain.ShoppingCartItem) error
	Delete(ctx context.Context, userID, recipeID int64) (bool, error)
	Exists(ctx context.Context, userID, recipeID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.ShoppingCartItem, error)
}

type RecipeGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
}
