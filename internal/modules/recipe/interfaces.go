package recipe

import (
	"context"

	"recipehub/internal/domain"
	"recipehub/internal/repository"
)

type RecipeRepository interface {
	CreateWithIngredients(ctx context.Context, recipe *domain.Recipe, tags []domain.Tag) error
	UpdateWithIngredients(ctx context.Context, recipe *domain.Recipe, tags []domain.Tag) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
	List(ctx context.Context, filter repository.RecipeFilter, limit, offset int) ([]domain.Recipe, int64, error)
}

type IngredientResolver interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Ingredient, error)
}

type TagResolver interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Tag, error)
}

type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// MembershipChecker answers "does a (user, recipe) row exist"; implemented by
// both the favorite and the shopping cart repositories.
type MembershipChecker interface {
	Exists(ctx context.Context, userID, recipeID int64) (bool, error)
}

type SubscriptionChecker interface {
	Exists(ctx context.Context, followerID, authorID int64) (bool, error)
}

// PublishNotifier fans a freshly published recipe out to the author's
// followers. Optional; a nil notifier disables the feed.
type PublishNotifier interface {
	RecipePublished(ctx context.Context, recipe *domain.Recipe)
}
