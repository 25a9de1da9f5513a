package subscription

import (
	"context"

	"recipehub/internal/domain"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, s *domain.Subscription) error
	Delete(ctx context.Context, followerID, authorID int64) (bool, error)
	Exists(ctx context.Context, followerID, authorID int64) (bool, error)
	ListByFollower(ctx context.Context, followerID int64, limit, offset int) ([]domain.Subscription, int64, error)
}

type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// RecipeSource supplies the followed author's recipes for the subscription
// representations (capped list plus total count).
type RecipeSource interface {
	ListByAuthor(ctx context.Context, authorID int64, limit int) ([]domain.Recipe, error)
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
}
