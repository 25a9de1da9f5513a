package auth

import (
	"context"

	"recipehub/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, int64, error)
}

type TokenIssuer interface {
	GenerateToken(userID int64, isAdmin bool) (string, error)
}

// SubscriptionChecker answers "does the acting user follow this author",
// used to fill is_subscribed on user representations.
type SubscriptionChecker interface {
	Exists(ctx context.Context, followerID, authorID int64) (bool, error)
}
