package subscription

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"recipehub/internal/domain"
	"recipehub/internal/repository"
)

type Service struct {
	subs    SubscriptionRepository
	users   UserGetter
	recipes RecipeSource
}

func NewService(subs SubscriptionRepository, users UserGetter, recipes RecipeSource) *Service {
	return &Service{subs: subs, users: users, recipes: recipes}
}

// Subscribe creates a follow edge from the acting user to the author.
// The existence check is the friendly fast path; the unique index on
// (follower_id, author_id) decides races, and its violation maps to the same
// sentinel. No reciprocal edge is ever created.
func (s *Service) Subscribe(ctx context.Context, followerID, authorID int64, recipesLimit int) (*AuthorResponse, error) {
	if followerID == authorID {
		return nil, ErrSelfSubscribe
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	exists, err := s.subs.Exists(ctx, followerID, authorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadySubscribed
	}

	sub := &domain.Subscription{FollowerID: followerID, AuthorID: authorID}
	if err := s.subs.Create(ctx, sub); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadySubscribed
		}
		return nil, err
	}

	return s.buildAuthor(ctx, author, recipesLimit)
}

func (s *Service) Unsubscribe(ctx context.Context, followerID, authorID int64) error {
	if _, err := s.users.GetByID(ctx, authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	deleted, err := s.subs.Delete(ctx, followerID, authorID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotSubscribed
	}
	return nil
}

// ListFollowed returns the authors the user follows, oldest-followed first,
// each annotated with recipes capped at recipesLimit (0 = unlimited) and the
// author's total recipe count.
func (s *Service) ListFollowed(ctx context.Context, followerID int64, limit, offset, recipesLimit int) ([]AuthorResponse, int64, error) {
	subs, total, err := s.subs.ListByFollower(ctx, followerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	authors := make([]AuthorResponse, 0, len(subs))
	for i := range subs {
		author := subs[i].Author
		if author == nil {
			author, err = s.users.GetByID(ctx, subs[i].AuthorID)
			if err != nil {
				return nil, 0, err
			}
		}
		resp, err := s.buildAuthor(ctx, author, recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		authors = append(authors, *resp)
	}
	return authors, total, nil
}

func (s *Service) buildAuthor(ctx context.Context, author *domain.User, recipesLimit int) (*AuthorResponse, error) {
	recipes, err := s.recipes.ListByAuthor(ctx, author.ID, recipesLimit)
	if err != nil {
		return nil, err
	}
	count, err := s.recipes.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	briefs := make([]RecipeBrief, 0, len(recipes))
	for i := range recipes {
		briefs = append(briefs, ToRecipeBrief(&recipes[i]))
	}

	return &AuthorResponse{
		ID:           author.ID,
		Email:        author.Email,
		Username:     author.Username,
		FirstName:    author.FirstName,
		LastName:     author.LastName,
		IsSubscribed: true,
		Recipes:      briefs,
		RecipesCount: count,
	}, nil
}
