package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"recipehub/internal/domain"
)

type Service struct {
	users UserRepository
	subs  SubscriptionChecker
	jwt   TokenIssuer
}

func NewService(users UserRepository, subs SubscriptionChecker, jwt TokenIssuer) *Service {
	return &Service{users: users, subs: subs, jwt: jwt}
}

// Signup registers a new user. Email and username are unique across the
// platform; display names stay mutable, identity fields do not.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*domain.User, string, error) {
	taken, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if taken {
		return nil, "", ErrEmailTaken
	}

	taken, err = s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, "", err
	}
	if taken {
		return nil, "", ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Email:        req.Email,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (string, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return "", ErrInvalidCredentials
	}

	return s.jwt.GenerateToken(user.ID, user.IsAdmin)
}

// GetUser returns a user representation with is_subscribed resolved against
// the acting user (0 means anonymous).
func (s *Service) GetUser(ctx context.Context, actorID, userID int64) (*UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	isSubscribed := false
	if actorID != 0 && actorID != user.ID {
		isSubscribed, err = s.subs.Exists(ctx, actorID, user.ID)
		if err != nil {
			return nil, err
		}
	}

	resp := ToUserResponse(user, isSubscribed)
	return &resp, nil
}

func (s *Service) ListUsers(ctx context.Context, actorID int64, limit, offset int) ([]UserResponse, int64, error) {
	users, total, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	out := make([]UserResponse, 0, len(users))
	for i := range users {
		isSubscribed := false
		if actorID != 0 && actorID != users[i].ID {
			isSubscribed, err = s.subs.Exists(ctx, actorID, users[i].ID)
			if err != nil {
				return nil, 0, err
			}
		}
		out = append(out, ToUserResponse(&users[i], isSubscribed))
	}
	return out, total, nil
}
