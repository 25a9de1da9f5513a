package auth

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"recipehub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

type MockSubscriptionChecker struct {
	mock.Mock
}

func (m *MockSubscriptionChecker) Exists(ctx context.Context, followerID, authorID int64) (bool, error) {
	args := m.Called(ctx, followerID, authorID)
	return args.Bool(0), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID int64, isAdmin bool) (string, error) {
	args := m.Called(userID, isAdmin)
	return args.String(0), args.Error(1)
}

func TestService_Signup_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSubs := new(MockSubscriptionChecker)
	mockJWT := new(MockTokenIssuer)

	mockUsers.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(false, nil)
	mockUsers.On("ExistsByUsername", mock.Anything, "alice").Return(false, nil)
	mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockJWT.On("GenerateToken", int64(999), false).Return("token123", nil)

	service := NewService(mockUsers, mockSubs, mockJWT)

	user, token, err := service.Signup(context.Background(), SignupRequest{
		Email:     "alice@example.com",
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Baker",
		Password:  "Password123!",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token123", token)
	assert.Equal(t, "alice", user.Username)
	// The stored hash verifies against the original password
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Password123!")))
	mockUsers.AssertExpectations(t)
}

func TestService_Signup_EmailTaken(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSubs := new(MockSubscriptionChecker)
	mockJWT := new(MockTokenIssuer)

	mockUsers.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	service := NewService(mockUsers, mockSubs, mockJWT)

	_, _, err := service.Signup(context.Background(), SignupRequest{
		Email:    "taken@example.com",
		Username: "alice",
		Password: "Password123!",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	mockUsers.AssertNotCalled(t, "Create")
}

func TestService_Signup_UsernameTaken(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSubs := new(MockSubscriptionChecker)
	mockJWT := new(MockTokenIssuer)

	mockUsers.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(false, nil)
	mockUsers.On("ExistsByUsername", mock.Anything, "taken").Return(true, nil)

	service := NewService(mockUsers, mockSubs, mockJWT)

	_, _, err := service.Signup(context.Background(), SignupRequest{
		Email:    "alice@example.com",
		Username: "taken",
		Password: "Password123!",
	})

	assert.ErrorIs(t, err, ErrUsernameTaken)
	mockUsers.AssertNotCalled(t, "Create")
}

func TestService_Login_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSubs := new(MockSubscriptionChecker)
	mockJWT := new(MockTokenIssuer)

	hash, _ := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.DefaultCost)
	mockUsers.On("GetByEmail", mock.Anything, "alice@example.com").Return(&domain.User{
		ID:           5,
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}, nil)
	mockJWT.On("GenerateToken", int64(5), false).Return("token123", nil)

	service := NewService(mockUsers, mockSubs, mockJWT)

	token, err := service.Login(context.Background(), LoginRequest{
		Email:    "alice@example.com",
		Password: "Password123!",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token123", token)
}

func TestService_Login_WrongPassword(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSubs := new(MockSubscriptionChecker)
	mockJWT := new(MockTokenIssuer)

	hash, _ := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.DefaultCost)
	mockUsers.On("GetByEmail", mock.Anything, "alice@example.com").Return(&domain.User{
		ID:           5,
		PasswordHash: string(hash),
	}, nil)

	service := NewService(mockUsers, mockSubs, mockJWT)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "alice@example.com",
		Password: "not-the-password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	mockJWT.AssertNotCalled(t, "GenerateToken")
}

func TestService_Login_UnknownEmail(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSubs := new(MockSubscriptionChecker)
	mockJWT := new(MockTokenIssuer)

	mockUsers.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockUsers, mockSubs, mockJWT)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_GetUser_ResolvesSubscription(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSubs := new(MockSubscriptionChecker)
	mockJWT := new(MockTokenIssuer)

	mockUsers.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Username: "chef"}, nil)
	mockSubs.On("Exists", mock.Anything, int64(1), int64(2)).Return(true, nil)

	service := NewService(mockUsers, mockSubs, mockJWT)

	resp, err := service.GetUser(context.Background(), 1, 2)

	assert.NoError(t, err)
	assert.True(t, resp.IsSubscribed)
}

func TestService_GetUser_SelfNeverSubscribed(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSubs := new(MockSubscriptionChecker)
	mockJWT := new(MockTokenIssuer)

	mockUsers.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)

	service := NewService(mockUsers, mockSubs, mockJWT)

	resp, err := service.GetUser(context.Background(), 1, 1)

	assert.NoError(t, err)
	assert.False(t, resp.IsSubscribed)
	mockSubs.AssertNotCalled(t, "Exists")
}
