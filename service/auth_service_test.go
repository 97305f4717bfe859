// file: service/auth_service_test.go

package service

import (
	"context"
	"errors"
	"faction-api/model"
	"faction-api/repository"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) GetAllUsers(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.User), args.Error(1)
}
func (m *mockUserRepo) GetUsersByFactionID(ctx context.Context, factionID string) ([]*model.User, error) {
	args := m.Called(ctx, factionID)
	return args.Get(0).([]*model.User), args.Error(1)
}

type mockTokenRepo struct{ mock.Mock }

func (m *mockTokenRepo) Create(ctx context.Context, username, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, username, tokenHash, expiresAt)
	return args.Error(0)
}
func (m *mockTokenRepo) SweepExpired(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}
func (m *mockTokenRepo) Exists(ctx context.Context, username, tokenHash string) (bool, error) {
	args := m.Called(ctx, username, tokenHash)
	return args.Bool(0), args.Error(1)
}

func testUser(t *testing.T, authService *AuthService, password string) *model.User {
	t.Helper()
	hash, err := authService.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	return &model.User{
		Username:     "alice",
		PasswordHash: hash,
		FactionID:    "f1",
		Rank:         2,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockTokenRepo)
		authService := NewAuthService(userRepo, tokenRepo, testConfig())
		user := testUser(t, authService, "Secret1!")

		userRepo.On("GetUserByUsername", mock.Anything, "alice").Return(user, nil).Once()
		tokenRepo.On("Create", mock.Anything, "alice", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Once()

		accessToken, refreshToken, err := authService.Login(ctx, "alice", "Secret1!")

		assert.NoError(t, err)
		assert.NotEmpty(t, refreshToken)

		claims, err := authService.ParseAccessToken(accessToken)
		assert.NoError(t, err)
		assert.Equal(t, "alice", claims.Username)

		// The ledger must receive the digest, never the raw token.
		storedHash := tokenRepo.Calls[0].Arguments.String(2)
		assert.Equal(t, HashRefreshToken(refreshToken), storedHash)
		assert.NotEqual(t, refreshToken, storedHash)

		userRepo.AssertExpectations(t)
		tokenRepo.AssertExpectations(t)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockTokenRepo)
		authService := NewAuthService(userRepo, tokenRepo, testConfig())
		user := testUser(t, authService, "Secret1!")

		userRepo.On("GetUserByUsername", mock.Anything, "alice").Return(user, nil).Once()
		_, _, wrongPasswordErr := authService.Login(ctx, "alice", "wrong")

		userRepo.On("GetUserByUsername", mock.Anything, "nobody").Return(nil, repository.ErrUserNotFound).Once()
		_, _, unknownUserErr := authService.Login(ctx, "nobody", "whatever")

		assert.ErrorIs(t, wrongPasswordErr, ErrInvalidCredentials)
		assert.ErrorIs(t, unknownUserErr, ErrInvalidCredentials)
		assert.Equal(t, wrongPasswordErr.Error(), unknownUserErr.Error())
		tokenRepo.AssertNotCalled(t, "Create")
	})

	t.Run("blocked user is rejected with the same error", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockTokenRepo)
		authService := NewAuthService(userRepo, tokenRepo, testConfig())
		user := testUser(t, authService, "Secret1!")
		user.Blocked = true

		userRepo.On("GetUserByUsername", mock.Anything, "alice").Return(user, nil).Once()

		_, _, err := authService.Login(ctx, "alice", "Secret1!")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		tokenRepo.AssertNotCalled(t, "Create")
	})

	t.Run("store failure propagates", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockTokenRepo)
		authService := NewAuthService(userRepo, tokenRepo, testConfig())

		storeErr := errors.New("store unavailable")
		userRepo.On("GetUserByUsername", mock.Anything, "alice").Return(nil, storeErr).Once()

		_, _, err := authService.Login(ctx, "alice", "Secret1!")

		assert.ErrorIs(t, err, storeErr)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		authService := NewAuthService(userRepo, new(mockTokenRepo), testConfig())

		userRepo.On("GetUserByUsername", mock.Anything, "bob").Return(nil, repository.ErrUserNotFound).Once()
		userRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil).Once()

		id, err := authService.Register(ctx, "bob", "Secret1!", "f2", 0)

		assert.NoError(t, err)
		assert.Equal(t, "bob", id)

		created := userRepo.Calls[1].Arguments.Get(1).(*model.User)
		assert.False(t, created.Blocked)
		assert.NotEqual(t, "Secret1!", created.PasswordHash)
		assert.True(t, authService.CheckPasswordHash("Secret1!", created.PasswordHash))
		userRepo.AssertExpectations(t)
	})

	t.Run("duplicate username conflicts, never overwrites", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		authService := NewAuthService(userRepo, new(mockTokenRepo), testConfig())
		existing := testUser(t, authService, "Secret1!")

		userRepo.On("GetUserByUsername", mock.Anything, "alice").Return(existing, nil).Once()

		_, err := authService.Register(ctx, "alice", "Another1!", "f1", 0)

		assert.ErrorIs(t, err, ErrDuplicateUsername)
		userRepo.AssertNotCalled(t, "CreateUser")
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token yields a new access token", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockTokenRepo)
		authService := NewAuthService(userRepo, tokenRepo, testConfig())
		user := testUser(t, authService, "Secret1!")

		refreshToken, err := GenerateRefreshToken()
		assert.NoError(t, err)

		tokenRepo.On("SweepExpired", mock.Anything, "alice").Return(nil).Once()
		tokenRepo.On("Exists", mock.Anything, "alice", HashRefreshToken(refreshToken)).Return(true, nil).Once()
		userRepo.On("GetUserByUsername", mock.Anything, "alice").Return(user, nil).Once()

		accessToken, err := authService.Refresh(ctx, "alice", refreshToken)

		assert.NoError(t, err)
		claims, err := authService.ParseAccessToken(accessToken)
		assert.NoError(t, err)
		assert.Equal(t, "alice", claims.Username)
		tokenRepo.AssertExpectations(t)
	})

	t.Run("sweep runs before validation", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockTokenRepo)
		authService := NewAuthService(userRepo, tokenRepo, testConfig())

		tokenRepo.On("SweepExpired", mock.Anything, "alice").Return(nil).Once()
		tokenRepo.On("Exists", mock.Anything, "alice", mock.AnythingOfType("string")).Return(false, nil).Once()

		_, err := authService.Refresh(ctx, "alice", "some-raw-token")

		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
		assert.Equal(t, "SweepExpired", tokenRepo.Calls[0].Method)
		assert.Equal(t, "Exists", tokenRepo.Calls[1].Method)
	})

	t.Run("no live match", func(t *testing.T) {
		tokenRepo := new(mockTokenRepo)
		authService := NewAuthService(new(mockUserRepo), tokenRepo, testConfig())

		tokenRepo.On("SweepExpired", mock.Anything, "alice").Return(nil).Once()
		tokenRepo.On("Exists", mock.Anything, "alice", mock.AnythingOfType("string")).Return(false, nil).Once()

		_, err := authService.Refresh(ctx, "alice", "stale-token")

		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})
}
