package service

import (
	"context"
	"errors"
	"faction-api/config"
	"faction-api/logger"
	"faction-api/model"
	"faction-api/repository"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrDuplicateUsername   = errors.New("username already taken")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// dummyHash is a valid bcrypt digest compared against when the user does
// not exist, so the login path costs the same whether the username is
// known or not.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService orchestrates login, registration and token renewal. All
// configuration is captured at construction; nothing here reads mutable
// globals after startup.
type AuthService struct {
	userRepo   repository.IUserRepository
	tokenRepo  repository.ITokenRepository
	jwtSecret  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	bcryptCost int
}

func NewAuthService(userRepo repository.IUserRepository, tokenRepo repository.ITokenRepository, cfg config.Config) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtSecret:  []byte(cfg.JWT.SecretKey),
		accessTTL:  time.Duration(cfg.JWT.AccessTTLMinutes) * time.Minute,
		refreshTTL: time.Duration(cfg.JWT.RefreshTTLDays) * 24 * time.Hour,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Login verifies the credentials and, on success, returns a fresh access
// token together with a raw refresh token whose digest has been persisted
// to the ledger. Unknown usernames, wrong passwords and blocked accounts
// are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, string, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Burn a hash comparison so the response timing matches the
			// wrong-password path.
			bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}

	if !s.CheckPasswordHash(password, user.PasswordHash) {
		return "", "", ErrInvalidCredentials
	}
	if user.Blocked {
		return "", "", ErrInvalidCredentials
	}

	accessToken, err := s.GenerateAccessToken(user)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := GenerateRefreshToken()
	if err != nil {
		return "", "", err
	}

	expiresAt := time.Now().Add(s.refreshTTL)
	if err := s.tokenRepo.Create(ctx, user.Username, HashRefreshToken(refreshToken), expiresAt); err != nil {
		return "", "", err
	}

	logger.Log.WithField("username", user.Username).Info("User logged in")
	return accessToken, refreshToken, nil
}

// Register creates a new user account. The duplicate check is a plain
// read before the write; two racing registrations for the same username
// can both pass it, last writer wins.
func (s *AuthService) Register(ctx context.Context, username, password, factionID string, rank int) (string, error) {
	_, err := s.userRepo.GetUserByUsername(ctx, username)
	if err == nil {
		return "", ErrDuplicateUsername
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return "", err
	}

	passwordHash, err := s.HashPassword(password)
	if err != nil {
		return "", err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: passwordHash,
		FactionID:    factionID,
		Rank:         rank,
		Blocked:      false,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return "", err
	}

	logger.Log.WithField("username", username).Info("User registered")
	return username, nil
}

// Refresh validates a presented refresh token against the ledger and mints
// a new access token. The refresh token itself is not rotated; it stays
// valid until its original expiry.
func (s *AuthService) Refresh(ctx context.Context, username, refreshToken string) (string, error) {
	if err := s.tokenRepo.SweepExpired(ctx, username); err != nil {
		return "", err
	}

	ok, err := s.tokenRepo.Exists(ctx, username, HashRefreshToken(refreshToken))
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidRefreshToken
		}
		return "", err
	}

	return s.GenerateAccessToken(user)
}
