// file: service/token.go

package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"faction-api/logger"
	"faction-api/model"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenInvalid   = errors.New("token invalid")
)

// refreshTokenBytes is the entropy of a raw refresh token. The token
// carries no structure; leaking a stored digest reveals nothing about the
// raw value.
const refreshTokenBytes = 40

// GenerateAccessToken mints a signed, self-contained access token for the
// user, valid for the configured TTL.
func (s *AuthService) GenerateAccessToken(user *model.User) (string, error) {
	now := time.Now()
	claims := &model.AppClaims{
		Username:  user.Username,
		FactionID: user.FactionID,
		Rank:      user.Rank,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			// iat has second resolution; the jti keeps two tokens minted
			// within the same second distinct.
			ID: uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		logger.Log.WithError(err).WithField("username", user.Username).Error("Failed to sign access token")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}

	return tokenString, nil
}

// ParseAccessToken verifies signature and expiry statelessly and returns
// the embedded claims. The error reports which check failed.
func (s *AuthService) ParseAccessToken(tokenString string) (*model.AppClaims, error) {
	claims := &model.AppClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, ErrTokenInvalid
		}
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// GenerateRefreshToken returns a high-entropy opaque token, hex-encoded.
func GenerateRefreshToken() (string, error) {
	raw := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return hex.EncodeToString(raw), nil
}

// HashRefreshToken computes the digest persisted in the ledger. SHA-256 is
// deterministic so lookups can match by exact digest.
func HashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
