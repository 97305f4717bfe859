// file: service/token_test.go

package service

import (
	"encoding/hex"
	"faction-api/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokens_AccessTokenRoundTrip(t *testing.T) {
	authService := NewAuthService(nil, nil, testConfig())
	user := &model.User{Username: "alice", FactionID: "f1", Rank: 3}

	tokenString, err := authService.GenerateAccessToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := authService.ParseAccessToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "f1", claims.FactionID)
	assert.Equal(t, 3, claims.Rank)
}

func TestTokens_ParseAccessToken_Expired(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.AccessTTLMinutes = -1 // already lapsed at issue time
	authService := NewAuthService(nil, nil, cfg)

	tokenString, err := authService.GenerateAccessToken(&model.User{Username: "alice"})
	assert.NoError(t, err)

	_, err = authService.ParseAccessToken(tokenString)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokens_ParseAccessToken_WrongSecret(t *testing.T) {
	authService := NewAuthService(nil, nil, testConfig())

	tokenString, err := authService.GenerateAccessToken(&model.User{Username: "alice"})
	assert.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.JWT.SecretKey = "a-different-secret"
	otherService := NewAuthService(nil, nil, otherCfg)

	_, err = otherService.ParseAccessToken(tokenString)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokens_ParseAccessToken_Malformed(t *testing.T) {
	authService := NewAuthService(nil, nil, testConfig())

	_, err := authService.ParseAccessToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestTokens_GenerateRefreshToken(t *testing.T) {
	first, err := GenerateRefreshToken()
	assert.NoError(t, err)

	raw, err := hex.DecodeString(first)
	assert.NoError(t, err)
	assert.Len(t, raw, refreshTokenBytes)

	second, err := GenerateRefreshToken()
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestTokens_HashRefreshToken(t *testing.T) {
	token, err := GenerateRefreshToken()
	assert.NoError(t, err)

	hash := HashRefreshToken(token)
	assert.Equal(t, hash, HashRefreshToken(token), "digest must be deterministic")
	assert.NotEqual(t, token, hash)
	assert.Len(t, hash, 64) // SHA-256 hex
}
