// file: handler/auth_middleware_test.go

package handler

import (
	"faction-api/config"
	"faction-api/model"
	"faction-api/service"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func testAuthService(ttlMinutes int) *service.AuthService {
	cfg := config.Config{}
	cfg.JWT.SecretKey = "middleware-test-secret"
	cfg.JWT.AccessTTLMinutes = ttlMinutes
	cfg.JWT.RefreshTTLDays = 30
	cfg.Auth.BcryptCost = bcrypt.MinCost
	return service.NewAuthService(nil, nil, cfg)
}

func runMiddleware(t *testing.T, authHeader string, ttlMinutes int) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	authService := testAuthService(ttlMinutes)
	reached := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		assert.Equal(t, "alice", r.Context().Value(UsernameKey))
		assert.Equal(t, "f1", r.Context().Value(FactionIDKey))
		assert.Equal(t, 3, r.Context().Value(RankKey))
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/api/membrifactiune", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()

	AuthMiddleware(authService)(next).ServeHTTP(rr, req)
	return rr, reached
}

func TestAuthMiddleware(t *testing.T) {
	user := &model.User{Username: "alice", FactionID: "f1", Rank: 3}

	t.Run("missing header", func(t *testing.T) {
		rr, reached := runMiddleware(t, "", 30)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Authorization header is required")
		assert.False(t, reached)
	})

	t.Run("header with a single part", func(t *testing.T) {
		rr, reached := runMiddleware(t, "Bearer", 30)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid authorization header format")
		assert.False(t, reached)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		rr, reached := runMiddleware(t, "Basic abc123", 30)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, reached)
	})

	t.Run("garbage token", func(t *testing.T) {
		rr, reached := runMiddleware(t, "Bearer not.a.jwt", 30)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, reached)
	})

	t.Run("expired but correctly signed token", func(t *testing.T) {
		expired := testAuthService(-1)
		tokenString, err := expired.GenerateAccessToken(user)
		assert.NoError(t, err)

		rr, reached := runMiddleware(t, "Bearer "+tokenString, 30)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Token has expired")
		assert.False(t, reached)
	})

	t.Run("valid token injects identity into context", func(t *testing.T) {
		authService := testAuthService(30)
		tokenString, err := authService.GenerateAccessToken(user)
		assert.NoError(t, err)

		rr, reached := runMiddleware(t, "Bearer "+tokenString, 30)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, reached)
	})
}
