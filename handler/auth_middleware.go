package handler

import (
	"context"
	"errors"
	"faction-api/common"
	"faction-api/service"
	"net/http"
	"strings"
)

type contextKey string

const (
	UsernameKey  contextKey = "username"
	FactionIDKey contextKey = "factionID"
	RankKey      contextKey = "rank"
)

// AuthMiddleware gates a route behind a bearer access token. It never
// touches the refresh-token ledger and never renews tokens on the caller's
// behalf; expired tokens get a 401 and the client must use /api/refresh.
func AuthMiddleware(auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				err := common.NewAppError(http.StatusUnauthorized, "Authorization header is required", nil)
				err.Send(w)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				err := common.NewAppError(http.StatusUnauthorized, "Invalid authorization header format", nil)
				err.Send(w)
				return
			}

			claims, err := auth.ParseAccessToken(headerParts[1])
			if err != nil {
				message := "Invalid token"
				if errors.Is(err, service.ErrTokenExpired) {
					message = "Token has expired"
				}
				appErr := common.NewAppError(http.StatusUnauthorized, message, err)
				appErr.Send(w)
				return
			}

			ctx := context.WithValue(r.Context(), UsernameKey, claims.Username)
			ctx = context.WithValue(ctx, FactionIDKey, claims.FactionID)
			ctx = context.WithValue(ctx, RankKey, claims.Rank)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
