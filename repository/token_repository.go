// file: repository/token_repository.go

package repository

import (
	"context"
	"encoding/json"
	"faction-api/logger"
	"faction-api/model"
	"faction-api/store"
	"time"

	"github.com/sirupsen/logrus"
)

const tokensCollection = "RefreshTokens"

// ITokenRepository defines the contract for the refresh-token ledger.
type ITokenRepository interface {
	Create(ctx context.Context, username, tokenHash string, expiresAt time.Time) error
	SweepExpired(ctx context.Context, username string) error
	Exists(ctx context.Context, username, tokenHash string) (bool, error)
}

// TokenRepository implements ITokenRepository on the document store. Each
// user's records live under RefreshTokens/<username>/, one document per
// issued token, so sessions on multiple devices coexist.
type TokenRepository struct {
	store store.Store
}

func NewTokenRepository(s store.Store) *TokenRepository {
	return &TokenRepository{store: s}
}

func ledgerCollection(username string) string {
	return tokensCollection + "/" + username
}

// Create appends a new ledger record. It never overwrites siblings; every
// record gets a fresh key.
func (r *TokenRepository) Create(ctx context.Context, username, tokenHash string, expiresAt time.Time) error {
	log := logger.Log.WithFields(logrus.Fields{
		"username":   username,
		"expires_at": expiresAt,
	})
	log.Info("Storing refresh token record")

	collection := ledgerCollection(username)
	key := r.store.GenerateUniqueKey(collection)
	record := model.RefreshTokenRecord{
		TokenHash: tokenHash,
		ExpiresAt: expiresAt.UnixMilli(),
	}

	if err := r.store.Set(ctx, collection+"/"+key, record); err != nil {
		log.WithError(err).Error("Failed to store refresh token record")
		return err
	}
	return nil
}

// SweepExpired deletes every ledger record for the user whose expiry is in
// the past or missing. This lazy sweep is the only garbage collection the
// ledger gets; it must run before any validation to bound ledger growth.
func (r *TokenRepository) SweepExpired(ctx context.Context, username string) error {
	collection := ledgerCollection(username)
	docs, err := r.store.List(ctx, collection)
	if err != nil {
		return err
	}

	now := time.Now().UnixMilli()
	swept := 0
	for key, raw := range docs {
		record := model.RefreshTokenRecord{}
		if err := json.Unmarshal(raw, &record); err != nil || record.ExpiresAt <= now {
			if err := r.store.Delete(ctx, collection+"/"+key); err != nil {
				return err
			}
			swept++
		}
	}

	if swept > 0 {
		logger.Log.WithFields(logrus.Fields{
			"username": username,
			"swept":    swept,
		}).Info("Evicted expired refresh token records")
	}
	return nil
}

// Exists reports whether a live ledger record carries exactly this digest.
// Callers sweep first, so any remaining record is unexpired.
func (r *TokenRepository) Exists(ctx context.Context, username, tokenHash string) (bool, error) {
	docs, err := r.store.List(ctx, ledgerCollection(username))
	if err != nil {
		return false, err
	}

	for _, raw := range docs {
		record := model.RefreshTokenRecord{}
		if err := json.Unmarshal(raw, &record); err != nil {
			continue
		}
		if record.TokenHash == tokenHash {
			return true, nil
		}
	}
	return false, nil
}
