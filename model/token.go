// file: model/token.go

package model

// RefreshTokenRecord is the server-side trace of one issued refresh token,
// stored at RefreshTokens/<username>/<key>. Only the SHA-256 digest of the
// raw token is persisted; the raw value is shown to the client exactly once.
type RefreshTokenRecord struct {
	TokenHash string `json:"tokenHash"`
	ExpiresAt int64  `json:"expiresAt"` // epoch milliseconds
}
