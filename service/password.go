package service

import (
	"faction-api/logger"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt digest at the configured cost. The
// salt and cost are embedded in the digest, so verification needs nothing
// beyond the digest itself.
func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash verifies a plaintext password against a stored digest
// in constant time. A mismatch — or a structurally invalid digest — simply
// yields false.
func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
