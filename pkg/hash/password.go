package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt cost 12: balance between security and login latency
const bcryptCost = 12

// HashPassword returns the bcrypt digest of a plaintext password.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// VerifyPassword reports whether password matches digest.
// A malformed digest just yields false; bcrypt comparison is constant-time.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
