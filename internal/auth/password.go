// Package auth provides credential hashing and bearer-token issuance.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt hash from a plaintext password. The
// salt is embedded in the returned string, so verification needs no side
// storage.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
// Malformed stored hashes simply fail verification.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
