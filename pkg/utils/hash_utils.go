package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost matches the cost the seeded accounts were hashed with.
const DefaultBcryptCost = 12

// HashPassword hashes a password with bcrypt at the given cost. Costs outside
// the bcrypt range fall back to DefaultBcryptCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash compares a plaintext password against a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
