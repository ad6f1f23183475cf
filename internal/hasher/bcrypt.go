// Package hasher hashes and verifies passwords with bcrypt.
package hasher

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the ten salt rounds accounts have always been hashed with.
const DefaultCost = 10

// BcryptHasher produces salted bcrypt hashes. Every Hash call draws a fresh salt.
type BcryptHasher struct {
	cost int
}

// New creates a hasher with the given cost. Costs outside bcrypt's
// accepted range fall back to DefaultCost.
func New(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of password. Empty passwords are accepted;
// passwords longer than 72 bytes return bcrypt.ErrPasswordTooLong.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether hash was produced from password.
// A missing or malformed hash never matches.
func (h *BcryptHasher) Verify(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
