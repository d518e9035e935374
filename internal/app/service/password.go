package service

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"tasktracker/internal/core/domain"
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// DefaultBcryptCost keeps hashing noticeable but fast enough for a local tool.
const DefaultBcryptCost = 12

// PasswordHasher hashes new passwords and verifies stored ones. Stored values
// that are not bcrypt hashes were written by older clients and are compared
// verbatim.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash rejects passwords longer than MaxPasswordBytes with domain.ErrInvalidUser.
func (h *PasswordHasher) Hash(password string) (string, error) {
	if !validPassword(password) {
		return "", domain.ErrInvalidUser
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify reports whether password matches stored, and whether stored should
// be replaced by a hash.
func (h *PasswordHasher) Verify(password, stored string) (ok bool, needsRehash bool) {
	if IsHashed(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil, false
	}
	ok = subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
	return ok, ok
}

// validPassword measures bytes, not runes.
func validPassword(password string) bool {
	return password != "" && len(password) <= MaxPasswordBytes
}

// IsHashed reports whether value is a bcrypt hash.
func IsHashed(value string) bool {
	_, err := bcrypt.Cost([]byte(value))
	return err == nil
}
