package service

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/campushub/campus-portal/internal/api/metrics"
	"github.com/campushub/campus-portal/internal/core/domain"
)

// maxPasswordBytes is bcrypt's input ceiling; longer inputs are rejected up
// front rather than silently truncated.
const maxPasswordBytes = 72

// DefaultBcryptCost matches the cost the user base was originally hashed
// with. Tunable via config, fixed per process.
const DefaultBcryptCost = 10

// PasswordHasher wraps bcrypt with a fixed cost factor. Each Hash call
// salts independently, so equal inputs produce distinct digests.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher clamps cost into bcrypt's valid range.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash transforms plaintext into a storable digest. Empty or over-long
// input fails with domain.ErrInvalidInput.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" || len(plaintext) > maxPasswordBytes {
		return "", domain.ErrInvalidInput
	}

	start := time.Now()
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	metrics.PasswordHashDuration.WithLabelValues("hash").Observe(time.Since(start).Seconds())
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify recomputes with the salt embedded in digest and compares in
// constant time. A wrong password returns (false, nil); only a structurally
// malformed digest is an error.
func (h *PasswordHasher) Verify(plaintext, digest string) (bool, error) {
	start := time.Now()
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	metrics.PasswordHashDuration.WithLabelValues("verify").Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, domain.ErrCorruptDigest
	}
}
