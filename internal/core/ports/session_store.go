package ports

import (
	"context"
	"time"

	"github.com/campushub/campus-portal/internal/core/domain"
)

// SessionStore persists session records keyed by their opaque token.
// Implementations must report an absent token as domain.ErrUnauthorized and
// expire records no later than the TTL given at Put. Delete of an absent
// token is not an error.
type SessionStore interface {
	Put(ctx context.Context, session domain.Session, ttl time.Duration) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
	// DeleteAllForUser removes every session belonging to userID except the
	// token given as keep (pass "" to remove all). Returns the number of
	// sessions removed.
	DeleteAllForUser(ctx context.Context, userID, keep string) (int, error)
}
