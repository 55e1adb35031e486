package ports

import (
	"context"

	"github.com/campushub/campus-portal/internal/core/domain"
)

// SessionManager issues, validates, and revokes opaque session tokens.
// Tokens are the only client-held login state; every authorization decision
// goes through Validate.
type SessionManager interface {
	Create(ctx context.Context, userID, role string) (string, error)
	// Validate returns the session identity, or domain.ErrUnauthorized for
	// an absent or expired token. A successful validation never extends the
	// session's expiry.
	Validate(ctx context.Context, token string) (domain.SessionInfo, error)
	// Destroy is idempotent: revoking an unknown token succeeds.
	Destroy(ctx context.Context, token string) error
	DestroyAllForUser(ctx context.Context, userID, keep string) (int, error)
}
