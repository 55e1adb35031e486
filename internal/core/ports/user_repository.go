package ports

import (
	"context"

	"github.com/campushub/campus-portal/internal/core/domain"
)

// UserRepository defines the persistence interface for user records.
// Implementations must report not-found as domain.ErrUserNotFound and a
// uniqueness violation on insert/update as domain.ErrUserExists; anything
// else is a storage failure and propagates wrapped.
//
// The store's unique constraints on username and email are the
// authoritative uniqueness guarantee; callers may pre-check, but only the
// insert can decide.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByUsernameOrEmail resolves a login identifier against either
	// unique field. The identifier is matched as stored (lower-cased).
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
