package ports

import (
	"context"

	"github.com/campushub/campus-portal/internal/core/domain"
)

// SignupInput carries the public registration fields. There is no role
// field: every public signup creates a least-privileged user. Admins are
// created only through the privileged admin surface.
type SignupInput struct {
	Username    string
	Email       string
	Password    string
	DisplayName string
	Faculty     string
	Gender      string
	StudentID   string
}

// LoginResult is the minimal identity returned on a successful login; the
// token travels to the client as an HTTP-only cookie.
type LoginResult struct {
	Token  string
	UserID string
	Role   string
}

type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*domain.User, error)
	// Login resolves identifier against username or email. Both an unknown
	// identifier and a wrong password fail with domain.ErrInvalidCredentials.
	Login(ctx context.Context, identifier, password string) (*LoginResult, error)
	// Logout always succeeds from the caller's perspective.
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
	// ChangePassword verifies the current password, re-hashes the new one,
	// and revokes every session of the user except the one making the
	// change (identified by token).
	ChangePassword(ctx context.Context, userID, token, current, next string) error
}
