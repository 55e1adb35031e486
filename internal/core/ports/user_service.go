package ports

import (
	"context"

	"github.com/campushub/campus-portal/internal/core/domain"
)

// ProfileUpdateInput is the owner-editable subset of a user record. Nil
// fields are left unchanged. Password, when set, is plaintext to be
// re-hashed by the service.
type ProfileUpdateInput struct {
	Username       *string
	Email          *string
	Password       *string
	DisplayName    *string
	Faculty        *string
	Gender         *string
	StudentID      *string
	ProfilePicture *string
}

// AdminCreateUserInput is the privileged creation path: unlike public
// signup it may set the role, including admin.
type AdminCreateUserInput struct {
	Username    string
	Email       string
	Password    string
	Role        string
	DisplayName string
	Faculty     string
	Gender      string
	StudentID   string
}

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, in ProfileUpdateInput) (*domain.User, error)

	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, in AdminCreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, in ProfileUpdateInput) (*domain.User, error)
}
