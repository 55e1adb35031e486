package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/campus-portal/internal/api/metrics"
	"github.com/campushub/campus-portal/internal/core/domain"
	"github.com/campushub/campus-portal/internal/core/ports"
)

// UserService implements profile self-service and the admin user surface.
type UserService struct {
	users    ports.UserRepository
	sessions ports.SessionManager
	hasher   *PasswordHasher
	log      zerolog.Logger
}

func NewUserService(users ports.UserRepository, sessions ports.SessionManager, hasher *PasswordHasher, log zerolog.Logger) *UserService {
	return &UserService{users: users, sessions: sessions, hasher: hasher, log: log}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordDigest = ""
	return user, nil
}

// UpdateProfile applies an owner-initiated partial update. Username and
// email changes are canonicalized and re-checked for uniqueness (the unique
// index has the final word). A password change re-hashes and revokes all
// sessions of the user; profile updates carry no session token, so none
// can be kept.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in ports.ProfileUpdateInput) (*domain.User, error) {
	return s.applyUpdate(ctx, userID, in, false)
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordDigest = ""
	}
	return users, nil
}

// CreateUser is the privileged creation path. Unlike public signup it may
// assign any valid role; it is reachable only behind the admin gate.
func (s *UserService) CreateUser(ctx context.Context, in ports.AdminCreateUserInput) (*domain.User, error) {
	username := strings.ToLower(strings.TrimSpace(in.Username))
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if err := validateCredentialFields(username, email, in.Password); err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) || !domain.ValidGender(in.Gender) {
		return nil, domain.ErrInvalidInput
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.users.Insert(ctx, &domain.User{
		Username:       username,
		Email:          email,
		PasswordDigest: digest,
		Role:           role,
		DisplayName:    in.DisplayName,
		Faculty:        in.Faculty,
		Gender:         in.Gender,
		StudentID:      in.StudentID,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues("admin").Inc()
	created.PasswordDigest = ""
	return created, nil
}

// UpdateUser is the admin-initiated variant of UpdateProfile. The patch
// carries no role field: role assignment happens only at creation time
// through CreateUser, so an admin edit can never silently escalate an
// existing account.
func (s *UserService) UpdateUser(ctx context.Context, id string, in ports.ProfileUpdateInput) (*domain.User, error) {
	return s.applyUpdate(ctx, id, in, true)
}

func (s *UserService) applyUpdate(ctx context.Context, userID string, in ports.ProfileUpdateInput, byAdmin bool) (*domain.User, error) {
	patch := domain.UserPatch{
		DisplayName:    in.DisplayName,
		Faculty:        in.Faculty,
		StudentID:      in.StudentID,
		ProfilePicture: in.ProfilePicture,
	}

	if in.Gender != nil {
		if !domain.ValidGender(*in.Gender) {
			return nil, domain.ErrInvalidInput
		}
		patch.Gender = in.Gender
	}
	if in.Username != nil {
		username := strings.ToLower(strings.TrimSpace(*in.Username))
		if len(username) < minUsernameLen || len(username) > maxUsernameLen {
			return nil, domain.ErrInvalidInput
		}
		patch.Username = &username
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if len(email) > maxEmailLen || !emailPattern.MatchString(email) {
			return nil, domain.ErrInvalidInput
		}
		patch.Email = &email
	}
	if in.Password != nil {
		if len(*in.Password) < minPasswordLen {
			return nil, domain.ErrInvalidInput
		}
		digest, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordDigest = &digest
	}

	updated, err := s.users.Update(ctx, userID, patch)
	if err != nil {
		return nil, err
	}

	if patch.PasswordDigest != nil {
		if _, err := s.sessions.DestroyAllForUser(ctx, userID, ""); err != nil {
			s.log.Error().Err(err).Str("user_id", userID).Bool("by_admin", byAdmin).
				Msg("failed to revoke sessions after password update")
		}
	}

	updated.PasswordDigest = ""
	return updated, nil
}

var _ ports.UserService = (*UserService)(nil)
