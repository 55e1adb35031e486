package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/campushub/campus-portal/internal/api/metrics"
	"github.com/campushub/campus-portal/internal/core/domain"
	"github.com/campushub/campus-portal/internal/core/ports"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 6
	maxEmailLen    = 100
	maxNameLen     = 100
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// dummyDigest is a throwaway bcrypt digest compared against when a login
// identifier resolves to no user, so both failure modes do the same amount
// of bcrypt work.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService orchestrates signup, login, logout, identity lookup, and
// password changes over the user repository and session manager.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionManager
	hasher   *PasswordHasher
	audit    ports.AuditRecorder
	log      zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	sessions ports.SessionManager,
	hasher *PasswordHasher,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{users: users, sessions: sessions, hasher: hasher, audit: audit, log: log}
}

// Signup registers a new community member. The role is always
// domain.RoleUser: public registration cannot create admins.
func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	username := strings.ToLower(strings.TrimSpace(in.Username))
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if err := validateCredentialFields(username, email, in.Password); err != nil {
		return nil, err
	}
	if !domain.ValidGender(in.Gender) {
		return nil, domain.ErrInvalidInput
	}

	// Fast-path duplicate check. The unique indexes on the store are the
	// authoritative guarantee; a concurrent signup racing past this check
	// still fails at Insert with the same error.
	for _, identifier := range []string{username, email} {
		_, err := s.users.FindByUsernameOrEmail(ctx, identifier)
		switch {
		case err == nil:
			return nil, domain.ErrUserExists
		case errors.Is(err, domain.ErrUserNotFound):
		default:
			return nil, err
		}
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:       username,
		Email:          email,
		PasswordDigest: digest,
		Role:           domain.RoleUser,
		DisplayName:    in.DisplayName,
		Faculty:        in.Faculty,
		Gender:         in.Gender,
		StudentID:      in.StudentID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues("public").Inc()
	s.record(created.ID, domain.AuditSignup, domain.AuditOK)
	return created, nil
}

// Login resolves identifier against either unique field and verifies the
// password. Unknown identifier and wrong password are indistinguishable to
// the caller, in error value and in bcrypt work performed.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*ports.LoginResult, error) {
	identifier = strings.ToLower(strings.TrimSpace(identifier))
	if identifier == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_, _ = s.hasher.Verify(password, dummyDigest)
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			s.record("", domain.AuditLogin, domain.AuditFailed)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(password, user.PasswordDigest)
	if err != nil {
		// Corrupt digest in the store: log loudly, answer generically.
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("stored password digest is malformed")
		return nil, err
	}
	if !ok {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		s.record(user.ID, domain.AuditLogin, domain.AuditFailed)
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.record(user.ID, domain.AuditLogin, domain.AuditOK)
	return &ports.LoginResult{Token: token, UserID: user.ID, Role: user.Role}, nil
}

// Logout destroys the session. From the caller's perspective it always
// succeeds; only a storage failure propagates.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Destroy(ctx, token); err != nil {
		return err
	}
	s.record("", domain.AuditLogout, domain.AuditOK)
	return nil
}

// CurrentUser validates the token and returns the associated user record
// with the digest stripped.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	info, err := s.sessions.Validate(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, info.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Session outlived the user record (e.g. deleted account).
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	user.PasswordDigest = ""
	return user, nil
}

// ChangePassword re-hashes from the submitted plaintext and revokes every
// other session of the user. The session making the change stays valid.
func (s *AuthService) ChangePassword(ctx context.Context, userID, token, current, next string) error {
	if len(next) < minPasswordLen {
		return domain.ErrInvalidInput
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	ok, err := s.hasher.Verify(current, user.PasswordDigest)
	if err != nil {
		return err
	}
	if !ok {
		s.record(userID, domain.AuditPasswordChange, domain.AuditFailed)
		return domain.ErrInvalidCredentials
	}

	digest, err := s.hasher.Hash(next)
	if err != nil {
		return err
	}
	if _, err := s.users.Update(ctx, userID, domain.UserPatch{PasswordDigest: &digest}); err != nil {
		return err
	}

	if _, err := s.sessions.DestroyAllForUser(ctx, userID, token); err != nil {
		// The password is already changed; failing the request now would
		// only confuse the caller. Old sessions die at expiry regardless.
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to revoke sessions after password change")
	}

	s.record(userID, domain.AuditPasswordChange, domain.AuditOK)
	return nil
}

func (s *AuthService) record(actorID, action, outcome string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		ID:      uuid.NewString(),
		ActorID: actorID,
		Action:  action,
		Outcome: outcome,
		At:      time.Now().UTC(),
	})
}

// validateCredentialFields enforces the structural constraints shared by
// every account-creation path.
func validateCredentialFields(username, email, password string) error {
	if len(username) < minUsernameLen || len(username) > maxUsernameLen {
		return domain.ErrInvalidInput
	}
	if len(email) > maxEmailLen || !emailPattern.MatchString(email) {
		return domain.ErrInvalidInput
	}
	if len(password) < minPasswordLen || len(password) > maxPasswordBytes {
		return domain.ErrInvalidInput
	}
	return nil
}

var _ ports.AuthService = (*AuthService)(nil)
