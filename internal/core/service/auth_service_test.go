package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/campus-portal/internal/core/domain"
	"github.com/campushub/campus-portal/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsernameOrEmail(_ context.Context, identifier string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == identifier || u.Email == identifier {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = "user-" + strconv.Itoa(r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	for other, ou := range r.users {
		if other == id {
			continue
		}
		if patch.Username != nil && ou.Username == *patch.Username {
			return nil, domain.ErrUserExists
		}
		if patch.Email != nil && ou.Email == *patch.Email {
			return nil, domain.ErrUserExists
		}
	}
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&u.Username, patch.Username)
	apply(&u.Email, patch.Email)
	apply(&u.PasswordDigest, patch.PasswordDigest)
	apply(&u.Role, patch.Role)
	apply(&u.DisplayName, patch.DisplayName)
	apply(&u.Faculty, patch.Faculty)
	apply(&u.Gender, patch.Gender)
	apply(&u.StudentID, patch.StudentID)
	apply(&u.ProfilePicture, patch.ProfilePicture)
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		out = append(out, *cloneUser(u))
	}
	return out, nil
}

type stubAuditRecorder struct {
	events []domain.AuditEvent
}

func (r *stubAuditRecorder) Record(event domain.AuditEvent) {
	r.events = append(r.events, event)
}

type authFixture struct {
	repo     *stubUserRepo
	store    *stubSessionStore
	sessions *SessionManager
	audit    *stubAuditRecorder
	svc      *AuthService
}

func newAuthFixture() *authFixture {
	repo := newStubUserRepo()
	store := newStubSessionStore()
	sessions := newTestSessionManager(store, time.Hour)
	audit := &stubAuditRecorder{}
	svc := NewAuthService(repo, sessions, newTestHasher(), audit, zerolog.Nop())
	return &authFixture{repo: repo, store: store, sessions: sessions, audit: audit, svc: svc}
}

func validSignup() ports.SignupInput {
	return ports.SignupInput{
		Username: "alice",
		Email:    "alice@x.edu",
		Password: "secret1",
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	f := newAuthFixture()

	user, err := f.svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned user ID")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("public signup must create role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.PasswordDigest == "secret1" || user.PasswordDigest == "" {
		t.Fatalf("password was not hashed")
	}
}

func TestAuthService_Signup_CanonicalizesCase(t *testing.T) {
	f := newAuthFixture()

	user, err := f.svc.Signup(context.Background(), ports.SignupInput{
		Username: "Alice",
		Email:    "Alice@X.edu",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user.Username != "alice" || user.Email != "alice@x.edu" {
		t.Fatalf("expected lower-cased identifiers, got %q / %q", user.Username, user.Email)
	}

	// The canonical form is what uniqueness is checked against.
	if _, err := f.svc.Signup(context.Background(), ports.SignupInput{
		Username: "ALICE",
		Email:    "other@x.edu",
		Password: "secret1",
	}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists for case-variant username, got %v", err)
	}
}

func TestAuthService_Signup_Validation(t *testing.T) {
	f := newAuthFixture()

	cases := []struct {
		name string
		in   ports.SignupInput
	}{
		{"short username", ports.SignupInput{Username: "ab", Email: "a@x.edu", Password: "secret1"}},
		{"bad email", ports.SignupInput{Username: "alice", Email: "not-an-email", Password: "secret1"}},
		{"short password", ports.SignupInput{Username: "alice", Email: "a@x.edu", Password: "12345"}},
		{"bad gender", ports.SignupInput{Username: "alice", Email: "a@x.edu", Password: "secret1", Gender: "unknown"}},
	}
	for _, tc := range cases {
		if _, err := f.svc.Signup(context.Background(), tc.in); err != domain.ErrInvalidInput {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
	if len(f.repo.users) != 0 {
		t.Fatalf("rejected signups must not create records, found %d", len(f.repo.users))
	}
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	f := newAuthFixture()

	if _, err := f.svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("first signup: %v", err)
	}

	// Same username, different email.
	if _, err := f.svc.Signup(context.Background(), ports.SignupInput{
		Username: "alice", Email: "alice2@x.edu", Password: "secret1",
	}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists for duplicate username, got %v", err)
	}

	// Same email, different username.
	if _, err := f.svc.Signup(context.Background(), ports.SignupInput{
		Username: "alice2", Email: "alice@x.edu", Password: "secret1",
	}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists for duplicate email, got %v", err)
	}

	if len(f.repo.users) != 1 {
		t.Fatalf("duplicate signups must not create records, found %d", len(f.repo.users))
	}
}

func TestAuthService_Login_ByUsernameAndEmail(t *testing.T) {
	f := newAuthFixture()
	if _, err := f.svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("signup: %v", err)
	}

	for _, identifier := range []string{"alice", "alice@x.edu", "Alice@X.edu"} {
		result, err := f.svc.Login(context.Background(), identifier, "secret1")
		if err != nil {
			t.Fatalf("login with %q: %v", identifier, err)
		}
		if result.Token == "" {
			t.Fatalf("login with %q returned empty token", identifier)
		}
		if result.Role != domain.RoleUser {
			t.Fatalf("unexpected role %q", result.Role)
		}
		info, err := f.sessions.Validate(context.Background(), result.Token)
		if err != nil {
			t.Fatalf("issued token does not validate: %v", err)
		}
		if info.UserID != result.UserID {
			t.Fatalf("session bound to %q, expected %q", info.UserID, result.UserID)
		}
	}
}

func TestAuthService_Login_FailuresAreUniform(t *testing.T) {
	f := newAuthFixture()
	if _, err := f.svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("signup: %v", err)
	}

	// Unknown identifier and wrong password must be indistinguishable.
	if _, err := f.svc.Login(context.Background(), "ghost", "secret1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("unknown identifier: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := f.svc.Login(context.Background(), "alice", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}

	if len(f.store.sessions) != 0 {
		t.Fatalf("failed logins must not issue sessions, found %d", len(f.store.sessions))
	}
}

func TestAuthService_CurrentUser_StripsDigest(t *testing.T) {
	f := newAuthFixture()
	if _, err := f.svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("signup: %v", err)
	}
	result, err := f.svc.Login(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	user, err := f.svc.CurrentUser(context.Background(), result.Token)
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if user.PasswordDigest != "" {
		t.Fatalf("CurrentUser leaked the password digest")
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_LogoutInvalidatesSession(t *testing.T) {
	f := newAuthFixture()
	if _, err := f.svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("signup: %v", err)
	}
	result, err := f.svc.Login(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := f.svc.Logout(context.Background(), result.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := f.svc.CurrentUser(context.Background(), result.Token); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized after logout, got %v", err)
	}

	// Logging out an already-dead token still succeeds.
	if err := f.svc.Logout(context.Background(), result.Token); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	f := newAuthFixture()
	user, err := f.svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	current, err := f.svc.Login(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	other, err := f.svc.Login(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}

	// Wrong current password is refused.
	if err := f.svc.ChangePassword(context.Background(), user.ID, current.Token, "wrong", "newsecret"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if err := f.svc.ChangePassword(context.Background(), user.ID, current.Token, "secret1", "newsecret"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	// Old credential dead, new one live.
	if _, err := f.svc.Login(context.Background(), "alice", "secret1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("old password still accepted: %v", err)
	}
	if _, err := f.svc.Login(context.Background(), "alice", "newsecret"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}

	// The changing session survives, every other one is revoked.
	if _, err := f.sessions.Validate(context.Background(), current.Token); err != nil {
		t.Fatalf("changing session was revoked: %v", err)
	}
	if _, err := f.sessions.Validate(context.Background(), other.Token); err != domain.ErrUnauthorized {
		t.Fatalf("expected other session revoked, got %v", err)
	}
}

// Mirrors the full account lifecycle: signup, duplicate, login, bad login,
// logout, stale token.
func TestAuthService_Lifecycle(t *testing.T) {
	f := newAuthFixture()

	user, err := f.svc.Signup(context.Background(), ports.SignupInput{
		Username: "alice", Email: "alice@x.edu", Password: "secret1",
	})
	if err != nil || user.ID == "" {
		t.Fatalf("signup failed: user=%+v err=%v", user, err)
	}

	if _, err := f.svc.Signup(context.Background(), ports.SignupInput{
		Username: "alice", Email: "different@x.edu", Password: "secret1",
	}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	result, err := f.svc.Login(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := f.svc.Login(context.Background(), "alice", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if err := f.svc.Logout(context.Background(), result.Token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := f.svc.CurrentUser(context.Background(), result.Token); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized with stale token, got %v", err)
	}
}
