package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/campus-portal/internal/core/domain"
	"github.com/campushub/campus-portal/internal/core/ports"
)

func strptr(s string) *string { return &s }

type userFixture struct {
	repo     *stubUserRepo
	store    *stubSessionStore
	sessions *SessionManager
	svc      *UserService
}

func newUserFixture(t *testing.T) (*userFixture, *domain.User) {
	t.Helper()
	repo := newStubUserRepo()
	store := newStubSessionStore()
	sessions := newTestSessionManager(store, time.Hour)
	svc := NewUserService(repo, sessions, newTestHasher(), zerolog.Nop())

	digest, err := newTestHasher().Hash("secret1")
	if err != nil {
		t.Fatalf("seed hash: %v", err)
	}
	user, err := repo.Insert(context.Background(), &domain.User{
		Username:       "alice",
		Email:          "alice@x.edu",
		PasswordDigest: digest,
		Role:           domain.RoleUser,
		DisplayName:    "Alice",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &userFixture{repo: repo, store: store, sessions: sessions, svc: svc}, user
}

func TestUserService_GetProfile(t *testing.T) {
	f, user := newUserFixture(t)

	got, err := f.svc.GetProfile(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.PasswordDigest != "" {
		t.Fatalf("profile leaked the password digest")
	}
	if got.Username != "alice" {
		t.Fatalf("unexpected profile: %+v", got)
	}

	if _, err := f.svc.GetProfile(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_UpdateProfile_Fields(t *testing.T) {
	f, user := newUserFixture(t)

	updated, err := f.svc.UpdateProfile(context.Background(), user.ID, ports.ProfileUpdateInput{
		DisplayName: strptr("Alice B."),
		Faculty:     strptr("Engineering"),
		Gender:      strptr(domain.GenderFemale),
		Email:       strptr("Alice.B@X.edu"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.DisplayName != "Alice B." || updated.Faculty != "Engineering" {
		t.Fatalf("fields not applied: %+v", updated)
	}
	if updated.Email != "alice.b@x.edu" {
		t.Fatalf("email not canonicalized: %q", updated.Email)
	}
	// Untouched fields survive a partial patch.
	if updated.Username != "alice" {
		t.Fatalf("username changed unexpectedly: %q", updated.Username)
	}
}

func TestUserService_UpdateProfile_Validation(t *testing.T) {
	f, user := newUserFixture(t)

	cases := []struct {
		name string
		in   ports.ProfileUpdateInput
	}{
		{"short username", ports.ProfileUpdateInput{Username: strptr("ab")}},
		{"bad email", ports.ProfileUpdateInput{Email: strptr("nope")}},
		{"short password", ports.ProfileUpdateInput{Password: strptr("12345")}},
		{"bad gender", ports.ProfileUpdateInput{Gender: strptr("unknown")}},
	}
	for _, tc := range cases {
		if _, err := f.svc.UpdateProfile(context.Background(), user.ID, tc.in); err != domain.ErrInvalidInput {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestUserService_UpdateProfile_UsernameTaken(t *testing.T) {
	f, user := newUserFixture(t)
	if _, err := f.repo.Insert(context.Background(), &domain.User{
		Username: "bob", Email: "bob@x.edu", PasswordDigest: "x", Role: domain.RoleUser,
	}); err != nil {
		t.Fatalf("seed bob: %v", err)
	}

	if _, err := f.svc.UpdateProfile(context.Background(), user.ID, ports.ProfileUpdateInput{
		Username: strptr("bob"),
	}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_UpdateProfile_PasswordRevokesAllSessions(t *testing.T) {
	f, user := newUserFixture(t)

	tok1, err := f.sessions.Create(context.Background(), user.ID, user.Role)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	tok2, err := f.sessions.Create(context.Background(), user.ID, user.Role)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	if _, err := f.svc.UpdateProfile(context.Background(), user.ID, ports.ProfileUpdateInput{
		Password: strptr("newsecret"),
	}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	for _, tok := range []string{tok1, tok2} {
		if _, err := f.sessions.Validate(context.Background(), tok); err != domain.ErrUnauthorized {
			t.Fatalf("expected session revoked, got %v", err)
		}
	}

	// The stored digest was re-hashed from the new plaintext.
	stored, err := f.repo.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	ok, err := newTestHasher().Verify("newsecret", stored.PasswordDigest)
	if err != nil || !ok {
		t.Fatalf("new password does not verify: ok=%v err=%v", ok, err)
	}
}

func TestUserService_ListUsers_StripsDigests(t *testing.T) {
	f, _ := newUserFixture(t)

	users, err := f.svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	for _, u := range users {
		if u.PasswordDigest != "" {
			t.Fatalf("listing leaked a password digest")
		}
	}
}

func TestUserService_CreateUser(t *testing.T) {
	f, _ := newUserFixture(t)

	admin, err := f.svc.CreateUser(context.Background(), ports.AdminCreateUserInput{
		Username: "Root",
		Email:    "root@x.edu",
		Password: "secret1",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %q", admin.Role)
	}
	if admin.Username != "root" {
		t.Fatalf("username not canonicalized: %q", admin.Username)
	}
	if admin.PasswordDigest != "" {
		t.Fatalf("CreateUser leaked the password digest")
	}

	// Omitted role defaults to the unprivileged one.
	member, err := f.svc.CreateUser(context.Background(), ports.AdminCreateUserInput{
		Username: "carol", Email: "carol@x.edu", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("CreateUser without role: %v", err)
	}
	if member.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, member.Role)
	}

	if _, err := f.svc.CreateUser(context.Background(), ports.AdminCreateUserInput{
		Username: "dave", Email: "dave@x.edu", Password: "secret1", Role: "superuser",
	}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for unknown role, got %v", err)
	}
}

func TestUserService_UpdateUser(t *testing.T) {
	f, user := newUserFixture(t)

	updated, err := f.svc.UpdateUser(context.Background(), user.ID, ports.ProfileUpdateInput{
		Faculty: strptr("Science"),
	})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if updated.Faculty != "Science" {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.Role != domain.RoleUser {
		t.Fatalf("role changed by profile patch: %q", updated.Role)
	}

	if _, err := f.svc.UpdateUser(context.Background(), "missing", ports.ProfileUpdateInput{
		Faculty: strptr("Science"),
	}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
