package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/campus-portal/internal/api/metrics"
	"github.com/campushub/campus-portal/internal/core/domain"
	"github.com/campushub/campus-portal/internal/core/ports"
)

// tokenBytes gives 256 bits of entropy per token.
const tokenBytes = 32

// DefaultSessionTTL is the fixed session lifetime. Validation never
// extends it: a login is good for exactly this long.
const DefaultSessionTTL = 24 * time.Hour

// SessionManager issues opaque random tokens and resolves them against the
// session store. It is the only constructor of domain.SessionInfo values.
type SessionManager struct {
	store ports.SessionStore
	ttl   time.Duration
	log   zerolog.Logger
	now   func() time.Time
}

func NewSessionManager(store ports.SessionStore, ttl time.Duration, log zerolog.Logger) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionManager{store: store, ttl: ttl, log: log, now: time.Now}
}

// Create issues a fresh token for the given identity and persists the
// session record with the configured TTL.
func (m *SessionManager) Create(ctx context.Context, userID, role string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	now := m.now().UTC()
	session := domain.Session{
		Token:     token,
		UserID:    userID,
		Role:      role,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Put(ctx, session, m.ttl); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	metrics.SessionsIssuedTotal.Inc()
	return token, nil
}

// Validate resolves a token to its identity. An absent and an expired
// session are indistinguishable to the caller: both fail with
// domain.ErrUnauthorized.
func (m *SessionManager) Validate(ctx context.Context, token string) (domain.SessionInfo, error) {
	if token == "" {
		return domain.SessionInfo{}, domain.ErrUnauthorized
	}

	session, err := m.store.Get(ctx, token)
	if err != nil {
		return domain.SessionInfo{}, err
	}
	if session.Expired(m.now().UTC()) {
		// The store's TTL normally beats us to this; the check covers
		// clock skew between store and process.
		return domain.SessionInfo{}, domain.ErrUnauthorized
	}

	return domain.SessionInfo{UserID: session.UserID, Role: session.Role}, nil
}

// Destroy revokes a token. Unknown tokens succeed silently.
func (m *SessionManager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := m.store.Delete(ctx, token); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	metrics.SessionsRevokedTotal.WithLabelValues("logout").Inc()
	return nil
}

// DestroyAllForUser revokes every session of a user except keep. Used on
// password change.
func (m *SessionManager) DestroyAllForUser(ctx context.Context, userID, keep string) (int, error) {
	n, err := m.store.DeleteAllForUser(ctx, userID, keep)
	if err != nil {
		return 0, fmt.Errorf("destroy user sessions: %w", err)
	}
	if n > 0 {
		metrics.SessionsRevokedTotal.WithLabelValues("password_change").Add(float64(n))
		m.log.Info().Str("user_id", userID).Int("revoked", n).Msg("revoked user sessions")
	}
	return n, nil
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
