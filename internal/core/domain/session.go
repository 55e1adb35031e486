package domain

import "time"

// Session is the server-side record behind an opaque login token. It is
// created only by a successful login and never mutated afterwards: there is
// no sliding renewal, expiry is fixed at issuance.
type Session struct {
	Token     string    `json:"-"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// SessionInfo is the identity attached to an admitted request. It is
// constructed only by the session manager; handlers must never assemble one
// from client-supplied fields. Role is a snapshot taken at issuance; a role
// change on the user record takes effect at the next login.
type SessionInfo struct {
	UserID string
	Role   string
}
