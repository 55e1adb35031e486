package domain

import "time"

// Audit actions recorded by the auth service.
const (
	AuditLogin          = "login"
	AuditSignup         = "signup"
	AuditLogout         = "logout"
	AuditPasswordChange = "password_change"
)

// Audit outcomes.
const (
	AuditOK     = "ok"
	AuditFailed = "failed"
)

// AuditEvent is one entry in the authentication audit trail. ActorID may be
// empty for failed logins where the identifier resolved to no user.
type AuditEvent struct {
	ID      string    `json:"id"`
	ActorID string    `json:"actor_id,omitempty"`
	Action  string    `json:"action"`
	Outcome string    `json:"outcome"`
	At      time.Time `json:"at"`
}
