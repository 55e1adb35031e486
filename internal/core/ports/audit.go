package ports

import (
	"context"

	"github.com/campushub/campus-portal/internal/core/domain"
)

// AuditRecorder accepts authentication audit events for asynchronous
// persistence. Record must not block the request path; delivery is
// best-effort and failures are logged, never surfaced to the caller.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event domain.AuditEvent) error
}
