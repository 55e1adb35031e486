package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campushub/campus-portal/internal/core/domain"
)

const auditCollection = "audit_events"

type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEvent struct {
	ID      string    `bson:"_id"`
	ActorID string    `bson:"actor_id,omitempty"`
	Action  string    `bson:"action"`
	Outcome string    `bson:"outcome"`
	At      time.Time `bson:"at"`
}

func (r *AuditRepository) Insert(ctx context.Context, event domain.AuditEvent) error {
	doc := mongoAuditEvent{
		ID:      event.ID,
		ActorID: event.ActorID,
		Action:  event.Action,
		Outcome: event.Outcome,
		At:      event.At,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
