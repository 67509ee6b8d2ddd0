package services

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EventGroupCreated   = "group.created"
	EventContactCreated = "contact.created"
	EventContactUpdated = "contact.updated"
	EventContactDeleted = "contact.deleted"
)

// ChangeEvent announces a committed write. It carries ids only, never contact
// fields.
type ChangeEvent struct {
	Kind       string    `json:"kind"`
	EntityID   uuid.UUID `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher fans committed changes out to other processes. Publishing is
// best effort: a failure is logged and never fails the request.
type EventPublisher interface {
	Publish(ctx context.Context, ev ChangeEvent) error
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, ChangeEvent) error { return nil }

// NoopPublisher is used when no broker is configured.
func NoopPublisher() EventPublisher { return noopPublisher{} }

func newEvent(kind string, id uuid.UUID) ChangeEvent {
	return ChangeEvent{Kind: kind, EntityID: id, OccurredAt: time.Now().UTC()}
}
