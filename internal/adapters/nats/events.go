package natsadapter

import (
	"context"
	"encoding/json"
	"time"

	nats "github.com/nats-io/nats.go"

	"github.com/kanyangaboRichard/Job-Board-System/internal/domain"
)

// EventPublisher broadcasts application lifecycle events. Delivery is
// best-effort; subscribers that miss an event reconcile from the store.
type EventPublisher struct {
	conn    *nats.Conn
	subject string
}

func NewEventPublisher(conn *nats.Conn, subject string) *EventPublisher {
	return &EventPublisher{conn: conn, subject: subject}
}

type statusChangedEvent struct {
	ApplicationID string `json:"application_id"`
	Status        string `json:"status"`
	OccurredAt    int64  `json:"occurred_at"`
}

func (p *EventPublisher) ApplicationStatusChanged(ctx context.Context, applicationID string, status domain.ApplicationStatus) error {
	if p == nil || p.conn == nil {
		return nil
	}
	data, _ := json.Marshal(statusChangedEvent{
		ApplicationID: applicationID,
		Status:        string(status),
		OccurredAt:    time.Now().UTC().Unix(),
	})
	return p.conn.Publish(p.subject, data)
}
