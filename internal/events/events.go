package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EventSource  = "codeex-learning-service"
	EventVersion = "1.0"
)

// Event types
const (
	TypeStepChanged    = "onboarding.step_changed"
	TypeOnboarded      = "onboarding.completed"
	TypeSectionChanged = "dashboard.section_changed"
	TypeCoinsRedeemed  = "coins.redeemed"
)

// Event is an activity record emitted after a session changes
type Event struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	SessionID string                 `json:"session_id"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

func NewEvent(eventType, sessionID string, data map[string]interface{}) Event {
	return Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		SessionID: sessionID,
		Source:    EventSource,
		Version:   EventVersion,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

// EventPublisher delivers activity events. Callers treat failures as
// non-fatal.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
