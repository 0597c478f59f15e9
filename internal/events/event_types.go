package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrderPlaced          EventType = "order_placed"
	EventInboxMessageReceived EventType = "inbox_message_received"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	ResourceID string    `json:"resource_id"`
	ActorID    string    `json:"actor_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Payload    any       `json:"payload"`
}

// OrderPlacedPayload payload.
type OrderPlacedPayload struct {
	ItemCount  int             `json:"item_count"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// InboxMessageReceivedPayload payload. The message body is not carried.
type InboxMessageReceivedPayload struct {
	Email string `json:"email"`
}
