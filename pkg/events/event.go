package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeQuoteCreated   = "quote.created"
	TypeBookingCreated = "booking.created"
)

// Header keys attached to every published record.
const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
)

// Event is the envelope published for every created document.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	DocumentID string    `json:"document_id"`
	Payload    any       `json:"payload"`
}

func New(eventType, documentID string, payload any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		DocumentID: documentID,
		Payload:    payload,
	}
}
