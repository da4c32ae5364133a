package models

import (
	"time"

	"github.com/google/uuid"
)

// Domain event types published to Kafka.
const (
	EventMatchCreated  = "match.created"
	EventMatchAccepted = "match.accepted"
	EventMatchDeclined = "match.declined"
	EventMessageSent   = "message.sent"
)

// Event is a domain event published after a successful write.
type Event struct {
	EventID   string    `json:"event_id"`   // Unique identifier of the event
	Type      string    `json:"type"`       // One of the Event* constants
	Timestamp int64     `json:"timestamp"`  // Unix seconds
	ActorID   uuid.UUID `json:"actor_id"`   // User who caused the event
	SubjectID uuid.UUID `json:"subject_id"` // Other user affected by the event
	MatchID   uuid.UUID `json:"match_id"`   // Related match, if any
	MessageID uuid.UUID `json:"message_id"` // Related message, if any
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType string, actorID, subjectID uuid.UUID) Event {
	return Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		ActorID:   actorID,
		SubjectID: subjectID,
	}
}
