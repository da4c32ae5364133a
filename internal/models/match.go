package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchStatus is the lifecycle state of a match.
type MatchStatus string

const (
	MatchStatusPending  MatchStatus = "PENDING"
	MatchStatusAccepted MatchStatus = "ACCEPTED"
	MatchStatusDeclined MatchStatus = "DECLINED"
	// MatchStatusExpired is reserved; no transition currently produces it.
	MatchStatusExpired MatchStatus = "EXPIRED"
)

// ParseMatchStatus validates a status filter coming from a client.
func ParseMatchStatus(s string) (MatchStatus, bool) {
	switch st := MatchStatus(s); st {
	case MatchStatusPending, MatchStatusAccepted, MatchStatusDeclined, MatchStatusExpired:
		return st, true
	}
	return "", false
}

// Match actions accepted by the receiver of a pending match.
const (
	MatchActionAccept  = "accept"
	MatchActionDecline = "decline"
)

// MatchDB represents a match row in the database
type MatchDB struct {
	MatchID            uuid.UUID   `json:"id" db:"match_id"`
	InitiatorID        uuid.UUID   `json:"initiator_id" db:"initiator_id"`
	ReceiverID         uuid.UUID   `json:"receiver_id" db:"receiver_id"`
	Status             MatchStatus `json:"status" db:"status"`
	CompatibilityScore int         `json:"compatibility_score" db:"compatibility_score"`
	SharedCategories   StringList  `json:"shared_categories" db:"shared_categories"`
	EstimatedSavings   int         `json:"estimated_savings" db:"estimated_savings"`
	CreatedAt          time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at" db:"updated_at"`
}

// HasUser reports whether userID is one of the two participants.
func (m *MatchDB) HasUser(userID uuid.UUID) bool {
	return m.InitiatorID == userID || m.ReceiverID == userID
}

// OtherUserID returns the counterpart of userID in the match.
func (m *MatchDB) OtherUserID(userID uuid.UUID) (uuid.UUID, bool) {
	switch userID {
	case m.InitiatorID:
		return m.ReceiverID, true
	case m.ReceiverID:
		return m.InitiatorID, true
	}
	return uuid.Nil, false
}

// MatchView is a match seen from one participant's side.
type MatchView struct {
	*MatchDB
	IsInitiator bool           `json:"is_initiator"`
	Initiator   *PublicProfile `json:"initiator,omitempty"`
	Receiver    *PublicProfile `json:"receiver,omitempty"`
	OtherUser   *PublicProfile `json:"other_user,omitempty"`
	LastMessage *MessageDB     `json:"last_message,omitempty"`
}
