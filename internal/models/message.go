package models

import (
	"time"

	"github.com/google/uuid"
)

// MessageDB represents a message row in the database
type MessageDB struct {
	MessageID  uuid.UUID  `json:"id" db:"message_id"`
	SenderID   uuid.UUID  `json:"sender_id" db:"sender_id"`
	ReceiverID uuid.UUID  `json:"receiver_id" db:"receiver_id"`
	MatchID    *uuid.UUID `json:"match_id" db:"match_id"`
	Content    string     `json:"content" db:"content"`
	IsRead     bool       `json:"is_read" db:"is_read"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

// MessageView is a message with its participants embedded.
type MessageView struct {
	*MessageDB
	Sender   *UserSummary `json:"sender"`
	Receiver *UserSummary `json:"receiver"`
}

// Conversation is one entry of a user's inbox.
type Conversation struct {
	Match       *MatchDB       `json:"match"`
	OtherUser   *PublicProfile `json:"other_user"`
	LastMessage *MessageDB     `json:"last_message"`
	UnreadCount int64          `json:"unread_count"`
}

// Pagination describes a page of a longer result.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// NewPagination derives page metadata from a total count.
func NewPagination(page, pageSize int, total int64) Pagination {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// ConversationPage is a page of messages, oldest first.
type ConversationPage struct {
	Match      *MatchDB       `json:"match,omitempty"`
	OtherUser  *PublicProfile `json:"other_user"`
	Messages   []MessageDB    `json:"messages"`
	Pagination Pagination     `json:"pagination"`
}
