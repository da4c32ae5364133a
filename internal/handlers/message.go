package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/matchrimoney/internal/models"
)

//go:generate mockgen -source=message.go -destination=message_mock.go -package=handlers

// Messenger defines the interface that the message service must implement.
type Messenger interface {
	Send(ctx context.Context, senderID, receiverID uuid.UUID, content string, matchID *uuid.UUID) (*models.MessageView, error)
	ListConversations(ctx context.Context, userID uuid.UUID) ([]models.Conversation, error)
	GetConversation(ctx context.Context, matchID, userID uuid.UUID, page, pageSize int) (*models.ConversationPage, error)
	GetUserConversation(ctx context.Context, userID, otherID uuid.UUID, page, pageSize int) (*models.ConversationPage, error)
	MarkRead(ctx context.Context, messageIDs []uuid.UUID, userID uuid.UUID) (int64, error)
	MarkConversationRead(ctx context.Context, matchID, userID uuid.UUID) (int64, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

// SendMessageRequest is a new message to another couple
// swagger:model SendMessageRequest
type SendMessageRequest struct {
	// required: true
	ReceiverID uuid.UUID `json:"receiver_id" validate:"required"`

	// Match the message belongs to; the accepted match between the pair is used when omitted
	MatchID *uuid.UUID `json:"match_id"`

	// required: true
	// default: Which photographer did you have in mind?
	Content string `json:"content" validate:"required,max=2000"`
}

// MarkReadRequest lists messages to mark as read
// swagger:model MarkReadRequest
type MarkReadRequest struct {
	// required: true
	MessageIDs []uuid.UUID `json:"message_ids" validate:"required,min=1,max=500"`
}

// ConversationListResponse is the caller's inbox
// swagger:model ConversationListResponse
type ConversationListResponse struct {
	Conversations []models.Conversation `json:"conversations"`
}

// UnreadCountResponse reports the caller's unread messages
// swagger:model UnreadCountResponse
type UnreadCountResponse struct {
	// default: 4
	UnreadCount int64 `json:"unread_count"`
}

// NewSendMessageHandler returns an HTTP handler that sends a message.
// @Summary Send a message
// @Description Allowed within an accepted match, or by the initiator of a pending match
// @Tags messages
// @Accept json
// @Produce json
// @Param sendMessageRequest body handlers.SendMessageRequest true "Message"
// @Success 201 {object} models.MessageView "Sent message"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Messaging not allowed"
// @Failure 404 {object} handlers.ErrorResponse "Receiver or match not found"
// @Router /messages [post]
// @Security BearerAuth
func NewSendMessageHandler(svc Messenger, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, getUserID)
		if !ok {
			return
		}

		var req SendMessageRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		msg, err := svc.Send(r.Context(), userID, req.ReceiverID, req.Content, req.MatchID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, msg)
	}
}

// NewListConversationsHandler returns an HTTP handler for the caller's inbox.
// @Summary List conversations
// @Description One entry per match with its last message and unread count
// @Tags messages
// @Produce json
// @Success 200 {object} handlers.ConversationListResponse "Conversations"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /messages/conversations [get]
// @Security BearerAuth
func NewListConversationsHandler(svc Messenger, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, getUserID)
		if !ok {
			return
		}

		conversations, err := svc.ListConversations(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if conversations == nil {
			conversations = []models.Conversation{}
		}

		writeJSON(w, http.StatusOK, ConversationListResponse{Conversations: conversations})
	}
}

// NewGetConversationHandler returns an HTTP handler for the messages of one match.
// Messages addressed to the caller are marked read.
// @Summary Get a match conversation
// @Tags messages
// @Produce json
// @Param matchId path string true "Match ID"
// @Param page query int false "Page, from 1"
// @Param page_size query int false "Page size, at most 100"
// @Success 200 {object} models.ConversationPage "Messages, oldest first"
// @Failure 403 {object} handlers.ErrorResponse "Not a participant"
// @Failure 404 {object} handlers.ErrorResponse "Match not found"
// @Router /messages/conversation/{matchId} [get]
// @Security BearerAuth
func NewGetConversationHandler(svc Messenger, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, getUserID)
		if !ok {
			return
		}

		matchID, err := uuidParam(r, "matchId")
		if err != nil {
			writeError(w, r, err)
			return
		}
		page, pageSize, err := pageQuery(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		conv, err := svc.GetConversation(r.Context(), matchID, userID, page, pageSize)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, conv)
	}
}

// NewGetUserConversationHandler returns an HTTP handler for the messages exchanged with another couple.
// @Summary Get the conversation with a user
// @Tags messages
// @Produce json
// @Param userId path string true "Other user ID"
// @Param page query int false "Page, from 1"
// @Param page_size query int false "Page size, at most 100"
// @Success 200 {object} models.ConversationPage "Messages, oldest first"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /messages/user/{userId} [get]
// @Security BearerAuth
func NewGetUserConversationHandler(svc Messenger, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, getUserID)
		if !ok {
			return
		}

		otherID, err := uuidParam(r, "userId")
		if err != nil {
			writeError(w, r, err)
			return
		}
		page, pageSize, err := pageQuery(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		conv, err := svc.GetUserConversation(r.Context(), userID, otherID, page, pageSize)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, conv)
	}
}

// NewMarkReadHandler returns an HTTP handler that marks messages as read.
// @Summary Mark messages read
// @Description Only messages addressed to the caller are affected
// @Tags messages
// @Accept json
// @Produce json
// @Param markReadRequest body handlers.MarkReadRequest true "Message ids"
// @Success 200 {object} handlers.UpdatedResponse "Number of messages marked"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /messages/read [post]
// @Security BearerAuth
func NewMarkReadHandler(svc Messenger, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, getUserID)
		if !ok {
			return
		}

		var req MarkReadRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		n, err := svc.MarkRead(r.Context(), req.MessageIDs, userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, UpdatedResponse{Updated: n})
	}
}

// NewMarkConversationReadHandler returns an HTTP handler that marks a whole match conversation read.
// @Summary Mark conversation read
// @Tags messages
// @Produce json
// @Param matchId path string true "Match ID"
// @Success 200 {object} handlers.UpdatedResponse "Number of messages marked"
// @Failure 403 {object} handlers.ErrorResponse "Not a participant"
// @Failure 404 {object} handlers.ErrorResponse "Match not found"
// @Router /messages/mark-conversation-read/{matchId} [put]
// @Security BearerAuth
func NewMarkConversationReadHandler(svc Messenger, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, getUserID)
		if !ok {
			return
		}

		matchID, err := uuidParam(r, "matchId")
		if err != nil {
			writeError(w, r, err)
			return
		}

		n, err := svc.MarkConversationRead(r.Context(), matchID, userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, UpdatedResponse{Updated: n})
	}
}

// NewUnreadCountHandler returns an HTTP handler for the caller's unread message count.
// @Summary Unread message count
// @Tags messages
// @Produce json
// @Success 200 {object} handlers.UnreadCountResponse "Unread count"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /messages/unread-count [get]
// @Security BearerAuth
func NewUnreadCountHandler(svc Messenger, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, getUserID)
		if !ok {
			return
		}

		n, err := svc.UnreadCount(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, UnreadCountResponse{UnreadCount: n})
	}
}
