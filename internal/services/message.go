package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/matchrimoney/internal/apperrors"
	"github.com/sbilibin2017/matchrimoney/internal/logger"
	"github.com/sbilibin2017/matchrimoney/internal/models"
)

//go:generate mockgen -source=message.go -destination=message_mock.go -package=services

// MessageReader defines read operations for messages.
type MessageReader interface {
	ListByMatch(ctx context.Context, matchID uuid.UUID, limit, offset int) ([]models.MessageDB, error)
	CountByMatch(ctx context.Context, matchID uuid.UUID) (int64, error)
	ListBetween(ctx context.Context, userA, userB uuid.UUID, limit, offset int) ([]models.MessageDB, error)
	CountBetween(ctx context.Context, userA, userB uuid.UUID) (int64, error)
	LastByMatchIDs(ctx context.Context, matchIDs []uuid.UUID) (map[uuid.UUID]*models.MessageDB, error)
	UnreadCountsByMatch(ctx context.Context, userID uuid.UUID, matchIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

// MessageWriter defines write operations for messages.
type MessageWriter interface {
	Create(ctx context.Context, senderID, receiverID uuid.UUID, matchID *uuid.UUID, content string) (*models.MessageDB, error)
	MarkRead(ctx context.Context, messageIDs []uuid.UUID, userID uuid.UUID) (int64, error)
	MarkMatchRead(ctx context.Context, matchID, userID uuid.UUID) (int64, error)
}

// MessageService decides who may message whom and serves conversations.
type MessageService struct {
	users       UserReader
	matches     MatchReader
	matchWriter MatchWriter
	reader      MessageReader
	writer      MessageWriter
	events      EventPublisher
}

// NewMessageService creates a new MessageService.
func NewMessageService(
	users UserReader,
	matches MatchReader,
	matchWriter MatchWriter,
	reader MessageReader,
	writer MessageWriter,
	events EventPublisher,
) *MessageService {
	return &MessageService{
		users:       users,
		matches:     matches,
		matchWriter: matchWriter,
		reader:      reader,
		writer:      writer,
		events:      events,
	}
}

// Send delivers a message if the match between sender and receiver allows it.
// Without a match id the pair must share an ACCEPTED match, which the
// message is then attached to.
func (s *MessageService) Send(ctx context.Context, senderID, receiverID uuid.UUID, content string, matchID *uuid.UUID) (*models.MessageView, error) {
	if senderID == receiverID {
		return nil, apperrors.Validation("cannot send a message to yourself")
	}
	content, err := messageContent(content)
	if err != nil {
		return nil, err
	}

	receiver, err := s.users.GetByID(ctx, receiverID)
	if err != nil {
		return nil, internalError("failed to get receiver", err, "receiver_id", receiverID)
	}
	if receiver == nil || !receiver.AllowMessages {
		return nil, apperrors.NotFound("user not found or not accepting messages")
	}

	match, err := s.authorizeSend(ctx, senderID, receiverID, matchID)
	if err != nil {
		return nil, err
	}

	msg, err := s.writer.Create(ctx, senderID, receiverID, &match.MatchID, content)
	if err != nil {
		return nil, internalError("failed to create message", err, "match_id", match.MatchID)
	}
	if err := s.matchWriter.Touch(ctx, match.MatchID); err != nil {
		return nil, internalError("failed to touch match", err, "match_id", match.MatchID)
	}

	sender, err := s.users.GetByID(ctx, senderID)
	if err != nil {
		return nil, internalError("failed to get sender", err, "sender_id", senderID)
	}

	logger.Log.Infow("message sent", "message_id", msg.MessageID, "match_id", match.MatchID)

	event := models.NewEvent(models.EventMessageSent, senderID, receiverID)
	event.MatchID = match.MatchID
	event.MessageID = msg.MessageID
	s.events.Publish(ctx, event)

	return &models.MessageView{
		MessageDB: msg,
		Sender:    sender.Summary(),
		Receiver:  receiver.Summary(),
	}, nil
}

// authorizeSend returns the match the message belongs to, or the reason the
// sender may not write to the receiver.
func (s *MessageService) authorizeSend(ctx context.Context, senderID, receiverID uuid.UUID, matchID *uuid.UUID) (*models.MatchDB, error) {
	if matchID == nil {
		match, err := s.matches.GetBetween(ctx, senderID, receiverID)
		if err != nil {
			return nil, internalError("failed to get match", err, "sender_id", senderID, "receiver_id", receiverID)
		}
		if match == nil || match.Status != models.MatchStatusAccepted {
			return nil, apperrors.Forbidden("an accepted match is required to message this user")
		}
		return match, nil
	}

	match, err := s.matches.GetByID(ctx, *matchID)
	if err != nil {
		return nil, internalError("failed to get match", err, "match_id", *matchID)
	}
	if match == nil {
		return nil, apperrors.NotFound("match not found")
	}
	if !match.HasUser(senderID) {
		return nil, apperrors.Forbidden("you are not a participant in this match")
	}
	if other, _ := match.OtherUserID(senderID); other != receiverID {
		return nil, apperrors.Validation("receiver is not the other participant of this match")
	}

	switch match.Status {
	case models.MatchStatusAccepted:
	case models.MatchStatusPending:
		if match.InitiatorID != senderID {
			return nil, apperrors.Forbidden("accept the match before replying")
		}
	default:
		return nil, apperrors.Forbidden("cannot send messages on a " + string(match.Status) + " match")
	}
	return match, nil
}

// ListConversations returns the user's open conversations, most recently
// active first.
func (s *MessageService) ListConversations(ctx context.Context, userID uuid.UUID) ([]models.Conversation, error) {
	matches, err := s.matches.ListByUser(ctx, userID, []models.MatchStatus{models.MatchStatusPending, models.MatchStatusAccepted})
	if err != nil {
		return nil, internalError("failed to list matches", err, "user_id", userID)
	}

	users, last, err := loadAnnotations(ctx, s.users, s.reader, userID, matches)
	if err != nil {
		return nil, err
	}

	matchIDs := make([]uuid.UUID, 0, len(matches))
	for i := range matches {
		matchIDs = append(matchIDs, matches[i].MatchID)
	}
	unread, err := s.reader.UnreadCountsByMatch(ctx, userID, matchIDs)
	if err != nil {
		return nil, internalError("failed to count unread messages", err, "user_id", userID)
	}

	conversations := make([]models.Conversation, 0, len(matches))
	for i := range matches {
		m := &matches[i]
		other, _ := m.OtherUserID(userID)
		conversations = append(conversations, models.Conversation{
			Match:       m,
			OtherUser:   users[other].Public(),
			LastMessage: last[m.MatchID],
			UnreadCount: unread[m.MatchID],
		})
	}
	return conversations, nil
}

// GetConversation marks the match's messages to the user as read and
// returns one page of them, oldest first.
func (s *MessageService) GetConversation(ctx context.Context, matchID, userID uuid.UUID, page, pageSize int) (*models.ConversationPage, error) {
	match, err := participantMatch(ctx, s.matches, matchID, userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.writer.MarkMatchRead(ctx, matchID, userID); err != nil {
		return nil, internalError("failed to mark conversation read", err, "match_id", matchID)
	}

	page, pageSize = pageParams(page, pageSize, maxConversationPage)
	total, err := s.reader.CountByMatch(ctx, matchID)
	if err != nil {
		return nil, internalError("failed to count messages", err, "match_id", matchID)
	}
	messages, err := s.reader.ListByMatch(ctx, matchID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, internalError("failed to list messages", err, "match_id", matchID)
	}

	otherID, _ := match.OtherUserID(userID)
	other, err := s.users.GetByID(ctx, otherID)
	if err != nil {
		return nil, internalError("failed to get user", err, "user_id", otherID)
	}

	return &models.ConversationPage{
		Match:      match,
		OtherUser:  other.Public(),
		Messages:   oldestFirst(messages),
		Pagination: models.NewPagination(page, pageSize, total),
	}, nil
}

// GetUserConversation returns one page of the messages exchanged with
// another user, oldest first. It has no read side effect.
func (s *MessageService) GetUserConversation(ctx context.Context, userID, otherID uuid.UUID, page, pageSize int) (*models.ConversationPage, error) {
	other, err := s.users.GetByID(ctx, otherID)
	if err != nil {
		return nil, internalError("failed to get user", err, "user_id", otherID)
	}
	if other == nil {
		return nil, apperrors.NotFound("user not found")
	}

	match, err := s.matches.GetBetween(ctx, userID, otherID)
	if err != nil {
		return nil, internalError("failed to get match", err, "user_id", userID, "other_id", otherID)
	}

	page, pageSize = pageParams(page, pageSize, maxConversationPage)
	total, err := s.reader.CountBetween(ctx, userID, otherID)
	if err != nil {
		return nil, internalError("failed to count messages", err, "user_id", userID, "other_id", otherID)
	}
	messages, err := s.reader.ListBetween(ctx, userID, otherID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, internalError("failed to list messages", err, "user_id", userID, "other_id", otherID)
	}

	return &models.ConversationPage{
		Match:      match,
		OtherUser:  other.Public(),
		Messages:   oldestFirst(messages),
		Pagination: models.NewPagination(page, pageSize, total),
	}, nil
}

// MarkRead marks the given messages addressed to the user as read.
func (s *MessageService) MarkRead(ctx context.Context, messageIDs []uuid.UUID, userID uuid.UUID) (int64, error) {
	if len(messageIDs) == 0 {
		return 0, apperrors.Validation("message_ids must not be empty")
	}
	n, err := s.writer.MarkRead(ctx, messageIDs, userID)
	if err != nil {
		return 0, internalError("failed to mark messages read", err, "user_id", userID)
	}
	return n, nil
}

// MarkConversationRead marks every message of the match addressed to the
// user as read.
func (s *MessageService) MarkConversationRead(ctx context.Context, matchID, userID uuid.UUID) (int64, error) {
	if _, err := participantMatch(ctx, s.matches, matchID, userID); err != nil {
		return 0, err
	}
	n, err := s.writer.MarkMatchRead(ctx, matchID, userID)
	if err != nil {
		return 0, internalError("failed to mark conversation read", err, "match_id", matchID)
	}
	return n, nil
}

// UnreadCount returns how many messages addressed to the user are unread.
func (s *MessageService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := s.reader.UnreadCount(ctx, userID)
	if err != nil {
		return 0, internalError("failed to count unread messages", err, "user_id", userID)
	}
	return n, nil
}

// oldestFirst reverses a newest-first page in place.
func oldestFirst(messages []models.MessageDB) []models.MessageDB {
	if messages == nil {
		return []models.MessageDB{}
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages
}
