package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/matchrimoney/internal/apperrors"
	"github.com/sbilibin2017/matchrimoney/internal/compatibility"
	"github.com/sbilibin2017/matchrimoney/internal/logger"
	"github.com/sbilibin2017/matchrimoney/internal/models"
	"github.com/sbilibin2017/matchrimoney/internal/repositories"
)

//go:generate mockgen -source=match.go -destination=match_mock.go -package=services

// MatchReader defines read operations for matches.
type MatchReader interface {
	GetByID(ctx context.Context, matchID uuid.UUID) (*models.MatchDB, error)                                   // Returns nil when missing
	GetBetween(ctx context.Context, userA, userB uuid.UUID) (*models.MatchDB, error)                           // Either direction, nil when missing
	ListByUser(ctx context.Context, userID uuid.UUID, statuses []models.MatchStatus) ([]models.MatchDB, error) // Most recently updated first
}

// MatchWriter defines write operations for matches.
type MatchWriter interface {
	Create(ctx context.Context, match *models.MatchDB) (*models.MatchDB, error)                                // Inserts a match
	UpdateStatus(ctx context.Context, matchID uuid.UUID, from, to models.MatchStatus) (*models.MatchDB, error) // Conditional transition
	Touch(ctx context.Context, matchID uuid.UUID) error                                                        // Bumps the update time
}

// EventPublisher publishes domain events. Publishing is best-effort.
type EventPublisher interface {
	Publish(ctx context.Context, event models.Event)
}

// MatchService owns the match lifecycle: PENDING, then ACCEPTED or DECLINED
// once, by the receiver only.
type MatchService struct {
	users         UserReader
	reader        MatchReader
	writer        MatchWriter
	messageReader MessageReader
	messageWriter MessageWriter
	events        EventPublisher
}

// NewMatchService creates a new MatchService.
func NewMatchService(
	users UserReader,
	reader MatchReader,
	writer MatchWriter,
	messageReader MessageReader,
	messageWriter MessageWriter,
	events EventPublisher,
) *MatchService {
	return &MatchService{
		users:         users,
		reader:        reader,
		writer:        writer,
		messageReader: messageReader,
		messageWriter: messageWriter,
		events:        events,
	}
}

// Create opens a PENDING match from initiator to receiver together with
// the initial message.
func (s *MatchService) Create(ctx context.Context, initiatorID, receiverID uuid.UUID, message string) (*models.MatchView, error) {
	if initiatorID == receiverID {
		return nil, apperrors.Validation("cannot create a match with yourself")
	}
	content, err := messageContent(message)
	if err != nil {
		return nil, err
	}

	receiver, err := s.users.GetByID(ctx, receiverID)
	if err != nil {
		return nil, internalError("failed to get receiver", err, "receiver_id", receiverID)
	}
	if receiver == nil || !receiver.Contactable() {
		return nil, apperrors.NotFound("user not found or not accepting matches")
	}

	initiator, err := s.users.GetByID(ctx, initiatorID)
	if err != nil {
		return nil, internalError("failed to get initiator", err, "initiator_id", initiatorID)
	}
	if initiator == nil {
		return nil, apperrors.NotFound("user not found")
	}

	existing, err := s.reader.GetBetween(ctx, initiatorID, receiverID)
	if err != nil {
		return nil, internalError("failed to check existing match", err, "initiator_id", initiatorID, "receiver_id", receiverID)
	}
	if existing != nil {
		return nil, apperrors.Conflict("a match already exists between these users")
	}

	shared := compatibility.SharedCategories(initiator.VendorCategories, receiver.VendorCategories)
	match, err := s.writer.Create(ctx, &models.MatchDB{
		InitiatorID:        initiatorID,
		ReceiverID:         receiverID,
		Status:             models.MatchStatusPending,
		CompatibilityScore: compatibility.Score(compatibilityProfile(initiator), compatibilityProfile(receiver)),
		SharedCategories:   shared,
		EstimatedSavings:   compatibility.EstimatedSavings(initiator.Budget, len(shared)),
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.Conflict("a match already exists between these users")
		}
		return nil, internalError("failed to create match", err, "initiator_id", initiatorID, "receiver_id", receiverID)
	}

	msg, err := s.messageWriter.Create(ctx, initiatorID, receiverID, &match.MatchID, content)
	if err != nil {
		return nil, internalError("failed to create initial message", err, "match_id", match.MatchID)
	}

	logger.Log.Infow("match created", "match_id", match.MatchID, "initiator_id", initiatorID, "receiver_id", receiverID, "score", match.CompatibilityScore)

	event := models.NewEvent(models.EventMatchCreated, initiatorID, receiverID)
	event.MatchID = match.MatchID
	event.MessageID = msg.MessageID
	s.events.Publish(ctx, event)

	return &models.MatchView{
		MatchDB:     match,
		IsInitiator: true,
		Receiver:    receiver.Public(),
		OtherUser:   receiver.Public(),
		LastMessage: msg,
	}, nil
}

// List returns the user's matches, optionally filtered by status.
func (s *MatchService) List(ctx context.Context, userID uuid.UUID, status string) ([]models.MatchView, error) {
	var statuses []models.MatchStatus
	if status != "" {
		st, ok := models.ParseMatchStatus(status)
		if !ok {
			return nil, apperrors.Validation("invalid status filter")
		}
		statuses = []models.MatchStatus{st}
	}

	matches, err := s.reader.ListByUser(ctx, userID, statuses)
	if err != nil {
		return nil, internalError("failed to list matches", err, "user_id", userID)
	}

	users, last, err := loadAnnotations(ctx, s.users, s.messageReader, userID, matches)
	if err != nil {
		return nil, err
	}

	views := make([]models.MatchView, 0, len(matches))
	for i := range matches {
		m := &matches[i]
		other, _ := m.OtherUserID(userID)
		views = append(views, models.MatchView{
			MatchDB:     m,
			IsInitiator: m.InitiatorID == userID,
			OtherUser:   users[other].Public(),
			LastMessage: last[m.MatchID],
		})
	}
	return views, nil
}

// Respond accepts or declines a PENDING match on behalf of its receiver.
func (s *MatchService) Respond(ctx context.Context, matchID, userID uuid.UUID, action string) (*models.MatchView, error) {
	var to models.MatchStatus
	switch action {
	case models.MatchActionAccept:
		to = models.MatchStatusAccepted
	case models.MatchActionDecline:
		to = models.MatchStatusDeclined
	default:
		return nil, apperrors.Validation("action must be accept or decline")
	}

	match, err := s.reader.GetByID(ctx, matchID)
	if err != nil {
		return nil, internalError("failed to get match", err, "match_id", matchID)
	}
	if match == nil {
		return nil, apperrors.NotFound("match not found")
	}
	if match.ReceiverID != userID {
		return nil, apperrors.Forbidden("only the receiver can respond to this match")
	}
	if match.Status != models.MatchStatusPending {
		return nil, apperrors.Conflict("match has already been responded to")
	}

	updated, err := s.writer.UpdateStatus(ctx, matchID, models.MatchStatusPending, to)
	if err != nil {
		return nil, internalError("failed to update match status", err, "match_id", matchID)
	}
	if updated == nil {
		return nil, apperrors.Conflict("match has already been responded to")
	}

	logger.Log.Infow("match responded", "match_id", matchID, "status", updated.Status)

	eventType := models.EventMatchAccepted
	if to == models.MatchStatusDeclined {
		eventType = models.EventMatchDeclined
	}
	event := models.NewEvent(eventType, userID, updated.InitiatorID)
	event.MatchID = matchID
	s.events.Publish(ctx, event)

	return s.view(ctx, updated, userID)
}

// Get returns a match seen from the requester's side.
func (s *MatchService) Get(ctx context.Context, matchID, userID uuid.UUID) (*models.MatchView, error) {
	match, err := participantMatch(ctx, s.reader, matchID, userID)
	if err != nil {
		return nil, err
	}

	view, err := s.view(ctx, match, userID)
	if err != nil {
		return nil, err
	}

	last, err := s.messageReader.LastByMatchIDs(ctx, []uuid.UUID{matchID})
	if err != nil {
		return nil, internalError("failed to get last message", err, "match_id", matchID)
	}
	view.LastMessage = last[matchID]
	return view, nil
}

// view embeds both participants' profiles.
func (s *MatchService) view(ctx context.Context, match *models.MatchDB, userID uuid.UUID) (*models.MatchView, error) {
	users, err := s.users.GetByIDs(ctx, []uuid.UUID{match.InitiatorID, match.ReceiverID})
	if err != nil {
		return nil, internalError("failed to get match participants", err, "match_id", match.MatchID)
	}

	other, _ := match.OtherUserID(userID)
	return &models.MatchView{
		MatchDB:     match,
		IsInitiator: match.InitiatorID == userID,
		Initiator:   users[match.InitiatorID].Public(),
		Receiver:    users[match.ReceiverID].Public(),
		OtherUser:   users[other].Public(),
	}, nil
}

// loadAnnotations loads the counterpart users and the last message of each match.
func loadAnnotations(
	ctx context.Context,
	usersRepo UserReader,
	messages MessageReader,
	userID uuid.UUID,
	matches []models.MatchDB,
) (map[uuid.UUID]*models.UserDB, map[uuid.UUID]*models.MessageDB, error) {
	otherIDs := make([]uuid.UUID, 0, len(matches))
	matchIDs := make([]uuid.UUID, 0, len(matches))
	for i := range matches {
		other, _ := matches[i].OtherUserID(userID)
		otherIDs = append(otherIDs, other)
		matchIDs = append(matchIDs, matches[i].MatchID)
	}

	users, err := usersRepo.GetByIDs(ctx, otherIDs)
	if err != nil {
		return nil, nil, internalError("failed to get counterpart users", err, "user_id", userID)
	}
	last, err := messages.LastByMatchIDs(ctx, matchIDs)
	if err != nil {
		return nil, nil, internalError("failed to get last messages", err, "user_id", userID)
	}
	return users, last, nil
}

// participantMatch loads a match the user takes part in.
func participantMatch(ctx context.Context, reader MatchReader, matchID, userID uuid.UUID) (*models.MatchDB, error) {
	match, err := reader.GetByID(ctx, matchID)
	if err != nil {
		return nil, internalError("failed to get match", err, "match_id", matchID)
	}
	if match == nil {
		return nil, apperrors.NotFound("match not found")
	}
	if !match.HasUser(userID) {
		return nil, apperrors.Forbidden("you are not a participant in this match")
	}
	return match, nil
}
