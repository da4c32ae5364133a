package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/matchrimoney/internal/apperrors"
	"github.com/sbilibin2017/matchrimoney/internal/models"
	"github.com/sbilibin2017/matchrimoney/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type messageMocks struct {
	users       *services.MockUserReader
	matches     *services.MockMatchReader
	matchWriter *services.MockMatchWriter
	reader      *services.MockMessageReader
	writer      *services.MockMessageWriter
	events      *services.MockEventPublisher
}

func setupMessage(t *testing.T) (*services.MessageService, messageMocks) {
	ctrl := gomock.NewController(t)
	m := messageMocks{
		users:       services.NewMockUserReader(ctrl),
		matches:     services.NewMockMatchReader(ctrl),
		matchWriter: services.NewMockMatchWriter(ctrl),
		reader:      services.NewMockMessageReader(ctrl),
		writer:      services.NewMockMessageWriter(ctrl),
		events:      services.NewMockEventPublisher(ctrl),
	}
	svc := services.NewMessageService(m.users, m.matches, m.matchWriter, m.reader, m.writer, m.events)
	return svc, m
}

// expectDelivery sets up the writes of a successful Send.
func expectDelivery(m messageMocks, sender *models.UserDB, receiverID, matchID uuid.UUID) {
	ctx := context.Background()
	m.writer.EXPECT().Create(ctx, sender.UserID, receiverID, &matchID, "hello").
		Return(&models.MessageDB{MessageID: uuid.New(), SenderID: sender.UserID, ReceiverID: receiverID, MatchID: &matchID, Content: "hello"}, nil)
	m.matchWriter.EXPECT().Touch(ctx, matchID).Return(nil)
	m.users.EXPECT().GetByID(ctx, sender.UserID).Return(sender, nil)
	m.events.EXPECT().Publish(ctx, gomock.Any())
}

func TestMessageService_SendWithMatch(t *testing.T) {
	ctx := context.Background()
	initiator, receiver := newCouple("a", 20000), newCouple("b", 20000)

	tests := []struct {
		name    string
		status  models.MatchStatus
		sender  *models.UserDB
		to      *models.UserDB
		wantErr error
	}{
		{name: "initiator follows up on pending", status: models.MatchStatusPending, sender: initiator, to: receiver},
		{name: "receiver replies before accepting", status: models.MatchStatusPending, sender: receiver, to: initiator, wantErr: apperrors.ErrForbidden},
		{name: "initiator on accepted", status: models.MatchStatusAccepted, sender: initiator, to: receiver},
		{name: "receiver on accepted", status: models.MatchStatusAccepted, sender: receiver, to: initiator},
		{name: "initiator on declined", status: models.MatchStatusDeclined, sender: initiator, to: receiver, wantErr: apperrors.ErrForbidden},
		{name: "receiver on declined", status: models.MatchStatusDeclined, sender: receiver, to: initiator, wantErr: apperrors.ErrForbidden},
		{name: "expired match", status: models.MatchStatusExpired, sender: initiator, to: receiver, wantErr: apperrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setupMessage(t)
			match := newMatch(initiator.UserID, receiver.UserID, tt.status)

			m.users.EXPECT().GetByID(ctx, tt.to.UserID).Return(tt.to, nil)
			m.matches.EXPECT().GetByID(ctx, match.MatchID).Return(match, nil)
			if tt.wantErr == nil {
				expectDelivery(m, tt.sender, tt.to.UserID, match.MatchID)
			}

			view, err := svc.Send(ctx, tt.sender.UserID, tt.to.UserID, "hello", &match.MatchID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.sender.UserID, view.Sender.UserID)
			assert.Equal(t, tt.to.UserID, view.Receiver.UserID)
			assert.False(t, view.IsRead)
		})
	}
}

func TestMessageService_SendAuthorization(t *testing.T) {
	ctx := context.Background()
	a, b := newCouple("a", 20000), newCouple("b", 20000)

	t.Run("self message", func(t *testing.T) {
		svc, _ := setupMessage(t)
		_, err := svc.Send(ctx, a.UserID, a.UserID, "hello", nil)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("content too long", func(t *testing.T) {
		svc, _ := setupMessage(t)
		_, err := svc.Send(ctx, a.UserID, b.UserID, strings.Repeat("x", services.MaxMessageLength+1), nil)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("receiver does not allow messages", func(t *testing.T) {
		svc, m := setupMessage(t)
		closed := newCouple("closed", 20000)
		closed.AllowMessages = false
		m.users.EXPECT().GetByID(ctx, closed.UserID).Return(closed, nil)

		_, err := svc.Send(ctx, a.UserID, closed.UserID, "hello", nil)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("unknown match", func(t *testing.T) {
		svc, m := setupMessage(t)
		id := uuid.New()
		m.users.EXPECT().GetByID(ctx, b.UserID).Return(b, nil)
		m.matches.EXPECT().GetByID(ctx, id).Return(nil, nil)

		_, err := svc.Send(ctx, a.UserID, b.UserID, "hello", &id)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("sender outside the match", func(t *testing.T) {
		svc, m := setupMessage(t)
		match := newMatch(uuid.New(), b.UserID, models.MatchStatusAccepted)
		m.users.EXPECT().GetByID(ctx, b.UserID).Return(b, nil)
		m.matches.EXPECT().GetByID(ctx, match.MatchID).Return(match, nil)

		_, err := svc.Send(ctx, a.UserID, b.UserID, "hello", &match.MatchID)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("receiver outside the match", func(t *testing.T) {
		svc, m := setupMessage(t)
		match := newMatch(a.UserID, uuid.New(), models.MatchStatusAccepted)
		m.users.EXPECT().GetByID(ctx, b.UserID).Return(b, nil)
		m.matches.EXPECT().GetByID(ctx, match.MatchID).Return(match, nil)

		_, err := svc.Send(ctx, a.UserID, b.UserID, "hello", &match.MatchID)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("no match id requires an accepted match", func(t *testing.T) {
		for _, existing := range []*models.MatchDB{nil, newMatch(a.UserID, b.UserID, models.MatchStatusPending)} {
			svc, m := setupMessage(t)
			m.users.EXPECT().GetByID(ctx, b.UserID).Return(b, nil)
			m.matches.EXPECT().GetBetween(ctx, a.UserID, b.UserID).Return(existing, nil)

			_, err := svc.Send(ctx, a.UserID, b.UserID, "hello", nil)
			assert.ErrorIs(t, err, apperrors.ErrForbidden)
		}
	})

	t.Run("no match id attaches the accepted match", func(t *testing.T) {
		svc, m := setupMessage(t)
		match := newMatch(b.UserID, a.UserID, models.MatchStatusAccepted)
		m.users.EXPECT().GetByID(ctx, b.UserID).Return(b, nil)
		m.matches.EXPECT().GetBetween(ctx, a.UserID, b.UserID).Return(match, nil)
		expectDelivery(m, a, b.UserID, match.MatchID)

		view, err := svc.Send(ctx, a.UserID, b.UserID, "hello", nil)
		require.NoError(t, err)
		assert.Equal(t, match.MatchID, *view.MatchID)
	})
}

func TestMessageService_ListConversations(t *testing.T) {
	ctx := context.Background()
	svc, m := setupMessage(t)
	me, other := newCouple("me", 20000), newCouple("other", 20000)
	match := newMatch(me.UserID, other.UserID, models.MatchStatusAccepted)
	last := &models.MessageDB{MessageID: uuid.New(), Content: "see you"}

	m.matches.EXPECT().ListByUser(ctx, me.UserID, []models.MatchStatus{models.MatchStatusPending, models.MatchStatusAccepted}).
		Return([]models.MatchDB{*match}, nil)
	m.users.EXPECT().GetByIDs(ctx, []uuid.UUID{other.UserID}).
		Return(map[uuid.UUID]*models.UserDB{other.UserID: other}, nil)
	m.reader.EXPECT().LastByMatchIDs(ctx, []uuid.UUID{match.MatchID}).
		Return(map[uuid.UUID]*models.MessageDB{match.MatchID: last}, nil)
	m.reader.EXPECT().UnreadCountsByMatch(ctx, me.UserID, []uuid.UUID{match.MatchID}).
		Return(map[uuid.UUID]int64{match.MatchID: 2}, nil)

	conversations, err := svc.ListConversations(ctx, me.UserID)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, other.UserID, conversations[0].OtherUser.UserID)
	assert.Equal(t, last, conversations[0].LastMessage)
	assert.Equal(t, int64(2), conversations[0].UnreadCount)
}

func TestMessageService_GetConversation(t *testing.T) {
	ctx := context.Background()
	me, other := newCouple("me", 20000), newCouple("other", 20000)
	match := newMatch(other.UserID, me.UserID, models.MatchStatusAccepted)

	t.Run("marks read and returns oldest first", func(t *testing.T) {
		svc, m := setupMessage(t)
		newest := models.MessageDB{MessageID: uuid.New(), Content: "third"}
		middle := models.MessageDB{MessageID: uuid.New(), Content: "second"}

		gomock.InOrder(
			m.matches.EXPECT().GetByID(ctx, match.MatchID).Return(match, nil),
			m.writer.EXPECT().MarkMatchRead(ctx, match.MatchID, me.UserID).Return(int64(2), nil),
		)
		m.reader.EXPECT().CountByMatch(ctx, match.MatchID).Return(int64(3), nil)
		m.reader.EXPECT().ListByMatch(ctx, match.MatchID, 2, 0).Return([]models.MessageDB{newest, middle}, nil)
		m.users.EXPECT().GetByID(ctx, other.UserID).Return(other, nil)

		page, err := svc.GetConversation(ctx, match.MatchID, me.UserID, 1, 2)
		require.NoError(t, err)
		require.Len(t, page.Messages, 2)
		assert.Equal(t, "second", page.Messages[0].Content)
		assert.Equal(t, "third", page.Messages[1].Content)
		assert.Equal(t, models.Pagination{Page: 1, PageSize: 2, Total: 3, TotalPages: 2, HasNext: true, HasPrev: false}, page.Pagination)
		assert.Equal(t, other.UserID, page.OtherUser.UserID)
	})

	t.Run("defaults and clamps paging", func(t *testing.T) {
		svc, m := setupMessage(t)
		m.matches.EXPECT().GetByID(ctx, match.MatchID).Return(match, nil)
		m.writer.EXPECT().MarkMatchRead(ctx, match.MatchID, me.UserID).Return(int64(0), nil)
		m.reader.EXPECT().CountByMatch(ctx, match.MatchID).Return(int64(0), nil)
		m.reader.EXPECT().ListByMatch(ctx, match.MatchID, 100, 0).Return(nil, nil)
		m.users.EXPECT().GetByID(ctx, other.UserID).Return(other, nil)

		page, err := svc.GetConversation(ctx, match.MatchID, me.UserID, 0, 500)
		require.NoError(t, err)
		assert.NotNil(t, page.Messages)
		assert.Empty(t, page.Messages)
		assert.Equal(t, 1, page.Pagination.Page)
		assert.Equal(t, 100, page.Pagination.PageSize)
	})

	t.Run("outsider is forbidden and nothing is marked", func(t *testing.T) {
		svc, m := setupMessage(t)
		m.matches.EXPECT().GetByID(ctx, match.MatchID).Return(match, nil)

		_, err := svc.GetConversation(ctx, match.MatchID, uuid.New(), 1, 20)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestMessageService_GetUserConversation(t *testing.T) {
	ctx := context.Background()
	me, other := newCouple("me", 20000), newCouple("other", 20000)

	t.Run("unknown user", func(t *testing.T) {
		svc, m := setupMessage(t)
		m.users.EXPECT().GetByID(ctx, other.UserID).Return(nil, nil)

		_, err := svc.GetUserConversation(ctx, me.UserID, other.UserID, 1, 20)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("history without read side effect", func(t *testing.T) {
		svc, m := setupMessage(t)
		m.users.EXPECT().GetByID(ctx, other.UserID).Return(other, nil)
		m.matches.EXPECT().GetBetween(ctx, me.UserID, other.UserID).Return(nil, nil)
		m.reader.EXPECT().CountBetween(ctx, me.UserID, other.UserID).Return(int64(1), nil)
		m.reader.EXPECT().ListBetween(ctx, me.UserID, other.UserID, 20, 20).Return([]models.MessageDB{{Content: "old"}}, nil)

		page, err := svc.GetUserConversation(ctx, me.UserID, other.UserID, 2, 0)
		require.NoError(t, err)
		assert.Nil(t, page.Match)
		assert.Len(t, page.Messages, 1)
		assert.True(t, page.Pagination.HasPrev)
	})
}

func TestMessageService_MarkConversationReadIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, m := setupMessage(t)
	me, other := uuid.New(), uuid.New()
	match := newMatch(other, me, models.MatchStatusAccepted)

	m.matches.EXPECT().GetByID(ctx, match.MatchID).Return(match, nil).Times(2)
	gomock.InOrder(
		m.writer.EXPECT().MarkMatchRead(ctx, match.MatchID, me).Return(int64(3), nil),
		m.writer.EXPECT().MarkMatchRead(ctx, match.MatchID, me).Return(int64(0), nil),
	)
	m.reader.EXPECT().UnreadCount(ctx, me).Return(int64(0), nil).Times(2)

	n, err := svc.MarkConversationRead(ctx, match.MatchID, me)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	before, err := svc.UnreadCount(ctx, me)
	require.NoError(t, err)

	n, err = svc.MarkConversationRead(ctx, match.MatchID, me)
	require.NoError(t, err)
	assert.Zero(t, n)
	after, err := svc.UnreadCount(ctx, me)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMessageService_MarkConversationReadOutsider(t *testing.T) {
	ctx := context.Background()
	svc, m := setupMessage(t)
	match := newMatch(uuid.New(), uuid.New(), models.MatchStatusAccepted)
	m.matches.EXPECT().GetByID(ctx, match.MatchID).Return(match, nil)

	_, err := svc.MarkConversationRead(ctx, match.MatchID, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestMessageService_MarkRead(t *testing.T) {
	ctx := context.Background()
	svc, m := setupMessage(t)
	me := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	m.writer.EXPECT().MarkRead(ctx, ids, me).Return(int64(1), nil)

	n, err := svc.MarkRead(ctx, ids, me)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = svc.MarkRead(ctx, nil, me)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
