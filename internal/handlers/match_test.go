package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/matchrimoney/internal/apperrors"
	"github.com/sbilibin2017/matchrimoney/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatchView(id, initiator, receiver uuid.UUID, status models.MatchStatus) *models.MatchView {
	return &models.MatchView{
		MatchDB: &models.MatchDB{
			MatchID:            id,
			InitiatorID:        initiator,
			ReceiverID:         receiver,
			Status:             status,
			CompatibilityScore: 94,
			SharedCategories:   models.StringList{"photographer", "venue"},
			EstimatedSavings:   3200,
		},
		IsInitiator: true,
	}
}

func TestCreateMatchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMatchManager(ctrl)
	userID, receiverID, matchID := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedKind string
	}{
		{
			name:      "success",
			inputBody: CreateMatchRequest{ReceiverID: receiverID, Message: "Hi there"},
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), userID, receiverID, "Hi there").
					Return(newMatchView(matchID, userID, receiverID, models.MatchStatusPending), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "missing receiver",
			inputBody:    map[string]string{"message": "Hi there"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedKind: "VALIDATION_ERROR",
		},
		{
			name:         "malformed receiver id",
			inputBody:    map[string]string{"receiver_id": "42", "message": "Hi there"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedKind: "VALIDATION_ERROR",
		},
		{
			name:         "empty message",
			inputBody:    CreateMatchRequest{ReceiverID: receiverID},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedKind: "VALIDATION_ERROR",
		},
		{
			name:      "already matched",
			inputBody: CreateMatchRequest{ReceiverID: receiverID, Message: "Hi again"},
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), userID, receiverID, "Hi again").
					Return(nil, apperrors.Conflict("a match already exists between these users"))
			},
			expectedCode: http.StatusConflict,
			expectedKind: "CONFLICT",
		},
		{
			name:      "receiver does not accept messages",
			inputBody: CreateMatchRequest{ReceiverID: receiverID, Message: "Hi"},
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), userID, receiverID, "Hi").
					Return(nil, apperrors.Forbidden("this couple is not accepting messages"))
			},
			expectedCode: http.StatusForbidden,
			expectedKind: "FORBIDDEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			NewCreateMatchHandler(mockSvc, userGetter(userID)).ServeHTTP(w, newJSONRequest(t, http.MethodPost, "/matches", tt.inputBody))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var resp models.MatchView
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, matchID, resp.MatchID)
				assert.Equal(t, models.MatchStatusPending, resp.Status)
				assert.Equal(t, 3200, resp.EstimatedSavings)
				return
			}
			assert.Equal(t, tt.expectedKind, decodeError(t, w).Code)
		})
	}
}

func TestListMatchesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMatchManager(ctrl)
	userID := uuid.New()

	t.Run("status filter is normalized", func(t *testing.T) {
		mockSvc.EXPECT().List(gomock.Any(), userID, "ACCEPTED").
			Return([]models.MatchView{*newMatchView(uuid.New(), userID, uuid.New(), models.MatchStatusAccepted)}, nil)

		w := httptest.NewRecorder()
		NewListMatchesHandler(mockSvc, userGetter(userID)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/matches?status=accepted", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp MatchListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Matches, 1)
	})

	t.Run("empty list", func(t *testing.T) {
		mockSvc.EXPECT().List(gomock.Any(), userID, "").Return(nil, nil)

		w := httptest.NewRecorder()
		NewListMatchesHandler(mockSvc, userGetter(userID)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/matches", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"matches":[]}`, w.Body.String())
	})

	t.Run("storage failure", func(t *testing.T) {
		mockSvc.EXPECT().List(gomock.Any(), userID, "").Return(nil, apperrors.Internal(errors.New("connection refused")))

		w := httptest.NewRecorder()
		NewListMatchesHandler(mockSvc, userGetter(userID)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/matches", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "internal server error", resp.Error)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestGetMatchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMatchManager(ctrl)
	userID, matchID := uuid.New(), uuid.New()

	tests := []struct {
		name         string
		param        string
		mockSetup    func()
		expectedCode int
	}{
		{
			name:  "participant",
			param: matchID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().Get(gomock.Any(), matchID, userID).
					Return(newMatchView(matchID, userID, uuid.New(), models.MatchStatusPending), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "outsider",
			param: matchID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().Get(gomock.Any(), matchID, userID).
					Return(nil, apperrors.Forbidden("you are not a participant of this match"))
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:  "missing",
			param: matchID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().Get(gomock.Any(), matchID, userID).
					Return(nil, apperrors.NotFound("match not found"))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "bad id",
			param:        "not-a-uuid",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := withURLParams(httptest.NewRequest(http.MethodGet, "/matches/"+tt.param, nil), map[string]string{"id": tt.param})
			w := httptest.NewRecorder()
			NewGetMatchHandler(mockSvc, userGetter(userID)).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestMatchActionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMatchManager(ctrl)
	userID, matchID := uuid.New(), uuid.New()

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
	}{
		{
			name:      "accept",
			inputBody: MatchActionRequest{Action: "accept"},
			mockSetup: func() {
				mockSvc.EXPECT().Respond(gomock.Any(), matchID, userID, "accept").
					Return(newMatchView(matchID, uuid.New(), userID, models.MatchStatusAccepted), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "unknown action",
			inputBody:    MatchActionRequest{Action: "maybe"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "initiator responds",
			inputBody: MatchActionRequest{Action: "decline"},
			mockSetup: func() {
				mockSvc.EXPECT().Respond(gomock.Any(), matchID, userID, "decline").
					Return(nil, apperrors.Forbidden("only the receiver can respond to this match"))
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:      "already answered",
			inputBody: MatchActionRequest{Action: "accept"},
			mockSetup: func() {
				mockSvc.EXPECT().Respond(gomock.Any(), matchID, userID, "accept").
					Return(nil, apperrors.Conflict("match is no longer pending"))
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := withURLParams(newJSONRequest(t, http.MethodPut, "/matches/"+matchID.String()+"/action", tt.inputBody),
				map[string]string{"id": matchID.String()})
			w := httptest.NewRecorder()
			NewMatchActionHandler(mockSvc, userGetter(userID)).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
