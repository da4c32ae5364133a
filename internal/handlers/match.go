package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/matchrimoney/internal/models"
)

//go:generate mockgen -source=match.go -destination=match_mock.go -package=handlers

// MatchManager defines the interface that the match service must implement.
type MatchManager interface {
	Create(ctx context.Context, initiatorID, receiverID uuid.UUID, message string) (*models.MatchView, error)
	List(ctx context.Context, userID uuid.UUID, status string) ([]models.MatchView, error)
	Respond(ctx context.Context, matchID, userID uuid.UUID, action string) (*models.MatchView, error)
	Get(ctx context.Context, matchID, userID uuid.UUID) (*models.MatchView, error)
}

// CreateMatchRequest opens a match with another couple
// swagger:model CreateMatchRequest
type CreateMatchRequest struct {
	// Receiving couple
	// required: true
	ReceiverID uuid.UUID `json:"receiver_id" validate:"required"`

	// Initial message
	// required: true
	// default: Hi! We are getting married the same month, want to share a photographer?
	Message string `json:"message" validate:"required,max=2000"`
}

// MatchActionRequest answers a pending match
// swagger:model MatchActionRequest
type MatchActionRequest struct {
	// accept or decline
	// required: true
	// default: accept
	Action string `json:"action" validate:"required,oneof=accept decline"`
}

// MatchListResponse lists the caller's matches
// swagger:model MatchListResponse
type MatchListResponse struct {
	Matches []models.MatchView `json:"matches"`
}

// NewCreateMatchHandler returns an HTTP handler that opens a match.
// @Summary Create a match
// @Description Sends a match request with an initial message to another couple
// @Tags matches
// @Accept json
// @Produce json
// @Param createMatchRequest body handlers.CreateMatchRequest true "Match request"
// @Success 201 {object} models.MatchView "Created match"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Receiver does not accept messages"
// @Failure 404 {object} handlers.ErrorResponse "Receiver not found"
// @Failure 409 {object} handlers.ErrorResponse "Match already exists"
// @Router /matches [post]
// @Security BearerAuth
func NewCreateMatchHandler(svc MatchManager, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, getUserID)
		if !ok {
			return
		}

		var req CreateMatchRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		match, err := svc.Create(r.Context(), userID, req.ReceiverID, req.Message)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, match)
	}
}

// NewListMatchesHandler returns an HTTP handler listing the caller's matches.
// @Summary List matches
// @Tags matches
// @Produce json
// @Param status query string false "PENDING, ACCEPTED, DECLINED or EXPIRED"
// @Success 200 {object} handlers.MatchListResponse "Matches, most recent first"
// @Failure 400 {object} handlers.ErrorResponse "Invalid status"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /matches [get]
// @Security BearerAuth
func NewListMatchesHandler(svc MatchManager, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, getUserID)
		if !ok {
			return
		}

		status := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("status")))
		matches, err := svc.List(r.Context(), userID, status)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if matches == nil {
			matches = []models.MatchView{}
		}

		writeJSON(w, http.StatusOK, MatchListResponse{Matches: matches})
	}
}

// NewGetMatchHandler returns an HTTP handler for a single match.
// @Summary Get a match
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} models.MatchView "Match"
// @Failure 403 {object} handlers.ErrorResponse "Not a participant"
// @Failure 404 {object} handlers.ErrorResponse "Match not found"
// @Router /matches/{id} [get]
// @Security BearerAuth
func NewGetMatchHandler(svc MatchManager, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, getUserID)
		if !ok {
			return
		}

		matchID, err := uuidParam(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		match, err := svc.Get(r.Context(), matchID, userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, match)
	}
}

// NewMatchActionHandler returns an HTTP handler that accepts or declines a pending match.
// @Summary Respond to a match
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param matchActionRequest body handlers.MatchActionRequest true "Action"
// @Success 200 {object} models.MatchView "Updated match"
// @Failure 400 {object} handlers.ErrorResponse "Invalid action"
// @Failure 403 {object} handlers.ErrorResponse "Only the receiver may respond"
// @Failure 404 {object} handlers.ErrorResponse "Match not found"
// @Failure 409 {object} handlers.ErrorResponse "Match is no longer pending"
// @Router /matches/{id}/action [put]
// @Security BearerAuth
func NewMatchActionHandler(svc MatchManager, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, getUserID)
		if !ok {
			return
		}

		matchID, err := uuidParam(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req MatchActionRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		match, err := svc.Respond(r.Context(), matchID, userID, req.Action)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, match)
	}
}
