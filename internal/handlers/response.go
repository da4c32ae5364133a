package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/matchrimoney/internal/apperrors"
	"github.com/sbilibin2017/matchrimoney/internal/logger"
	"github.com/sbilibin2017/matchrimoney/internal/validation"
)

// dateLayout is the wire format of calendar dates.
const dateLayout = "2006-01-02"

// UserIDGetter returns the authenticated user id stored in the request context.
type UserIDGetter func(ctx context.Context) (uuid.UUID, bool)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: resource not found
	Error string `json:"error"`

	// Machine readable error kind
	// default: NOT_FOUND
	Code string `json:"code"`

	// Failing request fields, for validation errors only
	Details []validation.FieldError `json:"details,omitempty"`
}

// MessageResponse is a plain acknowledgement
// swagger:model MessageResponse
type MessageResponse struct {
	// default: ok
	Message string `json:"message"`
}

// UpdatedResponse reports how many rows an operation changed
// swagger:model UpdatedResponse
type UpdatedResponse struct {
	// default: 3
	Updated int64 `json:"updated"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperrors.FromError(err)
	if appErr.Kind == apperrors.KindInternal {
		logger.Log.Errorw("request failed",
			"method", r.Method,
			"uri", r.RequestURI,
			"error", err,
		)
	}

	resp := ErrorResponse{Error: appErr.Message, Code: string(appErr.Kind)}
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		resp.Details = fieldErrs
	}
	writeJSON(w, appErr.StatusCode(), resp)
}

// decodeJSON reads the body into dst and runs its validate rules.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if err := validation.Struct(dst); err != nil {
		return &apperrors.AppError{
			Kind:     apperrors.KindValidation,
			Message:  "invalid request: " + err.Error(),
			Internal: err,
		}
	}
	return nil
}

// currentUser returns the caller or writes a 401.
func currentUser(w http.ResponseWriter, r *http.Request, getUserID UserIDGetter) (uuid.UUID, bool) {
	userID, ok := getUserID(r.Context())
	if !ok {
		writeError(w, r, apperrors.Authentication("authentication required"))
		return uuid.Nil, false
	}
	return userID, true
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, apperrors.Validation(fmt.Sprintf("%s must be a valid UUID", name))
	}
	return id, nil
}

// queryInt parses an optional integer query parameter; absent means 0.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, apperrors.Validation(fmt.Sprintf("%s must be a non-negative integer", name))
	}
	return v, nil
}

// queryDate parses an optional YYYY-MM-DD query parameter.
func queryDate(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("%s must be a date in YYYY-MM-DD format", name))
	}
	return &d, nil
}

// pageQuery reads the page and page_size query parameters.
func pageQuery(r *http.Request) (page, pageSize int, err error) {
	if page, err = queryInt(r, "page"); err != nil {
		return 0, 0, err
	}
	if pageSize, err = queryInt(r, "page_size"); err != nil {
		return 0, 0, err
	}
	return page, pageSize, nil
}
