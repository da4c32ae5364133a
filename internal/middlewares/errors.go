package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/matchrimoney/internal/apperrors"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, appErr *apperrors.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: appErr.Message,
		Code:  string(appErr.Kind),
	})
}
