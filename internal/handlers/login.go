package handlers

import (
	"net/http"
)

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: jane.and.john@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// VerifyEmailRequest carries the token from the verification link
// swagger:model VerifyEmailRequest
type VerifyEmailRequest struct {
	// Verification token
	// required: true
	Token string `json:"token" validate:"required"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate a verified couple and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} services.AuthResult "JWT token and user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Failure 403 {object} handlers.ErrorResponse "Email not verified"
// @Router /auth/login [post]
func NewLoginHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		res, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}

// NewVerifyEmailHandler returns an HTTP handler that confirms an email address.
// @Summary Verify email
// @Description Marks the account verified and signs the couple in
// @Tags auth
// @Accept json
// @Produce json
// @Param verifyEmailRequest body handlers.VerifyEmailRequest true "Verification token"
// @Success 200 {object} services.AuthResult "JWT token and user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired token"
// @Router /auth/verify-email [post]
func NewVerifyEmailHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyEmailRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		res, err := svc.VerifyEmail(r.Context(), req.Token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}
