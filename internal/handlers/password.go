package handlers

import (
	"net/http"
)

// ResetPasswordRequest carries the reset token and the new password
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// Reset token from the email link
	// required: true
	Token string `json:"token" validate:"required"`

	// New password
	// required: true
	// default: newsecret123
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// NewForgotPasswordHandler returns an HTTP handler that mails a password reset link.
// The answer is the same whether or not the email is registered.
// @Summary Request a password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param emailRequest body handlers.EmailRequest true "Account email"
// @Success 200 {object} handlers.MessageResponse "Reset email sent if the account exists"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /auth/forgot-password [post]
func NewForgotPasswordHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EmailRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		if err := svc.ForgotPassword(r.Context(), req.Email); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{
			Message: "If the account exists, a reset link has been sent",
		})
	}
}

// NewResetPasswordHandler returns an HTTP handler that sets a new password from a reset token.
// @Summary Reset password
// @Tags auth
// @Accept json
// @Produce json
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "Reset request"
// @Success 200 {object} handlers.MessageResponse "Password updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired token"
// @Router /auth/reset-password [post]
func NewResetPasswordHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		if err := svc.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Password updated"})
	}
}
