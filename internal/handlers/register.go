package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/matchrimoney/internal/models"
	"github.com/sbilibin2017/matchrimoney/internal/services"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Authenticator defines the interface that the auth service must implement.
type Authenticator interface {
	Signup(ctx context.Context, email, password, coupleName string) (*models.UserDB, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
	VerifyEmail(ctx context.Context, token string) (*services.AuthResult, error)
	ResendVerification(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// SignupRequest represents the JSON body for couple registration
// swagger:model SignupRequest
type SignupRequest struct {
	// Email
	// required: true
	// default: jane.and.john@example.com
	Email string `json:"email" validate:"required,email,max=254"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,min=8,max=72"`

	// Couple display name
	// required: true
	// default: Jane & John
	CoupleName string `json:"couple_name" validate:"required,max=100"`
}

// SignupResponse represents a successful registration response
// swagger:model SignupResponse
type SignupResponse struct {
	// Success message
	// default: Account created. Check your email to verify it.
	Message string `json:"message"`

	// Created user
	User *models.UserDB `json:"user"`
}

// EmailRequest carries a single email address
// swagger:model EmailRequest
type EmailRequest struct {
	// Email
	// required: true
	// default: jane.and.john@example.com
	Email string `json:"email" validate:"required,email"`
}

// NewSignupHandler returns an HTTP handler for couple registration.
// @Summary Register a new couple
// @Description Creates an unverified account and emails a verification link.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Signup request"
// @Success 201 {object} handlers.SignupResponse "Account created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Email already registered"
// @Router /auth/signup [post]
func NewSignupHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		user, err := svc.Signup(r.Context(), req.Email, req.Password, req.CoupleName)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, SignupResponse{
			Message: "Account created. Check your email to verify it.",
			User:    user,
		})
	}
}

// NewResendVerificationHandler returns an HTTP handler that mails a fresh verification link.
// @Summary Resend verification email
// @Tags auth
// @Accept json
// @Produce json
// @Param emailRequest body handlers.EmailRequest true "Account email"
// @Success 200 {object} handlers.MessageResponse "Verification email sent"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or already verified"
// @Failure 404 {object} handlers.ErrorResponse "Unknown email"
// @Router /auth/resend-verification [post]
func NewResendVerificationHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EmailRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		if err := svc.ResendVerification(r.Context(), req.Email); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Verification email sent"})
	}
}
