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
	"github.com/sbilibin2017/matchrimoney/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAuthenticator(ctrl)
	user := &models.UserDB{UserID: uuid.New(), Email: "jane@example.com", CoupleName: "Jane & John"}

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedKind string
	}{
		{
			name: "success",
			inputBody: LoginRequest{
				Email:    "jane@example.com",
				Password: "pass1234",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "jane@example.com", "pass1234").
					Return(&services.AuthResult{Token: "JWT_TOKEN", User: user}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedKind: "VALIDATION_ERROR",
		},
		{
			name:         "invalid email",
			inputBody:    LoginRequest{Email: "nope", Password: "pass1234"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedKind: "VALIDATION_ERROR",
		},
		{
			name: "wrong credentials",
			inputBody: LoginRequest{
				Email:    "jane@example.com",
				Password: "wrongpass",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "jane@example.com", "wrongpass").
					Return(nil, apperrors.Authentication("invalid email or password"))
			},
			expectedCode: http.StatusUnauthorized,
			expectedKind: "AUTHENTICATION_ERROR",
		},
		{
			name: "email not verified",
			inputBody: LoginRequest{
				Email:    "jane@example.com",
				Password: "pass1234",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "jane@example.com", "pass1234").
					Return(nil, apperrors.Forbidden("email not verified"))
			},
			expectedCode: http.StatusForbidden,
			expectedKind: "FORBIDDEN",
		},
		{
			name: "internal error",
			inputBody: LoginRequest{
				Email:    "jane@example.com",
				Password: "pass1234",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "jane@example.com", "pass1234").
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedKind: "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := newJSONRequest(t, http.MethodPost, "/auth/login", tt.inputBody)
			w := httptest.NewRecorder()

			NewLoginHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			if tt.expectedCode == http.StatusOK {
				var resp services.AuthResult
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "JWT_TOKEN", resp.Token)
				assert.Equal(t, user.UserID, resp.User.UserID)
				assert.NotContains(t, w.Body.String(), "password_hash")
				return
			}

			resp := decodeError(t, w)
			assert.Equal(t, tt.expectedKind, resp.Code)
			assert.NotContains(t, resp.Error, "database error")
		})
	}
}

func TestVerifyEmailHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAuthenticator(ctrl)

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().
			VerifyEmail(gomock.Any(), "tok").
			Return(&services.AuthResult{Token: "JWT", User: &models.UserDB{EmailVerified: true}}, nil)

		w := httptest.NewRecorder()
		NewVerifyEmailHandler(mockSvc).ServeHTTP(w, newJSONRequest(t, http.MethodPost, "/auth/verify-email", VerifyEmailRequest{Token: "tok"}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"JWT"`)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewVerifyEmailHandler(mockSvc).ServeHTTP(w, newJSONRequest(t, http.MethodPost, "/auth/verify-email", VerifyEmailRequest{}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		require.Len(t, resp.Details, 1)
		assert.Equal(t, "token", resp.Details[0].Field)
	})

	t.Run("expired token", func(t *testing.T) {
		mockSvc.EXPECT().
			VerifyEmail(gomock.Any(), "old").
			Return(nil, apperrors.Validation("invalid or expired verification token"))

		w := httptest.NewRecorder()
		NewVerifyEmailHandler(mockSvc).ServeHTTP(w, newJSONRequest(t, http.MethodPost, "/auth/verify-email", VerifyEmailRequest{Token: "old"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid or expired verification token", decodeError(t, w).Error)
	})
}
