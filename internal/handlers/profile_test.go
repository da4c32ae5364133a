package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/matchrimoney/internal/apperrors"
	"github.com/sbilibin2017/matchrimoney/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileManager(ctrl)
	userID := uuid.New()

	mockSvc.EXPECT().GetProfile(gomock.Any(), userID).
		Return(&models.UserDB{UserID: userID, CoupleName: "Jane & John", PasswordHash: "hash"}, nil)

	w := httptest.NewRecorder()
	NewGetProfileHandler(mockSvc, userGetter(userID)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/profile", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jane \\u0026 John")
	assert.NotContains(t, w.Body.String(), "hash")
}

func TestGetProfileHandler_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := httptest.NewRecorder()
	NewGetProfileHandler(NewMockProfileManager(ctrl), anonymous).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/profile", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTHENTICATION_ERROR", decodeError(t, w).Code)
}

func TestUpdateProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileManager(ctrl)
	userID := uuid.New()
	hidden := false

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "full update",
			inputBody: UpdateProfileRequest{
				CoupleName:       "Jane & John",
				WeddingDate:      "2027-06-12",
				Location:         "Austin, TX",
				Theme:            "rustic",
				Budget:           20000,
				VendorCategories: []string{"photographer", "venue"},
				ProfileVisible:   &hidden,
			},
			mockSetup: func() {
				date := time.Date(2027, 6, 12, 0, 0, 0, 0, time.UTC)
				mockSvc.EXPECT().UpdateProfile(gomock.Any(), userID, models.ProfileUpdate{
					CoupleName:       "Jane & John",
					WeddingDate:      &date,
					Location:         "Austin, TX",
					Theme:            "rustic",
					Budget:           20000,
					VendorCategories: []string{"photographer", "venue"},
					ProfileVisible:   false,
					AllowMessages:    true,
				}).Return(&models.UserDB{UserID: userID, ProfileCompleted: true}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "bad date",
			inputBody:    UpdateProfileRequest{CoupleName: "Jane & John", WeddingDate: "12/06/2027"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "negative budget",
			inputBody:    UpdateProfileRequest{CoupleName: "Jane & John", Budget: -1},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "budget below minimum",
			inputBody: UpdateProfileRequest{CoupleName: "Jane & John", Budget: 500},
			mockSetup: func() {
				mockSvc.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).
					Return(nil, apperrors.Validation("budget must be at least 1000"))
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			NewUpdateProfileHandler(mockSvc, userGetter(userID)).ServeHTTP(w, newJSONRequest(t, http.MethodPut, "/users/profile", tt.inputBody))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func newPictureRequest(t *testing.T, field string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(field, "us.png")
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/users/profile/upload-picture", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadPictureHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileManager(ctrl)
	userID := uuid.New()
	data := []byte("\x89PNG\r\n\x1a\n fake")
	url := "http://localhost:8080/uploads/profile-pictures/x.png"

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().UploadPicture(gomock.Any(), userID, "us.png", data).
			Return(&models.UserDB{UserID: userID, ProfilePicture: &url}, nil)

		w := httptest.NewRecorder()
		NewUploadPictureHandler(mockSvc, userGetter(userID)).ServeHTTP(w, newPictureRequest(t, pictureFormField, data))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), url)
	})

	t.Run("missing file", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewUploadPictureHandler(mockSvc, userGetter(userID)).ServeHTTP(w, newPictureRequest(t, "other", data))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "picture file is required", decodeError(t, w).Error)
	})

	t.Run("unsupported type", func(t *testing.T) {
		mockSvc.EXPECT().UploadPicture(gomock.Any(), userID, "us.png", []byte("plain text")).
			Return(nil, apperrors.Validation("only JPEG, PNG, GIF and WebP images are allowed"))

		w := httptest.NewRecorder()
		NewUploadPictureHandler(mockSvc, userGetter(userID)).ServeHTTP(w, newPictureRequest(t, pictureFormField, []byte("plain text")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRemovePictureHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileManager(ctrl)
	userID := uuid.New()

	mockSvc.EXPECT().RemovePicture(gomock.Any(), userID).Return(&models.UserDB{UserID: userID}, nil)
	w := httptest.NewRecorder()
	NewRemovePictureHandler(mockSvc, userGetter(userID)).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/profile/remove-picture", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	mockSvc.EXPECT().RemovePicture(gomock.Any(), userID).Return(nil, apperrors.Validation("no profile picture to remove"))
	w = httptest.NewRecorder()
	NewRemovePictureHandler(mockSvc, userGetter(userID)).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/profile/remove-picture", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChangePasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileManager(ctrl)
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().ChangePassword(gomock.Any(), userID, "oldsecret", "newsecret123").Return(nil)

		w := httptest.NewRecorder()
		NewChangePasswordHandler(mockSvc, userGetter(userID)).ServeHTTP(w, newJSONRequest(t, http.MethodPut, "/users/profile/change-password",
			ChangePasswordRequest{CurrentPassword: "oldsecret", NewPassword: "newsecret123"}))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("same password", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewChangePasswordHandler(mockSvc, userGetter(userID)).ServeHTTP(w, newJSONRequest(t, http.MethodPut, "/users/profile/change-password",
			ChangePasswordRequest{CurrentPassword: "samesecret", NewPassword: "samesecret"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("wrong current password", func(t *testing.T) {
		mockSvc.EXPECT().ChangePassword(gomock.Any(), userID, "guess1234", "newsecret123").
			Return(apperrors.Validation("current password is incorrect"))

		w := httptest.NewRecorder()
		NewChangePasswordHandler(mockSvc, userGetter(userID)).ServeHTTP(w, newJSONRequest(t, http.MethodPut, "/users/profile/change-password",
			ChangePasswordRequest{CurrentPassword: "guess1234", NewPassword: "newsecret123"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "current password is incorrect", decodeError(t, w).Error)
	})
}
