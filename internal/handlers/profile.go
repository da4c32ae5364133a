package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/matchrimoney/internal/apperrors"
	"github.com/sbilibin2017/matchrimoney/internal/models"
	"github.com/sbilibin2017/matchrimoney/internal/services"
)

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

// ProfileManager defines the interface that the profile service must implement.
type ProfileManager interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.UserDB, error)
	UploadPicture(ctx context.Context, userID uuid.UUID, filename string, data []byte) (*models.UserDB, error)
	RemovePicture(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error
	Marketplace(ctx context.Context, userID uuid.UUID, f models.MarketplaceFilter) (*models.MarketplacePage, error)
	GetUser(ctx context.Context, requesterID, targetID uuid.UUID) (*models.MarketplaceEntry, error)
}

// pictureFormField is the multipart field holding the uploaded picture.
const pictureFormField = "picture"

// UpdateProfileRequest represents the editable profile fields
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// Couple display name
	// required: true
	// default: Jane & John
	CoupleName string `json:"couple_name" validate:"required,max=100"`

	// Wedding date, YYYY-MM-DD
	// default: 2027-06-12
	WeddingDate string `json:"wedding_date" validate:"omitempty,datetime=2006-01-02"`

	// default: Austin, TX
	Location string `json:"location" validate:"max=200"`

	// default: rustic
	Theme string `json:"theme" validate:"max=100"`

	// Budget in whole dollars, 0 or at least 1000
	// default: 20000
	Budget int `json:"budget" validate:"min=0"`

	// default: ["photographer","venue"]
	VendorCategories []string `json:"vendor_categories" validate:"max=20,dive,required,max=50"`

	Bio *string `json:"bio" validate:"omitempty,max=1000"`

	// Listed in the marketplace, defaults to true
	ProfileVisible *bool `json:"profile_visible"`

	// Accepts new contacts, defaults to true
	AllowMessages *bool `json:"allow_messages"`
}

func (req UpdateProfileRequest) toUpdate() models.ProfileUpdate {
	upd := models.ProfileUpdate{
		CoupleName:       req.CoupleName,
		Location:         req.Location,
		Theme:            req.Theme,
		Budget:           req.Budget,
		VendorCategories: req.VendorCategories,
		Bio:              req.Bio,
		ProfileVisible:   true,
		AllowMessages:    true,
	}
	if req.WeddingDate != "" {
		// validated by the datetime rule
		d, _ := time.Parse(dateLayout, req.WeddingDate)
		upd.WeddingDate = &d
	}
	if req.ProfileVisible != nil {
		upd.ProfileVisible = *req.ProfileVisible
	}
	if req.AllowMessages != nil {
		upd.AllowMessages = *req.AllowMessages
	}
	return upd
}

// ChangePasswordRequest carries the current and the new password
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// required: true
	CurrentPassword string `json:"current_password" validate:"required"`

	// required: true
	// default: newsecret123
	NewPassword string `json:"new_password" validate:"required,min=8,max=72,nefield=CurrentPassword"`
}

// NewGetProfileHandler returns an HTTP handler for the caller's own profile.
// @Summary Get own profile
// @Tags users
// @Produce json
// @Success 200 {object} models.UserDB "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/profile [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileManager, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, getUserID)
		if !ok {
			return
		}

		user, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewUpdateProfileHandler returns an HTTP handler that overwrites the caller's profile.
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} models.UserDB "Updated profile"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/profile [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileManager, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, getUserID)
		if !ok {
			return
		}

		var req UpdateProfileRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		user, err := svc.UpdateProfile(r.Context(), userID, req.toUpdate())
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewUploadPictureHandler returns an HTTP handler for profile picture uploads.
// @Summary Upload profile picture
// @Description JPEG, PNG, GIF or WebP, at most 5MB
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param picture formData file true "Picture"
// @Success 200 {object} models.UserDB "Updated profile"
// @Failure 400 {object} handlers.ErrorResponse "Missing, oversized or unsupported file"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/profile/upload-picture [post]
// @Security BearerAuth
func NewUploadPictureHandler(svc ProfileManager, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, getUserID)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, services.MaxPictureSize+1<<20)
		file, header, err := r.FormFile(pictureFormField)
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				writeError(w, r, apperrors.Validation("picture must be at most 5MB"))
				return
			}
			writeError(w, r, apperrors.Validation("picture file is required"))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, services.MaxPictureSize+1))
		if err != nil {
			writeError(w, r, apperrors.Validation("failed to read picture"))
			return
		}

		user, err := svc.UploadPicture(r.Context(), userID, header.Filename, data)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewRemovePictureHandler returns an HTTP handler that removes the profile picture.
// @Summary Remove profile picture
// @Tags users
// @Produce json
// @Success 200 {object} models.UserDB "Updated profile"
// @Failure 400 {object} handlers.ErrorResponse "No picture to remove"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/profile/remove-picture [delete]
// @Security BearerAuth
func NewRemovePictureHandler(svc ProfileManager, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, getUserID)
		if !ok {
			return
		}

		user, err := svc.RemovePicture(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewChangePasswordHandler returns an HTTP handler that changes the caller's password.
// @Summary Change password
// @Tags users
// @Accept json
// @Produce json
// @Param changePasswordRequest body handlers.ChangePasswordRequest true "Passwords"
// @Success 200 {object} handlers.MessageResponse "Password updated"
// @Failure 400 {object} handlers.ErrorResponse "Current password is incorrect"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/profile/change-password [put]
// @Security BearerAuth
func NewChangePasswordHandler(svc ProfileManager, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, getUserID)
		if !ok {
			return
		}

		var req ChangePasswordRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		if err := svc.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Password updated"})
	}
}
