package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sbilibin2017/matchrimoney/internal/apperrors"
	"github.com/sbilibin2017/matchrimoney/internal/compatibility"
	"github.com/sbilibin2017/matchrimoney/internal/logger"
	"github.com/sbilibin2017/matchrimoney/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=services

// MaxPictureSize is the largest accepted profile picture, in bytes.
const MaxPictureSize = 5 << 20

// allowedPictureTypes are the sniffed content types accepted for pictures.
var allowedPictureTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// PictureStorage stores profile picture objects.
type PictureStorage interface {
	Put(ctx context.Context, key, contentType string, r io.Reader, size int64) (string, error) // Stores the object and returns its URL
	Delete(ctx context.Context, url string) error                                              // Removes the object behind a URL
}

// ProfileService manages a couple's own profile and the marketplace.
type ProfileService struct {
	reader  UserReader
	writer  UserWriter
	storage PictureStorage
}

// NewProfileService creates a new ProfileService.
func NewProfileService(reader UserReader, writer UserWriter, storage PictureStorage) *ProfileService {
	return &ProfileService{
		reader:  reader,
		writer:  writer,
		storage: storage,
	}
}

// GetProfile returns the caller's full profile.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	return s.getUser(ctx, userID)
}

// UpdateProfile overwrites the editable profile fields and recomputes
// whether the profile is complete.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.UserDB, error) {
	upd.CoupleName = strings.TrimSpace(upd.CoupleName)
	upd.Location = strings.TrimSpace(upd.Location)
	upd.Theme = strings.TrimSpace(upd.Theme)
	upd.VendorCategories = normalizeCategories(upd.VendorCategories)
	if upd.Bio != nil && strings.TrimSpace(*upd.Bio) == "" {
		upd.Bio = nil
	}

	if upd.CoupleName == "" {
		return nil, apperrors.Validation("couple name is required")
	}
	if upd.Budget != 0 && upd.Budget < models.MinBudget {
		return nil, apperrors.Validation(fmt.Sprintf("budget must be at least %d", models.MinBudget))
	}

	user, err := s.writer.UpdateProfile(ctx, userID, upd)
	if err != nil {
		return nil, internalError("failed to update profile", err, "user_id", userID)
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}
	logger.Log.Infow("profile updated", "user_id", userID, "profile_completed", user.ProfileCompleted)
	return user, nil
}

// UploadPicture stores a new profile picture and replaces the previous one.
func (s *ProfileService) UploadPicture(ctx context.Context, userID uuid.UUID, filename string, data []byte) (*models.UserDB, error) {
	if len(data) == 0 {
		return nil, apperrors.Validation("picture file is empty")
	}
	if len(data) > MaxPictureSize {
		return nil, apperrors.Validation("picture must be at most 5MB")
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), allowedPictureTypes...) {
		logger.Log.Infow("rejected picture upload", "user_id", userID, "filename", filename, "type", mtype.String())
		return nil, apperrors.Validation("only JPEG, PNG, GIF and WebP images are allowed")
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("profile-pictures/%s/%s%s", userID, uuid.New(), mtype.Extension())
	url, err := s.storage.Put(ctx, key, mtype.String(), bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, internalError("failed to store picture", err, "user_id", userID)
	}

	if err := s.writer.UpdateProfilePicture(ctx, userID, &url); err != nil {
		s.deletePicture(ctx, userID, url)
		return nil, internalError("failed to save picture reference", err, "user_id", userID)
	}

	if user.ProfilePicture != nil {
		s.deletePicture(ctx, userID, *user.ProfilePicture)
	}
	user.ProfilePicture = &url
	return user, nil
}

// RemovePicture clears the profile picture.
func (s *ProfileService) RemovePicture(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.ProfilePicture == nil {
		return nil, apperrors.Validation("no profile picture to remove")
	}

	if err := s.writer.UpdateProfilePicture(ctx, userID, nil); err != nil {
		return nil, internalError("failed to clear picture reference", err, "user_id", userID)
	}
	s.deletePicture(ctx, userID, *user.ProfilePicture)

	user.ProfilePicture = nil
	return user, nil
}

// ChangePassword replaces the password after checking the current one.
func (s *ProfileService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return apperrors.Validation("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return internalError("failed to hash password", err)
	}
	if err := s.writer.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return internalError("failed to update password", err, "user_id", userID)
	}
	return nil
}

// Marketplace lists other visible couples scored against the caller.
func (s *ProfileService) Marketplace(ctx context.Context, userID uuid.UUID, f models.MarketplaceFilter) (*models.MarketplacePage, error) {
	switch f.SortBy {
	case "":
		f.SortBy = models.SortByCompatibility
	case models.SortByCompatibility, models.SortByWeddingDate, models.SortByBudget:
	default:
		return nil, apperrors.Validation("sort_by must be one of compatibility, wedding_date, budget")
	}
	if f.MinBudget > 0 && f.MaxBudget > 0 && f.MinBudget > f.MaxBudget {
		return nil, apperrors.Validation("min_budget must not exceed max_budget")
	}
	f.Page, f.PageSize = pageParams(f.Page, f.PageSize, maxMarketplacePageSize)
	f.Categories = normalizeCategories(f.Categories)

	me, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if f.SortBy != models.SortByCompatibility {
		users, total, err := s.reader.PageMarketplace(ctx, userID, f)
		if err != nil {
			return nil, internalError("failed to page marketplace", err, "user_id", userID)
		}
		entries := make([]models.MarketplaceEntry, 0, len(users))
		for i := range users {
			entries = append(entries, marketplaceEntry(me, &users[i]))
		}
		return &models.MarketplacePage{
			Users:      entries,
			Pagination: models.NewPagination(f.Page, f.PageSize, total),
		}, nil
	}

	// Scores depend on the caller, so every candidate is scored before paging.
	candidates, err := s.reader.ListMarketplace(ctx, userID, f)
	if err != nil {
		return nil, internalError("failed to list marketplace", err, "user_id", userID)
	}

	entries := make([]models.MarketplaceEntry, 0, len(candidates))
	for i := range candidates {
		entries = append(entries, marketplaceEntry(me, &candidates[i]))
	}
	sortByCompatibility(entries)

	total := len(entries)
	start := min((f.Page-1)*f.PageSize, total)
	end := min(start+f.PageSize, total)

	return &models.MarketplacePage{
		Users:      entries[start:end],
		Pagination: models.NewPagination(f.Page, f.PageSize, int64(total)),
	}, nil
}

// GetUser returns another couple's public profile scored against the caller.
// Hidden or incomplete profiles are reported as missing.
func (s *ProfileService) GetUser(ctx context.Context, requesterID, targetID uuid.UUID) (*models.MarketplaceEntry, error) {
	target, err := s.getUser(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if targetID != requesterID && !target.Discoverable() {
		return nil, apperrors.NotFound("user not found")
	}

	me, err := s.getUser(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	entry := marketplaceEntry(me, target)
	return &entry, nil
}

func (s *ProfileService) getUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, internalError("failed to get user", err, "user_id", userID)
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}
	return user, nil
}

// deletePicture removes a stored picture; failures are only logged.
func (s *ProfileService) deletePicture(ctx context.Context, userID uuid.UUID, url string) {
	if err := s.storage.Delete(ctx, url); err != nil {
		logger.Log.Warnw("failed to delete picture", "user_id", userID, "url", url, "error", err)
	}
}

func marketplaceEntry(me, other *models.UserDB) models.MarketplaceEntry {
	shared := compatibility.SharedCategories(me.VendorCategories, other.VendorCategories)
	return models.MarketplaceEntry{
		PublicProfile:      other.Public(),
		CompatibilityScore: compatibility.Score(compatibilityProfile(me), compatibilityProfile(other)),
		SharedCategories:   shared,
		EstimatedSavings:   compatibility.EstimatedSavings(me.Budget, len(shared)),
	}
}

func compatibilityProfile(u *models.UserDB) compatibility.Profile {
	var date time.Time
	if u.WeddingDate != nil {
		date = *u.WeddingDate
	}
	return compatibility.Profile{
		WeddingDate:      date,
		Location:         u.Location,
		Budget:           u.Budget,
		VendorCategories: u.VendorCategories,
	}
}

// sortByCompatibility orders entries by descending score; ties keep the
// repository order.
func sortByCompatibility(entries []models.MarketplaceEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CompatibilityScore > entries[j].CompatibilityScore
	})
}

// normalizeCategories lower-cases, trims and de-duplicates category tags.
func normalizeCategories(categories []string) []string {
	seen := make(map[string]struct{}, len(categories))
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
