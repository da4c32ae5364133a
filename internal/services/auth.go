package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/matchrimoney/internal/apperrors"
	"github.com/sbilibin2017/matchrimoney/internal/logger"
	"github.com/sbilibin2017/matchrimoney/internal/models"
	"github.com/sbilibin2017/matchrimoney/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// verificationTTL is how long an email verification token stays valid.
const verificationTTL = 24 * time.Hour

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)                                                // Returns nil when missing
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)                                                 // Returns nil when missing
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.UserDB, error)                                  // Users keyed by id
	ListMarketplace(ctx context.Context, excludeID uuid.UUID, f models.MarketplaceFilter) ([]models.UserDB, error)        // Visible, completed profiles
	PageMarketplace(ctx context.Context, excludeID uuid.UUID, f models.MarketplaceFilter) ([]models.UserDB, int64, error) // One sorted page and the total
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, email, passwordHash, coupleName string) (*models.UserDB, error)          // Inserts an unverified user
	UpdateProfile(ctx context.Context, userID uuid.UUID, p models.ProfileUpdate) (*models.UserDB, error) // Overwrites editable fields
	SetEmailVerified(ctx context.Context, email string) error                                            // Marks the email verified
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error                     // Stores a new hash
	UpdateProfilePicture(ctx context.Context, userID uuid.UUID, picture *string) error                   // Sets or clears the picture
}

// EmailVerificationStore keeps email verification tokens.
type EmailVerificationStore interface {
	Create(ctx context.Context, email, token string, expiresAt time.Time) error
	GetByToken(ctx context.Context, token string) (*models.EmailVerificationDB, error)
	DeleteByEmail(ctx context.Context, email string) error
}

// PasswordResetStore keeps short-lived password reset tokens.
type PasswordResetStore interface {
	Save(ctx context.Context, token string, userID uuid.UUID) error
	Get(ctx context.Context, token string) (uuid.UUID, error)
	Delete(ctx context.Context, token string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// Mailer sends transactional emails.
type Mailer interface {
	SendVerification(ctx context.Context, to, token string) error
	SendPasswordReset(ctx context.Context, to, token string) error
}

// AuthResult is a session token together with the authenticated user.
type AuthResult struct {
	Token string         `json:"token"`
	User  *models.UserDB `json:"user"`
}

// AuthService handles signup, login, email verification and password resets.
type AuthService struct {
	reader        UserReader
	writer        UserWriter
	verifications EmailVerificationStore
	resets        PasswordResetStore
	jwt           JWTGenerator
	mailer        Mailer
	now           func() time.Time
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	verifications EmailVerificationStore,
	resets PasswordResetStore,
	jwt JWTGenerator,
	mailer Mailer,
) *AuthService {
	return &AuthService{
		reader:        reader,
		writer:        writer,
		verifications: verifications,
		resets:        resets,
		jwt:           jwt,
		mailer:        mailer,
		now:           time.Now,
	}
}

// Signup registers an unverified user and mails a verification link.
func (svc *AuthService) Signup(ctx context.Context, email, password, coupleName string) (*models.UserDB, error) {
	email = normalizeEmail(email)

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		return nil, internalError("failed to check user exists", err, "email", email)
	}
	if existing != nil {
		logger.Log.Infow("signup with registered email", "email", email)
		return nil, apperrors.Conflict("email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, internalError("failed to hash password", err)
	}

	user, err := svc.writer.Create(ctx, email, string(hash), coupleName)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.Conflict("email is already registered")
		}
		return nil, internalError("failed to save user", err, "email", email)
	}

	// The account exists either way; a lost email can be resent.
	if err := svc.issueVerification(ctx, email); err != nil {
		logger.Log.Errorw("failed to send verification email", "email", email, "error", err)
	}
	return user, nil
}

// Login authenticates a verified user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		return nil, internalError("failed to get user", err, "email", email)
	}
	if user == nil {
		logger.Log.Infow("login for unknown email", "email", email)
		return nil, apperrors.Authentication("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "user_id", user.UserID)
		return nil, apperrors.Authentication("invalid email or password")
	}
	if !user.EmailVerified {
		return nil, apperrors.Forbidden("please verify your email before logging in")
	}

	return svc.session(ctx, user)
}

// VerifyEmail consumes a verification token and logs the user in.
func (svc *AuthService) VerifyEmail(ctx context.Context, token string) (*AuthResult, error) {
	v, err := svc.verifications.GetByToken(ctx, token)
	if err != nil {
		return nil, internalError("failed to get verification token", err)
	}
	if v == nil {
		return nil, apperrors.Validation("invalid or expired verification token")
	}
	if v.Expired(svc.now()) {
		if err := svc.verifications.DeleteByEmail(ctx, v.Email); err != nil {
			logger.Log.Errorw("failed to delete expired verification tokens", "email", v.Email, "error", err)
		}
		return nil, apperrors.Validation("invalid or expired verification token")
	}

	if err := svc.writer.SetEmailVerified(ctx, v.Email); err != nil {
		return nil, internalError("failed to mark email verified", err, "email", v.Email)
	}
	if err := svc.verifications.DeleteByEmail(ctx, v.Email); err != nil {
		return nil, internalError("failed to delete verification tokens", err, "email", v.Email)
	}

	user, err := svc.reader.GetByEmail(ctx, v.Email)
	if err != nil {
		return nil, internalError("failed to get user", err, "email", v.Email)
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}
	return svc.session(ctx, user)
}

// ResendVerification replaces the user's verification tokens with a new one.
func (svc *AuthService) ResendVerification(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		return internalError("failed to get user", err, "email", email)
	}
	if user == nil {
		return apperrors.NotFound("user not found")
	}
	if user.EmailVerified {
		return apperrors.Validation("email is already verified")
	}

	if err := svc.verifications.DeleteByEmail(ctx, email); err != nil {
		return internalError("failed to delete verification tokens", err, "email", email)
	}
	if err := svc.issueVerification(ctx, email); err != nil {
		return internalError("failed to issue verification token", err, "email", email)
	}
	return nil
}

// ForgotPassword mails a reset link. Unknown emails succeed silently.
func (svc *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		return internalError("failed to get user", err, "email", email)
	}
	if user == nil {
		logger.Log.Infow("password reset for unknown email", "email", email)
		return nil
	}

	token, err := newToken()
	if err != nil {
		return internalError("failed to generate reset token", err)
	}
	if err := svc.resets.Save(ctx, token, user.UserID); err != nil {
		return internalError("failed to save reset token", err, "user_id", user.UserID)
	}
	if err := svc.mailer.SendPasswordReset(ctx, email, token); err != nil {
		logger.Log.Errorw("failed to send password reset email", "user_id", user.UserID, "error", err)
	}
	return nil
}

// ResetPassword sets a new password using a reset token.
func (svc *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	userID, err := svc.resets.Get(ctx, token)
	if err != nil {
		if errors.Is(err, repositories.ErrTokenNotFound) {
			return apperrors.Validation("invalid or expired reset token")
		}
		return internalError("failed to get reset token", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return internalError("failed to hash password", err)
	}
	if err := svc.writer.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return internalError("failed to update password", err, "user_id", userID)
	}

	if err := svc.resets.Delete(ctx, token); err != nil {
		logger.Log.Errorw("failed to delete reset token", "user_id", userID, "error", err)
	}
	return nil
}

func (svc *AuthService) issueVerification(ctx context.Context, email string) error {
	token, err := newToken()
	if err != nil {
		return err
	}
	if err := svc.verifications.Create(ctx, email, token, svc.now().Add(verificationTTL)); err != nil {
		return err
	}
	return svc.mailer.SendVerification(ctx, email, token)
}

func (svc *AuthService) session(ctx context.Context, user *models.UserDB) (*AuthResult, error) {
	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		return nil, internalError("failed to generate JWT", err, "user_id", user.UserID)
	}
	return &AuthResult{Token: token, User: user}, nil
}
