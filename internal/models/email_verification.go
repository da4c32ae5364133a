package models

import (
	"time"

	"github.com/google/uuid"
)

// EmailVerificationDB maps an email to a short-lived verification token.
type EmailVerificationDB struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

// Expired reports whether the token is no longer usable at now.
func (v *EmailVerificationDB) Expired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}
