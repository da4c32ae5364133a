package models

import (
	"time"

	"github.com/google/uuid"
)

// MinBudget is the smallest wedding budget a completed profile may declare.
const MinBudget = 1000

// UserDB represents a user record in the database
type UserDB struct {
	UserID           uuid.UUID  `json:"id" db:"user_id"`                          // Primary key
	Email            string     `json:"email" db:"email"`                         // Unique, lower-cased
	PasswordHash     string     `json:"-" db:"password_hash"`                     // bcrypt hash
	CoupleName       string     `json:"couple_name" db:"couple_name"`             // Display name
	WeddingDate      *time.Time `json:"wedding_date" db:"wedding_date"`           // Null until set
	Location         string     `json:"location" db:"location"`                   // Free text, e.g. "Austin, TX"
	Theme            string     `json:"theme" db:"theme"`                         // Free text
	Budget           int        `json:"budget" db:"budget"`                       // Whole dollars, 0 until set
	VendorCategories StringList `json:"vendor_categories" db:"vendor_categories"` // Vendor tags
	EmailVerified    bool       `json:"email_verified" db:"email_verified"`       // Set by email verification
	ProfileCompleted bool       `json:"profile_completed" db:"profile_completed"` // Derived on profile update
	ProfileVisible   bool       `json:"profile_visible" db:"profile_visible"`     // Listed in marketplace
	AllowMessages    bool       `json:"allow_messages" db:"allow_messages"`       // Accepts new contacts
	Bio              *string    `json:"bio" db:"bio"`                             // Optional
	ProfilePicture   *string    `json:"profile_picture" db:"profile_picture"`     // Public URL of the stored picture
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`               // Creation timestamp
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`               // Last update timestamp
}

// Discoverable reports whether other users may see and contact this user.
func (u *UserDB) Discoverable() bool {
	return u.ProfileVisible && u.ProfileCompleted
}

// Contactable reports whether the user can receive a first contact.
func (u *UserDB) Contactable() bool {
	return u.Discoverable() && u.AllowMessages
}

// PublicProfile is what other users see of a couple.
type PublicProfile struct {
	UserID           uuid.UUID  `json:"id"`
	CoupleName       string     `json:"couple_name"`
	WeddingDate      *time.Time `json:"wedding_date"`
	Location         string     `json:"location"`
	Theme            string     `json:"theme"`
	Budget           int        `json:"budget"`
	VendorCategories []string   `json:"vendor_categories"`
	Bio              *string    `json:"bio,omitempty"`
	ProfilePicture   *string    `json:"profile_picture,omitempty"`
}

// Public strips private fields from a user record.
func (u *UserDB) Public() *PublicProfile {
	if u == nil {
		return nil
	}
	cats := []string(u.VendorCategories)
	if cats == nil {
		cats = []string{}
	}
	return &PublicProfile{
		UserID:           u.UserID,
		CoupleName:       u.CoupleName,
		WeddingDate:      u.WeddingDate,
		Location:         u.Location,
		Theme:            u.Theme,
		Budget:           u.Budget,
		VendorCategories: cats,
		Bio:              u.Bio,
		ProfilePicture:   u.ProfilePicture,
	}
}

// UserSummary is the short form embedded in messages.
type UserSummary struct {
	UserID         uuid.UUID `json:"id"`
	CoupleName     string    `json:"couple_name"`
	ProfilePicture *string   `json:"profile_picture,omitempty"`
}

// Summary returns the short form of the user.
func (u *UserDB) Summary() *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{UserID: u.UserID, CoupleName: u.CoupleName, ProfilePicture: u.ProfilePicture}
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	CoupleName       string
	WeddingDate      *time.Time
	Location         string
	Theme            string
	Budget           int
	VendorCategories []string
	Bio              *string
	ProfileVisible   bool
	AllowMessages    bool
}

// Completed reports whether the update describes a complete profile.
func (p ProfileUpdate) Completed() bool {
	return p.WeddingDate != nil &&
		p.Location != "" &&
		p.Budget >= MinBudget &&
		len(p.VendorCategories) > 0
}
