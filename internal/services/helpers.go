package services

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/sbilibin2017/matchrimoney/internal/apperrors"
	"github.com/sbilibin2017/matchrimoney/internal/logger"
)

// MaxMessageLength is the longest message body accepted, in characters.
const MaxMessageLength = 2000

// Page size limits.
const (
	defaultPageSize        = 20
	maxConversationPage    = 100
	maxMarketplacePageSize = 50
)

// internalError logs a storage or collaborator failure and hides it
// behind a generic internal error.
func internalError(msg string, err error, keysAndValues ...any) error {
	logger.Log.Errorw(msg, append(keysAndValues, "error", err)...)
	return apperrors.Internal(err)
}

// newToken returns a random 32-byte token, hex encoded.
func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// messageContent trims and checks a message body.
func messageContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", apperrors.Validation("message content is required")
	}
	if utf8.RuneCountInString(content) > MaxMessageLength {
		return "", apperrors.Validation("message content must be at most 2000 characters")
	}
	return content, nil
}

// pageParams clamps a requested page into [1, ...] and the page size into
// [1, max], falling back to the default size.
func pageParams(page, pageSize, max int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > max {
		pageSize = max
	}
	return page, pageSize
}
