package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

var userCols = []string{
	"user_id", "email", "password_hash", "couple_name", "wedding_date", "location", "theme", "budget",
	"vendor_categories", "email_verified", "profile_completed", "profile_visible", "allow_messages",
	"bio", "profile_picture", "created_at", "updated_at",
}

func addUserRow(rows *sqlmock.Rows, id uuid.UUID, email string) *sqlmock.Rows {
	now := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
	wedding := time.Date(2027, time.June, 12, 0, 0, 0, 0, time.UTC)
	return rows.AddRow(
		id.String(), email, "hash", "Sam & Alex", wedding, "Austin, TX", "rustic", 25000,
		[]byte(`["venue","dj"]`), true, true, true, true,
		nil, nil, now, now,
	)
}

var matchCols = []string{
	"match_id", "initiator_id", "receiver_id", "status", "compatibility_score",
	"shared_categories", "estimated_savings", "created_at", "updated_at",
}

func addMatchRow(rows *sqlmock.Rows, id, initiator, receiver uuid.UUID, status string) *sqlmock.Rows {
	now := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
	return rows.AddRow(id.String(), initiator.String(), receiver.String(), status, 80, []byte(`["venue"]`), 3200, now, now)
}

var messageCols = []string{"message_id", "sender_id", "receiver_id", "match_id", "content", "is_read", "created_at"}

func addMessageRow(rows *sqlmock.Rows, id, sender, receiver uuid.UUID, matchID *uuid.UUID, content string) *sqlmock.Rows {
	var m any
	if matchID != nil {
		m = matchID.String()
	}
	return rows.AddRow(id.String(), sender.String(), receiver.String(), m, content, false, time.Now())
}
