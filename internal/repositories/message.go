package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/matchrimoney/internal/models"
)

const messageColumns = `message_id, sender_id, receiver_id, match_id, content, is_read, created_at`

// MessageReadRepository handles message read operations
type MessageReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewMessageReadRepository(db *sqlx.DB, txGetter TxGetter) *MessageReadRepository {
	return &MessageReadRepository{db: db, txGetter: txGetter}
}

// ListByMatch returns a page of the match's messages, newest first.
func (r *MessageReadRepository) ListByMatch(ctx context.Context, matchID uuid.UUID, limit, offset int) ([]models.MessageDB, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE match_id = $1
		ORDER BY created_at DESC, message_id DESC
		LIMIT $2 OFFSET $3`
	return r.list(ctx, query, matchID, limit, offset)
}

// CountByMatch returns the number of messages tied to the match.
func (r *MessageReadRepository) CountByMatch(ctx context.Context, matchID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM messages WHERE match_id = $1`
	return r.count(ctx, query, matchID)
}

// ListBetween returns a page of messages exchanged by two users, newest first.
func (r *MessageReadRepository) ListBetween(ctx context.Context, userA, userB uuid.UUID, limit, offset int) ([]models.MessageDB, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at DESC, message_id DESC
		LIMIT $3 OFFSET $4`
	return r.list(ctx, query, userA, userB, limit, offset)
}

// CountBetween returns the number of messages exchanged by two users.
func (r *MessageReadRepository) CountBetween(ctx context.Context, userA, userB uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)`
	return r.count(ctx, query, userA, userB)
}

// LastByMatchIDs returns the most recent message of each match that has one.
func (r *MessageReadRepository) LastByMatchIDs(ctx context.Context, matchIDs []uuid.UUID) (map[uuid.UUID]*models.MessageDB, error) {
	result := make(map[uuid.UUID]*models.MessageDB, len(matchIDs))
	if len(matchIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`
		SELECT DISTINCT ON (match_id) `+messageColumns+`
		FROM messages
		WHERE match_id IN (?)
		ORDER BY match_id, created_at DESC, message_id DESC`, matchIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	messages, err := r.list(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	for i := range messages {
		if messages[i].MatchID != nil {
			result[*messages[i].MatchID] = &messages[i]
		}
	}
	return result, nil
}

// UnreadCountsByMatch counts unread messages addressed to userID per match.
func (r *MessageReadRepository) UnreadCountsByMatch(ctx context.Context, userID uuid.UUID, matchIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	result := make(map[uuid.UUID]int64, len(matchIDs))
	if len(matchIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`
		SELECT match_id, COUNT(*) AS unread
		FROM messages
		WHERE receiver_id = ? AND NOT is_read AND match_id IN (?)
		GROUP BY match_id`, userID, matchIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var rows []struct {
		MatchID uuid.UUID `db:"match_id"`
		Unread  int64     `db:"unread"`
	}
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, args...)
	logQuery(query, args, len(rows), err)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.MatchID] = row.Unread
	}
	return result, nil
}

// UnreadCount counts all unread messages addressed to userID.
func (r *MessageReadRepository) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM messages WHERE receiver_id = $1 AND NOT is_read`
	return r.count(ctx, query, userID)
}

func (r *MessageReadRepository) list(ctx context.Context, query string, args ...any) ([]models.MessageDB, error) {
	messages := []models.MessageDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &messages, query, args...)
	logQuery(query, args, len(messages), err)
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MessageReadRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &n, query, args...)
	logQuery(query, args, n, err)
	return n, err
}

// MessageWriteRepository handles message write operations
type MessageWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewMessageWriteRepository(db *sqlx.DB, txGetter TxGetter) *MessageWriteRepository {
	return &MessageWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts an unread message.
func (r *MessageWriteRepository) Create(ctx context.Context, senderID, receiverID uuid.UUID, matchID *uuid.UUID, content string) (*models.MessageDB, error) {
	query := `
		INSERT INTO messages (message_id, sender_id, receiver_id, match_id, content, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, NOW())
		RETURNING ` + messageColumns
	args := []any{uuid.New(), senderID, receiverID, matchID, content}

	var msg models.MessageDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &msg, query, args...)
	logQuery(query, args[:4], msg.MessageID, err)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// MarkRead flips the given messages addressed to userID to read and
// returns how many changed.
func (r *MessageWriteRepository) MarkRead(ctx context.Context, messageIDs []uuid.UUID, userID uuid.UUID) (int64, error) {
	if len(messageIDs) == 0 {
		return 0, nil
	}

	query, args, err := sqlx.In(`
		UPDATE messages
		SET is_read = TRUE
		WHERE receiver_id = ? AND NOT is_read AND message_id IN (?)`, userID, messageIDs)
	if err != nil {
		return 0, err
	}
	query = r.db.Rebind(query)
	return r.exec(ctx, query, args...)
}

// MarkMatchRead flips every unread message of the match addressed to
// userID to read and returns how many changed.
func (r *MessageWriteRepository) MarkMatchRead(ctx context.Context, matchID, userID uuid.UUID) (int64, error) {
	query := `
		UPDATE messages
		SET is_read = TRUE
		WHERE match_id = $1 AND receiver_id = $2 AND NOT is_read`
	return r.exec(ctx, query, matchID, userID)
}

func (r *MessageWriteRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)
	if err != nil {
		return 0, err
	}
	return rowsAffected, nil
}
