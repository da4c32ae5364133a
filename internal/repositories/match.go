package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/matchrimoney/internal/models"
)

const matchColumns = `match_id, initiator_id, receiver_id, status, compatibility_score,
	shared_categories, estimated_savings, created_at, updated_at`

// MatchReadRepository handles match read operations
type MatchReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewMatchReadRepository(db *sqlx.DB, txGetter TxGetter) *MatchReadRepository {
	return &MatchReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the match or nil when it does not exist.
func (r *MatchReadRepository) GetByID(ctx context.Context, matchID uuid.UUID) (*models.MatchDB, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE match_id = $1`

	var match models.MatchDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &match, query, matchID)
	logQuery(query, []any{matchID}, match.Status, err)

	if missing, err := noRows(err); missing || err != nil {
		return nil, err
	}
	return &match, nil
}

// GetBetween returns the match between two users in either direction, or nil.
func (r *MatchReadRepository) GetBetween(ctx context.Context, userA, userB uuid.UUID) (*models.MatchDB, error) {
	query := `
		SELECT ` + matchColumns + `
		FROM matches
		WHERE (initiator_id = $1 AND receiver_id = $2)
		   OR (initiator_id = $2 AND receiver_id = $1)
		LIMIT 1`

	var match models.MatchDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &match, query, userA, userB)
	logQuery(query, []any{userA, userB}, match.MatchID, err)

	if missing, err := noRows(err); missing || err != nil {
		return nil, err
	}
	return &match, nil
}

// ListByUser returns the user's matches, most recently updated first.
// An empty statuses slice means any status.
func (r *MatchReadRepository) ListByUser(ctx context.Context, userID uuid.UUID, statuses []models.MatchStatus) ([]models.MatchDB, error) {
	query := `
		SELECT ` + matchColumns + `
		FROM matches
		WHERE (initiator_id = ? OR receiver_id = ?)`
	args := []any{userID, userID}

	if len(statuses) > 0 {
		query += ` AND status IN (?)`
		args = append(args, statuses)
	}
	query += ` ORDER BY updated_at DESC`

	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var matches []models.MatchDB
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &matches, query, args...)
	logQuery(query, args, len(matches), err)
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// MatchWriteRepository handles match write operations
type MatchWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewMatchWriteRepository(db *sqlx.DB, txGetter TxGetter) *MatchWriteRepository {
	return &MatchWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a new match. It returns ErrDuplicate when a match already
// exists for the pair in either direction.
func (r *MatchWriteRepository) Create(ctx context.Context, m *models.MatchDB) (*models.MatchDB, error) {
	query := `
		INSERT INTO matches (match_id, initiator_id, receiver_id, status, compatibility_score,
		                     shared_categories, estimated_savings, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + matchColumns
	args := []any{
		uuid.New(), m.InitiatorID, m.ReceiverID, m.Status, m.CompatibilityScore,
		m.SharedCategories, m.EstimatedSavings,
	}

	var created models.MatchDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)
	logQuery(query, args, created.MatchID, err)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &created, nil
}

// UpdateStatus moves a match from one status to another. It returns nil
// when the match does not exist or is no longer in the from status.
func (r *MatchWriteRepository) UpdateStatus(ctx context.Context, matchID uuid.UUID, from, to models.MatchStatus) (*models.MatchDB, error) {
	query := `
		UPDATE matches
		SET status = $3, updated_at = NOW()
		WHERE match_id = $1 AND status = $2
		RETURNING ` + matchColumns
	args := []any{matchID, from, to}

	var match models.MatchDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &match, query, args...)
	logQuery(query, args, match.Status, err)

	if missing, err := noRows(err); missing || err != nil {
		return nil, err
	}
	return &match, nil
}

// Touch bumps the match's update time, which orders conversations.
func (r *MatchWriteRepository) Touch(ctx context.Context, matchID uuid.UUID) error {
	query := `UPDATE matches SET updated_at = NOW() WHERE match_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, matchID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{matchID}, rowsAffected, err)
	return err
}
