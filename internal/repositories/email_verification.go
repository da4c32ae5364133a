package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/matchrimoney/internal/models"
)

// EmailVerificationRepository stores email verification tokens.
type EmailVerificationRepository struct {
	db *sqlx.DB
}

func NewEmailVerificationRepository(db *sqlx.DB) *EmailVerificationRepository {
	return &EmailVerificationRepository{db: db}
}

// Create stores a token for email valid until expiresAt.
func (r *EmailVerificationRepository) Create(ctx context.Context, email, token string, expiresAt time.Time) error {
	query := `
		INSERT INTO email_verifications (id, email, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, NOW())`
	id := uuid.New()

	_, err := r.db.ExecContext(ctx, query, id, email, token, expiresAt)
	logQuery(query, []any{id, email, expiresAt}, nil, err)
	return err
}

// GetByToken returns the verification record or nil when it does not exist.
func (r *EmailVerificationRepository) GetByToken(ctx context.Context, token string) (*models.EmailVerificationDB, error) {
	query := `SELECT id, email, token, expires_at, created_at FROM email_verifications WHERE token = $1`

	var v models.EmailVerificationDB
	err := r.db.GetContext(ctx, &v, query, token)
	logQuery(query, nil, v.Email, err)

	if missing, err := noRows(err); missing || err != nil {
		return nil, err
	}
	return &v, nil
}

// DeleteByEmail removes every token issued for email.
func (r *EmailVerificationRepository) DeleteByEmail(ctx context.Context, email string) error {
	query := `DELETE FROM email_verifications WHERE email = $1`

	res, err := r.db.ExecContext(ctx, query, email)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{email}, rowsAffected, err)
	return err
}
