package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailVerificationRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmailVerificationRepository(db)
	ctx := context.Background()
	expires := time.Now().Add(24 * time.Hour).UTC()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO email_verifications")).
		WithArgs(sqlmock.AnyArg(), "sam@example.com", "tok", expires).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Create(ctx, "sam@example.com", "tok", expires))

	mock.ExpectQuery(regexp.QuoteMeta("FROM email_verifications WHERE token = $1")).
		WithArgs("tok").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "token", "expires_at", "created_at"}).
			AddRow(uuid.NewString(), "sam@example.com", "tok", expires, time.Now()))
	v, err := repo.GetByToken(ctx, "tok")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "sam@example.com", v.Email)
	assert.False(t, v.Expired(time.Now()))

	mock.ExpectQuery(regexp.QuoteMeta("FROM email_verifications WHERE token = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "token", "expires_at", "created_at"}))
	v, err = repo.GetByToken(ctx, "missing")
	assert.NoError(t, err)
	assert.Nil(t, v)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM email_verifications WHERE email = $1")).
		WithArgs("sam@example.com").
		WillReturnResult(sqlmock.NewResult(0, 2))
	require.NoError(t, repo.DeleteByEmail(ctx, "sam@example.com"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
