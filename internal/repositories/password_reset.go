package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/matchrimoney/internal/logger"
)

// ErrTokenNotFound is returned for unknown or expired reset tokens.
var ErrTokenNotFound = errors.New("token not found")

const passwordResetPrefix = "password_reset:"

// PasswordResetRepository keeps password reset tokens in Redis with a TTL.
type PasswordResetRepository struct {
	client *redis.Client
	exp    time.Duration // lifetime of a reset token
}

func NewPasswordResetRepository(client *redis.Client, expiration time.Duration) *PasswordResetRepository {
	return &PasswordResetRepository{
		client: client,
		exp:    expiration,
	}
}

// Save stores token -> userID until the token expires.
func (r *PasswordResetRepository) Save(ctx context.Context, token string, userID uuid.UUID) error {
	key := passwordResetPrefix + token
	err := r.client.Set(ctx, key, userID.String(), r.exp).Err()

	logger.Log.Debugw("redis set",
		"user_id", userID,
		"ttl", r.exp,
		"error", err,
	)
	return err
}

// Get returns the user the token was issued for.
func (r *PasswordResetRepository) Get(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := r.client.Get(ctx, passwordResetPrefix+token).Result()
	if err != nil {
		logger.Log.Debugw("redis get", "error", err)
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, ErrTokenNotFound
		}
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, err
	}
	return userID, nil
}

// Delete invalidates the token.
func (r *PasswordResetRepository) Delete(ctx context.Context, token string) error {
	err := r.client.Del(ctx, passwordResetPrefix+token).Err()
	logger.Log.Debugw("redis del", "error", err)
	return err
}
