package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestPasswordResetRepository_SaveGetDelete(t *testing.T) {
	mr, client := setupRedis(t)
	repo := NewPasswordResetRepository(client, time.Hour)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.Save(ctx, "abc", userID))
	assert.True(t, mr.Exists("password_reset:abc"))
	assert.Equal(t, time.Hour, mr.TTL("password_reset:abc"))

	got, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	require.NoError(t, repo.Delete(ctx, "abc"))
	_, err = repo.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestPasswordResetRepository_Expiry(t *testing.T) {
	mr, client := setupRedis(t)
	repo := NewPasswordResetRepository(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "abc", uuid.New()))
	mr.FastForward(2 * time.Minute)

	_, err := repo.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestPasswordResetRepository_CorruptValue(t *testing.T) {
	mr, client := setupRedis(t)
	repo := NewPasswordResetRepository(client, time.Minute)

	require.NoError(t, mr.Set("password_reset:bad", "not-a-uuid"))
	_, err := repo.Get(context.Background(), "bad")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrTokenNotFound)
}

func TestPasswordResetRepository_ServerDown(t *testing.T) {
	mr, client := setupRedis(t)
	repo := NewPasswordResetRepository(client, time.Minute)
	mr.Close()

	_, err := repo.Get(context.Background(), "abc")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrTokenNotFound)
}
