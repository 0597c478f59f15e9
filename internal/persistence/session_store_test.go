package persistence

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())
	return client
}

func TestSessionStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(newTestRedis(t))

	sid, err := store.Create(ctx, "user-1", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, sid)

	subject, err := store.Lookup(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)

	require.NoError(t, store.Delete(ctx, sid))
	subject, err = store.Lookup(ctx, sid)
	require.NoError(t, err)
	assert.Empty(t, subject)
}

func TestSessionStore_UnknownSessionIsEmpty(t *testing.T) {
	subject, err := NewSessionStore(newTestRedis(t)).Lookup(context.Background(), "does-not-exist")
	require.NoError(t, err)
	assert.Empty(t, subject)
}
