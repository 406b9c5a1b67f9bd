package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore(time.Minute)
	store.now = func() time.Time { return now }

	awaiting, err := store.Awaiting(ctx, 42)
	require.NoError(t, err)
	require.False(t, awaiting)

	require.NoError(t, store.SetAwaiting(ctx, 42))
	awaiting, err = store.Awaiting(ctx, 42)
	require.NoError(t, err)
	require.True(t, awaiting)

	other, err := store.Awaiting(ctx, 7)
	require.NoError(t, err)
	require.False(t, other)

	require.NoError(t, store.Clear(ctx, 42))
	awaiting, err = store.Awaiting(ctx, 42)
	require.NoError(t, err)
	require.False(t, awaiting)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore(time.Minute)
	store.now = func() time.Time { return now }

	require.NoError(t, store.SetAwaiting(ctx, 1))
	now = now.Add(59 * time.Second)
	awaiting, _ := store.Awaiting(ctx, 1)
	require.True(t, awaiting)

	now = now.Add(time.Second)
	awaiting, _ = store.Awaiting(ctx, 1)
	require.False(t, awaiting)
	require.Empty(t, store.expires)
}

func TestRedisStoreKey(t *testing.T) {
	client, err := NewRedisClient("redis://localhost:6379/2")
	require.NoError(t, err)
	defer client.Close()

	store := NewRedisStore(client, time.Minute)
	require.Equal(t, "procplan:session:awaiting:42", store.key(42))

	_, err = NewRedisClient("http://not-redis")
	require.Error(t, err)
}
