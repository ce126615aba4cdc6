package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/wardrobe/pkg/cache"
	"github.com/ghuser/wardrobe/pkg/config"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *cache.RedisClient) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := cache.NewRedisClient(&config.Config{RedisURL: "redis://" + mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestSlot_LoadMissingKey(t *testing.T) {
	_, client := setupTestRedis(t)

	data, err := NewSlot(client, "wardrobe-items").Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, data)
}

func TestSlot_SaveLoadRoundTrip(t *testing.T) {
	mr, client := setupTestRedis(t)
	ctx := context.Background()
	payload := []byte(`[{"id":"a","name":"Pull","type":"top","season":"winter","createdAt":1}]`)

	require.NoError(t, NewSlot(client, "wardrobe-items").Save(ctx, payload))

	// A fresh Slot on the same key sees the persisted value.
	got, err := NewSlot(client, "wardrobe-items").Load(ctx)
	require.NoError(t, err)
	require.Equal(t, payload, got)

	stored, err := mr.Get("wardrobe-items")
	require.NoError(t, err)
	require.Equal(t, string(payload), stored)
	require.Zero(t, mr.TTL("wardrobe-items"))
}

func TestSlot_KeysAreIsolated(t *testing.T) {
	_, client := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, NewSlot(client, "a").Save(ctx, []byte(`[1]`)))
	data, err := NewSlot(client, "b").Load(ctx)
	require.NoError(t, err)
	require.Nil(t, data)
}

func TestSlot_Ping(t *testing.T) {
	mr, client := setupTestRedis(t)
	s := NewSlot(client, "wardrobe-items")

	require.NoError(t, s.Ping(context.Background()))

	mr.Close()
	require.Error(t, s.Ping(context.Background()))
	_, err := s.Load(context.Background())
	require.Error(t, err)
}
