// Package redis stores the wardrobe slot as a single Redis string key.
package redis

import (
	"context"

	"github.com/ghuser/wardrobe/pkg/cache"
)

// Slot implements repositories.Slot against one Redis key.
type Slot struct {
	client *cache.RedisClient
	key    string
}

// NewSlot returns a Slot reading and writing key.
func NewSlot(client *cache.RedisClient, key string) *Slot {
	return &Slot{client: client, key: key}
}

// Load returns the key's value, or nil when the key does not exist.
func (s *Slot) Load(ctx context.Context) ([]byte, error) {
	data, _, err := s.client.GetBytes(ctx, s.key)
	return data, err
}

// Save overwrites the key with data. The key never expires.
func (s *Slot) Save(ctx context.Context, data []byte) error {
	return s.client.SetBytes(ctx, s.key, data, 0)
}

func (s *Slot) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}
