// Package memory provides a process-local wardrobe slot, used by tests and
// STORAGE_DRIVER=memory.
package memory

import (
	"context"
	"slices"
	"sync"
)

// Slot implements repositories.Slot over an in-memory byte slice.
type Slot struct {
	mu   sync.RWMutex
	data []byte
}

// NewSlot returns an empty Slot.
func NewSlot() *Slot {
	return &Slot{}
}

// NewSlotWith returns a Slot pre-loaded with data.
func NewSlotWith(data []byte) *Slot {
	return &Slot{data: slices.Clone(data)}
}

func (s *Slot) Load(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data), nil
}

func (s *Slot) Save(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = slices.Clone(data)
	return nil
}

func (s *Slot) Ping(_ context.Context) error { return nil }
