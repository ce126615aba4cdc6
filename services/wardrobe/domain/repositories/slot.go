package repositories

import "context"

// Slot is a single named storage location holding the serialized wardrobe.
// The whole collection is read and written at once; there is no partial
// persistence. The domain layer owns this interface; infrastructure implements it.
type Slot interface {
	// Load returns the persisted bytes, or nil with no error when the slot is empty.
	Load(ctx context.Context) ([]byte, error)

	// Save replaces the slot contents with data.
	Save(ctx context.Context, data []byte) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
