// Package postgres stores the wardrobe slot as one row of the storage_slots table.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/wardrobe/pkg/database"
)

const (
	loadSlotSQL = `SELECT value FROM storage_slots WHERE key = $1`
	saveSlotSQL = `INSERT INTO storage_slots (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
)

// Slot implements repositories.Slot against PostgreSQL.
type Slot struct {
	db  *database.Database
	key string
}

// NewSlot returns a Slot bound to the storage_slots row named key.
func NewSlot(db *database.Database, key string) *Slot {
	return &Slot{db: db, key: key}
}

// Load returns the row's value, or nil when no row exists yet.
func (s *Slot) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.db.DB().QueryRowContext(ctx, loadSlotSQL, s.key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query slot %s: %w", s.key, err)
	}
	return data, nil
}

// Save upserts the row inside a transaction.
func (s *Slot) Save(ctx context.Context, data []byte) error {
	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, saveSlotSQL, s.key, data); err != nil {
			return fmt.Errorf("upsert slot %s: %w", s.key, err)
		}
		return nil
	})
}

func (s *Slot) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
