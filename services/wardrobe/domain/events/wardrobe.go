package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published after a wardrobe mutation is persisted.
const (
	TopicItemAdded   = "wardrobe.item_added"
	TopicItemUpdated = "wardrobe.item_updated"
	TopicItemDeleted = "wardrobe.item_deleted"
)

// Topics lists every wardrobe topic.
var Topics = []string{TopicItemAdded, TopicItemUpdated, TopicItemDeleted}

// ChangeKind names the mutation that produced a WardrobeChangedEvent.
type ChangeKind string

const (
	KindAdded   ChangeKind = "added"
	KindUpdated ChangeKind = "updated"
	KindDeleted ChangeKind = "deleted"
)

// Topic returns the topic events of this kind are published on.
func (k ChangeKind) Topic() string {
	switch k {
	case KindAdded:
		return TopicItemAdded
	case KindUpdated:
		return TopicItemUpdated
	default:
		return TopicItemDeleted
	}
}

// WardrobeChangedEvent is published after the slot has been rewritten.
// Name, Type and Season are the item's values after the change (before it,
// for deletions).
type WardrobeChangedEvent struct {
	EventID    uuid.UUID  `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int        `json:"version"`  // Schema version; increment on breaking changes
	Kind       ChangeKind `json:"kind"`
	ItemID     string     `json:"item_id"`
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	Season     string     `json:"season"`
	OccurredAt time.Time  `json:"occurred_at"`
}
