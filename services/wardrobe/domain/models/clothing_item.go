package models

import (
	"cmp"
	"slices"
	"time"
)

// ClothingItem is the wardrobe aggregate. JSON field names match the
// persisted slot payload and must not change without a coordinated
// reader/writer update.
type ClothingItem struct {
	ID        string       `json:"id"`
	Name      ItemName     `json:"name"`
	Type      ClothingType `json:"type"`
	Season    Season       `json:"season"`
	MinTemp   *float64     `json:"minTemp,omitempty"`
	MaxTemp   *float64     `json:"maxTemp,omitempty"`
	ImageURL  string       `json:"imageUrl,omitempty"`
	CreatedAt int64        `json:"createdAt"` // epoch milliseconds
}

// ItemDraft carries the caller-supplied fields of a new ClothingItem.
// ID and CreatedAt are assigned by the store.
type ItemDraft struct {
	Name     ItemName
	Type     ClothingType
	Season   Season
	MinTemp  *float64
	MaxTemp  *float64
	ImageURL string
}

// NewClothingItem builds a ClothingItem from d with the given identity and creation time.
func NewClothingItem(d ItemDraft, id string, createdAt time.Time) ClothingItem {
	return ClothingItem{
		ID:        id,
		Name:      d.Name,
		Type:      d.Type,
		Season:    d.Season,
		MinTemp:   d.MinTemp,
		MaxTemp:   d.MaxTemp,
		ImageURL:  d.ImageURL,
		CreatedAt: createdAt.UnixMilli(),
	}
}

// HasRange reports whether both temperature bounds are set.
func (c ClothingItem) HasRange() bool {
	return c.MinTemp != nil && c.MaxTemp != nil
}

// InRange reports whether tempC lies within [MinTemp, MaxTemp]. Items
// without both bounds are never in range.
func (c ClothingItem) InRange(tempC float64) bool {
	return c.HasRange() && tempC >= *c.MinTemp && tempC <= *c.MaxTemp
}

// DisplayImage returns ImageURL, or the type-keyed default image when unset.
func (c ClothingItem) DisplayImage() string {
	if c.ImageURL != "" {
		return c.ImageURL
	}
	return DefaultImage(c.Type)
}

// CreatedTime returns CreatedAt as a UTC time.
func (c ClothingItem) CreatedTime() time.Time {
	return time.UnixMilli(c.CreatedAt).UTC()
}

// DefaultImage is the illustration shown for an item of type t without its own image.
func DefaultImage(t ClothingType) string {
	return "/images/" + string(t) + ".svg"
}

// SortNewestFirst orders items by CreatedAt descending, in place.
func SortNewestFirst(items []ClothingItem) {
	slices.SortStableFunc(items, func(a, b ClothingItem) int {
		return cmp.Compare(b.CreatedAt, a.CreatedAt)
	})
}

// ItemPatch is a partial update. Nil fields are left untouched; ID and
// CreatedAt cannot be patched. ClearMinTemp and ClearMaxTemp remove a bound
// and take precedence over a value for the same bound.
type ItemPatch struct {
	Name         *ItemName
	Type         *ClothingType
	Season       *Season
	MinTemp      *float64
	MaxTemp      *float64
	ClearMinTemp bool
	ClearMaxTemp bool
	ImageURL     *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Type == nil && p.Season == nil &&
		p.MinTemp == nil && p.MaxTemp == nil && p.ImageURL == nil &&
		!p.ClearMinTemp && !p.ClearMaxTemp
}

// Apply returns a copy of item with the patch merged in.
func (p ItemPatch) Apply(item ClothingItem) ClothingItem {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Type != nil {
		item.Type = *p.Type
	}
	if p.Season != nil {
		item.Season = *p.Season
	}
	if p.MinTemp != nil {
		v := *p.MinTemp
		item.MinTemp = &v
	}
	if p.MaxTemp != nil {
		v := *p.MaxTemp
		item.MaxTemp = &v
	}
	if p.ClearMinTemp {
		item.MinTemp = nil
	}
	if p.ClearMaxTemp {
		item.MaxTemp = nil
	}
	if p.ImageURL != nil {
		item.ImageURL = *p.ImageURL
	}
	return item
}
