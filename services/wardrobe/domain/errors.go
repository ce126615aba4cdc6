package domain

import "errors"

// Sentinel errors for the wardrobe domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates no clothing item has the requested id.
	ErrItemNotFound = errors.New("clothing item not found")

	// ErrInvalidClothingItem indicates a field violates domain constraints
	// (empty name, unknown type or season, inverted temperature range).
	ErrInvalidClothingItem = errors.New("invalid clothing item")
)
