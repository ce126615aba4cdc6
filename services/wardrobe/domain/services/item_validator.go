// Package services contains stateless domain services for the wardrobe bounded context.
// Domain services operate purely on domain types and have no external dependencies
// beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ghuser/wardrobe/services/wardrobe/domain/models"
)

// ValidateName enforces business rules for ItemName beyond the length
// constraints enforced by the ItemName constructor.
//
// Business rules:
//   - No leading or trailing whitespace
//   - No control characters (Unicode category Cc)
//   - Must not be only whitespace characters
func ValidateName(name models.ItemName) error {
	s := name.String()

	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("item name must not be empty or only whitespace")
	}

	if s != strings.TrimSpace(s) {
		return fmt.Errorf("item name must not have leading or trailing whitespace")
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("item name must not contain control characters")
		}
	}

	return nil
}

// ValidateItem checks a fully-merged ClothingItem before it is persisted.
// Both closed enumerations are enforced here so invalid values never reach the slot.
func ValidateItem(item models.ClothingItem) error {
	if item.ID == "" {
		return fmt.Errorf("id must be set")
	}

	if _, err := models.NewItemName(item.Name.String()); err != nil {
		return err
	}
	if err := ValidateName(item.Name); err != nil {
		return err
	}

	if !item.Type.Valid() {
		return fmt.Errorf("unknown clothing type %q", item.Type)
	}

	if !item.Season.Valid() {
		return fmt.Errorf("unknown season %q", item.Season)
	}

	if item.HasRange() && *item.MinTemp > *item.MaxTemp {
		return fmt.Errorf("minTemp %.1f must not exceed maxTemp %.1f", *item.MinTemp, *item.MaxTemp)
	}

	return nil
}
