package services

import (
	"strings"
	"testing"

	"github.com/ghuser/wardrobe/services/wardrobe/domain/models"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   models.ItemName
		wantErr bool
	}{
		{"valid name", "Pull en laine", false},
		{"valid name with special chars", "T-shirt n°3 (bleu)", false},
		{"leading whitespace", " Parka", true},
		{"trailing whitespace", "Parka ", true},
		{"only whitespace", "   ", true},
		{"empty", "", true},
		{"tab character (control)", "Parka\tRouge", true},
		{"newline character (control)", "Parka\nRouge", true},
		{"null byte (control)", "Parka\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateName(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateItem(t *testing.T) {
	valid := func() models.ClothingItem {
		return models.ClothingItem{ID: "id", Name: "Jean", Type: models.TypeBottom, Season: models.SeasonAll}
	}

	t.Run("valid item returns nil", func(t *testing.T) {
		if err := ValidateItem(valid()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	tests := []struct {
		name   string
		mutate func(*models.ClothingItem)
	}{
		{"missing id", func(c *models.ClothingItem) { c.ID = "" }},
		{"empty name", func(c *models.ClothingItem) { c.Name = "" }},
		{"name too long", func(c *models.ClothingItem) { c.Name = models.ItemName(strings.Repeat("x", 256)) }},
		{"unknown type", func(c *models.ClothingItem) { c.Type = "hat" }},
		{"unknown season", func(c *models.ClothingItem) { c.Season = "autumn" }},
		{"inverted range", func(c *models.ClothingItem) {
			lo, hi := 20.0, 10.0
			c.MinTemp, c.MaxTemp = &lo, &hi
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := valid()
			tt.mutate(&item)
			if err := ValidateItem(item); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}

	t.Run("single bound is allowed", func(t *testing.T) {
		item := valid()
		lo := 30.0
		item.MinTemp = &lo
		if err := ValidateItem(item); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
