package models

import "testing"

func TestParseClothingType(t *testing.T) {
	for _, ct := range ClothingTypes {
		got, err := ParseClothingType(string(ct))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", ct, err)
		}
		if got != ct {
			t.Fatalf("expected %s, got %s", ct, got)
		}
	}
	for _, bad := range []string{"", "Top", "hat", "shoes"} {
		if _, err := ParseClothingType(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestParseSeason(t *testing.T) {
	for _, s := range []Season{SeasonWinter, SeasonSpring, SeasonSummer, SeasonFall, SeasonAll} {
		if _, err := ParseSeason(string(s)); err != nil {
			t.Fatalf("%s: unexpected error: %v", s, err)
		}
	}
	for _, bad := range []string{"", "autumn", "WINTER"} {
		if _, err := ParseSeason(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
