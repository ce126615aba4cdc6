package models

import "fmt"

// ClothingType is the garment category. It is a closed enumeration.
type ClothingType string

const (
	TypeTop       ClothingType = "top"
	TypeBottom    ClothingType = "bottom"
	TypeOuterwear ClothingType = "outerwear"
	TypeFootwear  ClothingType = "footwear"
	TypeAccessory ClothingType = "accessory"
)

// ClothingTypes lists every ClothingType in display order.
var ClothingTypes = []ClothingType{TypeTop, TypeBottom, TypeOuterwear, TypeFootwear, TypeAccessory}

// Valid reports whether t is one of the known clothing types.
func (t ClothingType) Valid() bool {
	switch t {
	case TypeTop, TypeBottom, TypeOuterwear, TypeFootwear, TypeAccessory:
		return true
	}
	return false
}

// ParseClothingType converts s to a ClothingType or returns an error for unknown values.
func ParseClothingType(s string) (ClothingType, error) {
	t := ClothingType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown clothing type %q", s)
	}
	return t, nil
}

// Season tags when an item is worn. SeasonAll matches every temperature.
type Season string

const (
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonAll    Season = "all"
)

// Valid reports whether s is one of the known seasons.
func (s Season) Valid() bool {
	switch s {
	case SeasonWinter, SeasonSpring, SeasonSummer, SeasonFall, SeasonAll:
		return true
	}
	return false
}

// ParseSeason converts s to a Season or returns an error for unknown values.
func ParseSeason(s string) (Season, error) {
	season := Season(s)
	if !season.Valid() {
		return "", fmt.Errorf("unknown season %q", s)
	}
	return season, nil
}
