package models

import (
	"math"
	"testing"
)

func TestQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		q       Query
		wantErr bool
	}{
		{"city", CityQuery("Paris"), false},
		{"city trimmed to empty", CityQuery("   "), true},
		{"coords", CoordsQuery(48.85, 2.35), false},
		{"null island is valid", CoordsQuery(0, 0), false},
		{"empty query", Query{}, true},
		{"lat out of range", CoordsQuery(91, 0), true},
		{"lon out of range", CoordsQuery(0, -181), true},
		{"NaN lat", CoordsQuery(math.NaN(), 0), true},
		{"both set", Query{City: "Paris", Lat: 1, Lon: 2, HasCoords: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.q.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestQuery_Param(t *testing.T) {
	if got := CityQuery(" Lyon ").Param(); got != "Lyon" {
		t.Errorf("city param = %q", got)
	}
	if got := CoordsQuery(48.8566, 2.3522).Param(); got != "48.8566,2.3522" {
		t.Errorf("coords param = %q", got)
	}
	if got := CoordsQuery(-33.5, 0).Param(); got != "-33.5,0" {
		t.Errorf("coords param = %q", got)
	}
}

func TestSuggestion_Label(t *testing.T) {
	s := Suggestion{Name: "Paris", Region: "Ile-de-France", Country: "France"}
	if got := s.Label(); got != "Paris, Ile-de-France, France" {
		t.Fatalf("Label() = %q", got)
	}
}
