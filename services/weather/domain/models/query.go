package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Query selects a location either by city name or by coordinates.
type Query struct {
	City string
	Lat  float64
	Lon  float64
	// HasCoords is set when Lat/Lon are meaningful; (0, 0) is a valid position.
	HasCoords bool
}

// CityQuery returns a Query for the named city.
func CityQuery(city string) Query {
	return Query{City: strings.TrimSpace(city)}
}

// CoordsQuery returns a Query for the given position.
func CoordsQuery(lat, lon float64) Query {
	return Query{Lat: lat, Lon: lon, HasCoords: true}
}

// Validate reports whether q names exactly one usable location.
func (q Query) Validate() error {
	switch {
	case q.HasCoords && q.City != "":
		return fmt.Errorf("city and coordinates are mutually exclusive")
	case q.HasCoords:
		if math.IsNaN(q.Lat) || q.Lat < -90 || q.Lat > 90 {
			return fmt.Errorf("latitude %v out of range", q.Lat)
		}
		if math.IsNaN(q.Lon) || q.Lon < -180 || q.Lon > 180 {
			return fmt.Errorf("longitude %v out of range", q.Lon)
		}
		return nil
	case q.City == "":
		return fmt.Errorf("city or coordinates required")
	}
	return nil
}

// Param renders q as the provider's q parameter: the city name, or "lat,lon".
func (q Query) Param() string {
	if q.HasCoords {
		return strconv.FormatFloat(q.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(q.Lon, 'f', -1, 64)
	}
	return q.City
}

// String is used in logs.
func (q Query) String() string {
	return q.Param()
}
