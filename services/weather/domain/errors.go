package domain

import "errors"

// Sentinel errors for the weather domain. Use errors.Is() to check these.
var (
	// ErrLocationNotFound indicates the provider has no location matching the query.
	ErrLocationNotFound = errors.New("location not found")

	// ErrWeatherUnavailable indicates the provider could not be reached or
	// returned an unusable response.
	ErrWeatherUnavailable = errors.New("weather unavailable")

	// ErrInvalidQuery indicates the query names neither a city nor valid coordinates.
	ErrInvalidQuery = errors.New("invalid weather query")
)
