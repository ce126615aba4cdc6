// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/wardrobe/pkg/httpx"
	wardrobedomain "github.com/ghuser/wardrobe/services/wardrobe/domain"
	weatherdomain "github.com/ghuser/wardrobe/services/weather/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	WriteSafeError(w, err, false)
}

// WriteSafeError is WriteError that replaces 5xx messages with the status
// text when isProduction is set.
func WriteSafeError(w http.ResponseWriter, err error, isProduction bool) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, isProduction))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, wardrobedomain.ErrItemNotFound),
		errors.Is(err, weatherdomain.ErrLocationNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, wardrobedomain.ErrInvalidClothingItem),
		errors.Is(err, weatherdomain.ErrInvalidQuery):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, weatherdomain.ErrWeatherUnavailable):
		return http.StatusBadGateway // 502
	default:
		return http.StatusInternalServerError // 500
	}
}
