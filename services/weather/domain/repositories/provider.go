package repositories

import (
	"context"
	"iter"

	"github.com/ghuser/wardrobe/services/weather/domain/models"
)

// Provider fetches weather data from an external service. The domain layer
// owns this interface; infrastructure implements it.
type Provider interface {
	// Current returns the present conditions for q. Returns ErrLocationNotFound
	// when the provider knows no such place and ErrWeatherUnavailable on any
	// transport or decoding failure.
	Current(ctx context.Context, q models.Query) (*models.WeatherData, error)

	// Suggest yields "name, region, country" labels for locations matching
	// query. Failures yield an empty sequence and are never surfaced.
	Suggest(ctx context.Context, query string) iter.Seq[string]
}
