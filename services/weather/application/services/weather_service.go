package services

import (
	"context"
	"errors"
	"slices"

	"github.com/ghuser/wardrobe/pkg/telemetry"
	weatherdomain "github.com/ghuser/wardrobe/services/weather/domain"
	"github.com/ghuser/wardrobe/services/weather/domain/models"
	"github.com/ghuser/wardrobe/services/weather/domain/repositories"
)

// WeatherService exposes current conditions and location autocomplete. It
// adds lookup metrics around the provider and nothing else: no caching, no
// retries.
type WeatherService struct {
	provider repositories.Provider
	lookups  *telemetry.Counter
}

// NewWeatherService returns a WeatherService over provider. lookups may be nil.
func NewWeatherService(provider repositories.Provider, lookups *telemetry.Counter) *WeatherService {
	return &WeatherService{provider: provider, lookups: lookups}
}

// Current returns present conditions for q.
func (s *WeatherService) Current(ctx context.Context, q models.Query) (*models.WeatherData, error) {
	data, err := s.provider.Current(ctx, q)
	s.lookups.Add(ctx, "endpoint", "current", "outcome", outcome(err))
	return data, err
}

// Suggest returns up to ten location labels for query. The result is never
// nil; provider failures produce an empty list, counted as "empty" along with
// searches that matched nothing.
func (s *WeatherService) Suggest(ctx context.Context, query string) []string {
	out := slices.Collect(s.provider.Suggest(ctx, query))
	if out == nil {
		out = []string{}
	}
	s.lookups.Add(ctx, "endpoint", "search", "outcome", suggestOutcome(out))
	return out
}

func suggestOutcome(labels []string) string {
	if len(labels) == 0 {
		return "empty"
	}
	return "hit"
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, weatherdomain.ErrLocationNotFound):
		return "not_found"
	case errors.Is(err, weatherdomain.ErrInvalidQuery):
		return "invalid"
	default:
		return "unavailable"
	}
}
