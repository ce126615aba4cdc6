package services

import (
	"fmt"

	"github.com/ghuser/wardrobe/pkg/app"
	"github.com/ghuser/wardrobe/pkg/telemetry"
	"github.com/ghuser/wardrobe/services/weather/domain/repositories"
	"github.com/ghuser/wardrobe/services/weather/infrastructure/weatherapi"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Provider repositories.Provider
	Weather  *WeatherService
}

// New wires the weatherapi.com client from the Application's configuration.
func New(a *app.Application) (*Services, error) {
	lookups, err := telemetry.NewCounter("weather.lookups", "Weather provider calls, by endpoint and outcome")
	if err != nil {
		return nil, fmt.Errorf("weather lookup counter: %w", err)
	}
	provider := weatherapi.NewClientFromConfig(a.Config, a.Logger)
	return &Services{
		Provider: provider,
		Weather:  NewWeatherService(provider, lookups),
	}, nil
}
