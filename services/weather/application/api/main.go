package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/wardrobe/services/weather/application/handlers"
	appsvcs "github.com/ghuser/wardrobe/services/weather/application/services"
)

// WeatherRoutes registers weather endpoints on the provided chi router.
func WeatherRoutes(r chi.Router, svcs *appsvcs.Services, isProduction bool) {
	r.Route("/api/weather", func(r chi.Router) {
		r.Get("/", handlers.NewGetWeatherHandler(svcs, isProduction).Execute)
		r.Get("/search", handlers.NewSearchLocationsHandler(svcs).Execute)
	})
}
