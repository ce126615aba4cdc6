package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/wardrobe/services/wardrobe/application/handlers"
	appsvcs "github.com/ghuser/wardrobe/services/wardrobe/application/services"
)

// WardrobeRoutes registers wardrobe and recommendation endpoints on the provided chi router.
func WardrobeRoutes(r chi.Router, svcs *appsvcs.Services, isProduction bool) {
	r.Route("/api/wardrobe/items", func(r chi.Router) {
		r.Get("/", handlers.NewListItemsHandler(svcs, isProduction).Execute)
		r.Post("/", handlers.NewPostItemHandler(svcs, isProduction).Execute)
		r.Patch("/{id}", handlers.NewPatchItemHandler(svcs, isProduction).Execute)
		r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs, isProduction).Execute)
	})
	r.Route("/api/recommendations", func(r chi.Router) {
		r.Get("/", handlers.NewGetRecommendationsHandler(svcs, isProduction).Execute)
		r.Get("/weather", handlers.NewGetWeatherRecommendationsHandler(svcs, isProduction).Execute)
	})
	r.Get("/offline-manifest.json", handlers.NewOfflineManifestHandler().Execute)
}
