package handlers

import (
	"net/http"

	"github.com/ghuser/wardrobe/pkg/httpx"
	appsvcs "github.com/ghuser/wardrobe/services/weather/application/services"
)

// SearchLocationsHandler handles GET /api/weather/search requests.
type SearchLocationsHandler struct {
	svc *appsvcs.Services
}

// NewSearchLocationsHandler returns a SearchLocationsHandler backed by the given services.
func NewSearchLocationsHandler(svc *appsvcs.Services) *SearchLocationsHandler {
	return &SearchLocationsHandler{svc: svc}
}

// Execute returns autocomplete labels for a partial location name.
//
//	@Summary		Location autocomplete
//	@Description	Up to ten "name, region, country" labels. Queries under two characters and provider failures return an empty list.
//	@Tags			weather
//	@Produce		json
//	@Param			q	query	string	true	"Partial location name"	example(Par)
//	@Success		200	{array}	string
//	@Router			/api/weather/search [get]
func (h *SearchLocationsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	httpx.JSONList(w, http.StatusOK, h.svc.Weather.Suggest(r.Context(), r.URL.Query().Get("q")))
}
