package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	appsvcs "github.com/ghuser/wardrobe/services/wardrobe/application/services"
	weatherhandlers "github.com/ghuser/wardrobe/services/weather/application/handlers"
)

// GetRecommendationsHandler handles GET /api/recommendations requests.
type GetRecommendationsHandler struct {
	svc          *appsvcs.Services
	isProduction bool
}

// NewGetRecommendationsHandler returns a GetRecommendationsHandler backed by the given services.
func NewGetRecommendationsHandler(svc *appsvcs.Services, isProduction bool) *GetRecommendationsHandler {
	return &GetRecommendationsHandler{svc: svc, isProduction: isProduction}
}

// Execute recommends items for an explicit temperature.
//
//	@Summary		Recommend for a temperature
//	@Description	Eligible items grouped by type, shuffled within each group. advice is set when nothing fits.
//	@Tags			recommendations
//	@Produce		json
//	@Param			temp_c	query		number	true	"Temperature in °C"	example(8.5)
//	@Success		200		{object}	RecommendationResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/api/recommendations [get]
func (h *GetRecommendationsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("temp_c")
	if raw == "" {
		httpx.JSONError(w, http.StatusBadRequest, "temp_c is required")
		return
	}
	tempC, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(tempC) || math.IsInf(tempC, 0) {
		httpx.JSONError(w, http.StatusBadRequest, "temp_c must be a number")
		return
	}

	res, err := h.svc.Recommendation.ForTemperature(r.Context(), tempC)
	if err != nil {
		errhttp.WriteSafeError(w, err, h.isProduction)
		return
	}
	httpx.JSON(w, http.StatusOK, toRecommendationResponse(res))
}

// GetWeatherRecommendationsHandler handles GET /api/recommendations/weather requests.
type GetWeatherRecommendationsHandler struct {
	svc          *appsvcs.Services
	isProduction bool
}

// NewGetWeatherRecommendationsHandler returns a GetWeatherRecommendationsHandler backed by the given services.
func NewGetWeatherRecommendationsHandler(svc *appsvcs.Services, isProduction bool) *GetWeatherRecommendationsHandler {
	return &GetWeatherRecommendationsHandler{svc: svc, isProduction: isProduction}
}

// Execute recommends items for the current temperature at a location.
//
//	@Summary		Recommend for current weather
//	@Description	Looks up current conditions for ?city= or ?lat=&lon= and recommends for the observed temperature.
//	@Tags			recommendations
//	@Produce		json
//	@Param			city	query		string	false	"City name"	example(Paris)
//	@Param			lat		query		number	false	"Latitude"
//	@Param			lon		query		number	false	"Longitude"
//	@Success		200		{object}	RecommendationResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/api/recommendations/weather [get]
func (h *GetWeatherRecommendationsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q, err := weatherhandlers.ParseLocation(r)
	if err != nil {
		errhttp.WriteSafeError(w, err, h.isProduction)
		return
	}

	res, err := h.svc.Recommendation.ForLocation(r.Context(), q)
	if err != nil {
		errhttp.WriteSafeError(w, err, h.isProduction)
		return
	}
	httpx.JSON(w, http.StatusOK, toRecommendationResponse(res))
}
