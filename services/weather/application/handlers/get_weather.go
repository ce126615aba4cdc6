package handlers

import (
	"net/http"

	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	appsvcs "github.com/ghuser/wardrobe/services/weather/application/services"
	"github.com/ghuser/wardrobe/services/weather/domain/models"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"location not found: No matching location found."`
} // @name WeatherErrorResponse

// GetWeatherHandler handles GET /api/weather requests.
type GetWeatherHandler struct {
	svc          *appsvcs.Services
	isProduction bool
}

// NewGetWeatherHandler returns a GetWeatherHandler backed by the given services.
func NewGetWeatherHandler(svc *appsvcs.Services, isProduction bool) *GetWeatherHandler {
	return &GetWeatherHandler{svc: svc, isProduction: isProduction}
}

// Execute returns current conditions for a city or a position.
//
//	@Summary		Current weather
//	@Description	Current conditions for ?city= or ?lat=&lon=, localized by WEATHER_LANG
//	@Tags			weather
//	@Produce		json
//	@Param			city	query		string	false	"City name"	example(Paris)
//	@Param			lat		query		number	false	"Latitude"
//	@Param			lon		query		number	false	"Longitude"
//	@Success		200		{object}	models.WeatherData
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/api/weather [get]
func (h *GetWeatherHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q, err := ParseLocation(r)
	if err != nil {
		errhttp.WriteSafeError(w, err, h.isProduction)
		return
	}

	var data *models.WeatherData
	if data, err = h.svc.Weather.Current(r.Context(), q); err != nil {
		errhttp.WriteSafeError(w, err, h.isProduction)
		return
	}
	httpx.JSON(w, http.StatusOK, data)
}
