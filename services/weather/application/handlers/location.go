package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	weatherdomain "github.com/ghuser/wardrobe/services/weather/domain"
	"github.com/ghuser/wardrobe/services/weather/domain/models"
)

// ParseLocation reads ?city= or ?lat=&lon= from r. Exactly one form must be given.
func ParseLocation(r *http.Request) (models.Query, error) {
	v := r.URL.Query()
	city, lat, lon := v.Get("city"), v.Get("lat"), v.Get("lon")

	switch {
	case lat == "" && lon == "":
		q := models.CityQuery(city)
		if err := q.Validate(); err != nil {
			return models.Query{}, fmt.Errorf("%w: %w", weatherdomain.ErrInvalidQuery, err)
		}
		return q, nil
	case city != "":
		return models.Query{}, fmt.Errorf("%w: use either city or lat/lon", weatherdomain.ErrInvalidQuery)
	case lat == "" || lon == "":
		return models.Query{}, fmt.Errorf("%w: lat and lon must be given together", weatherdomain.ErrInvalidQuery)
	}

	latV, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return models.Query{}, fmt.Errorf("%w: lat is not a number", weatherdomain.ErrInvalidQuery)
	}
	lonV, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return models.Query{}, fmt.Errorf("%w: lon is not a number", weatherdomain.ErrInvalidQuery)
	}
	q := models.CoordsQuery(latV, lonV)
	if err := q.Validate(); err != nil {
		return models.Query{}, fmt.Errorf("%w: %w", weatherdomain.ErrInvalidQuery, err)
	}
	return q, nil
}
