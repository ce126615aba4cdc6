package services

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/ghuser/wardrobe/pkg/telemetry"
	"github.com/ghuser/wardrobe/services/wardrobe/domain/models"
	domainsvcs "github.com/ghuser/wardrobe/services/wardrobe/domain/services"
	weathermodels "github.com/ghuser/wardrobe/services/weather/domain/models"
	weatherrepos "github.com/ghuser/wardrobe/services/weather/domain/repositories"
)

// RecommendationResult is what to wear at one temperature. Advice is set
// only when no stored item is eligible.
type RecommendationResult struct {
	TempC   float64                    `json:"tempC"`
	Season  models.Season              `json:"season"`
	Items   domainsvcs.Recommendation  `json:"items"`
	Advice  *domainsvcs.Advice         `json:"advice,omitempty"`
	Weather *weathermodels.WeatherData `json:"weather,omitempty"`
}

// RecommendationService combines the wardrobe snapshot, the engine and the
// weather provider.
type RecommendationService struct {
	wardrobe *WardrobeService
	engine   *domainsvcs.Engine
	weather  weatherrepos.Provider
	served   *telemetry.Counter
}

// NewRecommendationService wires the service. weather may be nil, in which
// case ForLocation always fails. served may be nil.
func NewRecommendationService(wardrobe *WardrobeService, engine *domainsvcs.Engine, weather weatherrepos.Provider, served *telemetry.Counter) *RecommendationService {
	return &RecommendationService{wardrobe: wardrobe, engine: engine, weather: weather, served: served}
}

// ForTemperature recommends from the current wardrobe for tempC.
func (s *RecommendationService) ForTemperature(ctx context.Context, tempC float64) (RecommendationResult, error) {
	if math.IsNaN(tempC) || math.IsInf(tempC, 0) {
		return RecommendationResult{}, fmt.Errorf("temperature must be a finite number")
	}

	items, err := s.wardrobe.GetAll(ctx)
	if err != nil {
		return RecommendationResult{}, fmt.Errorf("recommend: %w", err)
	}

	res := RecommendationResult{
		TempC:  tempC,
		Season: domainsvcs.DeriveSeason(tempC),
		Items:  s.engine.Recommend(items, tempC),
	}
	if res.Items.Len() == 0 {
		advice := domainsvcs.DefaultAdvice(tempC)
		res.Advice = &advice
	}

	s.served.Add(ctx, "season", string(res.Season), "fallback", strconv.FormatBool(res.Advice != nil))
	return res, nil
}

// ForLocation fetches current conditions for q and recommends for the
// observed temperature.
func (s *RecommendationService) ForLocation(ctx context.Context, q weathermodels.Query) (RecommendationResult, error) {
	if s.weather == nil {
		return RecommendationResult{}, fmt.Errorf("recommend: no weather provider configured")
	}
	data, err := s.weather.Current(ctx, q)
	if err != nil {
		return RecommendationResult{}, fmt.Errorf("recommend for %s: %w", q, err)
	}

	res, err := s.ForTemperature(ctx, data.Current.TempC)
	if err != nil {
		return RecommendationResult{}, err
	}
	res.Weather = data
	return res, nil
}
