package services

import (
	"fmt"

	"github.com/ghuser/wardrobe/pkg/app"
	"github.com/ghuser/wardrobe/pkg/config"
	"github.com/ghuser/wardrobe/pkg/telemetry"
	"github.com/ghuser/wardrobe/services/wardrobe/domain/repositories"
	domainsvcs "github.com/ghuser/wardrobe/services/wardrobe/domain/services"
	"github.com/ghuser/wardrobe/services/wardrobe/infrastructure/persistence/memory"
	"github.com/ghuser/wardrobe/services/wardrobe/infrastructure/persistence/postgres"
	"github.com/ghuser/wardrobe/services/wardrobe/infrastructure/persistence/redis"
	weatherrepos "github.com/ghuser/wardrobe/services/weather/domain/repositories"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Slot           repositories.Slot
	Wardrobe       *WardrobeService
	Recommendation *RecommendationService
}

// New wires all wardrobe application services with infrastructure from the
// Application container. weather backs location-based recommendations.
func New(a *app.Application, weather weatherrepos.Provider) (*Services, error) {
	slot, err := NewSlot(a)
	if err != nil {
		return nil, err
	}

	served, err := telemetry.NewCounter("wardrobe.recommendations", "Recommendations served, by derived season and fallback use")
	if err != nil {
		return nil, fmt.Errorf("recommendation counter: %w", err)
	}

	opts := []Option{}
	if a.EventBus != nil {
		opts = append(opts, WithPublisher(a.EventBus))
	}
	wardrobe := NewWardrobeService(slot, a.Logger, opts...)

	return &Services{
		Slot:           slot,
		Wardrobe:       wardrobe,
		Recommendation: NewRecommendationService(wardrobe, domainsvcs.NewEngine(nil), weather, served),
	}, nil
}

// NewSlot picks the slot backend named by STORAGE_DRIVER.
func NewSlot(a *app.Application) (repositories.Slot, error) {
	key := a.Config.WardrobeStorageKey
	switch a.Config.StorageDriver {
	case config.StorageRedis:
		if a.Redis == nil {
			return nil, fmt.Errorf("storage driver %q requires a redis client", config.StorageRedis)
		}
		return redis.NewSlot(a.Redis, key), nil
	case config.StoragePostgres:
		if a.Db == nil {
			return nil, fmt.Errorf("storage driver %q requires a database", config.StoragePostgres)
		}
		return postgres.NewSlot(a.Db, key), nil
	case config.StorageMemory, "":
		return memory.NewSlot(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", a.Config.StorageDriver)
	}
}
