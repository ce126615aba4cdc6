package services

import (
	"math/rand/v2"
	"sync"

	"github.com/ghuser/wardrobe/services/wardrobe/domain/models"
)

// Season-derivation thresholds in °C. The top two bands both map to summer.
const (
	winterBelow = 10.0
	springBelow = 20.0
	summerBelow = 30.0
)

// Fallback-advice thresholds in °C. This ladder is independent of the
// season-derivation one above.
const (
	coldAdviceBelow = 10.0
	mildAdviceBelow = 20.0
)

// Recommendation groups eligible items by garment type.
type Recommendation struct {
	Top       []models.ClothingItem `json:"top"`
	Bottom    []models.ClothingItem `json:"bottom"`
	Outerwear []models.ClothingItem `json:"outerwear"`
	Footwear  []models.ClothingItem `json:"footwear"`
	Accessory []models.ClothingItem `json:"accessory"`
}

// Bucket returns the slice holding items of type t.
func (r *Recommendation) Bucket(t models.ClothingType) *[]models.ClothingItem {
	switch t {
	case models.TypeTop:
		return &r.Top
	case models.TypeBottom:
		return &r.Bottom
	case models.TypeOuterwear:
		return &r.Outerwear
	case models.TypeFootwear:
		return &r.Footwear
	case models.TypeAccessory:
		return &r.Accessory
	}
	return nil
}

// Len is the total number of items across all buckets.
func (r Recommendation) Len() int {
	return len(r.Top) + len(r.Bottom) + len(r.Outerwear) + len(r.Footwear) + len(r.Accessory)
}

// Advice is the canned suggestion shown when nothing in the wardrobe fits.
type Advice struct {
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl"`
}

// Engine maps a temperature to wardrobe items. Its only state is the
// random source, guarded by mu.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngine returns an Engine shuffling buckets with rng. A nil rng uses
// an unseeded PCG source.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Engine{rng: rng}
}

// DeriveSeason buckets tempC into a season tag.
func DeriveSeason(tempC float64) models.Season {
	switch {
	case tempC < winterBelow:
		return models.SeasonWinter
	case tempC < springBelow:
		return models.SeasonSpring
	case tempC < summerBelow:
		return models.SeasonSummer
	default:
		return models.SeasonSummer
	}
}

// IsEligible reports whether item suits tempC. Season match, SeasonAll and an
// explicit inclusive range are each sufficient on their own.
func IsEligible(item models.ClothingItem, tempC float64, season models.Season) bool {
	return item.Season == season ||
		item.Season == models.SeasonAll ||
		item.InRange(tempC)
}

// Recommend partitions the eligible items by type. Each bucket is returned in
// a random order; callers must not rely on any particular permutation.
func (e *Engine) Recommend(items []models.ClothingItem, tempC float64) Recommendation {
	season := DeriveSeason(tempC)
	rec := Recommendation{
		Top:       []models.ClothingItem{},
		Bottom:    []models.ClothingItem{},
		Outerwear: []models.ClothingItem{},
		Footwear:  []models.ClothingItem{},
		Accessory: []models.ClothingItem{},
	}
	for _, item := range items {
		if !IsEligible(item, tempC, season) {
			continue
		}
		if b := rec.Bucket(item.Type); b != nil {
			*b = append(*b, item)
		}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, t := range models.ClothingTypes {
		e.shuffle(*rec.Bucket(t))
	}
	return rec
}

func (e *Engine) shuffle(items []models.ClothingItem) {
	e.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// DefaultAdvice returns the fallback suggestion for tempC.
func DefaultAdvice(tempC float64) Advice {
	switch {
	case tempC < coldAdviceBelow:
		return Advice{
			Text:     "Un manteau chaud, une écharpe et des gants seraient appropriés.",
			ImageURL: "/images/cold-weather.svg",
		}
	case tempC < mildAdviceBelow:
		return Advice{
			Text:     "Une veste légère ou un pull devrait suffire.",
			ImageURL: "/images/mild-weather.svg",
		}
	default:
		return Advice{
			Text:     "Des vêtements légers comme un t-shirt et un short sont recommandés.",
			ImageURL: "/images/hot-weather.svg",
		}
	}
}
