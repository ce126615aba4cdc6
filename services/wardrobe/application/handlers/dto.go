package handlers

import (
	"bytes"
	"encoding/json"

	appsvcs "github.com/ghuser/wardrobe/services/wardrobe/application/services"
	"github.com/ghuser/wardrobe/services/wardrobe/domain/models"
	weathermodels "github.com/ghuser/wardrobe/services/weather/domain/models"
)

// CreateItemRequest is the request body for POST /api/wardrobe/items.
type CreateItemRequest struct {
	Name     string   `json:"name"               validate:"required,min=1,max=255"                                example:"Pull en laine"`
	Type     string   `json:"type"               validate:"required,oneof=top bottom outerwear footwear accessory" example:"top"`
	Season   string   `json:"season"             validate:"required,oneof=winter spring summer fall all"           example:"winter"`
	MinTemp  *float64 `json:"minTemp,omitempty"  validate:"omitempty,gte=-100,lte=100"                             example:"-5"`
	MaxTemp  *float64 `json:"maxTemp,omitempty"  validate:"omitempty,gte=-100,lte=100"                             example:"10"`
	ImageURL string   `json:"imageUrl,omitempty" validate:"omitempty,max=2048"                                     example:"https://example.com/image.jpg"`
} // @name CreateItemRequest

func (r *CreateItemRequest) draft() models.ItemDraft {
	return models.ItemDraft{
		Name:     models.ItemName(r.Name),
		Type:     models.ClothingType(r.Type),
		Season:   models.Season(r.Season),
		MinTemp:  r.MinTemp,
		MaxTemp:  r.MaxTemp,
		ImageURL: r.ImageURL,
	}
}

// UpdateItemRequest is the request body for PATCH /api/wardrobe/items/{id}.
// Omitted fields are left unchanged. An explicit null on minTemp or maxTemp
// removes that bound.
type UpdateItemRequest struct {
	Name     *string  `json:"name,omitempty"     validate:"omitempty,min=1,max=255"                                example:"Pull en laine"`
	Type     *string  `json:"type,omitempty"     validate:"omitempty,oneof=top bottom outerwear footwear accessory" example:"top"`
	Season   *string  `json:"season,omitempty"   validate:"omitempty,oneof=winter spring summer fall all"           example:"fall"`
	MinTemp  *float64 `json:"minTemp,omitempty"  validate:"omitempty,gte=-100,lte=100"                             example:"0"`
	MaxTemp  *float64 `json:"maxTemp,omitempty"  validate:"omitempty,gte=-100,lte=100"                             example:"12"`
	ImageURL *string  `json:"imageUrl,omitempty" validate:"omitempty,max=2048"                                     example:"https://example.com/image.jpg"`

	clearMinTemp bool
	clearMaxTemp bool
} // @name UpdateItemRequest

// UnmarshalJSON records which temperature bounds were sent as null, since a
// nil pointer alone cannot tell null from an omitted key.
func (r *UpdateItemRequest) UnmarshalJSON(data []byte) error {
	type fields UpdateItemRequest
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = UpdateItemRequest(f)
	r.clearMinTemp = isJSONNull(raw["minTemp"])
	r.clearMaxTemp = isJSONNull(raw["maxTemp"])
	return nil
}

func isJSONNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

func (r *UpdateItemRequest) patch() models.ItemPatch {
	p := models.ItemPatch{
		MinTemp:      r.MinTemp,
		MaxTemp:      r.MaxTemp,
		ClearMinTemp: r.clearMinTemp,
		ClearMaxTemp: r.clearMaxTemp,
		ImageURL:     r.ImageURL,
	}
	if r.Name != nil {
		n := models.ItemName(*r.Name)
		p.Name = &n
	}
	if r.Type != nil {
		t := models.ClothingType(*r.Type)
		p.Type = &t
	}
	if r.Season != nil {
		s := models.Season(*r.Season)
		p.Season = &s
	}
	return p
}

// ClothingItemResponse is one wardrobe item. CreatedAt is epoch milliseconds.
// DisplayImage falls back to the per-type illustration when ImageURL is unset.
type ClothingItemResponse struct {
	ID           string   `json:"id"                 example:"123e4567-e89b-12d3-a456-426614174000"`
	Name         string   `json:"name"               example:"Pull en laine"`
	Type         string   `json:"type"               example:"top"`
	Season       string   `json:"season"             example:"winter"`
	MinTemp      *float64 `json:"minTemp,omitempty"  example:"-5"`
	MaxTemp      *float64 `json:"maxTemp,omitempty"  example:"10"`
	ImageURL     string   `json:"imageUrl,omitempty" example:"https://example.com/image.jpg"`
	DisplayImage string   `json:"displayImage"       example:"/images/top.svg"`
	CreatedAt    int64    `json:"createdAt"          example:"1724318400000"`
} // @name ClothingItem

func toResponse(it models.ClothingItem) ClothingItemResponse {
	return ClothingItemResponse{
		ID:           it.ID,
		Name:         it.Name.String(),
		Type:         string(it.Type),
		Season:       string(it.Season),
		MinTemp:      it.MinTemp,
		MaxTemp:      it.MaxTemp,
		ImageURL:     it.ImageURL,
		DisplayImage: it.DisplayImage(),
		CreatedAt:    it.CreatedAt,
	}
}

func toResponses(items []models.ClothingItem) []ClothingItemResponse {
	out := make([]ClothingItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toResponse(it))
	}
	return out
}

// RecommendationResponse groups recommended items by type. Advice is present
// only when no item fits.
type RecommendationResponse struct {
	TempC     float64                    `json:"tempC"          example:"8.5"`
	Season    string                     `json:"season"         example:"winter"`
	Top       []ClothingItemResponse     `json:"top"`
	Bottom    []ClothingItemResponse     `json:"bottom"`
	Outerwear []ClothingItemResponse     `json:"outerwear"`
	Footwear  []ClothingItemResponse     `json:"footwear"`
	Accessory []ClothingItemResponse     `json:"accessory"`
	Advice    *AdviceResponse            `json:"advice,omitempty"`
	Weather   *weathermodels.WeatherData `json:"weather,omitempty"`
} // @name Recommendation

// AdviceResponse is the canned suggestion for an empty match.
type AdviceResponse struct {
	Text     string `json:"text"     example:"Un manteau chaud, une écharpe et des gants seraient appropriés."`
	ImageURL string `json:"imageUrl" example:"/images/cold-weather.svg"`
} // @name Advice

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"clothing item not found"`
} // @name ErrorResponse

func toRecommendationResponse(res appsvcs.RecommendationResult) RecommendationResponse {
	out := RecommendationResponse{
		TempC:     res.TempC,
		Season:    string(res.Season),
		Top:       toResponses(res.Items.Top),
		Bottom:    toResponses(res.Items.Bottom),
		Outerwear: toResponses(res.Items.Outerwear),
		Footwear:  toResponses(res.Items.Footwear),
		Accessory: toResponses(res.Items.Accessory),
		Weather:   res.Weather,
	}
	if res.Advice != nil {
		out.Advice = &AdviceResponse{Text: res.Advice.Text, ImageURL: res.Advice.ImageURL}
	}
	return out
}
