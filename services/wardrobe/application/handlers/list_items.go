package handlers

import (
	"net/http"

	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	appsvcs "github.com/ghuser/wardrobe/services/wardrobe/application/services"
	"github.com/ghuser/wardrobe/services/wardrobe/domain/models"
)

// ListItemsHandler handles GET /api/wardrobe/items requests.
type ListItemsHandler struct {
	svc          *appsvcs.Services
	isProduction bool
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services, isProduction bool) *ListItemsHandler {
	return &ListItemsHandler{svc: svc, isProduction: isProduction}
}

// Execute lists the wardrobe, newest first.
//
//	@Summary		List wardrobe
//	@Description	Every stored clothing item, most recently added first
//	@Tags			wardrobe
//	@Produce		json
//	@Success		200	{array}		ClothingItemResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/wardrobe/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Wardrobe.GetAll(r.Context())
	if err != nil {
		errhttp.WriteSafeError(w, err, h.isProduction)
		return
	}
	models.SortNewestFirst(items)
	httpx.JSONList(w, http.StatusOK, toResponses(items))
}
