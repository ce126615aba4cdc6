package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	appsvcs "github.com/ghuser/wardrobe/services/wardrobe/application/services"
	wardrobedomain "github.com/ghuser/wardrobe/services/wardrobe/domain"
)

// DeleteItemHandler handles DELETE /api/wardrobe/items/{id} requests.
type DeleteItemHandler struct {
	svc          *appsvcs.Services
	isProduction bool
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services, isProduction bool) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc, isProduction: isProduction}
}

// Execute removes an item.
//
//	@Summary		Delete item
//	@Tags			wardrobe
//	@Produce		json
//	@Param			id	path	string	true	"Item ID"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/wardrobe/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	removed, err := h.svc.Wardrobe.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteSafeError(w, err, h.isProduction)
		return
	}
	if !removed {
		errhttp.WriteError(w, wardrobedomain.ErrItemNotFound)
		return
	}
	httpx.NoContent(w)
}
