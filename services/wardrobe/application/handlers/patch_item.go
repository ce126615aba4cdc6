package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	pkgvalidator "github.com/ghuser/wardrobe/pkg/validator"
	appsvcs "github.com/ghuser/wardrobe/services/wardrobe/application/services"
)

// PatchItemHandler handles PATCH /api/wardrobe/items/{id} requests.
type PatchItemHandler struct {
	svc          *appsvcs.Services
	isProduction bool
}

// NewPatchItemHandler returns a PatchItemHandler backed by the given services.
func NewPatchItemHandler(svc *appsvcs.Services, isProduction bool) *PatchItemHandler {
	return &PatchItemHandler{svc: svc, isProduction: isProduction}
}

// Execute merges the given fields into an existing item.
//
//	@Summary		Update item
//	@Description	Partial update; omitted fields are unchanged, null on minTemp or maxTemp removes that bound. id and createdAt cannot be changed.
//	@Tags			wardrobe
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Item ID"
//	@Param			request	body		UpdateItemRequest	true	"Fields to change"
//	@Success		200		{object}	ClothingItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/api/wardrobe/items/{id} [patch]
func (h *PatchItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Wardrobe.Update(r.Context(), chi.URLParam(r, "id"), req.patch())
	if err != nil {
		errhttp.WriteSafeError(w, err, h.isProduction)
		return
	}

	httpx.JSON(w, http.StatusOK, toResponse(item))
}
