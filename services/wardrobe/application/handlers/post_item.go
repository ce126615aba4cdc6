package handlers

import (
	"net/http"

	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	pkgvalidator "github.com/ghuser/wardrobe/pkg/validator"
	appsvcs "github.com/ghuser/wardrobe/services/wardrobe/application/services"
)

// PostItemHandler handles POST /api/wardrobe/items requests.
type PostItemHandler struct {
	svc          *appsvcs.Services
	isProduction bool
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services, isProduction bool) *PostItemHandler {
	return &PostItemHandler{svc: svc, isProduction: isProduction}
}

// Execute adds a clothing item to the wardrobe.
//
//	@Summary		Add item
//	@Description	Stores a new clothing item. The server assigns id and createdAt.
//	@Tags			wardrobe
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item to add"
//	@Success		201		{object}	ClothingItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/api/wardrobe/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Wardrobe.Add(r.Context(), req.draft())
	if err != nil {
		errhttp.WriteSafeError(w, err, h.isProduction)
		return
	}

	httpx.JSON(w, http.StatusCreated, toResponse(item))
}
