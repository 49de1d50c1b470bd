package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sitebooks/backend/pkg/errhttp"
	"github.com/sitebooks/backend/pkg/httpx"
	pkgvalidator "github.com/sitebooks/backend/pkg/validator"
	appsvcs "github.com/sitebooks/backend/services/ledger/application/services"
)

// CreateItemRequest is the request body for POST /inventory/items.
type CreateItemRequest struct {
	Name     string          `json:"name"      validate:"required,max=255" example:"Cement"`
	Quantity decimal.Decimal `json:"quantity"  example:"20"`
	Unit     string          `json:"unit"      validate:"required,max=50" example:"bag"`
	MinLevel decimal.Decimal `json:"min_level" example:"10"`
} // @name CreateItemRequest

// PostItemHandler handles POST /inventory/items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute registers an inventory item with its opening stock.
//
//	@Summary		Create inventory item
//	@Description	Registers a material with its opening stock level and reorder threshold
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item to register"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/inventory/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Ledger.CreateItem(r.Context(), req.Name, req.Quantity, req.Unit, req.MinLevel)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}
