package handlers

import (
	"net/http"

	"github.com/sitebooks/backend/pkg/errhttp"
	"github.com/sitebooks/backend/pkg/httpx"
	appsvcs "github.com/sitebooks/backend/services/ledger/application/services"
)

// GetItemsHandler handles GET /inventory/items requests.
type GetItemsHandler struct {
	svc *appsvcs.Services
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services) *GetItemsHandler {
	return &GetItemsHandler{svc: svc}
}

// Execute lists all inventory items, most recently updated first.
//
//	@Summary		List inventory items
//	@Description	Returns all materials with their current stock levels
//	@Tags			inventory
//	@Produce		json
//	@Success		200	{array}		ItemResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/inventory/items [get]
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Ledger.ListItems(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponses(items))
}
