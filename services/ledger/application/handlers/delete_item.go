package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sitebooks/backend/pkg/errhttp"
	"github.com/sitebooks/backend/pkg/httpx"
	appsvcs "github.com/sitebooks/backend/services/ledger/application/services"
)

// DeleteItemHandler handles DELETE /inventory/items/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute removes an inventory item and its movement history.
//
//	@Summary		Delete inventory item
//	@Description	Removes a material together with its stock movement history
//	@Tags			inventory
//	@Produce		json
//	@Param			id	path	string	true	"Item ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/inventory/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid item id"})
		return
	}

	if err := h.svc.Ledger.DeleteItem(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
