package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sitebooks/backend/pkg/errhttp"
	"github.com/sitebooks/backend/pkg/httpx"
	appsvcs "github.com/sitebooks/backend/services/ledger/application/services"
)

// DeleteTransactionHandler handles DELETE /transactions/{id} requests.
type DeleteTransactionHandler struct {
	svc *appsvcs.Services
}

// NewDeleteTransactionHandler returns a DeleteTransactionHandler backed by the given services.
func NewDeleteTransactionHandler(svc *appsvcs.Services) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{svc: svc}
}

// Execute removes a ledger entry.
//
//	@Summary		Delete transaction
//	@Description	Removes a ledger entry by ID
//	@Tags			transactions
//	@Produce		json
//	@Param			id	path	string	true	"Transaction ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/transactions/{id} [delete]
func (h *DeleteTransactionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid transaction id"})
		return
	}

	if err := h.svc.Ledger.DeleteTransaction(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
