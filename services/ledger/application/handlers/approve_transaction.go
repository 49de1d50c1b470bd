package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sitebooks/backend/pkg/errhttp"
	"github.com/sitebooks/backend/pkg/httpx"
	appsvcs "github.com/sitebooks/backend/services/ledger/application/services"
)

// ApproveTransactionHandler handles POST /transactions/{id}/approve requests.
type ApproveTransactionHandler struct {
	svc *appsvcs.Services
}

// NewApproveTransactionHandler returns an ApproveTransactionHandler backed by the given services.
func NewApproveTransactionHandler(svc *appsvcs.Services) *ApproveTransactionHandler {
	return &ApproveTransactionHandler{svc: svc}
}

// Execute marks a ledger entry approved. Idempotent.
//
//	@Summary		Approve transaction
//	@Description	Marks a ledger entry approved; approving twice is a no-op
//	@Tags			transactions
//	@Produce		json
//	@Param			id	path		string	true	"Transaction ID"
//	@Success		200	{object}	TransactionResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/transactions/{id}/approve [post]
func (h *ApproveTransactionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid transaction id"})
		return
	}

	t, err := h.svc.Ledger.ApproveTransaction(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toTransactionResponse(t))
}
