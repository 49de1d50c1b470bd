package handlers

import (
	"net/http"

	"github.com/sitebooks/backend/pkg/errhttp"
	"github.com/sitebooks/backend/pkg/httpx"
	appsvcs "github.com/sitebooks/backend/services/ledger/application/services"
)

// GetTransactionsHandler handles GET /transactions requests.
type GetTransactionsHandler struct {
	svc *appsvcs.Services
}

// NewGetTransactionsHandler returns a GetTransactionsHandler backed by the given services.
func NewGetTransactionsHandler(svc *appsvcs.Services) *GetTransactionsHandler {
	return &GetTransactionsHandler{svc: svc}
}

// Execute lists all ledger entries, newest date first.
//
//	@Summary		List transactions
//	@Description	Returns all ledger entries sorted by date descending
//	@Tags			transactions
//	@Produce		json
//	@Success		200	{array}		TransactionResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/transactions [get]
func (h *GetTransactionsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.Ledger.ListTransactions(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toTransactionResponses(txs))
}
