package handlers

import (
	"net/http"

	"github.com/sitebooks/backend/pkg/errhttp"
	"github.com/sitebooks/backend/pkg/httpx"
	appsvcs "github.com/sitebooks/backend/services/ledger/application/services"
)

// OverviewResponse is the full dashboard snapshot.
type OverviewResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Items        []ItemResponse        `json:"items"`
	Movements    []MovementResponse    `json:"movements"`
	Projects     []ProjectResponse     `json:"projects"`
	Costs        []CostResponse        `json:"costs"`
	Sales        []SaleResponse        `json:"sales"`
} // @name OverviewResponse

// GetOverviewHandler handles GET /overview requests.
type GetOverviewHandler struct {
	svc *appsvcs.Services
}

// NewGetOverviewHandler returns a GetOverviewHandler backed by the given services.
func NewGetOverviewHandler(svc *appsvcs.Services) *GetOverviewHandler {
	return &GetOverviewHandler{svc: svc}
}

// Execute returns everything the dashboard needs in one round trip.
//
//	@Summary		Dashboard overview
//	@Description	Returns all six collections in one snapshot, each sorted for display
//	@Tags			overview
//	@Produce		json
//	@Success		200	{object}	OverviewResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/overview [get]
func (h *GetOverviewHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ov, err := h.svc.Ledger.Overview(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, OverviewResponse{
		Transactions: toTransactionResponses(ov.Transactions),
		Items:        toItemResponses(ov.Items),
		Movements:    toMovementResponses(ov.Movements),
		Projects:     toProjectResponses(ov.Projects),
		Costs:        toCostResponses(ov.Costs),
		Sales:        toSaleResponses(ov.Sales),
	})
}
