package handlers

import (
	"net/http"

	"github.com/sitebooks/backend/pkg/errhttp"
	"github.com/sitebooks/backend/pkg/httpx"
	appsvcs "github.com/sitebooks/backend/services/ledger/application/services"
)

// GetMovementsHandler handles GET /inventory/movements requests.
type GetMovementsHandler struct {
	svc *appsvcs.Services
}

// NewGetMovementsHandler returns a GetMovementsHandler backed by the given services.
func NewGetMovementsHandler(svc *appsvcs.Services) *GetMovementsHandler {
	return &GetMovementsHandler{svc: svc}
}

// Execute lists all stock movements across items, newest date first.
//
//	@Summary		List stock movements
//	@Description	Returns the full receipt and issue history across all items
//	@Tags			inventory
//	@Produce		json
//	@Success		200	{array}		MovementResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/inventory/movements [get]
func (h *GetMovementsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	mvs, err := h.svc.Ledger.ListMovements(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toMovementResponses(mvs))
}
