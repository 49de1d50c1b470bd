package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sitebooks/backend/pkg/errhttp"
	"github.com/sitebooks/backend/pkg/httpx"
	pkgvalidator "github.com/sitebooks/backend/pkg/validator"
	appsvcs "github.com/sitebooks/backend/services/ledger/application/services"
	"github.com/sitebooks/backend/services/ledger/domain/models"
)

// CreateProjectCostRequest is the request body for POST /projects/{id}/costs.
type CreateProjectCostRequest struct {
	Type      string          `json:"type"       validate:"required,oneof=construction operation expense" example:"construction"`
	Amount    decimal.Decimal `json:"amount"     example:"2500000"`
	Date      string          `json:"date"       validate:"required,datetime=2006-01-02" example:"2024-03-01"`
	Note      string          `json:"note"       validate:"max=500" example:"Foundation work"`
	Approved  bool            `json:"approved"`
	CreatedBy string          `json:"created_by" validate:"max=255" example:"owner"`
} // @name CreateProjectCostRequest

// CostEntryResponse is returned on cost booking: the cost row plus the
// derived ledger entry.
type CostEntryResponse struct {
	Cost        CostResponse        `json:"cost"`
	Transaction TransactionResponse `json:"transaction"`
} // @name CostEntryResponse

// PostProjectCostHandler handles POST /projects/{id}/costs requests.
type PostProjectCostHandler struct {
	svc *appsvcs.Services
}

// NewPostProjectCostHandler returns a PostProjectCostHandler backed by the given services.
func NewPostProjectCostHandler(svc *appsvcs.Services) *PostProjectCostHandler {
	return &PostProjectCostHandler{svc: svc}
}

// Execute books a cost against a project.
//
//	@Summary		Book project cost
//	@Description	Atomically books a cost against a project and mirrors it into the ledger as an expense
//	@Tags			projects
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Project ID"
//	@Param			request	body		CreateProjectCostRequest	true	"Cost to book"
//	@Success		201		{object}	CostEntryResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/projects/{id}/costs [post]
func (h *PostProjectCostHandler) Execute(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid project id"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateProjectCostRequest](w, r)
	if !ok {
		return
	}

	entry, err := h.svc.Ledger.CreateProjectCost(r.Context(), models.CostParams{
		ProjectID: projectID,
		Type:      models.CostType(req.Type),
		Amount:    req.Amount,
		Date:      req.Date,
		Note:      req.Note,
		Approved:  req.Approved,
		CreatedBy: creator(r, req.CreatedBy),
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, CostEntryResponse{
		Cost:        toCostResponse(entry.Cost),
		Transaction: toTransactionResponse(entry.Transaction),
	})
}
