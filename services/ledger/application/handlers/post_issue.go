package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sitebooks/backend/pkg/errhttp"
	"github.com/sitebooks/backend/pkg/httpx"
	pkgvalidator "github.com/sitebooks/backend/pkg/validator"
	appsvcs "github.com/sitebooks/backend/services/ledger/application/services"
	"github.com/sitebooks/backend/services/ledger/domain/models"
)

// RecordIssueRequest is the request body for POST /inventory/issues.
type RecordIssueRequest struct {
	ItemID    uuid.UUID       `json:"item_id"    validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Quantity  decimal.Decimal `json:"quantity"   example:"5"`
	UnitPrice decimal.Decimal `json:"unit_price" example:"5"`
	Project   string          `json:"project"    validate:"required,max=255" example:"Golden Valley site"`
	Date      string          `json:"date"       validate:"required,datetime=2006-01-02" example:"2024-03-02"`
	Approved  bool            `json:"approved"`
	CreatedBy string          `json:"created_by" validate:"max=255" example:"owner"`
} // @name RecordIssueRequest

// PostIssueHandler handles POST /inventory/issues requests.
type PostIssueHandler struct {
	svc *appsvcs.Services
}

// NewPostIssueHandler returns a PostIssueHandler backed by the given services.
func NewPostIssueHandler(svc *appsvcs.Services) *PostIssueHandler {
	return &PostIssueHandler{svc: svc}
}

// Execute records outgoing stock to a project site.
//
//	@Summary		Record stock issue
//	@Description	Atomically decreases stock (floored at zero), appends an "out" movement, and books the consumption as an expense
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RecordIssueRequest	true	"Issue to record"
//	@Success		201		{object}	StockChangeResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/inventory/issues [post]
func (h *PostIssueHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RecordIssueRequest](w, r)
	if !ok {
		return
	}

	change, err := h.svc.Ledger.RecordIssue(r.Context(), models.IssueParams{
		ItemID:    req.ItemID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Project:   req.Project,
		Date:      req.Date,
		Approved:  req.Approved,
		CreatedBy: creator(r, req.CreatedBy),
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, StockChangeResponse{
		Item:        toItemResponse(change.Item),
		Movement:    toMovementResponse(change.Movement),
		Transaction: toTransactionResponse(change.Transaction),
	})
}
