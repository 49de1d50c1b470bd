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

// CreateProjectSaleRequest is the request body for POST /projects/{id}/sales.
type CreateProjectSaleRequest struct {
	UnitNo    string          `json:"unit_no"    validate:"required,max=50" example:"A-12"`
	Buyer     string          `json:"buyer"      validate:"required,max=255" example:"U Kyaw"`
	Price     decimal.Decimal `json:"price"      example:"85000000"`
	Date      string          `json:"date"       validate:"required,datetime=2006-01-02" example:"2024-03-01"`
	Terms     string          `json:"terms"      validate:"max=1000" example:"50% down, balance on handover"`
	Approved  bool            `json:"approved"`
	CreatedBy string          `json:"created_by" validate:"max=255" example:"owner"`
} // @name CreateProjectSaleRequest

// SaleEntryResponse is returned on sale booking: the sale row plus the
// derived ledger entry.
type SaleEntryResponse struct {
	Sale        SaleResponse        `json:"sale"`
	Transaction TransactionResponse `json:"transaction"`
} // @name SaleEntryResponse

// PostProjectSaleHandler handles POST /projects/{id}/sales requests.
type PostProjectSaleHandler struct {
	svc *appsvcs.Services
}

// NewPostProjectSaleHandler returns a PostProjectSaleHandler backed by the given services.
func NewPostProjectSaleHandler(svc *appsvcs.Services) *PostProjectSaleHandler {
	return &PostProjectSaleHandler{svc: svc}
}

// Execute books a unit sale against a project.
//
//	@Summary		Book project sale
//	@Description	Atomically books a unit sale against a project and mirrors it into the ledger as revenue
//	@Tags			projects
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Project ID"
//	@Param			request	body		CreateProjectSaleRequest	true	"Sale to book"
//	@Success		201		{object}	SaleEntryResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/projects/{id}/sales [post]
func (h *PostProjectSaleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid project id"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateProjectSaleRequest](w, r)
	if !ok {
		return
	}

	entry, err := h.svc.Ledger.CreateProjectSale(r.Context(), models.SaleParams{
		ProjectID: projectID,
		UnitNo:    req.UnitNo,
		Buyer:     req.Buyer,
		Price:     req.Price,
		Date:      req.Date,
		Terms:     req.Terms,
		Approved:  req.Approved,
		CreatedBy: creator(r, req.CreatedBy),
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, SaleEntryResponse{
		Sale:        toSaleResponse(entry.Sale),
		Transaction: toTransactionResponse(entry.Transaction),
	})
}
