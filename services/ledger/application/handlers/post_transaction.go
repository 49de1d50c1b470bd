package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sitebooks/backend/pkg/errhttp"
	"github.com/sitebooks/backend/pkg/httpx"
	pkgvalidator "github.com/sitebooks/backend/pkg/validator"
	appsvcs "github.com/sitebooks/backend/services/ledger/application/services"
	"github.com/sitebooks/backend/services/ledger/domain/models"
)

// CreateTransactionRequest is the request body for POST /transactions.
type CreateTransactionRequest struct {
	Date        string          `json:"date"        validate:"required,datetime=2006-01-02" example:"2024-03-01"`
	Type        string          `json:"type"        validate:"required,oneof=revenue expense" example:"expense"`
	Description string          `json:"description" validate:"required,max=500" example:"Office rent for March"`
	Amount      decimal.Decimal `json:"amount"      example:"150000"`
	Approved    bool            `json:"approved"`
	CreatedBy   string          `json:"created_by"  validate:"max=255" example:"owner"`
} // @name CreateTransactionRequest

// PostTransactionHandler handles POST /transactions requests.
type PostTransactionHandler struct {
	svc *appsvcs.Services
}

// NewPostTransactionHandler returns a PostTransactionHandler backed by the given services.
func NewPostTransactionHandler(svc *appsvcs.Services) *PostTransactionHandler {
	return &PostTransactionHandler{svc: svc}
}

// Execute records a manual ledger entry.
//
//	@Summary		Create transaction
//	@Description	Records a manual revenue or expense entry in the ledger
//	@Tags			transactions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateTransactionRequest	true	"Transaction to record"
//	@Success		201		{object}	TransactionResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/transactions [post]
func (h *PostTransactionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateTransactionRequest](w, r)
	if !ok {
		return
	}

	t, err := h.svc.Ledger.CreateTransaction(
		r.Context(),
		req.Date,
		models.TransactionType(req.Type),
		req.Description,
		req.Amount,
		req.Approved,
		creator(r, req.CreatedBy),
	)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toTransactionResponse(t))
}
