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

// RecordReceiptRequest is the request body for POST /inventory/receipts.
type RecordReceiptRequest struct {
	ItemID    uuid.UUID       `json:"item_id"    validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Quantity  decimal.Decimal `json:"quantity"   example:"10"`
	UnitPrice decimal.Decimal `json:"unit_price" example:"5"`
	Supplier  string          `json:"supplier"   validate:"required,max=255" example:"ABC Suppliers"`
	Date      string          `json:"date"       validate:"required,datetime=2006-01-02" example:"2024-03-01"`
	Approved  bool            `json:"approved"`
	CreatedBy string          `json:"created_by" validate:"max=255" example:"owner"`
} // @name RecordReceiptRequest

// StockChangeResponse is returned by receipt and issue recording: the
// updated item, the appended movement, and the derived ledger entry.
type StockChangeResponse struct {
	Item        ItemResponse        `json:"item"`
	Movement    MovementResponse    `json:"movement"`
	Transaction TransactionResponse `json:"transaction"`
} // @name StockChangeResponse

// PostReceiptHandler handles POST /inventory/receipts requests.
type PostReceiptHandler struct {
	svc *appsvcs.Services
}

// NewPostReceiptHandler returns a PostReceiptHandler backed by the given services.
func NewPostReceiptHandler(svc *appsvcs.Services) *PostReceiptHandler {
	return &PostReceiptHandler{svc: svc}
}

// Execute records incoming stock from a supplier.
//
//	@Summary		Record stock receipt
//	@Description	Atomically increases stock, appends an "in" movement, and books the purchase as an expense
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RecordReceiptRequest	true	"Receipt to record"
//	@Success		201		{object}	StockChangeResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/inventory/receipts [post]
func (h *PostReceiptHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RecordReceiptRequest](w, r)
	if !ok {
		return
	}

	change, err := h.svc.Ledger.RecordReceipt(r.Context(), models.ReceiptParams{
		ItemID:    req.ItemID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Supplier:  req.Supplier,
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
