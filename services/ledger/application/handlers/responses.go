package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sitebooks/backend/pkg/auth"
	"github.com/sitebooks/backend/services/ledger/domain/models"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"transaction not found"`
} // @name ErrorResponse

// TransactionResponse is the wire shape of a ledger entry.
type TransactionResponse struct {
	ID          uuid.UUID       `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	Date        string          `json:"date"        example:"2024-03-01"`
	Type        string          `json:"type"        example:"expense"`
	Description string          `json:"description" example:"Office rent for March"`
	Amount      decimal.Decimal `json:"amount"      example:"150000"`
	Approved    bool            `json:"approved"`
	CreatedBy   string          `json:"created_by"  example:"owner"`
	CreatedAt   time.Time       `json:"created_at"  example:"2024-03-01T10:30:00Z"`
} // @name TransactionResponse

// ItemResponse is the wire shape of an inventory item.
type ItemResponse struct {
	ID        uuid.UUID       `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	Name      string          `json:"name"       example:"Cement"`
	Quantity  decimal.Decimal `json:"quantity"   example:"30"`
	Unit      string          `json:"unit"       example:"bag"`
	MinLevel  decimal.Decimal `json:"min_level"  example:"10"`
	UpdatedAt time.Time       `json:"updated_at" example:"2024-03-01T00:00:00Z"`
} // @name ItemResponse

// MovementResponse is the wire shape of a stock movement.
type MovementResponse struct {
	ID        uuid.UUID       `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	ItemID    uuid.UUID       `json:"item_id"    example:"550e8400-e29b-41d4-a716-446655440000"`
	Kind      string          `json:"kind"       example:"in"`
	Quantity  decimal.Decimal `json:"quantity"   example:"10"`
	UnitPrice decimal.Decimal `json:"unit_price" example:"5"`
	Total     decimal.Decimal `json:"total"      example:"50"`
	Party     string          `json:"party"      example:"ABC Suppliers"`
	Date      string          `json:"date"       example:"2024-03-01"`
	CreatedAt time.Time       `json:"created_at" example:"2024-03-01T10:30:00Z"`
} // @name MovementResponse

// ProjectResponse is the wire shape of a project.
type ProjectResponse struct {
	ID        uuid.UUID `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	Name      string    `json:"name"       example:"Golden Valley"`
	Location  string    `json:"location"   example:"Yangon"`
	Floors    int       `json:"floors"     example:"8"`
	Units     int       `json:"units"      example:"32"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
} // @name ProjectResponse

// CostResponse is the wire shape of a project cost.
type CostResponse struct {
	ID        uuid.UUID       `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	ProjectID uuid.UUID       `json:"project_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Type      string          `json:"type"       example:"construction"`
	Amount    decimal.Decimal `json:"amount"     example:"2500000"`
	Date      string          `json:"date"       example:"2024-03-01"`
	Note      string          `json:"note"       example:"Foundation work"`
	CreatedAt time.Time       `json:"created_at" example:"2024-03-01T10:30:00Z"`
} // @name CostResponse

// SaleResponse is the wire shape of a project sale.
type SaleResponse struct {
	ID        uuid.UUID       `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	ProjectID uuid.UUID       `json:"project_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UnitNo    string          `json:"unit_no"    example:"A-12"`
	Buyer     string          `json:"buyer"      example:"U Kyaw"`
	Price     decimal.Decimal `json:"price"      example:"85000000"`
	Date      string          `json:"date"       example:"2024-03-01"`
	Terms     string          `json:"terms"      example:"50% down, balance on handover"`
	CreatedAt time.Time       `json:"created_at" example:"2024-03-01T10:30:00Z"`
} // @name SaleResponse

func toTransactionResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Date:        t.Date,
		Type:        string(t.Type),
		Description: t.Description,
		Amount:      t.Amount,
		Approved:    t.Approved,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
	}
}

func toItemResponse(i *models.InventoryItem) ItemResponse {
	return ItemResponse{
		ID:        i.ID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		Unit:      i.Unit,
		MinLevel:  i.MinLevel,
		UpdatedAt: i.UpdatedAt,
	}
}

func toMovementResponse(m *models.Movement) MovementResponse {
	return MovementResponse{
		ID:        m.ID,
		ItemID:    m.ItemID,
		Kind:      string(m.Kind),
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
		Total:     m.Total,
		Party:     m.Party,
		Date:      m.Date,
		CreatedAt: m.CreatedAt,
	}
}

func toProjectResponse(p *models.Project) ProjectResponse {
	return ProjectResponse{
		ID:        p.ID,
		Name:      p.Name,
		Location:  p.Location,
		Floors:    p.Floors,
		Units:     p.Units,
		CreatedAt: p.CreatedAt,
	}
}

func toCostResponse(c *models.ProjectCost) CostResponse {
	return CostResponse{
		ID:        c.ID,
		ProjectID: c.ProjectID,
		Type:      string(c.Type),
		Amount:    c.Amount,
		Date:      c.Date,
		Note:      c.Note,
		CreatedAt: c.CreatedAt,
	}
}

func toSaleResponse(s *models.ProjectSale) SaleResponse {
	return SaleResponse{
		ID:        s.ID,
		ProjectID: s.ProjectID,
		UnitNo:    s.UnitNo,
		Buyer:     s.Buyer,
		Price:     s.Price,
		Date:      s.Date,
		Terms:     s.Terms,
		CreatedAt: s.CreatedAt,
	}
}

func toTransactionResponses(ts []*models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTransactionResponse(t))
	}
	return out
}

func toItemResponses(is []*models.InventoryItem) []ItemResponse {
	out := make([]ItemResponse, 0, len(is))
	for _, i := range is {
		out = append(out, toItemResponse(i))
	}
	return out
}

func toMovementResponses(ms []*models.Movement) []MovementResponse {
	out := make([]MovementResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, toMovementResponse(m))
	}
	return out
}

func toProjectResponses(ps []*models.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProjectResponse(p))
	}
	return out
}

func toCostResponses(cs []*models.ProjectCost) []CostResponse {
	out := make([]CostResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCostResponse(c))
	}
	return out
}

func toSaleResponses(ss []*models.ProjectSale) []SaleResponse {
	out := make([]SaleResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, toSaleResponse(s))
	}
	return out
}

// creator resolves who booked an entry: the signed-in user from the
// session when present, otherwise the created_by field of the payload.
func creator(r *http.Request, fallback string) string {
	if actor, err := auth.ActorFromCtx(r.Context()); err == nil {
		return actor
	}
	return fallback
}
