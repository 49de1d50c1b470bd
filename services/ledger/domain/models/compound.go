package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Parameters for the compound store operations. Validation of positivity
// happens in the application service; the builders assume valid input.

// ReceiptParams records a stock receipt from a supplier.
type ReceiptParams struct {
	ItemID    uuid.UUID
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Supplier  string
	Date      string
	Approved  bool
	CreatedBy string
}

// IssueParams records a stock issue to a project.
type IssueParams struct {
	ItemID    uuid.UUID
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Project   string
	Date      string
	Approved  bool
	CreatedBy string
}

// CostParams books a cost against a project.
type CostParams struct {
	ProjectID   uuid.UUID
	ProjectName string
	Type        CostType
	Amount      decimal.Decimal
	Date        string
	Note        string
	Approved    bool
	CreatedBy   string
}

// SaleParams books a unit sale against a project.
type SaleParams struct {
	ProjectID   uuid.UUID
	ProjectName string
	UnitNo      string
	Buyer       string
	Price       decimal.Decimal
	Date        string
	Terms       string
	Approved    bool
	CreatedBy   string
}

// ApplyReceipt increases the item's quantity, moves its last-updated
// timestamp to the receipt date, and returns the movement plus the derived
// expense transaction. Both store backends call this so the arithmetic and
// description wording stay identical.
func ApplyReceipt(item *InventoryItem, p ReceiptParams) (*Movement, *Transaction) {
	date := NormalizeDate(p.Date)
	total := p.Quantity.Mul(p.UnitPrice)

	item.Quantity = item.Quantity.Add(p.Quantity)
	item.UpdatedAt = DateTimestamp(date)

	mv := &Movement{
		ID:        uuid.New(),
		ItemID:    item.ID,
		Kind:      MovementIn,
		Quantity:  p.Quantity,
		UnitPrice: p.UnitPrice,
		Total:     total,
		Party:     p.Supplier,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}

	desc := fmt.Sprintf("Inventory receipt: %s from %s (%s %s @ %s)",
		item.Name, p.Supplier, p.Quantity.String(), item.Unit, p.UnitPrice.String())
	tx := NewTransaction(date, TransactionExpense, desc, total, p.Approved, p.CreatedBy)

	return mv, tx
}

// ApplyIssue decreases the item's quantity, flooring at zero, and returns
// the movement plus the derived expense transaction. The transaction amount
// is the full movement total even when the quantity clamps.
func ApplyIssue(item *InventoryItem, p IssueParams) (*Movement, *Transaction) {
	date := NormalizeDate(p.Date)
	total := p.Quantity.Mul(p.UnitPrice)

	item.Quantity = item.Quantity.Sub(p.Quantity)
	if item.Quantity.IsNegative() {
		item.Quantity = decimal.Zero
	}
	item.UpdatedAt = DateTimestamp(date)

	mv := &Movement{
		ID:        uuid.New(),
		ItemID:    item.ID,
		Kind:      MovementOut,
		Quantity:  p.Quantity,
		UnitPrice: p.UnitPrice,
		Total:     total,
		Party:     p.Project,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}

	desc := fmt.Sprintf("Inventory issue: %s to %s (%s %s @ %s)",
		item.Name, p.Project, p.Quantity.String(), item.Unit, p.UnitPrice.String())
	tx := NewTransaction(date, TransactionExpense, desc, total, p.Approved, p.CreatedBy)

	return mv, tx
}

// BuildProjectCost returns the cost record plus its derived expense transaction.
func BuildProjectCost(p CostParams) (*ProjectCost, *Transaction) {
	date := NormalizeDate(p.Date)

	cost := &ProjectCost{
		ID:        uuid.New(),
		ProjectID: p.ProjectID,
		Type:      p.Type,
		Amount:    p.Amount,
		Date:      date,
		Note:      p.Note,
		CreatedAt: time.Now().UTC(),
	}

	desc := fmt.Sprintf("%s cost for project %s", p.Type.CostLabel(), p.ProjectName)
	tx := NewTransaction(date, TransactionExpense, desc, p.Amount, p.Approved, p.CreatedBy)

	return cost, tx
}

// BuildProjectSale returns the sale record plus its derived revenue transaction.
func BuildProjectSale(p SaleParams) (*ProjectSale, *Transaction) {
	date := NormalizeDate(p.Date)

	sale := &ProjectSale{
		ID:        uuid.New(),
		ProjectID: p.ProjectID,
		UnitNo:    p.UnitNo,
		Buyer:     p.Buyer,
		Price:     p.Price,
		Date:      date,
		Terms:     p.Terms,
		CreatedAt: time.Now().UTC(),
	}

	desc := fmt.Sprintf("Sale of unit %s in project %s to %s", p.UnitNo, p.ProjectName, p.Buyer)
	tx := NewTransaction(date, TransactionRevenue, desc, p.Price, p.Approved, p.CreatedBy)

	return sale, tx
}

// DateTimestamp converts a YYYY-MM-DD date to midnight UTC, falling back to
// now when the string does not parse. Items are ordered by this value.
func DateTimestamp(date string) time.Time {
	t, err := time.Parse("2006-01-02", NormalizeDate(date))
	if err != nil {
		return time.Now().UTC()
	}
	return t.UTC()
}
