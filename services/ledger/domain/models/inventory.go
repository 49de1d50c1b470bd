package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementKind distinguishes stock receipts from stock issues.
type MovementKind string

const (
	MovementIn  MovementKind = "in"
	MovementOut MovementKind = "out"
)

// InventoryItem tracks the running stock level of one material. Quantity is
// mutated only through movement recording and never goes negative.
type InventoryItem struct {
	ID        uuid.UUID
	Name      string
	Quantity  decimal.Decimal
	Unit      string // e.g. "bag", "ton", "m3"
	MinLevel  decimal.Decimal
	UpdatedAt time.Time
}

// NewInventoryItem constructs an item with a generated ID and current
// last-updated timestamp.
func NewInventoryItem(name string, quantity decimal.Decimal, unit string, minLevel decimal.Decimal) *InventoryItem {
	return &InventoryItem{
		ID:        uuid.New(),
		Name:      name,
		Quantity:  quantity,
		Unit:      unit,
		MinLevel:  minLevel,
		UpdatedAt: time.Now().UTC(),
	}
}

// BelowMinimum reports whether the stock level has reached the reorder threshold.
func (i *InventoryItem) BelowMinimum() bool {
	return i.Quantity.LessThanOrEqual(i.MinLevel)
}

// Movement is one stock receipt or issue. Append-only; never mutated after
// creation. Party holds the supplier name for receipts and the destination
// project name for issues.
type Movement struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	Kind      MovementKind
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
	Party     string
	Date      string // canonical YYYY-MM-DD
	CreatedAt time.Time
}
