package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CostType classifies a project cost.
type CostType string

const (
	CostConstruction CostType = "construction"
	CostOperation    CostType = "operation"
	CostExpense      CostType = "expense"
)

// CostLabel returns the display label used in derived transaction
// descriptions. The wording is fixed; do not reword without migrating
// existing descriptions.
func (t CostType) CostLabel() string {
	switch t {
	case CostConstruction:
		return "construction"
	case CostOperation:
		return "operation"
	case CostExpense:
		return "general expense"
	default:
		return string(t)
	}
}

// Project is one construction project under cost/sale tracking.
type Project struct {
	ID        uuid.UUID
	Name      string
	Location  string
	Floors    int
	Units     int
	CreatedAt time.Time
}

// NewProject constructs a project with a generated ID and current creation timestamp.
func NewProject(name, location string, floors, units int) *Project {
	return &Project{
		ID:        uuid.New(),
		Name:      name,
		Location:  location,
		Floors:    floors,
		Units:     units,
		CreatedAt: time.Now().UTC(),
	}
}

// ProjectCost is one cost booked against a project.
type ProjectCost struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Type      CostType
	Amount    decimal.Decimal
	Date      string // canonical YYYY-MM-DD
	Note      string
	CreatedAt time.Time
}

// ProjectSale is one unit sale booked against a project. Terms is optional
// free-text contract terms.
type ProjectSale struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	UnitNo    string
	Buyer     string
	Price     decimal.Decimal
	Date      string // canonical YYYY-MM-DD
	Terms     string
	CreatedAt time.Time
}
