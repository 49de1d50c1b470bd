package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the postgres store within the same
// transaction as the writes they describe.
const (
	TopicMovementRecorded   = "ledger.movement_recorded"
	TopicProjectCostCreated = "ledger.project_cost_created"
	TopicProjectSaleCreated = "ledger.project_sale_created"
)

// MovementRecordedEvent is published after a stock receipt or issue.
// The worker uses it for low-stock warnings and overview cache invalidation.
type MovementRecordedEvent struct {
	EventID       uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version       int       `json:"version"`  // Schema version; increment on breaking changes
	MovementID    uuid.UUID `json:"movement_id"`
	ItemID        uuid.UUID `json:"item_id"`
	ItemName      string    `json:"item_name"`
	Kind          string    `json:"kind"` // "in" or "out"
	Quantity      string    `json:"quantity"`
	Total         string    `json:"total"`
	ItemQuantity  string    `json:"item_quantity"` // stock level after the movement
	ItemMinLevel  string    `json:"item_min_level"`
	TransactionID uuid.UUID `json:"transaction_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// ProjectCostCreatedEvent is published after a project cost is booked.
type ProjectCostCreatedEvent struct {
	EventID       uuid.UUID `json:"event_id"`
	Version       int       `json:"version"`
	CostID        uuid.UUID `json:"cost_id"`
	ProjectID     uuid.UUID `json:"project_id"`
	CostType      string    `json:"cost_type"`
	Amount        string    `json:"amount"`
	TransactionID uuid.UUID `json:"transaction_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// ProjectSaleCreatedEvent is published after a project sale is booked.
type ProjectSaleCreatedEvent struct {
	EventID       uuid.UUID `json:"event_id"`
	Version       int       `json:"version"`
	SaleID        uuid.UUID `json:"sale_id"`
	ProjectID     uuid.UUID `json:"project_id"`
	UnitNo        string    `json:"unit_no"`
	Price         string    `json:"price"`
	TransactionID uuid.UUID `json:"transaction_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}
