// Package postgres implements the ledger Store against PostgreSQL. Every
// compound operation runs inside one database transaction; domain events are
// published through the Watermill tx publisher so the event and the writes
// commit or roll back together.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/sitebooks/backend/pkg/database"
	"github.com/sitebooks/backend/pkg/events"
	"github.com/sitebooks/backend/services/ledger/domain/models"
	"github.com/sitebooks/backend/services/ledger/domain/repositories"
)

// Store implements repositories.Store against PostgreSQL.
type Store struct {
	db  *database.Database
	bus *events.EventBus
}

// NewStore returns a Store backed by the given pool and event bus. The bus
// may be nil; events are then skipped.
func NewStore(db *database.Database, bus *events.EventBus) *Store {
	return &Store{db: db, bus: bus}
}

var _ repositories.Store = (*Store)(nil)

// Overview returns all six collections, each independently sorted.
func (s *Store) Overview(ctx context.Context) (*models.Overview, error) {
	transactions, err := s.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	movements, err := s.ListMovements(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	costs, err := s.ListProjectCosts(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.ListProjectSales(ctx)
	if err != nil {
		return nil, err
	}
	return &models.Overview{
		Transactions: transactions,
		Items:        items,
		Movements:    movements,
		Projects:     projects,
		Costs:        costs,
		Sales:        sales,
	}, nil
}

// publishTx marshals event and publishes it on topic within tx. No-op when
// the bus is absent.
func (s *Store) publishTx(tx *sql.Tx, topic string, event any, eventID string) error {
	if s.bus == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID)
	msg.Metadata.Set("event_version", "1")
	p, err := s.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}
