package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	ledgerdomain "github.com/sitebooks/backend/services/ledger/domain"
	domainevents "github.com/sitebooks/backend/services/ledger/domain/events"
	"github.com/sitebooks/backend/services/ledger/domain/models"
	"github.com/sitebooks/backend/services/ledger/domain/repositories"
)

const itemColumns = "id, name, quantity, unit, min_level, updated_at"

// CreateItem inserts a new inventory item.
func (s *Store) CreateItem(ctx context.Context, item *models.InventoryItem) error {
	_, err := s.db.DB().ExecContext(ctx, `
		INSERT INTO inventory_items (id, name, quantity, unit, min_level, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		item.ID, item.Name, item.Quantity.String(), item.Unit, item.MinLevel.String(), item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// ListItems returns all items, most recently updated first.
func (s *Store) ListItems(ctx context.Context) ([]*models.InventoryItem, error) {
	rows, err := s.db.DB().QueryContext(ctx, `
		SELECT `+itemColumns+`
		FROM inventory_items
		ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []*models.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// GetItem returns one item or ErrItemNotFound.
func (s *Store) GetItem(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	row := s.db.DB().QueryRowContext(ctx, `
		SELECT `+itemColumns+`
		FROM inventory_items WHERE id = $1`, id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledgerdomain.ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// DeleteItem removes an item and its movements as one atomic unit.
// The schema also declares ON DELETE CASCADE; the explicit delete keeps the
// policy visible and identical to the in-memory path.
func (s *Store) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM stock_movements WHERE item_id = $1`, id); err != nil {
			return fmt.Errorf("delete item movements: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete item rows: %w", err)
		}
		if n == 0 {
			return ledgerdomain.ErrItemNotFound
		}
		return nil
	})
}

// ListMovements returns all movements, date descending.
func (s *Store) ListMovements(ctx context.Context) ([]*models.Movement, error) {
	rows, err := s.db.DB().QueryContext(ctx, `
		SELECT id, item_id, kind, quantity, unit_price, total, party, date, created_at
		FROM stock_movements
		ORDER BY date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query movements: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []*models.Movement
	for rows.Next() {
		mv, err := scanMovement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, mv)
	}
	return out, rows.Err()
}

// RecordReceipt atomically increases stock, appends the movement, inserts
// the derived transaction, and publishes the movement event — all in one
// database transaction.
func (s *Store) RecordReceipt(ctx context.Context, p models.ReceiptParams) (*repositories.StockChange, error) {
	var change *repositories.StockChange
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		item, err := lockItem(ctx, tx, p.ItemID)
		if err != nil {
			return err
		}
		mv, ledgerTx := models.ApplyReceipt(item, p)
		if err := s.applyStockChange(ctx, tx, item, mv, ledgerTx); err != nil {
			return err
		}
		change = &repositories.StockChange{Item: item, Movement: mv, Transaction: ledgerTx}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return change, nil
}

// RecordIssue atomically decreases stock (floored at zero), appends the
// movement, and inserts the derived transaction.
func (s *Store) RecordIssue(ctx context.Context, p models.IssueParams) (*repositories.StockChange, error) {
	var change *repositories.StockChange
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		item, err := lockItem(ctx, tx, p.ItemID)
		if err != nil {
			return err
		}
		mv, ledgerTx := models.ApplyIssue(item, p)
		if err := s.applyStockChange(ctx, tx, item, mv, ledgerTx); err != nil {
			return err
		}
		change = &repositories.StockChange{Item: item, Movement: mv, Transaction: ledgerTx}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return change, nil
}

// lockItem reads the item row FOR UPDATE so the read-modify-write on the
// quantity cannot lose an update under concurrent movements.
func lockItem(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*models.InventoryItem, error) {
	row := tx.QueryRowContext(ctx, `
		SELECT `+itemColumns+`
		FROM inventory_items WHERE id = $1 FOR UPDATE`, id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledgerdomain.ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// applyStockChange writes the updated quantity, the movement, the derived
// transaction, and the movement event inside tx.
func (s *Store) applyStockChange(ctx context.Context, tx *sql.Tx, item *models.InventoryItem, mv *models.Movement, ledgerTx *models.Transaction) error {
	if _, err := tx.ExecContext(ctx, `
		UPDATE inventory_items SET quantity = $2, updated_at = $3 WHERE id = $1`,
		item.ID, item.Quantity.String(), item.UpdatedAt,
	); err != nil {
		return fmt.Errorf("update item quantity: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO stock_movements (id, item_id, kind, quantity, unit_price, total, party, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		mv.ID, mv.ItemID, string(mv.Kind), mv.Quantity.String(), mv.UnitPrice.String(),
		mv.Total.String(), mv.Party, mv.Date, mv.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}

	if err := insertTransactionTx(ctx, tx, ledgerTx); err != nil {
		return err
	}

	event := domainevents.MovementRecordedEvent{
		EventID:       uuid.New(),
		Version:       1,
		MovementID:    mv.ID,
		ItemID:        item.ID,
		ItemName:      item.Name,
		Kind:          string(mv.Kind),
		Quantity:      mv.Quantity.String(),
		Total:         mv.Total.String(),
		ItemQuantity:  item.Quantity.String(),
		ItemMinLevel:  item.MinLevel.String(),
		TransactionID: ledgerTx.ID,
		OccurredAt:    time.Now().UTC(),
	}
	if err := s.publishTx(tx, domainevents.TopicMovementRecorded, event, event.EventID.String()); err != nil {
		return fmt.Errorf("publish movement recorded: %w", err)
	}
	return nil
}

func scanItem(r rowScanner) (*models.InventoryItem, error) {
	var (
		id                  uuid.UUID
		name, unit          string
		quantity, minLevel  any
		updatedAt           any
	)
	if err := r.Scan(&id, &name, &quantity, &unit, &minLevel, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}
	return &models.InventoryItem{
		ID:        id,
		Name:      name,
		Quantity:  toDecimal(quantity),
		Unit:      unit,
		MinLevel:  toDecimal(minLevel),
		UpdatedAt: toTime(updatedAt),
	}, nil
}

func scanMovement(r rowScanner) (*models.Movement, error) {
	var (
		id, itemID                 uuid.UUID
		kind, party                string
		quantity, unitPrice, total any
		date, createdAt            any
	)
	if err := r.Scan(&id, &itemID, &kind, &quantity, &unitPrice, &total, &party, &date, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan movement: %w", err)
	}
	qty := toDecimal(quantity)
	price := toDecimal(unitPrice)
	return &models.Movement{
		ID:        id,
		ItemID:    itemID,
		Kind:      models.MovementKind(kind),
		Quantity:  qty,
		UnitPrice: price,
		Total:     movementTotal(total, qty, price),
		Party:     party,
		Date:      toDate(date),
		CreatedAt: toTime(createdAt),
	}, nil
}
