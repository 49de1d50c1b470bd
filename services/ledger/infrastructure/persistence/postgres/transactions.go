package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	ledgerdomain "github.com/sitebooks/backend/services/ledger/domain"
	"github.com/sitebooks/backend/services/ledger/domain/models"
)

const transactionColumns = "id, date, type, description, amount, approved, created_by, created_at"

// CreateTransaction inserts a manually-entered ledger transaction.
func (s *Store) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	_, err := s.db.DB().ExecContext(ctx, `
		INSERT INTO ledger_transactions (id, date, type, description, amount, approved, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		tx.ID, tx.Date, string(tx.Type), tx.Description, tx.Amount.String(), tx.Approved, tx.CreatedBy, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListTransactions returns all transactions, date descending with creation
// timestamp as tiebreak.
func (s *Store) ListTransactions(ctx context.Context) ([]*models.Transaction, error) {
	rows, err := s.db.DB().QueryContext(ctx, `
		SELECT `+transactionColumns+`
		FROM ledger_transactions
		ORDER BY date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []*models.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	return out, rows.Err()
}

// GetTransaction returns one transaction or ErrTransactionNotFound.
func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	row := s.db.DB().QueryRowContext(ctx, `
		SELECT `+transactionColumns+`
		FROM ledger_transactions WHERE id = $1`, id)
	tx, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledgerdomain.ErrTransactionNotFound
		}
		return nil, err
	}
	return tx, nil
}

// ApproveTransaction flips approved to true. Idempotent: approving an
// already-approved transaction succeeds with no further side effects.
func (s *Store) ApproveTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	res, err := s.db.DB().ExecContext(ctx,
		`UPDATE ledger_transactions SET approved = TRUE WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("approve transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("approve transaction rows: %w", err)
	}
	if n == 0 {
		return nil, ledgerdomain.ErrTransactionNotFound
	}
	return s.GetTransaction(ctx, id)
}

// DeleteTransaction removes one transaction; ErrTransactionNotFound when absent.
func (s *Store) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.DB().ExecContext(ctx,
		`DELETE FROM ledger_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete transaction rows: %w", err)
	}
	if n == 0 {
		return ledgerdomain.ErrTransactionNotFound
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(r rowScanner) (*models.Transaction, error) {
	var (
		id                  uuid.UUID
		date, amount        any
		approved, createdAt any
		typ, description    string
		createdBy           sql.NullString
	)
	if err := r.Scan(&id, &date, &typ, &description, &amount, &approved, &createdBy, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan transaction: %w", err)
	}
	return &models.Transaction{
		ID:          id,
		Date:        toDate(date),
		Type:        models.TransactionType(typ),
		Description: description,
		Amount:      toDecimal(amount),
		Approved:    toBool(approved),
		CreatedBy:   createdBy.String,
		CreatedAt:   toTime(createdAt),
	}, nil
}
