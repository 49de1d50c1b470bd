package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger transaction.
type TransactionType string

const (
	TransactionRevenue TransactionType = "revenue"
	TransactionExpense TransactionType = "expense"
)

// Transaction is a single ledger entry. Immutable once approved except for
// the approve and delete operations.
type Transaction struct {
	ID          uuid.UUID
	Date        string // canonical YYYY-MM-DD
	Type        TransactionType
	Description string
	Amount      decimal.Decimal
	Approved    bool
	CreatedBy   string
	CreatedAt   time.Time
}

// NewTransaction constructs a Transaction with a generated ID and current
// creation timestamp. The date is normalized to its 10-char date portion.
func NewTransaction(date string, typ TransactionType, description string, amount decimal.Decimal, approved bool, createdBy string) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		Date:        NormalizeDate(date),
		Type:        typ,
		Description: description,
		Amount:      amount,
		Approved:    approved,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now().UTC(),
	}
}

// NormalizeDate truncates any date representation to its YYYY-MM-DD portion.
// ISO dates sort correctly as plain strings, which the stores rely on.
func NormalizeDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
