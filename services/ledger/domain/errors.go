package domain

import "errors"

// Sentinel errors for the ledger domain. Use errors.Is() to check these.
var (
	// ErrTransactionNotFound indicates the requested ledger transaction does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrItemNotFound indicates the requested inventory item does not exist.
	ErrItemNotFound = errors.New("inventory item not found")

	// ErrProjectNotFound indicates the requested project does not exist.
	ErrProjectNotFound = errors.New("project not found")

	// ErrInvalidAmount indicates a quantity, price, or amount that must be
	// positive was zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrStoreUnavailable indicates no storage backend is configured.
	// Practically unreachable: the in-memory store is always applicable.
	ErrStoreUnavailable = errors.New("no storage backend configured")
)
