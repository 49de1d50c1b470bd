package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	pkgcache "github.com/sitebooks/backend/pkg/cache"
	ledgerdomain "github.com/sitebooks/backend/services/ledger/domain"
	"github.com/sitebooks/backend/services/ledger/domain/models"
	"github.com/sitebooks/backend/services/ledger/domain/repositories"
)

// LedgerService orchestrates bookkeeping across transactions, inventory,
// and projects. Event publishing is handled by the store layer (outbox
// pattern); this layer validates inputs, delegates to the store, and keeps
// the dashboard cache coherent by invalidating it on every write.
type LedgerService struct {
	store repositories.Store
	cache *pkgcache.OverviewCache
}

// NewLedgerService returns a LedgerService wired with the given store and
// overview cache. The cache may be nil.
func NewLedgerService(store repositories.Store, cache *pkgcache.OverviewCache) *LedgerService {
	return &LedgerService{store: store, cache: cache}
}

// CreateTransaction validates and persists a manual ledger entry.
func (s *LedgerService) CreateTransaction(ctx context.Context, date string, typ models.TransactionType, description string, amount decimal.Decimal, approved bool, createdBy string) (*models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount %s", ledgerdomain.ErrInvalidAmount, amount)
	}

	t := models.NewTransaction(date, typ, description, amount, approved, createdBy)
	if err := s.store.CreateTransaction(ctx, t); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	s.invalidateOverview(ctx)
	return t, nil
}

// ListTransactions returns all ledger entries, newest date first.
func (s *LedgerService) ListTransactions(ctx context.Context) ([]*models.Transaction, error) {
	txs, err := s.store.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

// GetTransaction returns a single ledger entry by id.
func (s *LedgerService) GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	t, err := s.store.GetTransaction(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// ApproveTransaction marks a ledger entry approved. Approving an already
// approved entry is a no-op that still returns the entry.
func (s *LedgerService) ApproveTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	t, err := s.store.ApproveTransaction(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("approve transaction: %w", err)
	}
	s.invalidateOverview(ctx)
	return t, nil
}

// DeleteTransaction removes a ledger entry.
// Returns ErrTransactionNotFound if no matching entry exists.
func (s *LedgerService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	s.invalidateOverview(ctx)
	return nil
}

// CreateItem registers an inventory item with its opening stock level.
func (s *LedgerService) CreateItem(ctx context.Context, name string, quantity decimal.Decimal, unit string, minLevel decimal.Decimal) (*models.InventoryItem, error) {
	if quantity.IsNegative() || minLevel.IsNegative() {
		return nil, fmt.Errorf("%w: stock levels cannot be negative", ledgerdomain.ErrInvalidAmount)
	}

	item := models.NewInventoryItem(name, quantity, unit, minLevel)
	if err := s.store.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.invalidateOverview(ctx)
	return item, nil
}

// ListItems returns all inventory items, most recently updated first.
func (s *LedgerService) ListItems(ctx context.Context) ([]*models.InventoryItem, error) {
	items, err := s.store.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// GetItem returns a single inventory item by id.
func (s *LedgerService) GetItem(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	item, err := s.store.GetItem(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// DeleteItem removes an item together with its movement history.
// Returns ErrItemNotFound if no matching item exists.
func (s *LedgerService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	s.invalidateOverview(ctx)
	return nil
}

// ListMovements returns all stock movements across items, newest date first.
func (s *LedgerService) ListMovements(ctx context.Context) ([]*models.Movement, error) {
	mvs, err := s.store.ListMovements(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return mvs, nil
}

// RecordReceipt books incoming stock: the item's quantity grows, a
// movement is appended, and the purchase lands in the ledger as an expense.
func (s *LedgerService) RecordReceipt(ctx context.Context, p models.ReceiptParams) (*repositories.StockChange, error) {
	if !p.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: quantity %s", ledgerdomain.ErrInvalidAmount, p.Quantity)
	}
	if !p.UnitPrice.IsPositive() {
		return nil, fmt.Errorf("%w: unit price %s", ledgerdomain.ErrInvalidAmount, p.UnitPrice)
	}

	change, err := s.store.RecordReceipt(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("record receipt: %w", err)
	}

	s.invalidateOverview(ctx)
	return change, nil
}

// RecordIssue books outgoing stock: the item's quantity shrinks (floored
// at zero), a movement is appended, and the consumption lands in the
// ledger as an expense.
func (s *LedgerService) RecordIssue(ctx context.Context, p models.IssueParams) (*repositories.StockChange, error) {
	if !p.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: quantity %s", ledgerdomain.ErrInvalidAmount, p.Quantity)
	}
	if !p.UnitPrice.IsPositive() {
		return nil, fmt.Errorf("%w: unit price %s", ledgerdomain.ErrInvalidAmount, p.UnitPrice)
	}

	change, err := s.store.RecordIssue(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("record issue: %w", err)
	}

	s.invalidateOverview(ctx)
	return change, nil
}

// CreateProject registers a construction project.
func (s *LedgerService) CreateProject(ctx context.Context, name, location string, floors, units int) (*models.Project, error) {
	project := models.NewProject(name, location, floors, units)
	if err := s.store.CreateProject(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.invalidateOverview(ctx)
	return project, nil
}

// ListProjects returns all projects, newest first.
func (s *LedgerService) ListProjects(ctx context.Context) ([]*models.Project, error) {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// DeleteProject removes a project and all its booked costs and sales.
// Returns ErrProjectNotFound if no matching project exists.
func (s *LedgerService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteProject(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	s.invalidateOverview(ctx)
	return nil
}

// CreateProjectCost books a cost against a project and mirrors it into the
// ledger as an expense. The project must exist.
func (s *LedgerService) CreateProjectCost(ctx context.Context, p models.CostParams) (*repositories.CostEntry, error) {
	if !p.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount %s", ledgerdomain.ErrInvalidAmount, p.Amount)
	}

	entry, err := s.store.CreateProjectCost(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create project cost: %w", err)
	}

	s.invalidateOverview(ctx)
	return entry, nil
}

// CreateProjectSale books a unit sale against a project and mirrors it
// into the ledger as revenue. The project must exist.
func (s *LedgerService) CreateProjectSale(ctx context.Context, p models.SaleParams) (*repositories.SaleEntry, error) {
	if !p.Price.IsPositive() {
		return nil, fmt.Errorf("%w: price %s", ledgerdomain.ErrInvalidAmount, p.Price)
	}

	entry, err := s.store.CreateProjectSale(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create project sale: %w", err)
	}

	s.invalidateOverview(ctx)
	return entry, nil
}

// Overview returns the full dashboard snapshot using a read-through cache:
//  1. Check Redis first.
//  2. On miss (or cache error) query the store.
//  3. Warm the cache with the store result.
func (s *LedgerService) Overview(ctx context.Context) (*models.Overview, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err == nil {
			return cached, nil
		} else if !errors.Is(err, redis.Nil) {
			// Cache error; fall through to the store.
			_ = err
		}
	}

	ov, err := s.store.Overview(ctx)
	if err != nil {
		return nil, fmt.Errorf("overview: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, ov)
	}
	return ov, nil
}

// ProjectOverview returns one project with its costs and sales.
func (s *LedgerService) ProjectOverview(ctx context.Context, id uuid.UUID) (*models.ProjectOverview, error) {
	ov, err := s.store.ProjectOverview(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("project overview: %w", err)
	}
	return ov, nil
}

func (s *LedgerService) invalidateOverview(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Invalidate(ctx)
}
