package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/sitebooks/backend/services/ledger/domain/models"
)

// StockChange is the result of a receipt or issue: the updated item, the
// appended movement, and the derived ledger transaction.
type StockChange struct {
	Item        *models.InventoryItem
	Movement    *models.Movement
	Transaction *models.Transaction
}

// CostEntry is the result of booking a project cost.
type CostEntry struct {
	Cost        *models.ProjectCost
	Transaction *models.Transaction
}

// SaleEntry is the result of booking a project sale.
type SaleEntry struct {
	Sale        *models.ProjectSale
	Transaction *models.Transaction
}

// Store is the single storage capability for the ledger context. The domain
// layer owns this interface; infrastructure provides a relational
// implementation (postgres) and an in-memory fallback (memory), selected
// once at startup.
//
// Compound operations (RecordReceipt, RecordIssue, CreateProjectCost,
// CreateProjectSale, DeleteProject) are atomic: all writes succeed together
// or none persist.
//
// Ordering contracts:
//   - transactions: date desc, created_at desc tiebreak
//   - items: updated_at desc
//   - movements, costs, sales: date desc
//   - projects: created_at desc
type Store interface {
	// Ledger transactions.
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	ListTransactions(ctx context.Context) ([]*models.Transaction, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	// ApproveTransaction flips approved to true. Idempotent; returns
	// ErrTransactionNotFound when the id does not exist.
	ApproveTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	// DeleteTransaction is existence-checked: ErrTransactionNotFound when absent.
	DeleteTransaction(ctx context.Context, id uuid.UUID) error

	// Inventory.
	CreateItem(ctx context.Context, item *models.InventoryItem) error
	ListItems(ctx context.Context) ([]*models.InventoryItem, error)
	GetItem(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error)
	// DeleteItem cascades to the item's movements. ErrItemNotFound when absent.
	DeleteItem(ctx context.Context, id uuid.UUID) error
	ListMovements(ctx context.Context) ([]*models.Movement, error)
	// RecordReceipt atomically increases stock, appends an "in" movement,
	// and inserts the derived expense transaction.
	RecordReceipt(ctx context.Context, p models.ReceiptParams) (*StockChange, error)
	// RecordIssue atomically decreases stock (floored at zero), appends an
	// "out" movement, and inserts the derived expense transaction.
	RecordIssue(ctx context.Context, p models.IssueParams) (*StockChange, error)

	// Projects.
	CreateProject(ctx context.Context, project *models.Project) error
	ListProjects(ctx context.Context) ([]*models.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error)
	// DeleteProject removes the project and all its costs and sales as one
	// atomic unit. ErrProjectNotFound when absent.
	DeleteProject(ctx context.Context, id uuid.UUID) error
	CreateProjectCost(ctx context.Context, p models.CostParams) (*CostEntry, error)
	CreateProjectSale(ctx context.Context, p models.SaleParams) (*SaleEntry, error)
	ListProjectCosts(ctx context.Context) ([]*models.ProjectCost, error)
	ListProjectSales(ctx context.Context) ([]*models.ProjectSale, error)

	// Snapshots.
	Overview(ctx context.Context) (*models.Overview, error)
	ProjectOverview(ctx context.Context, id uuid.UUID) (*models.ProjectOverview, error)
}
