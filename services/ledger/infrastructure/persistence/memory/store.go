// Package memory is the fallback Store used when no database is configured.
// One map per entity type, keyed by id, owned by the Store object for the
// process lifetime. A single mutex guards every operation, which also makes
// the compound operations atomic by construction: after the precondition
// check no cross-step failure is possible.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	ledgerdomain "github.com/sitebooks/backend/services/ledger/domain"
	"github.com/sitebooks/backend/services/ledger/domain/models"
	"github.com/sitebooks/backend/services/ledger/domain/repositories"
)

// Store implements repositories.Store entirely in memory.
type Store struct {
	mu           sync.Mutex
	transactions map[uuid.UUID]*models.Transaction
	items        map[uuid.UUID]*models.InventoryItem
	movements    map[uuid.UUID]*models.Movement
	projects     map[uuid.UUID]*models.Project
	costs        map[uuid.UUID]*models.ProjectCost
	sales        map[uuid.UUID]*models.ProjectSale
}

// NewStore returns an empty in-memory Store.
func NewStore() *Store {
	return &Store{
		transactions: make(map[uuid.UUID]*models.Transaction),
		items:        make(map[uuid.UUID]*models.InventoryItem),
		movements:    make(map[uuid.UUID]*models.Movement),
		projects:     make(map[uuid.UUID]*models.Project),
		costs:        make(map[uuid.UUID]*models.ProjectCost),
		sales:        make(map[uuid.UUID]*models.ProjectSale),
	}
}

var _ repositories.Store = (*Store)(nil)

// --- ledger transactions ---

func (s *Store) CreateTransaction(_ context.Context, tx *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *tx
	s.transactions[tx.ID] = &cp
	return nil
}

func (s *Store) ListTransactions(_ context.Context) ([]*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedTransactions(), nil
}

func (s *Store) GetTransaction(_ context.Context, id uuid.UUID) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.transactions[id]
	if !ok {
		return nil, ledgerdomain.ErrTransactionNotFound
	}
	cp := *tx
	return &cp, nil
}

func (s *Store) ApproveTransaction(_ context.Context, id uuid.UUID) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.transactions[id]
	if !ok {
		return nil, ledgerdomain.ErrTransactionNotFound
	}
	tx.Approved = true
	cp := *tx
	return &cp, nil
}

func (s *Store) DeleteTransaction(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[id]; !ok {
		return ledgerdomain.ErrTransactionNotFound
	}
	delete(s.transactions, id)
	return nil
}

// --- inventory ---

func (s *Store) CreateItem(_ context.Context, item *models.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *item
	s.items[item.ID] = &cp
	return nil
}

func (s *Store) ListItems(_ context.Context) ([]*models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedItems(), nil
}

func (s *Store) GetItem(_ context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, ledgerdomain.ErrItemNotFound
	}
	cp := *item
	return &cp, nil
}

// DeleteItem cascades to the item's movements; derived transactions stay.
func (s *Store) DeleteItem(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return ledgerdomain.ErrItemNotFound
	}
	delete(s.items, id)
	for mvID, mv := range s.movements {
		if mv.ItemID == id {
			delete(s.movements, mvID)
		}
	}
	return nil
}

func (s *Store) ListMovements(_ context.Context) ([]*models.Movement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedMovements(), nil
}

func (s *Store) RecordReceipt(_ context.Context, p models.ReceiptParams) (*repositories.StockChange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[p.ItemID]
	if !ok {
		return nil, ledgerdomain.ErrItemNotFound
	}

	mv, tx := models.ApplyReceipt(item, p)
	s.movements[mv.ID] = mv
	s.transactions[tx.ID] = tx

	itemCp, mvCp, txCp := *item, *mv, *tx
	return &repositories.StockChange{Item: &itemCp, Movement: &mvCp, Transaction: &txCp}, nil
}

func (s *Store) RecordIssue(_ context.Context, p models.IssueParams) (*repositories.StockChange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[p.ItemID]
	if !ok {
		return nil, ledgerdomain.ErrItemNotFound
	}

	mv, tx := models.ApplyIssue(item, p)
	s.movements[mv.ID] = mv
	s.transactions[tx.ID] = tx

	itemCp, mvCp, txCp := *item, *mv, *tx
	return &repositories.StockChange{Item: &itemCp, Movement: &mvCp, Transaction: &txCp}, nil
}

// --- projects ---

func (s *Store) CreateProject(_ context.Context, project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *project
	s.projects[project.ID] = &cp
	return nil
}

func (s *Store) ListProjects(_ context.Context) ([]*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedProjects(), nil
}

func (s *Store) GetProject(_ context.Context, id uuid.UUID) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, ok := s.projects[id]
	if !ok {
		return nil, ledgerdomain.ErrProjectNotFound
	}
	cp := *project
	return &cp, nil
}

// DeleteProject removes the project's sales, then its costs, then the project.
func (s *Store) DeleteProject(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[id]; !ok {
		return ledgerdomain.ErrProjectNotFound
	}
	for saleID, sale := range s.sales {
		if sale.ProjectID == id {
			delete(s.sales, saleID)
		}
	}
	for costID, cost := range s.costs {
		if cost.ProjectID == id {
			delete(s.costs, costID)
		}
	}
	delete(s.projects, id)
	return nil
}

func (s *Store) CreateProjectCost(_ context.Context, p models.CostParams) (*repositories.CostEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[p.ProjectID]
	if !ok {
		return nil, ledgerdomain.ErrProjectNotFound
	}
	p.ProjectName = project.Name

	cost, tx := models.BuildProjectCost(p)
	s.costs[cost.ID] = cost
	s.transactions[tx.ID] = tx

	costCp, txCp := *cost, *tx
	return &repositories.CostEntry{Cost: &costCp, Transaction: &txCp}, nil
}

func (s *Store) CreateProjectSale(_ context.Context, p models.SaleParams) (*repositories.SaleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[p.ProjectID]
	if !ok {
		return nil, ledgerdomain.ErrProjectNotFound
	}
	p.ProjectName = project.Name

	sale, tx := models.BuildProjectSale(p)
	s.sales[sale.ID] = sale
	s.transactions[tx.ID] = tx

	saleCp, txCp := *sale, *tx
	return &repositories.SaleEntry{Sale: &saleCp, Transaction: &txCp}, nil
}

func (s *Store) ListProjectCosts(_ context.Context) ([]*models.ProjectCost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedCosts(nil), nil
}

func (s *Store) ListProjectSales(_ context.Context) ([]*models.ProjectSale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedSales(nil), nil
}

// --- snapshots ---

func (s *Store) Overview(_ context.Context) (*models.Overview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &models.Overview{
		Transactions: s.sortedTransactions(),
		Items:        s.sortedItems(),
		Movements:    s.sortedMovements(),
		Projects:     s.sortedProjects(),
		Costs:        s.sortedCosts(nil),
		Sales:        s.sortedSales(nil),
	}, nil
}

func (s *Store) ProjectOverview(_ context.Context, id uuid.UUID) (*models.ProjectOverview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, ok := s.projects[id]
	if !ok {
		return nil, ledgerdomain.ErrProjectNotFound
	}
	cp := *project
	return &models.ProjectOverview{
		Project: &cp,
		Costs:   s.sortedCosts(&id),
		Sales:   s.sortedSales(&id),
	}, nil
}

// --- ordering (callers hold the mutex) ---

func (s *Store) sortedTransactions() []*models.Transaction {
	out := make([]*models.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		cp := *tx
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *Store) sortedItems() []*models.InventoryItem {
	out := make([]*models.InventoryItem, 0, len(s.items))
	for _, item := range s.items {
		cp := *item
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

func (s *Store) sortedMovements() []*models.Movement {
	out := make([]*models.Movement, 0, len(s.movements))
	for _, mv := range s.movements {
		cp := *mv
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *Store) sortedProjects() []*models.Project {
	out := make([]*models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *Store) sortedCosts(projectID *uuid.UUID) []*models.ProjectCost {
	out := make([]*models.ProjectCost, 0, len(s.costs))
	for _, c := range s.costs {
		if projectID != nil && c.ProjectID != *projectID {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *Store) sortedSales(projectID *uuid.UUID) []*models.ProjectSale {
	out := make([]*models.ProjectSale, 0, len(s.sales))
	for _, sale := range s.sales {
		if projectID != nil && sale.ProjectID != *projectID {
			continue
		}
		cp := *sale
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
