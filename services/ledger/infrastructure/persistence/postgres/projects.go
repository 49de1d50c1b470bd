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

// CreateProject inserts a new project.
func (s *Store) CreateProject(ctx context.Context, project *models.Project) error {
	_, err := s.db.DB().ExecContext(ctx, `
		INSERT INTO projects (id, name, location, floors, units, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		project.ID, project.Name, project.Location, project.Floors, project.Units, project.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// ListProjects returns all projects, most recently created first.
func (s *Store) ListProjects(ctx context.Context) ([]*models.Project, error) {
	rows, err := s.db.DB().QueryContext(ctx, `
		SELECT id, name, location, floors, units, created_at
		FROM projects
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []*models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetProject returns one project or ErrProjectNotFound.
func (s *Store) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	row := s.db.DB().QueryRowContext(ctx, `
		SELECT id, name, location, floors, units, created_at
		FROM projects WHERE id = $1`, id)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledgerdomain.ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

// DeleteProject removes the project's sales, then its costs, then the
// project itself as one atomic unit. ErrProjectNotFound when absent.
func (s *Store) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		var exists bool
		if err := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("check project: %w", err)
		}
		if !exists {
			return ledgerdomain.ErrProjectNotFound
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM project_sales WHERE project_id = $1`, id); err != nil {
			return fmt.Errorf("delete project sales: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM project_costs WHERE project_id = $1`, id); err != nil {
			return fmt.Errorf("delete project costs: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete project: %w", err)
		}
		return nil
	})
}

// CreateProjectCost inserts the cost and its derived expense transaction atomically.
func (s *Store) CreateProjectCost(ctx context.Context, p models.CostParams) (*repositories.CostEntry, error) {
	var (
		cost     *models.ProjectCost
		ledgerTx *models.Transaction
	)
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		name, err := projectName(ctx, tx, p.ProjectID)
		if err != nil {
			return err
		}
		p.ProjectName = name
		cost, ledgerTx = models.BuildProjectCost(p)
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO project_costs (id, project_id, type, amount, date, note, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			cost.ID, cost.ProjectID, string(cost.Type), cost.Amount.String(), cost.Date, cost.Note, cost.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert project cost: %w", err)
		}
		if err := insertTransactionTx(ctx, tx, ledgerTx); err != nil {
			return err
		}
		event := domainevents.ProjectCostCreatedEvent{
			EventID:       uuid.New(),
			Version:       1,
			CostID:        cost.ID,
			ProjectID:     cost.ProjectID,
			CostType:      string(cost.Type),
			Amount:        cost.Amount.String(),
			TransactionID: ledgerTx.ID,
			OccurredAt:    time.Now().UTC(),
		}
		if err := s.publishTx(tx, domainevents.TopicProjectCostCreated, event, event.EventID.String()); err != nil {
			return fmt.Errorf("publish cost created: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &repositories.CostEntry{Cost: cost, Transaction: ledgerTx}, nil
}

// CreateProjectSale inserts the sale and its derived revenue transaction atomically.
func (s *Store) CreateProjectSale(ctx context.Context, p models.SaleParams) (*repositories.SaleEntry, error) {
	var (
		sale     *models.ProjectSale
		ledgerTx *models.Transaction
	)
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		name, err := projectName(ctx, tx, p.ProjectID)
		if err != nil {
			return err
		}
		p.ProjectName = name
		sale, ledgerTx = models.BuildProjectSale(p)
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO project_sales (id, project_id, unit_no, buyer, price, date, terms, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			sale.ID, sale.ProjectID, sale.UnitNo, sale.Buyer, sale.Price.String(), sale.Date, sale.Terms, sale.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert project sale: %w", err)
		}
		if err := insertTransactionTx(ctx, tx, ledgerTx); err != nil {
			return err
		}
		event := domainevents.ProjectSaleCreatedEvent{
			EventID:       uuid.New(),
			Version:       1,
			SaleID:        sale.ID,
			ProjectID:     sale.ProjectID,
			UnitNo:        sale.UnitNo,
			Price:         sale.Price.String(),
			TransactionID: ledgerTx.ID,
			OccurredAt:    time.Now().UTC(),
		}
		if err := s.publishTx(tx, domainevents.TopicProjectSaleCreated, event, event.EventID.String()); err != nil {
			return fmt.Errorf("publish sale created: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &repositories.SaleEntry{Sale: sale, Transaction: ledgerTx}, nil
}

// ListProjectCosts returns all costs, date descending.
func (s *Store) ListProjectCosts(ctx context.Context) ([]*models.ProjectCost, error) {
	return s.queryCosts(ctx, `
		SELECT id, project_id, type, amount, date, note, created_at
		FROM project_costs
		ORDER BY date DESC, created_at DESC`)
}

// ListProjectSales returns all sales, date descending.
func (s *Store) ListProjectSales(ctx context.Context) ([]*models.ProjectSale, error) {
	return s.querySales(ctx, `
		SELECT id, project_id, unit_no, buyer, price, date, terms, created_at
		FROM project_sales
		ORDER BY date DESC, created_at DESC`)
}

// ProjectOverview returns one project plus only its costs and sales.
func (s *Store) ProjectOverview(ctx context.Context, id uuid.UUID) (*models.ProjectOverview, error) {
	project, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	costs, err := s.queryCosts(ctx, `
		SELECT id, project_id, type, amount, date, note, created_at
		FROM project_costs WHERE project_id = $1
		ORDER BY date DESC, created_at DESC`, id)
	if err != nil {
		return nil, err
	}
	sales, err := s.querySales(ctx, `
		SELECT id, project_id, unit_no, buyer, price, date, terms, created_at
		FROM project_sales WHERE project_id = $1
		ORDER BY date DESC, created_at DESC`, id)
	if err != nil {
		return nil, err
	}
	return &models.ProjectOverview{Project: project, Costs: costs, Sales: sales}, nil
}

func (s *Store) queryCosts(ctx context.Context, query string, args ...any) ([]*models.ProjectCost, error) {
	rows, err := s.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query project costs: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []*models.ProjectCost
	for rows.Next() {
		var (
			id, projectID   uuid.UUID
			typ             string
			amount          any
			date, createdAt any
			note            sql.NullString
		)
		if err := rows.Scan(&id, &projectID, &typ, &amount, &date, &note, &createdAt); err != nil {
			return nil, fmt.Errorf("scan project cost: %w", err)
		}
		out = append(out, &models.ProjectCost{
			ID:        id,
			ProjectID: projectID,
			Type:      models.CostType(typ),
			Amount:    toDecimal(amount),
			Date:      toDate(date),
			Note:      note.String,
			CreatedAt: toTime(createdAt),
		})
	}
	return out, rows.Err()
}

func (s *Store) querySales(ctx context.Context, query string, args ...any) ([]*models.ProjectSale, error) {
	rows, err := s.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query project sales: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []*models.ProjectSale
	for rows.Next() {
		var (
			id, projectID   uuid.UUID
			unitNo, buyer   string
			price           any
			date, createdAt any
			terms           sql.NullString
		)
		if err := rows.Scan(&id, &projectID, &unitNo, &buyer, &price, &date, &terms, &createdAt); err != nil {
			return nil, fmt.Errorf("scan project sale: %w", err)
		}
		out = append(out, &models.ProjectSale{
			ID:        id,
			ProjectID: projectID,
			UnitNo:    unitNo,
			Buyer:     buyer,
			Price:     toDecimal(price),
			Date:      toDate(date),
			Terms:     terms.String,
			CreatedAt: toTime(createdAt),
		})
	}
	return out, rows.Err()
}

func scanProject(r rowScanner) (*models.Project, error) {
	var (
		id              uuid.UUID
		name, location  string
		floors, units   int
		createdAt       any
	)
	if err := r.Scan(&id, &name, &location, &floors, &units, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}
	return &models.Project{
		ID:        id,
		Name:      name,
		Location:  location,
		Floors:    floors,
		Units:     units,
		CreatedAt: toTime(createdAt),
	}, nil
}

// projectName resolves the project's name within tx, or ErrProjectNotFound.
func projectName(ctx context.Context, tx *sql.Tx, id uuid.UUID) (string, error) {
	var name string
	err := tx.QueryRowContext(ctx, `SELECT name FROM projects WHERE id = $1`, id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ledgerdomain.ErrProjectNotFound
	}
	if err != nil {
		return "", fmt.Errorf("lookup project: %w", err)
	}
	return name, nil
}

// insertTransactionTx inserts a derived transaction within tx.
func insertTransactionTx(ctx context.Context, tx *sql.Tx, t *models.Transaction) error {
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO ledger_transactions (id, date, type, description, amount, approved, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		t.ID, t.Date, string(t.Type), t.Description, t.Amount.String(), t.Approved, t.CreatedBy, t.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert derived transaction: %w", err)
	}
	return nil
}
