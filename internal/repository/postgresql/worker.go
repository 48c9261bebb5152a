package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/opl-logistica/backoffice-go/internal/domain/worker"
	"github.com/opl-logistica/backoffice-go/internal/pkg/database"
)

type workerRepository struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepository{db: db}
}

const workerColumns = `
	w.id, w.name, w.tax_id, w.kind, w.active, w.cash_shift_tracked,
	w.position, w.warehouse, w.base_salary, w.overtime_rate, w.hire_date,
	w.pension_fund_id, w.health_insurer_id,
	w.dependents_count, w.has_family_allowance,
	w.created_at, w.updated_at,
	pf.name, pf.rate_percent, hi.name, hi.rate_percent
`

const workerJoins = `
	LEFT JOIN pension_funds pf ON pf.id = w.pension_fund_id
	LEFT JOIN health_insurers hi ON hi.id = w.health_insurer_id
`

func scanWorker(row pgx.Row) (worker.Worker, error) {
	var w worker.Worker
	err := row.Scan(
		&w.ID, &w.Name, &w.TaxID, &w.Kind, &w.Active, &w.CashShiftTracked,
		&w.Position, &w.Warehouse, &w.BaseSalary, &w.OvertimeRate, &w.HireDate,
		&w.PensionFundID, &w.HealthInsurerID,
		&w.DependentsCount, &w.HasFamilyAllowance,
		&w.CreatedAt, &w.UpdatedAt,
		&w.PensionFundName, &w.PensionFundRate, &w.HealthInsurerName, &w.HealthInsurerRate,
	)
	return w, err
}

func (r *workerRepository) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	if w.ID == "" {
		w.ID = uuid.New().String()
	}

	query := `
		INSERT INTO workers (
			id, name, tax_id, kind, active, cash_shift_tracked,
			position, warehouse, base_salary, overtime_rate, hire_date,
			pension_fund_id, health_insurer_id,
			dependents_count, has_family_allowance
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := q.Exec(ctx, query,
		w.ID, w.Name, w.TaxID, w.Kind, w.Active, w.CashShiftTracked,
		w.Position, w.Warehouse, w.BaseSalary, w.OvertimeRate, w.HireDate,
		w.PensionFundID, w.HealthInsurerID,
		w.DependentsCount, w.HasFamilyAllowance,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_workers_name") {
			return worker.Worker{}, worker.ErrWorkerNameExists
		}
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return r.GetByID(ctx, w.ID)
}

func (r *workerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers w ` + workerJoins + ` WHERE w.id = $1`

	w, err := scanWorker(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}
	return w, nil
}

func (r *workerRepository) List(ctx context.Context, filter worker.WorkerFilter) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers w ` + workerJoins
	var conds []string
	var args []interface{}

	if filter.Kind != nil {
		args = append(args, *filter.Kind)
		conds = append(conds, fmt.Sprintf("w.kind = $%d", len(args)))
	}
	if filter.ActiveOnly {
		conds = append(conds, "w.active = TRUE")
	}
	if filter.CashShiftTracked != nil {
		args = append(args, *filter.CashShiftTracked)
		conds = append(conds, fmt.Sprintf("w.cash_shift_tracked = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY w.name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}
	return workers, rows.Err()
}

func (r *workerRepository) Update(ctx context.Context, req worker.UpdateWorkerRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET name = COALESCE($2, name),
			tax_id = COALESCE($3, tax_id),
			cash_shift_tracked = COALESCE($4, cash_shift_tracked),
			position = COALESCE($5, position),
			warehouse = COALESCE($6, warehouse),
			base_salary = COALESCE($7, base_salary),
			overtime_rate = COALESCE($8, overtime_rate),
			hire_date = COALESCE($9, hire_date),
			pension_fund_id = COALESCE($10, pension_fund_id),
			health_insurer_id = COALESCE($11, health_insurer_id),
			dependents_count = COALESCE($12, dependents_count),
			has_family_allowance = COALESCE($13, has_family_allowance),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		req.ID, req.Name, req.TaxID, req.CashShiftTracked,
		req.Position, req.Warehouse, req.BaseSalary, req.OvertimeRate, req.HireDate,
		req.PensionFundID, req.HealthInsurerID,
		req.DependentsCount, req.HasFamilyAllowance,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_workers_name") {
			return worker.ErrWorkerNameExists
		}
		return fmt.Errorf("failed to update worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}
	return nil
}

func (r *workerRepository) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	// Archiving also drops the worker out of the cash-shift filters.
	query := `
		UPDATE workers
		SET active = $2,
			cash_shift_tracked = CASE WHEN $2 THEN cash_shift_tracked ELSE FALSE END,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, active)
	if err != nil {
		return fmt.Errorf("failed to set worker active state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}
	return nil
}
