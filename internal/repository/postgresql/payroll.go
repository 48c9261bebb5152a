package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/opl-logistica/backoffice-go/internal/domain/payroll"
	"github.com/opl-logistica/backoffice-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) Upsert(ctx context.Context, rec *payroll.PayrollRecord) error {
	q := GetQuerier(ctx, r.db)

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	breakdown, err := json.Marshal(rec.Breakdown)
	if err != nil {
		return fmt.Errorf("failed to marshal breakdown: %w", err)
	}

	query := `
		INSERT INTO payroll_records (
			id, worker_id, period, net_pay, total_earnings, total_deductions,
			tax_amount, shortfall_amount, breakdown
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (worker_id, period) DO UPDATE SET
			net_pay = EXCLUDED.net_pay,
			total_earnings = EXCLUDED.total_earnings,
			total_deductions = EXCLUDED.total_deductions,
			tax_amount = EXCLUDED.tax_amount,
			shortfall_amount = EXCLUDED.shortfall_amount,
			breakdown = EXCLUDED.breakdown,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		rec.ID, rec.WorkerID, rec.Period,
		rec.NetPay, rec.TotalEarnings, rec.TotalDeductions,
		rec.TaxAmount, rec.ShortfallAmount, breakdown,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert payroll record: %w", err)
	}
	return nil
}

const payrollColumns = `
	p.id, p.worker_id, p.period, p.net_pay, p.total_earnings,
	p.total_deductions, p.tax_amount, p.shortfall_amount, p.breakdown,
	p.created_at, p.updated_at, w.name, w.tax_id
`

func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	var breakdown []byte
	err := row.Scan(
		&rec.ID, &rec.WorkerID, &rec.Period, &rec.NetPay, &rec.TotalEarnings,
		&rec.TotalDeductions, &rec.TaxAmount, &rec.ShortfallAmount, &breakdown,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.WorkerName, &rec.WorkerTaxID,
	)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	if err := json.Unmarshal(breakdown, &rec.Breakdown); err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to unmarshal breakdown: %w", err)
	}
	return rec, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (*payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records p
		JOIN workers w ON w.id = p.worker_id
		WHERE p.id = $1
	`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, payroll.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get payroll record: %w", err)
	}
	return &rec, nil
}

func (r *payrollRepository) GetByWorkerPeriod(ctx context.Context, workerID, period string) (*payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records p
		JOIN workers w ON w.id = p.worker_id
		WHERE p.worker_id = $1 AND p.period = $2
	`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, workerID, period))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, payroll.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get payroll record: %w", err)
	}
	return &rec, nil
}

func (r *payrollRepository) ListByPeriod(ctx context.Context, period string) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records p
		JOIN workers w ON w.id = p.worker_id
		WHERE p.period = $1
		ORDER BY w.name ASC
	`

	rows, err := q.Query(ctx, query, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *payrollRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRecordNotFound
	}
	return nil
}
