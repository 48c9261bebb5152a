package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/opl-logistica/backoffice-go/internal/domain/settlement"
	"github.com/opl-logistica/backoffice-go/internal/pkg/database"
)

type settlementRepository struct {
	db *database.DB
}

func NewSettlementRepository(db *database.DB) settlement.SettlementRepository {
	return &settlementRepository{db: db}
}

const settlementColumns = `
	s.id, s.worker_id, s.date, s.warehouse, s.variance, s.advance_amount,
	s.cyl_5kg, s.cyl_11kg, s.cyl_15kg, s.cyl_45kg,
	s.cyl_cat5, s.cyl_cat15, s.cyl_ultra15,
	s.closed, s.created_at, s.updated_at, w.name
`

func scanSettlement(row pgx.Row) (settlement.ShiftSettlement, error) {
	var s settlement.ShiftSettlement
	err := row.Scan(
		&s.ID, &s.WorkerID, &s.Date, &s.Warehouse, &s.Variance, &s.AdvanceAmount,
		&s.Cylinders.C5, &s.Cylinders.C11, &s.Cylinders.C15, &s.Cylinders.C45,
		&s.Cylinders.Cat5, &s.Cylinders.Cat15, &s.Cylinders.Ultra15,
		&s.Closed, &s.CreatedAt, &s.UpdatedAt, &s.WorkerName,
	)
	return s, err
}

func (r *settlementRepository) Create(ctx context.Context, s settlement.ShiftSettlement) (settlement.ShiftSettlement, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	query := `
		INSERT INTO shift_settlements (
			id, worker_id, date, warehouse, variance, advance_amount,
			cyl_5kg, cyl_11kg, cyl_15kg, cyl_45kg,
			cyl_cat5, cyl_cat15, cyl_ultra15
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := q.Exec(ctx, query,
		s.ID, s.WorkerID, s.Date, s.Warehouse, s.Variance, s.AdvanceAmount,
		s.Cylinders.C5, s.Cylinders.C11, s.Cylinders.C15, s.Cylinders.C45,
		s.Cylinders.Cat5, s.Cylinders.Cat15, s.Cylinders.Ultra15,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_settlement_worker_date") {
			return settlement.ShiftSettlement{}, settlement.ErrSettlementExists
		}
		return settlement.ShiftSettlement{}, fmt.Errorf("failed to create settlement: %w", err)
	}

	return r.GetByID(ctx, s.ID)
}

func (r *settlementRepository) GetByID(ctx context.Context, id string) (settlement.ShiftSettlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + settlementColumns + `
		FROM shift_settlements s
		JOIN workers w ON w.id = s.worker_id
		WHERE s.id = $1
	`

	s, err := scanSettlement(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return settlement.ShiftSettlement{}, settlement.ErrSettlementNotFound
		}
		return settlement.ShiftSettlement{}, fmt.Errorf("failed to get settlement: %w", err)
	}
	return s, nil
}

func (r *settlementRepository) List(ctx context.Context, filter settlement.SettlementFilter) ([]settlement.ShiftSettlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + settlementColumns + `
		FROM shift_settlements s
		JOIN workers w ON w.id = s.worker_id
	`
	var conds []string
	var args []interface{}

	if filter.WorkerID != nil {
		args = append(args, *filter.WorkerID)
		conds = append(conds, fmt.Sprintf("s.worker_id = $%d", len(args)))
	}
	if filter.Warehouse != nil {
		args = append(args, *filter.Warehouse)
		conds = append(conds, fmt.Sprintf("s.warehouse = $%d", len(args)))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		conds = append(conds, fmt.Sprintf("s.date = $%d", len(args)))
	}
	if filter.Year != nil {
		args = append(args, *filter.Year)
		conds = append(conds, fmt.Sprintf("EXTRACT(YEAR FROM s.date) = $%d", len(args)))
	}
	if filter.Month != nil {
		args = append(args, *filter.Month)
		conds = append(conds, fmt.Sprintf("EXTRACT(MONTH FROM s.date) = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY s.date DESC, w.name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []settlement.ShiftSettlement
	for rows.Next() {
		s, err := scanSettlement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, s)
	}
	return settlements, rows.Err()
}

func (r *settlementRepository) Update(ctx context.Context, req settlement.UpdateSettlementRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_settlements
		SET variance = COALESCE($2, variance),
			advance_amount = COALESCE($3, advance_amount),
			cyl_5kg = COALESCE($4, cyl_5kg),
			cyl_11kg = COALESCE($5, cyl_11kg),
			cyl_15kg = COALESCE($6, cyl_15kg),
			cyl_45kg = COALESCE($7, cyl_45kg),
			cyl_cat5 = COALESCE($8, cyl_cat5),
			cyl_cat15 = COALESCE($9, cyl_cat15),
			cyl_ultra15 = COALESCE($10, cyl_ultra15),
			updated_at = NOW()
		WHERE id = $1 AND closed = FALSE
	`

	var c5, c11, c15, c45, cat5, cat15, ultra15 *int
	if req.Cylinders != nil {
		c5, c11, c15 = &req.Cylinders.C5, &req.Cylinders.C11, &req.Cylinders.C15
		c45, cat5 = &req.Cylinders.C45, &req.Cylinders.Cat5
		cat15, ultra15 = &req.Cylinders.Cat15, &req.Cylinders.Ultra15
	}

	tag, err := q.Exec(ctx, query,
		req.ID, req.Variance, req.AdvanceAmount,
		c5, c11, c15, c45, cat5, cat15, ultra15,
	)
	if err != nil {
		return fmt.Errorf("failed to update settlement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish a closed settlement from a missing one.
		var closed bool
		err := q.QueryRow(ctx, `SELECT closed FROM shift_settlements WHERE id = $1`, req.ID).Scan(&closed)
		if err == pgx.ErrNoRows {
			return settlement.ErrSettlementNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to check settlement state: %w", err)
		}
		return settlement.ErrSettlementClosed
	}
	return nil
}

func (r *settlementRepository) SetClosed(ctx context.Context, id string, closed bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE shift_settlements SET closed = $2, updated_at = NOW() WHERE id = $1`, id, closed)
	if err != nil {
		return fmt.Errorf("failed to set settlement closed state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return settlement.ErrSettlementNotFound
	}
	return nil
}

func (r *settlementRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_settlements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete settlement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return settlement.ErrSettlementNotFound
	}
	return nil
}

func (r *settlementRepository) SumShortfall(ctx context.Context, workerID string, year, month int) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(CASE WHEN variance < 0 THEN -variance ELSE 0 END), 0)
		FROM shift_settlements
		WHERE worker_id = $1
		  AND EXTRACT(YEAR FROM date) = $2
		  AND EXTRACT(MONTH FROM date) = $3
	`

	var shortfall decimal.Decimal
	if err := q.QueryRow(ctx, query, workerID, year, month).Scan(&shortfall); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum shortfall: %w", err)
	}
	return shortfall, nil
}

func (r *settlementRepository) MonthlyActivity(ctx context.Context, workerID string, year, month int) (settlement.MonthlyActivity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(cyl_5kg), 0), COALESCE(SUM(cyl_11kg), 0),
			COALESCE(SUM(cyl_15kg), 0), COALESCE(SUM(cyl_45kg), 0),
			COALESCE(SUM(cyl_cat5), 0), COALESCE(SUM(cyl_cat15), 0),
			COALESCE(SUM(cyl_ultra15), 0),
			COALESCE(SUM(CASE WHEN variance < 0 THEN -variance ELSE 0 END), 0),
			COALESCE(SUM(advance_amount), 0)
		FROM shift_settlements
		WHERE worker_id = $1
		  AND EXTRACT(YEAR FROM date) = $2
		  AND EXTRACT(MONTH FROM date) = $3
	`

	activity := settlement.MonthlyActivity{WorkerID: workerID, Year: year, Month: month}
	err := q.QueryRow(ctx, query, workerID, year, month).Scan(
		&activity.Cylinders.C5, &activity.Cylinders.C11,
		&activity.Cylinders.C15, &activity.Cylinders.C45,
		&activity.Cylinders.Cat5, &activity.Cylinders.Cat15,
		&activity.Cylinders.Ultra15,
		&activity.Shortfall, &activity.Advances,
	)
	if err != nil {
		return settlement.MonthlyActivity{}, fmt.Errorf("failed to aggregate monthly activity: %w", err)
	}
	return activity, nil
}
