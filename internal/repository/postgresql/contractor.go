package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/opl-logistica/backoffice-go/internal/domain/contractor"
	"github.com/opl-logistica/backoffice-go/internal/pkg/database"
)

type contractorRepository struct {
	db *database.DB
}

func NewContractorRepository(db *database.DB) contractor.ContractorRepository {
	return &contractorRepository{db: db}
}

// ========== TARIFF ==========

func (r *contractorRepository) GetTariff(ctx context.Context) (*contractor.CommissionTariff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, rate_5kg, rate_11kg, rate_15kg, rate_45kg,
			   rate_cat5, rate_cat15, rate_ultra15, updated_at
		FROM commission_tariffs
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var t contractor.CommissionTariff
	err := q.QueryRow(ctx, query).Scan(
		&t.ID, &t.Rate5, &t.Rate11, &t.Rate15, &t.Rate45,
		&t.RateCat5, &t.RateCat15, &t.RateUltra15, &t.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			// No tariff configured yet: everything prices to zero.
			return &contractor.CommissionTariff{}, nil
		}
		return nil, fmt.Errorf("failed to get tariff: %w", err)
	}
	return &t, nil
}

func (r *contractorRepository) UpsertTariff(ctx context.Context, tariff *contractor.CommissionTariff) error {
	q := GetQuerier(ctx, r.db)

	if tariff.ID == "" {
		tariff.ID = uuid.New().String()
	}

	query := `
		INSERT INTO commission_tariffs (
			id, rate_5kg, rate_11kg, rate_15kg, rate_45kg,
			rate_cat5, rate_cat15, rate_ultra15
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			rate_5kg = EXCLUDED.rate_5kg,
			rate_11kg = EXCLUDED.rate_11kg,
			rate_15kg = EXCLUDED.rate_15kg,
			rate_45kg = EXCLUDED.rate_45kg,
			rate_cat5 = EXCLUDED.rate_cat5,
			rate_cat15 = EXCLUDED.rate_cat15,
			rate_ultra15 = EXCLUDED.rate_ultra15,
			updated_at = NOW()
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		tariff.ID, tariff.Rate5, tariff.Rate11, tariff.Rate15, tariff.Rate45,
		tariff.RateCat5, tariff.RateCat15, tariff.RateUltra15,
	).Scan(&tariff.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert tariff: %w", err)
	}
	return nil
}

// ========== PAYMENTS ==========

func (r *contractorRepository) UpsertPayment(ctx context.Context, payment *contractor.ContractorPayment) error {
	q := GetQuerier(ctx, r.db)

	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}

	cylinders, err := json.Marshal(payment.Cylinders)
	if err != nil {
		return fmt.Errorf("failed to marshal cylinder detail: %w", err)
	}
	otherDeductions, err := json.Marshal(payment.OtherDeductions)
	if err != nil {
		return fmt.Errorf("failed to marshal other deductions: %w", err)
	}

	query := `
		INSERT INTO contractor_payments (
			id, worker_id, period, invoice_number, cylinders, cylinder_pay,
			technical_assistance, net_subtotal, vat, gross_total,
			advance_base, advance_extra, shortfall_base, shortfall_extra,
			other_deductions, other_deductions_total, total_deductions, payout
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
				  $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (worker_id, period) DO UPDATE SET
			invoice_number = EXCLUDED.invoice_number,
			cylinders = EXCLUDED.cylinders,
			cylinder_pay = EXCLUDED.cylinder_pay,
			technical_assistance = EXCLUDED.technical_assistance,
			net_subtotal = EXCLUDED.net_subtotal,
			vat = EXCLUDED.vat,
			gross_total = EXCLUDED.gross_total,
			advance_base = EXCLUDED.advance_base,
			advance_extra = EXCLUDED.advance_extra,
			shortfall_base = EXCLUDED.shortfall_base,
			shortfall_extra = EXCLUDED.shortfall_extra,
			other_deductions = EXCLUDED.other_deductions,
			other_deductions_total = EXCLUDED.other_deductions_total,
			total_deductions = EXCLUDED.total_deductions,
			payout = EXCLUDED.payout,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		payment.ID, payment.WorkerID, payment.Period, payment.InvoiceNumber,
		cylinders, payment.CylinderPay,
		payment.TechnicalAssistance, payment.NetSubtotal, payment.VAT, payment.GrossTotal,
		payment.AdvanceBase, payment.AdvanceExtra, payment.ShortfallBase, payment.ShortfallExtra,
		otherDeductions, payment.OtherDeductionsTotal, payment.TotalDeductions, payment.Payout,
	).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert contractor payment: %w", err)
	}
	return nil
}

const contractorPaymentColumns = `
	p.id, p.worker_id, p.period, p.invoice_number, p.cylinders, p.cylinder_pay,
	p.technical_assistance, p.net_subtotal, p.vat, p.gross_total,
	p.advance_base, p.advance_extra, p.shortfall_base, p.shortfall_extra,
	p.other_deductions, p.other_deductions_total, p.total_deductions, p.payout,
	p.created_at, p.updated_at, w.name, w.tax_id
`

func scanContractorPayment(row pgx.Row) (contractor.ContractorPayment, error) {
	var p contractor.ContractorPayment
	var cylinders, otherDeductions []byte
	err := row.Scan(
		&p.ID, &p.WorkerID, &p.Period, &p.InvoiceNumber, &cylinders, &p.CylinderPay,
		&p.TechnicalAssistance, &p.NetSubtotal, &p.VAT, &p.GrossTotal,
		&p.AdvanceBase, &p.AdvanceExtra, &p.ShortfallBase, &p.ShortfallExtra,
		&otherDeductions, &p.OtherDeductionsTotal, &p.TotalDeductions, &p.Payout,
		&p.CreatedAt, &p.UpdatedAt, &p.WorkerName, &p.WorkerTaxID,
	)
	if err != nil {
		return contractor.ContractorPayment{}, err
	}
	if err := json.Unmarshal(cylinders, &p.Cylinders); err != nil {
		return contractor.ContractorPayment{}, fmt.Errorf("failed to unmarshal cylinder detail: %w", err)
	}
	if err := json.Unmarshal(otherDeductions, &p.OtherDeductions); err != nil {
		return contractor.ContractorPayment{}, fmt.Errorf("failed to unmarshal other deductions: %w", err)
	}
	return p, nil
}

func (r *contractorRepository) GetPaymentByID(ctx context.Context, id string) (*contractor.ContractorPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + contractorPaymentColumns + `
		FROM contractor_payments p
		JOIN workers w ON w.id = p.worker_id
		WHERE p.id = $1
	`

	p, err := scanContractorPayment(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, contractor.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get contractor payment: %w", err)
	}
	return &p, nil
}

func (r *contractorRepository) GetPaymentByWorkerPeriod(ctx context.Context, workerID, period string) (*contractor.ContractorPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + contractorPaymentColumns + `
		FROM contractor_payments p
		JOIN workers w ON w.id = p.worker_id
		WHERE p.worker_id = $1 AND p.period = $2
	`

	p, err := scanContractorPayment(q.QueryRow(ctx, query, workerID, period))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, contractor.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get contractor payment: %w", err)
	}
	return &p, nil
}

func (r *contractorRepository) ListPaymentsByPeriod(ctx context.Context, period string) ([]contractor.ContractorPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + contractorPaymentColumns + `
		FROM contractor_payments p
		JOIN workers w ON w.id = p.worker_id
		WHERE p.period = $1
		ORDER BY w.name ASC
	`

	rows, err := q.Query(ctx, query, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list contractor payments: %w", err)
	}
	defer rows.Close()

	var payments []contractor.ContractorPayment
	for rows.Next() {
		p, err := scanContractorPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contractor payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *contractorRepository) DeletePayment(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM contractor_payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contractor payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return contractor.ErrPaymentNotFound
	}
	return nil
}
