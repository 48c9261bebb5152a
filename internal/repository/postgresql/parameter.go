package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/opl-logistica/backoffice-go/internal/domain/parameter"
	"github.com/opl-logistica/backoffice-go/internal/pkg/database"
)

type parameterRepository struct {
	db *database.DB
}

func NewParameterRepository(db *database.DB) parameter.ParameterRepository {
	return &parameterRepository{db: db}
}

// ========== GLOBAL PARAMETERS ==========

func (r *parameterRepository) GetAllParameters(ctx context.Context) ([]parameter.GlobalParameter, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, key, value, description, updated_at
		FROM global_parameters
		ORDER BY key
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list parameters: %w", err)
	}
	defer rows.Close()

	var params []parameter.GlobalParameter
	for rows.Next() {
		var p parameter.GlobalParameter
		if err := rows.Scan(&p.ID, &p.Key, &p.Value, &p.Description, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan parameter: %w", err)
		}
		params = append(params, p)
	}
	return params, rows.Err()
}

func (r *parameterRepository) UpsertParameter(ctx context.Context, param parameter.GlobalParameter) (parameter.GlobalParameter, error) {
	q := GetQuerier(ctx, r.db)

	if param.ID == "" {
		param.ID = uuid.New().String()
	}

	query := `
		INSERT INTO global_parameters (id, key, value, description)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			description = EXCLUDED.description,
			updated_at = NOW()
		RETURNING id, key, value, description, updated_at
	`

	var p parameter.GlobalParameter
	err := q.QueryRow(ctx, query, param.ID, param.Key, param.Value, param.Description).Scan(
		&p.ID, &p.Key, &p.Value, &p.Description, &p.UpdatedAt,
	)
	if err != nil {
		return parameter.GlobalParameter{}, fmt.Errorf("failed to upsert parameter: %w", err)
	}
	return p, nil
}

// ========== PENSION FUNDS ==========

func (r *parameterRepository) CreatePensionFund(ctx context.Context, fund parameter.PensionFund) (parameter.PensionFund, error) {
	q := GetQuerier(ctx, r.db)

	if fund.ID == "" {
		fund.ID = uuid.New().String()
	}

	query := `
		INSERT INTO pension_funds (id, name, rate_percent)
		VALUES ($1, $2, $3)
		RETURNING id, name, rate_percent, created_at, updated_at
	`

	var f parameter.PensionFund
	err := q.QueryRow(ctx, query, fund.ID, fund.Name, fund.RatePercent).Scan(
		&f.ID, &f.Name, &f.RatePercent, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return parameter.PensionFund{}, fmt.Errorf("failed to create pension fund: %w", err)
	}
	return f, nil
}

func (r *parameterRepository) GetPensionFundByID(ctx context.Context, id string) (parameter.PensionFund, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, rate_percent, created_at, updated_at
		FROM pension_funds
		WHERE id = $1
	`

	var f parameter.PensionFund
	err := q.QueryRow(ctx, query, id).Scan(&f.ID, &f.Name, &f.RatePercent, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return parameter.PensionFund{}, parameter.ErrPensionFundNotFound
		}
		return parameter.PensionFund{}, fmt.Errorf("failed to get pension fund: %w", err)
	}
	return f, nil
}

func (r *parameterRepository) ListPensionFunds(ctx context.Context) ([]parameter.PensionFund, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, rate_percent, created_at, updated_at
		FROM pension_funds
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pension funds: %w", err)
	}
	defer rows.Close()

	var funds []parameter.PensionFund
	for rows.Next() {
		var f parameter.PensionFund
		if err := rows.Scan(&f.ID, &f.Name, &f.RatePercent, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pension fund: %w", err)
		}
		funds = append(funds, f)
	}
	return funds, rows.Err()
}

func (r *parameterRepository) UpdatePensionFund(ctx context.Context, id string, name *string, ratePercent *decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pension_funds
		SET name = COALESCE($2, name),
			rate_percent = COALESCE($3, rate_percent),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, name, ratePercent)
	if err != nil {
		return fmt.Errorf("failed to update pension fund: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return parameter.ErrPensionFundNotFound
	}
	return nil
}

func (r *parameterRepository) DeletePensionFund(ctx context.Context, id string) error {
	// Detach and delete atomically; a failed delete must not leave workers
	// pointing at nothing while the fund still exists.
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		// Workers keep running with a nullified reference; their contribution
		// becomes zero until a new fund is assigned.
		if _, err := q.Exec(txCtx, `UPDATE workers SET pension_fund_id = NULL WHERE pension_fund_id = $1`, id); err != nil {
			return fmt.Errorf("failed to detach workers from pension fund: %w", err)
		}

		tag, err := q.Exec(txCtx, `DELETE FROM pension_funds WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete pension fund: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return parameter.ErrPensionFundNotFound
		}
		return nil
	})
}

// ========== HEALTH INSURERS ==========

func (r *parameterRepository) CreateHealthInsurer(ctx context.Context, insurer parameter.HealthInsurer) (parameter.HealthInsurer, error) {
	q := GetQuerier(ctx, r.db)

	if insurer.ID == "" {
		insurer.ID = uuid.New().String()
	}

	query := `
		INSERT INTO health_insurers (id, name, rate_percent)
		VALUES ($1, $2, $3)
		RETURNING id, name, rate_percent, created_at, updated_at
	`

	var h parameter.HealthInsurer
	err := q.QueryRow(ctx, query, insurer.ID, insurer.Name, insurer.RatePercent).Scan(
		&h.ID, &h.Name, &h.RatePercent, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return parameter.HealthInsurer{}, fmt.Errorf("failed to create health insurer: %w", err)
	}
	return h, nil
}

func (r *parameterRepository) GetHealthInsurerByID(ctx context.Context, id string) (parameter.HealthInsurer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, rate_percent, created_at, updated_at
		FROM health_insurers
		WHERE id = $1
	`

	var h parameter.HealthInsurer
	err := q.QueryRow(ctx, query, id).Scan(&h.ID, &h.Name, &h.RatePercent, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return parameter.HealthInsurer{}, parameter.ErrHealthInsurerNotFound
		}
		return parameter.HealthInsurer{}, fmt.Errorf("failed to get health insurer: %w", err)
	}
	return h, nil
}

func (r *parameterRepository) ListHealthInsurers(ctx context.Context) ([]parameter.HealthInsurer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, rate_percent, created_at, updated_at
		FROM health_insurers
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list health insurers: %w", err)
	}
	defer rows.Close()

	var insurers []parameter.HealthInsurer
	for rows.Next() {
		var h parameter.HealthInsurer
		if err := rows.Scan(&h.ID, &h.Name, &h.RatePercent, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan health insurer: %w", err)
		}
		insurers = append(insurers, h)
	}
	return insurers, rows.Err()
}

func (r *parameterRepository) UpdateHealthInsurer(ctx context.Context, id string, name *string, ratePercent *decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE health_insurers
		SET name = COALESCE($2, name),
			rate_percent = COALESCE($3, rate_percent),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, name, ratePercent)
	if err != nil {
		return fmt.Errorf("failed to update health insurer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return parameter.ErrHealthInsurerNotFound
	}
	return nil
}

func (r *parameterRepository) DeleteHealthInsurer(ctx context.Context, id string) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		if _, err := q.Exec(txCtx, `UPDATE workers SET health_insurer_id = NULL WHERE health_insurer_id = $1`, id); err != nil {
			return fmt.Errorf("failed to detach workers from health insurer: %w", err)
		}

		tag, err := q.Exec(txCtx, `DELETE FROM health_insurers WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete health insurer: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return parameter.ErrHealthInsurerNotFound
		}
		return nil
	})
}

// ========== FAMILY ALLOWANCE BRACKETS ==========

func (r *parameterRepository) ListBrackets(ctx context.Context) ([]parameter.FamilyAllowanceBracket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tier, income_ceiling, amount_per_dependent
		FROM family_allowance_brackets
		ORDER BY income_ceiling ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list brackets: %w", err)
	}
	defer rows.Close()

	var brackets []parameter.FamilyAllowanceBracket
	for rows.Next() {
		var b parameter.FamilyAllowanceBracket
		if err := rows.Scan(&b.ID, &b.Tier, &b.IncomeCeiling, &b.AmountPerDependent); err != nil {
			return nil, fmt.Errorf("failed to scan bracket: %w", err)
		}
		brackets = append(brackets, b)
	}
	return brackets, rows.Err()
}

func (r *parameterRepository) ReplaceBrackets(ctx context.Context, brackets []parameter.FamilyAllowanceBracket) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		if _, err := q.Exec(txCtx, `DELETE FROM family_allowance_brackets`); err != nil {
			return fmt.Errorf("failed to clear brackets: %w", err)
		}

		query := `
			INSERT INTO family_allowance_brackets (id, tier, income_ceiling, amount_per_dependent)
			VALUES ($1, $2, $3, $4)
		`
		for _, b := range brackets {
			if b.ID == "" {
				b.ID = uuid.New().String()
			}
			if _, err := q.Exec(txCtx, query, b.ID, b.Tier, b.IncomeCeiling, b.AmountPerDependent); err != nil {
				return fmt.Errorf("failed to insert bracket %s: %w", b.Tier, err)
			}
		}
		return nil
	})
}
