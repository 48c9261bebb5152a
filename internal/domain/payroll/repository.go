package payroll

import "context"

type PayrollRepository interface {
	// Upsert writes the record for its (worker, period) key, replacing any
	// previous calculation in place. The stored ID is preserved across
	// recalculations.
	Upsert(ctx context.Context, rec *PayrollRecord) error
	GetByID(ctx context.Context, id string) (*PayrollRecord, error)
	GetByWorkerPeriod(ctx context.Context, workerID, period string) (*PayrollRecord, error)
	ListByPeriod(ctx context.Context, period string) ([]PayrollRecord, error)
	Delete(ctx context.Context, id string) error
}
