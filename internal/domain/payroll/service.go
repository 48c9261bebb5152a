package payroll

import "context"

type PayrollService interface {
	// Calculate runs the full derivation for a salaried worker and persists
	// the result, overwriting any previous record for the same period.
	Calculate(ctx context.Context, req *CalculateRequest) (*RecordResponse, error)
	// FormDefaults returns either the stored record for the period or the
	// pre-filled defaults for a fresh form.
	FormDefaults(ctx context.Context, workerID, period string) (*RecordResponse, *FormDefaultsResponse, error)
	GetRecord(ctx context.Context, id string) (*RecordResponse, error)
	Roster(ctx context.Context, period string) ([]RosterEntryResponse, error)
	DeleteRecord(ctx context.Context, id string) error
}
