package contractor

import "context"

type ContractorService interface {
	GetTariff(ctx context.Context) (*TariffResponse, error)
	UpdateTariff(ctx context.Context, req *UpdateTariffRequest) (*TariffResponse, error)

	// Calculate prices the month's activity for a contractor and persists
	// the payment, overwriting any previous record for the same period.
	Calculate(ctx context.Context, req *CalculateRequest) (*PaymentResponse, error)
	// FormDefaults returns either the stored payment for the period or the
	// pre-filled defaults for a fresh form.
	FormDefaults(ctx context.Context, workerID, period string) (*PaymentResponse, *FormDefaultsResponse, error)
	GetPayment(ctx context.Context, id string) (*PaymentResponse, error)
	Roster(ctx context.Context, period string) ([]RosterEntryResponse, error)
	DeletePayment(ctx context.Context, id string) error
}
