package contractor

import "context"

type ContractorRepository interface {
	// GetTariff returns the current tariff; a zero-rate tariff when none is
	// configured yet.
	GetTariff(ctx context.Context) (*CommissionTariff, error)
	UpsertTariff(ctx context.Context, tariff *CommissionTariff) error

	// UpsertPayment writes the payment for its (worker, period) key,
	// replacing any previous calculation in place.
	UpsertPayment(ctx context.Context, payment *ContractorPayment) error
	GetPaymentByID(ctx context.Context, id string) (*ContractorPayment, error)
	GetPaymentByWorkerPeriod(ctx context.Context, workerID, period string) (*ContractorPayment, error)
	ListPaymentsByPeriod(ctx context.Context, period string) ([]ContractorPayment, error)
	DeletePayment(ctx context.Context, id string) error
}
