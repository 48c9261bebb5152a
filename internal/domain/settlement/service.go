package settlement

import (
	"context"

	"github.com/shopspring/decimal"
)

type SettlementService interface {
	CreateSettlement(ctx context.Context, req CreateSettlementRequest) (SettlementResponse, error)
	GetSettlement(ctx context.Context, id string) (SettlementResponse, error)
	ListSettlements(ctx context.Context, filter SettlementFilter) ([]SettlementResponse, error)
	UpdateSettlement(ctx context.Context, req UpdateSettlementRequest) (SettlementResponse, error)
	CloseSettlement(ctx context.Context, id string) error
	ReopenSettlement(ctx context.Context, id string) error
	DeleteSettlement(ctx context.Context, id string) error

	// AggregateShortfall feeds the payroll engine's automatic shortfall
	// deduction. Workers not flagged for cash-shift tracking always yield
	// zero; store failures propagate to the caller.
	AggregateShortfall(ctx context.Context, workerID string, year, month int) (decimal.Decimal, error)

	// GetMonthlyActivity feeds the contractor payment calculation.
	GetMonthlyActivity(ctx context.Context, workerID string, year, month int) (MonthlyActivity, error)
}
