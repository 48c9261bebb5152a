package settlement

import (
	"context"

	"github.com/shopspring/decimal"
)

type SettlementRepository interface {
	Create(ctx context.Context, s ShiftSettlement) (ShiftSettlement, error)
	GetByID(ctx context.Context, id string) (ShiftSettlement, error)
	List(ctx context.Context, filter SettlementFilter) ([]ShiftSettlement, error)
	Update(ctx context.Context, req UpdateSettlementRequest) error
	SetClosed(ctx context.Context, id string, closed bool) error
	Delete(ctx context.Context, id string) error

	// SumShortfall returns the month's accumulated cash shortfall for one
	// worker: sum of max(0, -variance) over all settlement rows.
	SumShortfall(ctx context.Context, workerID string, year, month int) (decimal.Decimal, error)

	// MonthlyActivity aggregates cylinders, advances and shortfall for one
	// worker and month.
	MonthlyActivity(ctx context.Context, workerID string, year, month int) (MonthlyActivity, error)
}
