package settlement

import (
	"github.com/opl-logistica/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateSettlementRequest struct {
	WorkerID  string `json:"worker_id"`
	Date      string `json:"date"`
	Warehouse string `json:"warehouse"`
}

func (r *CreateSettlementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Warehouse) {
		errs = append(errs, validator.ValidationError{Field: "warehouse", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSettlementRequest struct {
	ID            string           `json:"-"`
	Variance      *decimal.Decimal `json:"variance,omitempty"`
	AdvanceAmount *decimal.Decimal `json:"advance_amount,omitempty"`
	Cylinders     *CylinderCounts  `json:"cylinders,omitempty"`
}

func (r *UpdateSettlementRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.AdvanceAmount != nil && r.AdvanceAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "advance_amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SettlementFilter struct {
	WorkerID  *string
	Warehouse *string
	Date      *string // YYYY-MM-DD
	Year      *int
	Month     *int
}

type SettlementResponse struct {
	ID            string          `json:"id"`
	WorkerID      string          `json:"worker_id"`
	WorkerName    string          `json:"worker_name,omitempty"`
	Date          string          `json:"date"`
	Warehouse     string          `json:"warehouse"`
	Variance      decimal.Decimal `json:"variance"`
	AdvanceAmount decimal.Decimal `json:"advance_amount"`
	Cylinders     CylinderCounts  `json:"cylinders"`
	Closed        bool            `json:"closed"`
}
