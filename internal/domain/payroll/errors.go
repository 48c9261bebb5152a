package payroll

import "errors"

var (
	ErrRecordNotFound   = errors.New("payroll record not found")
	ErrInvalidPeriod    = errors.New("invalid period, expected YYYY-MM")
	ErrWorkerNotPayroll = errors.New("worker is not on the salaried payroll")
)
