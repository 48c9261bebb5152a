package contractor

import "errors"

var (
	ErrPaymentNotFound     = errors.New("contractor payment not found")
	ErrWorkerNotContractor = errors.New("worker is not a contractor")
)
