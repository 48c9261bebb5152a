package settlement

import "errors"

var (
	ErrSettlementNotFound = errors.New("shift settlement not found")
	ErrSettlementClosed   = errors.New("shift settlement is closed")
	ErrSettlementExists   = errors.New("shift settlement already exists for this worker and date")
)
