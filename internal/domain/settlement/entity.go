package settlement

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftSettlement is one worker's daily cash reconciliation: cylinders
// delivered, cash counted against cash expected, and any advance taken.
type ShiftSettlement struct {
	ID        string
	WorkerID  string
	Date      time.Time
	Warehouse string

	// Variance is actual cash minus expected cash; negative means the
	// worker's till came up short.
	Variance      decimal.Decimal
	AdvanceAmount decimal.Decimal

	Cylinders CylinderCounts

	Closed    bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	WorkerName *string
}

// CylinderCounts - units delivered per cylinder size/type during one shift
type CylinderCounts struct {
	C5      int `json:"5kg"`
	C11     int `json:"11kg"`
	C15     int `json:"15kg"`
	C45     int `json:"45kg"`
	Cat5    int `json:"cat5kg"`
	Cat15   int `json:"cat15kg"`
	Ultra15 int `json:"ultra15"`
}

func (c CylinderCounts) Add(o CylinderCounts) CylinderCounts {
	return CylinderCounts{
		C5:      c.C5 + o.C5,
		C11:     c.C11 + o.C11,
		C15:     c.C15 + o.C15,
		C45:     c.C45 + o.C45,
		Cat5:    c.Cat5 + o.Cat5,
		Cat15:   c.Cat15 + o.Cat15,
		Ultra15: c.Ultra15 + o.Ultra15,
	}
}

// MonthlyActivity aggregates one worker's settlements for a month: the
// contractor payment path consumes all of it, the internal payroll path only
// the shortfall.
type MonthlyActivity struct {
	WorkerID  string
	Year      int
	Month     int
	Cylinders CylinderCounts

	// Shortfall is the sum of max(0, -variance) over the month's settlements.
	Shortfall decimal.Decimal
	Advances  decimal.Decimal
}
