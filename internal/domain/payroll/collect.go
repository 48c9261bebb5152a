package payroll

import (
	"encoding/json"

	"github.com/opl-logistica/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CollectItems normalizes a caller-submitted JSON array of {desc, monto}
// rows. Amounts are truncated to whole pesos. Malformed input degrades to an
// empty list with a zero total, never an error: partial payroll data must not
// block a save.
func CollectItems(raw json.RawMessage) ([]LineItem, decimal.Decimal) {
	items := []LineItem{}
	total := decimal.Zero
	if len(raw) == 0 {
		return items, total
	}

	var rows []struct {
		Description string          `json:"desc"`
		Amount      json.RawMessage `json:"monto"`
	}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return []LineItem{}, decimal.Zero
	}

	for _, row := range rows {
		amount := ParseMoney(row.Amount).Truncate(0)
		items = append(items, LineItem{Description: row.Description, Amount: amount})
		total = total.Add(amount)
	}
	return items, total
}

// CollectLegalItems normalizes the variable legal deduction list. Percent
// items stay unresolved here; the engine fills Computed once taxable income
// is known. Malformed input degrades to an empty list.
func CollectLegalItems(raw json.RawMessage) []LegalDeductionItem {
	items := []LegalDeductionItem{}
	if len(raw) == 0 {
		return items
	}

	var rows []struct {
		Description string          `json:"desc"`
		Kind        string          `json:"tipo"`
		Value       json.RawMessage `json:"valor"`
	}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return []LegalDeductionItem{}
	}

	for _, row := range rows {
		kind := LegalDeductionFixed
		if row.Kind == string(LegalDeductionPercent) {
			kind = LegalDeductionPercent
		}
		items = append(items, LegalDeductionItem{
			Description: row.Description,
			Kind:        kind,
			Value:       ParseMoney(row.Value),
		})
	}
	return items
}

// ParseMoney reads a lenient money value: a JSON number, a numeric string,
// or a Chilean-formatted string ("$1.234.567,89"). Anything unparsable is
// zero.
func ParseMoney(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 {
		return decimal.Zero
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return decimal.NewFromFloat(num)
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return validator.CleanCurrency(str)
	}
	return decimal.Zero
}
