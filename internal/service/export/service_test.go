package export

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCLP(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"0", "$0"},
		{"999", "$999"},
		{"1000", "$1.000"},
		{"1234567", "$1.234.567"},
		{"-282000", "-$282.000"},
		{"1234567.6", "$1.234.568"},
	}
	for _, c := range cases {
		got := formatCLP(decimal.RequireFromString(c.input))
		if got != c.want {
			t.Errorf("formatCLP(%s) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "Enero 2026", periodLabel("2026-01"))
	assert.Equal(t, "Diciembre 2025", periodLabel("2025-12"))
	// Unparsable periods pass through untouched.
	assert.Equal(t, "sin-periodo", periodLabel("sin-periodo"))
}
