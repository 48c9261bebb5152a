package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opl-logistica/backoffice-go/internal/pkg/validator"
)

func TestCalculateRequestValidate(t *testing.T) {
	req := CalculateRequest{Period: "2026-01", Days: 30}
	assert.NoError(t, req.Validate())

	req = CalculateRequest{Period: "enero", Days: 40, OvertimeHours: decimal.NewFromInt(-1)}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "periodo")
	assert.Contains(t, fields, "dias")
	assert.Contains(t, fields, "horas_extras")
}

func TestCalculateRequestZeroDaysIsValid(t *testing.T) {
	req := CalculateRequest{Period: "2026-02", Days: 0}
	assert.NoError(t, req.Validate())
}
