package payroll

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectItems(t *testing.T) {
	raw := json.RawMessage(`[
		{"desc": "Colación", "monto": 45000},
		{"desc": "Movilización", "monto": 30000.9},
		{"desc": "Bono caja", "monto": "$12.500"}
	]`)

	items, total := CollectItems(raw)
	require.Len(t, items, 3)

	// Amounts truncate to whole pesos.
	assert.Equal(t, "45000", items[0].Amount.String())
	assert.Equal(t, "30000", items[1].Amount.String())
	assert.Equal(t, "12500", items[2].Amount.String())
	assert.Equal(t, "87500", total.String())
}

func TestCollectItemsMalformedInput(t *testing.T) {
	cases := []json.RawMessage{
		nil,
		json.RawMessage(``),
		json.RawMessage(`not json`),
		json.RawMessage(`{"desc": "no array"}`),
	}
	for _, raw := range cases {
		items, total := CollectItems(raw)
		assert.Empty(t, items)
		assert.True(t, total.IsZero())
	}
}

func TestCollectItemsUnparsableAmountIsZero(t *testing.T) {
	raw := json.RawMessage(`[{"desc": "Bono", "monto": "n/a"}]`)

	items, total := CollectItems(raw)
	require.Len(t, items, 1)
	assert.True(t, items[0].Amount.IsZero())
	assert.True(t, total.IsZero())
}

func TestCollectLegalItems(t *testing.T) {
	raw := json.RawMessage(`[
		{"desc": "Pensión alimenticia", "tipo": "%", "valor": 20},
		{"desc": "Retención judicial", "tipo": "$", "valor": "80.000"},
		{"desc": "Sin tipo", "valor": 5000}
	]`)

	items := CollectLegalItems(raw)
	require.Len(t, items, 3)

	assert.Equal(t, LegalDeductionPercent, items[0].Kind)
	assert.Equal(t, "20", items[0].Value.String())
	// Computed stays unset until the engine resolves it.
	assert.True(t, items[0].Computed.IsZero())

	assert.Equal(t, LegalDeductionFixed, items[1].Kind)
	assert.Equal(t, "80000", items[1].Value.String())

	// Unknown kinds default to fixed.
	assert.Equal(t, LegalDeductionFixed, items[2].Kind)
}

func TestCollectLegalItemsMalformedInput(t *testing.T) {
	assert.Empty(t, CollectLegalItems(json.RawMessage(`broken`)))
	assert.Empty(t, CollectLegalItems(nil))
}

func TestParseMoney(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{`123456`, "123456"},
		{`123456.78`, "123456.78"},
		{`"123456"`, "123456"},
		{`"$1.234.567"`, "1234567"},
		{`"$1.234,5"`, "1234.5"},
		{`"  $45.000 "`, "45000"},
		{`""`, "0"},
		{`"abc"`, "0"},
		{`null`, "0"},
	}
	for _, c := range cases {
		got := ParseMoney(json.RawMessage(c.raw))
		if got.String() != c.want {
			t.Errorf("ParseMoney(%s) = %s, want %s", c.raw, got, c.want)
		}
	}
}
