package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_JSONIsBareTwoDecimalNumber(t *testing.T) {
	m := NewMoney(decimal.New(295450, -2))
	raw, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "2954.50", string(raw))

	// Whole amounts still carry the cents.
	m = NewMoney(decimal.New(3000, 0))
	raw, err = json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "3000.00", string(raw))
}

func TestMoney_UnmarshalAcceptsNumbersAndStrings(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`-45.5`), &m))
	assert.Equal(t, "-45.50", m.StringFixed(2))

	require.NoError(t, json.Unmarshal([]byte(`"12.30"`), &m))
	assert.Equal(t, "12.30", m.StringFixed(2))

	assert.Error(t, json.Unmarshal([]byte(`"not a number"`), &m))
}

func TestDate_JSONIsCalendarDate(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-06-01"`), &d))
	assert.Equal(t, "2024-06-01", d.String())

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-01"`, string(raw))

	assert.Error(t, json.Unmarshal([]byte(`"2024-06-01T10:00:00Z"`), &d))
}

func TestTransaction_JSONShape(t *testing.T) {
	amount, err := MoneyFromString("-45.50")
	require.NoError(t, err)
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-06-01"`), &d))

	tx := Transaction{
		ID:        7,
		UserID:    "u1",
		Title:     "Groceries",
		Amount:    amount,
		Category:  "food",
		CreatedAt: d,
	}

	raw, err := json.Marshal(tx)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":7,"user_id":"u1","title":"Groceries","amount":-45.50,"category":"food","created_at":"2024-06-01"}`,
		string(raw))
}
