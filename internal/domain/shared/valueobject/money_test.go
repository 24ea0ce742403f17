package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(decimal.NewFromInt(100), ARS)
	require.NoError(t, err)
	assert.Equal(t, ARS, m.Currency())
	assert.True(t, decimal.NewFromInt(100).Equal(m.Amount()))

	_, err = NewMoney(decimal.NewFromInt(100), "")
	require.Error(t, err)
}

func TestNewMoneyARSFromString(t *testing.T) {
	m, err := NewMoneyARSFromString("1234.56")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1234.56").Equal(m.Amount()))

	_, err = NewMoneyARSFromString("not-a-number")
	require.Error(t, err)
}

func TestMoney_AddSub(t *testing.T) {
	a := NewMoneyARS(decimal.NewFromInt(100))
	b := NewMoneyARS(decimal.NewFromInt(40))

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(140).Equal(sum.Amount()))

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(60).Equal(diff.Amount()))
}

func TestMoney_CurrencyMismatch(t *testing.T) {
	ars := NewMoneyARS(decimal.NewFromInt(100))
	usd, err := NewMoney(decimal.NewFromInt(100), USD)
	require.NoError(t, err)

	_, err = ars.Add(usd)
	assert.Error(t, err)

	_, err = ars.Sub(usd)
	assert.Error(t, err)
}

func TestMoney_Predicates(t *testing.T) {
	assert.True(t, ZeroARS().IsZero())
	assert.True(t, NewMoneyARS(decimal.NewFromInt(1)).IsPositive())
	assert.True(t, NewMoneyARS(decimal.NewFromInt(-1)).IsNegative())
}

func TestMoney_Equal(t *testing.T) {
	a := NewMoneyARS(decimal.RequireFromString("10.50"))
	b := NewMoneyARS(decimal.RequireFromString("10.5"))

	assert.True(t, a.Equal(b))

	usd, err := NewMoney(decimal.RequireFromString("10.50"), USD)
	require.NoError(t, err)
	assert.False(t, a.Equal(usd))
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "10.5 ARS", NewMoneyARS(decimal.RequireFromString("10.5")).String())
}
