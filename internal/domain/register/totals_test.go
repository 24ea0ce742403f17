package register

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustJob(t *testing.T, tenantID, barberID uuid.UUID, price, commission int64, method PaymentMethod) Job {
	t.Helper()
	job, err := NewJob(
		tenantID,
		barberID,
		uuid.New(),
		nil,
		decimal.NewFromInt(price),
		decimal.NewFromInt(commission),
		method,
		time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return *job
}

func mustExpense(t *testing.T, tenantID uuid.UUID, amount int64) Expense {
	t.Helper()
	expense, err := NewExpense(
		tenantID,
		"supplies",
		moneyFromInt(amount),
		time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return *expense
}

func assertDecimalEqual(t *testing.T, want int64, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.NewFromInt(want).Equal(got), "want %d, got %s", want, got)
}

func TestAggregateTotals_SingleCashJob(t *testing.T) {
	tenantID := uuid.New()
	barberID := uuid.New()

	// one job at 1000 with a 50% barber
	totals := AggregateTotals(
		[]Job{mustJob(t, tenantID, barberID, 1000, 500, PaymentMethodCash)},
		nil,
	)

	assertDecimalEqual(t, 1000, totals.Income)
	assertDecimalEqual(t, 500, totals.Commissions)
	assertDecimalEqual(t, 0, totals.Expenses)
	assertDecimalEqual(t, 500, totals.Net)
	assertDecimalEqual(t, 1000, totals.CashTotal)
	assertDecimalEqual(t, 0, totals.DigitalTotal)

	require.Len(t, totals.PerBarber, 1)
	assert.Equal(t, barberID, totals.PerBarber[0].BarberID)
	assert.Equal(t, 1, totals.PerBarber[0].JobCount)
	assertDecimalEqual(t, 1000, totals.PerBarber[0].Income)
}

func TestAggregateTotals_DigitalJobWithExpense(t *testing.T) {
	tenantID := uuid.New()

	totals := AggregateTotals(
		[]Job{mustJob(t, tenantID, uuid.New(), 800, 240, PaymentMethodDigitalWallet)},
		[]Expense{mustExpense(t, tenantID, 200)},
	)

	assertDecimalEqual(t, 800, totals.Income)
	assertDecimalEqual(t, 200, totals.Expenses)
	assertDecimalEqual(t, 0, totals.CashTotal)
	assertDecimalEqual(t, 800, totals.DigitalTotal)
	// net = income - commission - expenses
	assertDecimalEqual(t, 800-240-200, totals.Net)
}

func TestAggregateTotals_Empty(t *testing.T) {
	totals := AggregateTotals(nil, nil)

	assertDecimalEqual(t, 0, totals.Income)
	assertDecimalEqual(t, 0, totals.Commissions)
	assertDecimalEqual(t, 0, totals.Expenses)
	assertDecimalEqual(t, 0, totals.Net)
	assertDecimalEqual(t, 0, totals.CashTotal)
	assertDecimalEqual(t, 0, totals.DigitalTotal)
	assert.Empty(t, totals.PerBarber)
}

func TestAggregateTotals_NetMayBeNegative(t *testing.T) {
	tenantID := uuid.New()

	totals := AggregateTotals(
		[]Job{mustJob(t, tenantID, uuid.New(), 100, 50, PaymentMethodCash)},
		[]Expense{mustExpense(t, tenantID, 500)},
	)

	assertDecimalEqual(t, 100-50-500, totals.Net)
	assert.True(t, totals.Net.IsNegative())
}

func TestAggregateTotals_SumConservation(t *testing.T) {
	tenantID := uuid.New()
	jobs := []Job{
		mustJob(t, tenantID, uuid.New(), 1200, 480, PaymentMethodCash),
		mustJob(t, tenantID, uuid.New(), 900, 270, PaymentMethodDigitalWallet),
		mustJob(t, tenantID, uuid.New(), 350, 0, PaymentMethodCash),
	}

	totals := AggregateTotals(jobs, nil)

	expected := decimal.Zero
	for i := range jobs {
		expected = expected.Add(jobs[i].Price)
	}
	assert.True(t, expected.Equal(totals.Income))
	assert.True(t, totals.CashTotal.Add(totals.DigitalTotal).Equal(totals.Income))
}

func TestAggregateTotals_PerBarberOrdering(t *testing.T) {
	tenantID := uuid.New()
	top := uuid.New()
	mid := uuid.New()
	low := uuid.New()

	jobs := []Job{
		mustJob(t, tenantID, low, 100, 10, PaymentMethodCash),
		mustJob(t, tenantID, top, 900, 90, PaymentMethodCash),
		mustJob(t, tenantID, mid, 500, 50, PaymentMethodCash),
		mustJob(t, tenantID, top, 600, 60, PaymentMethodDigitalWallet),
	}

	totals := AggregateTotals(jobs, nil)

	require.Len(t, totals.PerBarber, 3)
	assert.Equal(t, top, totals.PerBarber[0].BarberID)
	assert.Equal(t, mid, totals.PerBarber[1].BarberID)
	assert.Equal(t, low, totals.PerBarber[2].BarberID)
	assert.Equal(t, 2, totals.PerBarber[0].JobCount)
	assertDecimalEqual(t, 1500, totals.PerBarber[0].Income)
}

func TestAggregateTotals_StableTieBreak(t *testing.T) {
	tenantID := uuid.New()
	first := uuid.New()
	second := uuid.New()

	// equal income: first-encounter order must be preserved
	jobs := []Job{
		mustJob(t, tenantID, first, 500, 50, PaymentMethodCash),
		mustJob(t, tenantID, second, 500, 25, PaymentMethodCash),
	}

	totals := AggregateTotals(jobs, nil)

	require.Len(t, totals.PerBarber, 2)
	assert.Equal(t, first, totals.PerBarber[0].BarberID)
	assert.Equal(t, second, totals.PerBarber[1].BarberID)
}

func TestAggregateTotals_UnknownBarberStillCounts(t *testing.T) {
	tenantID := uuid.New()
	unknown := uuid.New() // not present in any loaded barber set

	totals := AggregateTotals(
		[]Job{mustJob(t, tenantID, unknown, 700, 70, PaymentMethodCash)},
		nil,
	)

	assertDecimalEqual(t, 700, totals.Income)
	require.Len(t, totals.PerBarber, 1)
	assert.Equal(t, unknown, totals.PerBarber[0].BarberID)
}
