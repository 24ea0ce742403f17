package register

import (
	"testing"
	"time"

	"github.com/barberia/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDailyClose(t *testing.T) {
	tenantID := uuid.New()
	jobs := []Job{
		mustJob(t, tenantID, uuid.New(), 1000, 500, PaymentMethodCash),
		mustJob(t, tenantID, uuid.New(), 800, 240, PaymentMethodDigitalWallet),
	}
	expenses := []Expense{mustExpense(t, tenantID, 200)}
	totals := AggregateTotals(jobs, expenses)

	closeDate := time.Date(2026, time.March, 14, 21, 5, 0, 0, time.UTC)
	dc, err := NewDailyClose(tenantID, closeDate, totals)

	require.NoError(t, err)
	assert.Equal(t, tenantID, dc.TenantID)
	assert.Equal(t, time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC), dc.CloseDate)
	assertDecimalEqual(t, 1800, dc.TotalIncome)
	assertDecimalEqual(t, 740, dc.TotalCommissions)
	assertDecimalEqual(t, 200, dc.TotalExpenses)
	assertDecimalEqual(t, 1800-740-200, dc.NetProfit)
	assert.Len(t, dc.GetDomainEvents(), 1)
}

func TestNewDailyClose_ZeroDate(t *testing.T) {
	_, err := NewDailyClose(uuid.New(), time.Time{}, ZeroTotals())

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_DATE", domainErr.Code)
}

func TestDailyClose_TotalsRoundTrip(t *testing.T) {
	tenantID := uuid.New()
	totals := AggregateTotals(
		[]Job{mustJob(t, tenantID, uuid.New(), 500, 100, PaymentMethodCash)},
		nil,
	)

	dc, err := NewDailyClose(tenantID, time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC), totals)
	require.NoError(t, err)

	frozen := dc.Totals()
	assert.True(t, totals.Income.Equal(frozen.Income))
	assert.True(t, totals.Commissions.Equal(frozen.Commissions))
	assert.True(t, totals.Expenses.Equal(frozen.Expenses))
	assert.True(t, totals.Net.Equal(frozen.Net))
}
