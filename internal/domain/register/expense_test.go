package register

import (
	"testing"
	"time"

	"github.com/barberia/backend/internal/domain/shared"
	"github.com/barberia/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moneyFromInt(v int64) valueobject.Money {
	return valueobject.NewMoneyARS(decimal.NewFromInt(v))
}

func TestNewExpense(t *testing.T) {
	tenantID := uuid.New()
	incurredOn := time.Date(2026, time.March, 14, 16, 30, 0, 0, time.UTC)

	expense, err := NewExpense(tenantID, "razor blades", moneyFromInt(350), incurredOn)

	require.NoError(t, err)
	assert.Equal(t, tenantID, expense.TenantID)
	assert.Equal(t, "razor blades", expense.Description)
	assertDecimalEqual(t, 350, expense.Amount)
	// the time-of-day component is dropped
	assert.Equal(t, time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC), expense.IncurredOn)
	assert.Len(t, expense.GetDomainEvents(), 1)
}

func TestNewExpense_Validation(t *testing.T) {
	tenantID := uuid.New()
	incurredOn := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		description string
		amount      int64
		incurredOn  time.Time
		wantCode    string
	}{
		{"empty description", "", 100, incurredOn, "INVALID_DESCRIPTION"},
		{"zero amount", "supplies", 0, incurredOn, "INVALID_AMOUNT"},
		{"negative amount", "supplies", -50, incurredOn, "INVALID_AMOUNT"},
		{"zero date", "supplies", 100, time.Time{}, "INVALID_DATE"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewExpense(tenantID, tc.description, moneyFromInt(tc.amount), tc.incurredOn)

			require.Error(t, err)
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tc.wantCode, domainErr.Code)
		})
	}
}
