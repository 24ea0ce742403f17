package register

import (
	"testing"

	"github.com/barberia/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommissionType_IsValid(t *testing.T) {
	tests := []struct {
		ctype    CommissionType
		expected bool
	}{
		{CommissionTypePercentage, true},
		{CommissionTypeFixed, true},
		{CommissionType("HOURLY"), false},
		{CommissionType(""), false},
	}

	for _, tc := range tests {
		t.Run(string(tc.ctype), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.ctype.IsValid())
		})
	}
}

func TestComputeCommission_Percentage(t *testing.T) {
	tests := []struct {
		name  string
		price string
		rate  string
		want  string
	}{
		{"half of 1000", "1000", "50", "500"},
		{"zero rate", "1000", "0", "0"},
		{"full rate", "1000", "100", "1000"},
		{"zero price", "0", "40", "0"},
		{"no internal rounding", "99.99", "33", "32.9967"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			price := decimal.RequireFromString(tc.price)
			rate := decimal.RequireFromString(tc.rate)

			got, err := ComputeCommission(price, CommissionTypePercentage, rate)

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.want).Equal(got), "want %s, got %s", tc.want, got)
		})
	}
}

func TestComputeCommission_Fixed(t *testing.T) {
	got, err := ComputeCommission(decimal.NewFromInt(1500), CommissionTypeFixed, decimal.NewFromInt(300))

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(300).Equal(got))

	// fixed commissions ignore the price entirely
	gotForFree, err := ComputeCommission(decimal.Zero, CommissionTypeFixed, decimal.NewFromInt(300))
	require.NoError(t, err)
	assert.True(t, got.Equal(gotForFree))
}

func TestComputeCommission_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		ctype    CommissionType
		value    string
		wantCode string
	}{
		{"negative price", "-1", CommissionTypePercentage, "50", "INVALID_PRICE"},
		{"rate above 100", "1000", CommissionTypePercentage, "101", "INVALID_COMMISSION"},
		{"negative rate", "1000", CommissionTypePercentage, "-1", "INVALID_COMMISSION"},
		{"negative fixed value", "1000", CommissionTypeFixed, "-10", "INVALID_COMMISSION"},
		{"unknown type", "1000", CommissionType("HOURLY"), "10", "INVALID_COMMISSION"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeCommission(
				decimal.RequireFromString(tc.price),
				tc.ctype,
				decimal.RequireFromString(tc.value),
			)

			require.Error(t, err)
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tc.wantCode, domainErr.Code)
		})
	}
}

func TestComputeCommission_MonotonicInPrice(t *testing.T) {
	rate := decimal.NewFromInt(35)

	prev := decimal.Zero
	for p := int64(0); p <= 10000; p += 250 {
		got, err := ComputeCommission(decimal.NewFromInt(p), CommissionTypePercentage, rate)
		require.NoError(t, err)
		assert.True(t, got.GreaterThanOrEqual(prev), "commission must not decrease as price grows")
		prev = got
	}
}
