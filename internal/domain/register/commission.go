package register

import (
	"github.com/barberia/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CommissionType represents how a barber's commission is derived
type CommissionType string

const (
	CommissionTypePercentage CommissionType = "PERCENTAGE" // share of the job price
	CommissionTypeFixed      CommissionType = "FIXED"      // flat amount per job
)

// IsValid checks if the type is a valid CommissionType
func (t CommissionType) IsValid() bool {
	switch t {
	case CommissionTypePercentage, CommissionTypeFixed:
		return true
	}
	return false
}

// String returns the string representation of CommissionType
func (t CommissionType) String() string {
	return string(t)
}

var oneHundred = decimal.NewFromInt(100)

// ValidateCommissionSettings checks a commission type/value pair.
// Percentage values must lie within [0, 100]; fixed values must not be negative.
func ValidateCommissionSettings(ctype CommissionType, value decimal.Decimal) error {
	if !ctype.IsValid() {
		return shared.NewDomainError("INVALID_COMMISSION", "Commission type is not valid")
	}
	if ctype == CommissionTypePercentage && (value.IsNegative() || value.GreaterThan(oneHundred)) {
		return shared.NewDomainError("INVALID_COMMISSION", "Commission percentage must be between 0 and 100")
	}
	if ctype == CommissionTypeFixed && value.IsNegative() {
		return shared.NewDomainError("INVALID_COMMISSION", "Fixed commission cannot be negative")
	}
	return nil
}

// ComputeCommission derives the commission owed for a job price under the
// given commission settings. The result is not rounded; presentation-layer
// rounding is a UI concern. Called once at job creation - the result is
// snapshotted onto the job and never recomputed, so later changes to a
// barber's settings do not alter historical jobs.
func ComputeCommission(price decimal.Decimal, ctype CommissionType, value decimal.Decimal) (decimal.Decimal, error) {
	if price.IsNegative() {
		return decimal.Zero, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if err := ValidateCommissionSettings(ctype, value); err != nil {
		return decimal.Zero, err
	}
	if ctype == CommissionTypeFixed {
		return value, nil
	}
	return price.Mul(value).Div(oneHundred), nil
}
