package staff

import (
	"time"

	"github.com/barberia/backend/internal/domain/register"
	"github.com/barberia/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Barber represents a worker of the shop. The commission settings held here
// are the source for the snapshot taken when a job is created; editing them
// never touches jobs that already exist.
type Barber struct {
	shared.TenantAggregateRoot
	FullName        string                  `json:"full_name"`
	CommissionType  register.CommissionType `json:"commission_type"`
	CommissionValue decimal.Decimal         `json:"commission_value"`
	Active          bool                    `json:"active"`
	PhotoURL        string                  `json:"photo_url"`
}

// NewBarber creates a new barber
func NewBarber(
	tenantID uuid.UUID,
	fullName string,
	commissionType register.CommissionType,
	commissionValue decimal.Decimal,
) (*Barber, error) {
	if fullName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Barber name cannot be empty")
	}
	if len(fullName) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Barber name cannot exceed 200 characters")
	}
	if err := register.ValidateCommissionSettings(commissionType, commissionValue); err != nil {
		return nil, err
	}

	barber := &Barber{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		FullName:            fullName,
		CommissionType:      commissionType,
		CommissionValue:     commissionValue,
		Active:              true,
	}

	barber.AddDomainEvent(NewBarberCreatedEvent(barber))

	return barber, nil
}

// UpdateProfile updates the barber's display data
func (b *Barber) UpdateProfile(fullName, photoURL string) error {
	if fullName == "" {
		return shared.NewDomainError("INVALID_NAME", "Barber name cannot be empty")
	}
	if len(fullName) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Barber name cannot exceed 200 characters")
	}
	b.FullName = fullName
	b.PhotoURL = photoURL
	b.UpdatedAt = time.Now()
	return nil
}

// UpdateCommission changes the commission settings used for future jobs.
// Commission already snapshotted onto past jobs is unaffected.
func (b *Barber) UpdateCommission(commissionType register.CommissionType, commissionValue decimal.Decimal) error {
	if err := register.ValidateCommissionSettings(commissionType, commissionValue); err != nil {
		return err
	}
	b.CommissionType = commissionType
	b.CommissionValue = commissionValue
	b.UpdatedAt = time.Now()

	b.AddDomainEvent(NewBarberCommissionChangedEvent(b))

	return nil
}

// Activate marks the barber as active
func (b *Barber) Activate() {
	b.Active = true
	b.UpdatedAt = time.Now()
}

// Deactivate marks the barber as inactive; inactive barbers cannot be
// assigned new jobs but keep their history
func (b *Barber) Deactivate() {
	b.Active = false
	b.UpdatedAt = time.Now()
}

// CommissionFor computes the commission snapshot for a job at the given price
func (b *Barber) CommissionFor(price decimal.Decimal) (decimal.Decimal, error) {
	return register.ComputeCommission(price, b.CommissionType, b.CommissionValue)
}
