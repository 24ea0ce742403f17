package staff

import (
	"github.com/barberia/backend/internal/domain/register"
	"github.com/barberia/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BarberCreatedEvent is raised when a barber joins the shop
type BarberCreatedEvent struct {
	shared.BaseDomainEvent
	BarberID uuid.UUID `json:"barber_id"`
	FullName string    `json:"full_name"`
}

// EventType returns the event type name
func (e *BarberCreatedEvent) EventType() string {
	return "BarberCreated"
}

// NewBarberCreatedEvent creates a new BarberCreatedEvent
func NewBarberCreatedEvent(barber *Barber) *BarberCreatedEvent {
	return &BarberCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("BarberCreated", "Barber", barber.ID, barber.TenantID),
		BarberID:        barber.ID,
		FullName:        barber.FullName,
	}
}

// BarberCommissionChangedEvent is raised when commission settings change.
// Existing jobs keep their snapshotted commission.
type BarberCommissionChangedEvent struct {
	shared.BaseDomainEvent
	BarberID        uuid.UUID               `json:"barber_id"`
	CommissionType  register.CommissionType `json:"commission_type"`
	CommissionValue decimal.Decimal         `json:"commission_value"`
}

// EventType returns the event type name
func (e *BarberCommissionChangedEvent) EventType() string {
	return "BarberCommissionChanged"
}

// NewBarberCommissionChangedEvent creates a new BarberCommissionChangedEvent
func NewBarberCommissionChangedEvent(barber *Barber) *BarberCommissionChangedEvent {
	return &BarberCommissionChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("BarberCommissionChanged", "Barber", barber.ID, barber.TenantID),
		BarberID:        barber.ID,
		CommissionType:  barber.CommissionType,
		CommissionValue: barber.CommissionValue,
	}
}
