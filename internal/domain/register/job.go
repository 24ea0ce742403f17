package register

import (
	"time"

	"github.com/barberia/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a job was paid
type PaymentMethod string

const (
	PaymentMethodCash          PaymentMethod = "CASH"
	PaymentMethodDigitalWallet PaymentMethod = "DIGITAL_WALLET"
)

// IsValid checks if the method is a valid PaymentMethod
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodDigitalWallet:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// DisplayName returns a human-readable name for the method
func (m PaymentMethod) DisplayName() string {
	switch m {
	case PaymentMethodCash:
		return "Efectivo"
	case PaymentMethodDigitalWallet:
		return "Mercado Pago"
	default:
		return string(m)
	}
}

// Job represents a completed unit of work: one service performed by one
// barber, generating income and a commission liability. Jobs are immutable
// once created; the commission field is a snapshot taken at creation time.
type Job struct {
	shared.TenantAggregateRoot
	BarberID   uuid.UUID       `json:"barber_id"`
	ServiceID  uuid.UUID       `json:"service_id"`
	CustomerID *uuid.UUID      `json:"customer_id,omitempty"`
	Price      decimal.Decimal `json:"price"`
	Commission decimal.Decimal `json:"commission"`
	Method     PaymentMethod   `json:"method"`
	OccurredOn time.Time       `json:"occurred_on"` // calendar day the work was done
}

// NewJob creates a new job with an already-computed commission snapshot.
// Use ComputeCommission with the barber's current settings to derive it.
func NewJob(
	tenantID uuid.UUID,
	barberID uuid.UUID,
	serviceID uuid.UUID,
	customerID *uuid.UUID,
	price decimal.Decimal,
	commission decimal.Decimal,
	method PaymentMethod,
	occurredOn time.Time,
) (*Job, error) {
	if barberID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BARBER", "Barber reference cannot be empty")
	}
	if serviceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SERVICE", "Service reference cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if commission.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COMMISSION", "Commission cannot be negative")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method is not valid")
	}
	if occurredOn.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Occurrence date cannot be empty")
	}

	job := &Job{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		BarberID:            barberID,
		ServiceID:           serviceID,
		CustomerID:          customerID,
		Price:               price,
		Commission:          commission,
		Method:              method,
		OccurredOn:          NormalizeDate(occurredOn),
	}

	job.AddDomainEvent(NewJobCreatedEvent(job))

	return job, nil
}

// IsCash returns true if the job was paid in cash
func (j *Job) IsCash() bool {
	return j.Method == PaymentMethodCash
}
