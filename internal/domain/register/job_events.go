package register

import (
	"time"

	"github.com/barberia/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JobCreatedEvent is raised when a new job is recorded
type JobCreatedEvent struct {
	shared.BaseDomainEvent
	JobID      uuid.UUID       `json:"job_id"`
	BarberID   uuid.UUID       `json:"barber_id"`
	ServiceID  uuid.UUID       `json:"service_id"`
	Price      decimal.Decimal `json:"price"`
	Commission decimal.Decimal `json:"commission"`
	Method     PaymentMethod   `json:"method"`
	OccurredOn time.Time       `json:"occurred_on"`
}

// EventType returns the event type name
func (e *JobCreatedEvent) EventType() string {
	return "JobCreated"
}

// NewJobCreatedEvent creates a new JobCreatedEvent
func NewJobCreatedEvent(job *Job) *JobCreatedEvent {
	return &JobCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("JobCreated", "Job", job.ID, job.TenantID),
		JobID:           job.ID,
		BarberID:        job.BarberID,
		ServiceID:       job.ServiceID,
		Price:           job.Price,
		Commission:      job.Commission,
		Method:          job.Method,
		OccurredOn:      job.OccurredOn,
	}
}
