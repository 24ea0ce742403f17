package catalog

import (
	"time"

	"github.com/barberia/backend/internal/domain/shared"
	"github.com/barberia/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceOffering is a service the shop sells (cut, beard trim, ...).
// Its price only pre-fills new jobs; the job keeps its own price.
type ServiceOffering struct {
	shared.TenantAggregateRoot
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
	Active          bool            `json:"active"`
}

// NewServiceOffering creates a new service offering
func NewServiceOffering(
	tenantID uuid.UUID,
	name string,
	price valueobject.Money,
	durationMinutes int,
) (*ServiceOffering, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Service name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Service name cannot exceed 200 characters")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if durationMinutes <= 0 {
		return nil, shared.NewDomainError("INVALID_DURATION", "Duration must be positive")
	}

	return &ServiceOffering{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Price:               price.Amount(),
		DurationMinutes:     durationMinutes,
		Active:              true,
	}, nil
}

// Update changes the offering details
func (s *ServiceOffering) Update(name string, price valueobject.Money, durationMinutes int) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Service name cannot be empty")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if durationMinutes <= 0 {
		return shared.NewDomainError("INVALID_DURATION", "Duration must be positive")
	}
	s.Name = name
	s.Price = price.Amount()
	s.DurationMinutes = durationMinutes
	s.UpdatedAt = time.Now()
	return nil
}

// Activate marks the offering as available
func (s *ServiceOffering) Activate() {
	s.Active = true
	s.UpdatedAt = time.Now()
}

// Deactivate hides the offering from new jobs
func (s *ServiceOffering) Deactivate() {
	s.Active = false
	s.UpdatedAt = time.Now()
}
