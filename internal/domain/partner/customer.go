package partner

import (
	"time"

	"github.com/barberia/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Customer is an optional reference on a job; the shop mostly serves walk-ins
type Customer struct {
	shared.TenantAggregateRoot
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// NewCustomer creates a new customer
func NewCustomer(tenantID uuid.UUID, name, phone, notes string) (*Customer, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}

	return &Customer{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Phone:               phone,
		Notes:               notes,
	}, nil
}

// Update changes the customer details
func (c *Customer) Update(name, phone, notes string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	c.Name = name
	c.Phone = phone
	c.Notes = notes
	c.UpdatedAt = time.Now()
	return nil
}
