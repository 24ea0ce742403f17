package staff

import (
	"context"

	"github.com/barberia/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BarberFilter defines filtering options for barber queries
type BarberFilter struct {
	shared.Filter
	Active *bool // Filter by active flag
}

// BarberRepository defines the interface for barber persistence
type BarberRepository interface {
	// FindByID finds a barber by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Barber, error)

	// FindByIDForTenant finds a barber by ID for a specific tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Barber, error)

	// FindAllForTenant finds all barbers for a tenant with filtering
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter BarberFilter) ([]Barber, error)

	// FindByIDs finds barbers by a set of IDs for a tenant
	FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]Barber, error)

	// Save creates or updates a barber
	Save(ctx context.Context, barber *Barber) error

	// Delete removes a barber
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvitationCodeRepository defines the interface for invitation code persistence
type InvitationCodeRepository interface {
	// FindByCode finds an invitation code by its code string
	FindByCode(ctx context.Context, code string) (*InvitationCode, error)

	// FindAllForTenant lists invitation codes for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]InvitationCode, error)

	// Save creates or updates an invitation code
	Save(ctx context.Context, code *InvitationCode) error
}
