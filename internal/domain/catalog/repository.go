package catalog

import (
	"context"

	"github.com/barberia/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ServiceOfferingFilter defines filtering options for offering queries
type ServiceOfferingFilter struct {
	shared.Filter
	Active *bool
}

// ServiceOfferingRepository defines the interface for offering persistence
type ServiceOfferingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceOffering, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*ServiceOffering, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter ServiceOfferingFilter) ([]ServiceOffering, error)
	Save(ctx context.Context, offering *ServiceOffering) error
	Delete(ctx context.Context, id uuid.UUID) error
}
