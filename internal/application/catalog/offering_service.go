package catalog

import (
	"context"
	"time"

	"github.com/barberia/backend/internal/domain/catalog"
	"github.com/barberia/backend/internal/domain/shared"
	"github.com/barberia/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OfferingService provides application-level service offering operations
type OfferingService struct {
	offeringRepo catalog.ServiceOfferingRepository
}

// NewOfferingService creates a new OfferingService
func NewOfferingService(offeringRepo catalog.ServiceOfferingRepository) *OfferingService {
	return &OfferingService{offeringRepo: offeringRepo}
}

// OfferingResponse represents a service offering in API responses
type OfferingResponse struct {
	ID              uuid.UUID       `json:"id"`
	TenantID        uuid.UUID       `json:"tenant_id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToOfferingResponse converts a domain offering to a response DTO
func ToOfferingResponse(offering *catalog.ServiceOffering) *OfferingResponse {
	return &OfferingResponse{
		ID:              offering.ID,
		TenantID:        offering.TenantID,
		Name:            offering.Name,
		Price:           offering.Price,
		DurationMinutes: offering.DurationMinutes,
		Active:          offering.Active,
		CreatedAt:       offering.CreatedAt,
		UpdatedAt:       offering.UpdatedAt,
	}
}

// CreateOfferingRequest represents a request to create a service offering
type CreateOfferingRequest struct {
	Name            string          `json:"name" binding:"required"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	DurationMinutes int             `json:"duration_minutes" binding:"required"`
}

// UpdateOfferingRequest represents a request to update a service offering
type UpdateOfferingRequest struct {
	Name            string          `json:"name" binding:"required"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	DurationMinutes int             `json:"duration_minutes" binding:"required"`
	Active          *bool           `json:"active"`
}

// OfferingListFilter defines filtering options for offering list queries
type OfferingListFilter struct {
	Active   *bool `form:"active"`
	Page     int   `form:"page"`
	PageSize int   `form:"page_size"`
}

// Create creates a new service offering
func (s *OfferingService) Create(ctx context.Context, tenantID uuid.UUID, req CreateOfferingRequest) (*OfferingResponse, error) {
	offering, err := catalog.NewServiceOffering(
		tenantID,
		req.Name,
		valueobject.NewMoneyARS(req.Price),
		req.DurationMinutes,
	)
	if err != nil {
		return nil, err
	}

	if err := s.offeringRepo.Save(ctx, offering); err != nil {
		return nil, err
	}
	return ToOfferingResponse(offering), nil
}

// GetByID gets a service offering by ID
func (s *OfferingService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*OfferingResponse, error) {
	offering, err := s.offeringRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if offering == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Service not found")
	}
	return ToOfferingResponse(offering), nil
}

// List lists service offerings with filtering
func (s *OfferingService) List(ctx context.Context, tenantID uuid.UUID, filter OfferingListFilter) ([]OfferingResponse, error) {
	domainFilter := catalog.ServiceOfferingFilter{Active: filter.Active}
	domainFilter.Page = filter.Page
	domainFilter.PageSize = filter.PageSize

	offerings, err := s.offeringRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]OfferingResponse, len(offerings))
	for i := range offerings {
		responses[i] = *ToOfferingResponse(&offerings[i])
	}
	return responses, nil
}

// Update updates a service offering
func (s *OfferingService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateOfferingRequest) (*OfferingResponse, error) {
	offering, err := s.offeringRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if offering == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Service not found")
	}

	if err := offering.Update(req.Name, valueobject.NewMoneyARS(req.Price), req.DurationMinutes); err != nil {
		return nil, err
	}
	if req.Active != nil {
		if *req.Active {
			offering.Activate()
		} else {
			offering.Deactivate()
		}
	}

	if err := s.offeringRepo.Save(ctx, offering); err != nil {
		return nil, err
	}
	return ToOfferingResponse(offering), nil
}

// Delete removes a service offering
func (s *OfferingService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	offering, err := s.offeringRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if offering == nil {
		return shared.NewDomainError("NOT_FOUND", "Service not found")
	}
	return s.offeringRepo.Delete(ctx, id)
}
