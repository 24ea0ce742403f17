package staff

import (
	"context"
	"time"

	"github.com/barberia/backend/internal/domain/register"
	"github.com/barberia/backend/internal/domain/shared"
	"github.com/barberia/backend/internal/domain/staff"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BarberService provides application-level barber operations
type BarberService struct {
	barberRepo     staff.BarberRepository
	eventPublisher shared.EventPublisher
}

// NewBarberService creates a new BarberService
func NewBarberService(barberRepo staff.BarberRepository) *BarberService {
	return &BarberService{barberRepo: barberRepo}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *BarberService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// BarberResponse represents a barber in API responses
type BarberResponse struct {
	ID              uuid.UUID       `json:"id"`
	TenantID        uuid.UUID       `json:"tenant_id"`
	FullName        string          `json:"full_name"`
	CommissionType  string          `json:"commission_type"`
	CommissionValue decimal.Decimal `json:"commission_value"`
	Active          bool            `json:"active"`
	PhotoURL        string          `json:"photo_url,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToBarberResponse converts a domain barber to a response DTO
func ToBarberResponse(barber *staff.Barber) *BarberResponse {
	return &BarberResponse{
		ID:              barber.ID,
		TenantID:        barber.TenantID,
		FullName:        barber.FullName,
		CommissionType:  string(barber.CommissionType),
		CommissionValue: barber.CommissionValue,
		Active:          barber.Active,
		PhotoURL:        barber.PhotoURL,
		CreatedAt:       barber.CreatedAt,
		UpdatedAt:       barber.UpdatedAt,
	}
}

// CreateBarberRequest represents a request to create a barber
type CreateBarberRequest struct {
	FullName        string          `json:"full_name" binding:"required"`
	CommissionType  string          `json:"commission_type" binding:"required"`
	CommissionValue decimal.Decimal `json:"commission_value"`
}

// UpdateBarberRequest represents a request to update a barber's profile
type UpdateBarberRequest struct {
	FullName string `json:"full_name" binding:"required"`
	PhotoURL string `json:"photo_url"`
}

// UpdateCommissionRequest represents a request to change commission settings
type UpdateCommissionRequest struct {
	CommissionType  string          `json:"commission_type" binding:"required"`
	CommissionValue decimal.Decimal `json:"commission_value"`
}

// BarberListFilter defines filtering options for barber list queries
type BarberListFilter struct {
	Active   *bool `form:"active"`
	Page     int   `form:"page"`
	PageSize int   `form:"page_size"`
}

// Create creates a new barber
func (s *BarberService) Create(ctx context.Context, tenantID uuid.UUID, req CreateBarberRequest) (*BarberResponse, error) {
	barber, err := staff.NewBarber(
		tenantID,
		req.FullName,
		register.CommissionType(req.CommissionType),
		req.CommissionValue,
	)
	if err != nil {
		return nil, err
	}

	if err := s.barberRepo.Save(ctx, barber); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, barber.GetDomainEvents()...)
	}

	return ToBarberResponse(barber), nil
}

// GetByID gets a barber by ID
func (s *BarberService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*BarberResponse, error) {
	barber, err := s.barberRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if barber == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Barber not found")
	}
	return ToBarberResponse(barber), nil
}

// List lists barbers with filtering
func (s *BarberService) List(ctx context.Context, tenantID uuid.UUID, filter BarberListFilter) ([]BarberResponse, error) {
	domainFilter := staff.BarberFilter{Active: filter.Active}
	domainFilter.Page = filter.Page
	domainFilter.PageSize = filter.PageSize

	barbers, err := s.barberRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]BarberResponse, len(barbers))
	for i := range barbers {
		responses[i] = *ToBarberResponse(&barbers[i])
	}
	return responses, nil
}

// UpdateProfile updates a barber's display data
func (s *BarberService) UpdateProfile(ctx context.Context, tenantID, id uuid.UUID, req UpdateBarberRequest) (*BarberResponse, error) {
	barber, err := s.barberRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if barber == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Barber not found")
	}

	if err := barber.UpdateProfile(req.FullName, req.PhotoURL); err != nil {
		return nil, err
	}

	if err := s.barberRepo.Save(ctx, barber); err != nil {
		return nil, err
	}
	return ToBarberResponse(barber), nil
}

// UpdateCommission changes a barber's commission settings. Existing jobs
// keep the commission snapshotted when they were created.
func (s *BarberService) UpdateCommission(ctx context.Context, tenantID, id uuid.UUID, req UpdateCommissionRequest) (*BarberResponse, error) {
	barber, err := s.barberRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if barber == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Barber not found")
	}

	if err := barber.UpdateCommission(register.CommissionType(req.CommissionType), req.CommissionValue); err != nil {
		return nil, err
	}

	if err := s.barberRepo.Save(ctx, barber); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, barber.GetDomainEvents()...)
	}

	return ToBarberResponse(barber), nil
}

// SetActive activates or deactivates a barber
func (s *BarberService) SetActive(ctx context.Context, tenantID, id uuid.UUID, active bool) (*BarberResponse, error) {
	barber, err := s.barberRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if barber == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Barber not found")
	}

	if active {
		barber.Activate()
	} else {
		barber.Deactivate()
	}

	if err := s.barberRepo.Save(ctx, barber); err != nil {
		return nil, err
	}
	return ToBarberResponse(barber), nil
}

// Delete removes a barber. Jobs keep their barber reference; summaries fall
// back to an unknown name for deleted barbers.
func (s *BarberService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	barber, err := s.barberRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if barber == nil {
		return shared.NewDomainError("NOT_FOUND", "Barber not found")
	}
	return s.barberRepo.Delete(ctx, id)
}
