package staff

import (
	"context"
	"strings"
	"time"

	"github.com/barberia/backend/internal/domain/register"
	"github.com/barberia/backend/internal/domain/shared"
	"github.com/barberia/backend/internal/domain/staff"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultInviteValidity is how long a generated invitation code stays
// redeemable.
const DefaultInviteValidity = 72 * time.Hour

// InviteService provides application-level invitation code operations
type InviteService struct {
	inviteRepo staff.InvitationCodeRepository
	barberRepo staff.BarberRepository
}

// NewInviteService creates a new InviteService
func NewInviteService(inviteRepo staff.InvitationCodeRepository, barberRepo staff.BarberRepository) *InviteService {
	return &InviteService{
		inviteRepo: inviteRepo,
		barberRepo: barberRepo,
	}
}

// InviteResponse represents an invitation code in API responses
type InviteResponse struct {
	ID        uuid.UUID  `json:"id"`
	TenantID  uuid.UUID  `json:"tenant_id"`
	Code      string     `json:"code"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	UsedBy    *uuid.UUID `json:"used_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ToInviteResponse converts a domain invitation code to a response DTO
func ToInviteResponse(code *staff.InvitationCode) *InviteResponse {
	return &InviteResponse{
		ID:        code.ID,
		TenantID:  code.TenantID,
		Code:      code.Code,
		ExpiresAt: code.ExpiresAt,
		UsedAt:    code.UsedAt,
		UsedBy:    code.UsedBy,
		CreatedAt: code.CreatedAt,
	}
}

// RedeemInviteRequest represents a request to redeem an invitation code.
// The redeeming user joins the code's tenant as a barber.
type RedeemInviteRequest struct {
	Code     string    `json:"code" binding:"required"`
	UserID   uuid.UUID `json:"-"` // set from JWT context
	FullName string    `json:"full_name" binding:"required"`
}

// Generate creates a new single-use invitation code for the tenant
func (s *InviteService) Generate(ctx context.Context, tenantID uuid.UUID) (*InviteResponse, error) {
	code, err := staff.NewInvitationCode(tenantID, newInviteCode(), DefaultInviteValidity)
	if err != nil {
		return nil, err
	}

	if err := s.inviteRepo.Save(ctx, code); err != nil {
		return nil, err
	}
	return ToInviteResponse(code), nil
}

// List lists the tenant's invitation codes
func (s *InviteService) List(ctx context.Context, tenantID uuid.UUID) ([]InviteResponse, error) {
	codes, err := s.inviteRepo.FindAllForTenant(ctx, tenantID, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}

	responses := make([]InviteResponse, len(codes))
	for i := range codes {
		responses[i] = *ToInviteResponse(&codes[i])
	}
	return responses, nil
}

// Redeem consumes an invitation code and enrolls the redeeming user as a
// barber of the code's tenant. The commission starts at zero; the owner
// sets the real rate afterwards.
func (s *InviteService) Redeem(ctx context.Context, req RedeemInviteRequest) (*BarberResponse, error) {
	code, err := s.inviteRepo.FindByCode(ctx, strings.ToUpper(strings.TrimSpace(req.Code)))
	if err != nil {
		return nil, err
	}
	if code == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Invitation code not found")
	}

	if err := code.Redeem(req.UserID); err != nil {
		return nil, err
	}

	barber, err := staff.NewBarber(
		code.TenantID,
		req.FullName,
		register.CommissionTypePercentage,
		decimal.Zero,
	)
	if err != nil {
		return nil, err
	}

	if err := s.barberRepo.Save(ctx, barber); err != nil {
		return nil, err
	}
	if err := s.inviteRepo.Save(ctx, code); err != nil {
		return nil, err
	}

	return ToBarberResponse(barber), nil
}

// newInviteCode builds a short uppercase code from a fresh uuid
func newInviteCode() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(raw[:8])
}
