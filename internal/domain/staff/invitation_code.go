package staff

import (
	"time"

	"github.com/barberia/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvitationCode lets a barber join a shop. Codes are single-use and expire.
type InvitationCode struct {
	shared.TenantAggregateRoot
	Code      string     `json:"code"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	UsedBy    *uuid.UUID `json:"used_by,omitempty"`
}

// NewInvitationCode creates a new invitation code valid for the given duration
func NewInvitationCode(tenantID uuid.UUID, code string, validFor time.Duration) (*InvitationCode, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Invitation code cannot be empty")
	}
	if validFor <= 0 {
		return nil, shared.NewDomainError("INVALID_EXPIRY", "Invitation validity must be positive")
	}

	return &InvitationCode{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                code,
		ExpiresAt:           time.Now().Add(validFor),
	}, nil
}

// IsExpired returns true if the code is past its expiry
func (i *InvitationCode) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}

// IsUsed returns true if the code has already been redeemed
func (i *InvitationCode) IsUsed() bool {
	return i.UsedAt != nil
}

// Redeem marks the code as used by the given user
func (i *InvitationCode) Redeem(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if i.IsUsed() {
		return shared.NewDomainError("INVALID_STATE", "Invitation code has already been used")
	}
	if i.IsExpired() {
		return shared.NewDomainError("INVALID_STATE", "Invitation code has expired")
	}

	now := time.Now()
	i.UsedAt = &now
	i.UsedBy = &userID
	i.UpdatedAt = now
	return nil
}
