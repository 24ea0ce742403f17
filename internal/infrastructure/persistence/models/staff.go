package models

import (
	"time"

	"github.com/barberia/backend/internal/domain/register"
	"github.com/barberia/backend/internal/domain/staff"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BarberModel is the persistence model for the Barber aggregate root.
type BarberModel struct {
	TenantAggregateModel
	FullName        string                  `gorm:"type:varchar(200);not null"`
	CommissionType  register.CommissionType `gorm:"type:varchar(20);not null"`
	CommissionValue decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	Active          bool                    `gorm:"not null;default:true;index"`
	PhotoURL        string                  `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (BarberModel) TableName() string {
	return "barbers"
}

// ToDomain converts the persistence model to a domain Barber entity.
func (m *BarberModel) ToDomain() *staff.Barber {
	return &staff.Barber{
		TenantAggregateRoot: m.toDomainTenantAggregateRoot(),
		FullName:            m.FullName,
		CommissionType:      m.CommissionType,
		CommissionValue:     m.CommissionValue,
		Active:              m.Active,
		PhotoURL:            m.PhotoURL,
	}
}

// FromDomain populates the persistence model from a domain Barber entity.
func (m *BarberModel) FromDomain(b *staff.Barber) {
	m.FromDomainTenantAggregateRoot(b.TenantAggregateRoot)
	m.FullName = b.FullName
	m.CommissionType = b.CommissionType
	m.CommissionValue = b.CommissionValue
	m.Active = b.Active
	m.PhotoURL = b.PhotoURL
}

// BarberModelFromDomain creates a new persistence model from a domain Barber.
func BarberModelFromDomain(b *staff.Barber) *BarberModel {
	m := &BarberModel{}
	m.FromDomain(b)
	return m
}

// InvitationCodeModel is the persistence model for the InvitationCode aggregate root.
type InvitationCodeModel struct {
	TenantAggregateModel
	Code      string     `gorm:"type:varchar(20);not null;uniqueIndex"`
	ExpiresAt time.Time  `gorm:"not null"`
	UsedAt    *time.Time `gorm:""`
	UsedBy    *uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (InvitationCodeModel) TableName() string {
	return "invitation_codes"
}

// ToDomain converts the persistence model to a domain InvitationCode entity.
func (m *InvitationCodeModel) ToDomain() *staff.InvitationCode {
	return &staff.InvitationCode{
		TenantAggregateRoot: m.toDomainTenantAggregateRoot(),
		Code:                m.Code,
		ExpiresAt:           m.ExpiresAt,
		UsedAt:              m.UsedAt,
		UsedBy:              m.UsedBy,
	}
}

// FromDomain populates the persistence model from a domain InvitationCode entity.
func (m *InvitationCodeModel) FromDomain(c *staff.InvitationCode) {
	m.FromDomainTenantAggregateRoot(c.TenantAggregateRoot)
	m.Code = c.Code
	m.ExpiresAt = c.ExpiresAt
	m.UsedAt = c.UsedAt
	m.UsedBy = c.UsedBy
}

// InvitationCodeModelFromDomain creates a new persistence model from a domain InvitationCode.
func InvitationCodeModelFromDomain(c *staff.InvitationCode) *InvitationCodeModel {
	m := &InvitationCodeModel{}
	m.FromDomain(c)
	return m
}
