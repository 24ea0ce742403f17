package models

import (
	"github.com/barberia/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ServiceOfferingModel is the persistence model for the ServiceOffering aggregate root.
type ServiceOfferingModel struct {
	TenantAggregateModel
	Name            string          `gorm:"type:varchar(200);not null"`
	Price           decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	DurationMinutes int             `gorm:"not null"`
	Active          bool            `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (ServiceOfferingModel) TableName() string {
	return "service_offerings"
}

// ToDomain converts the persistence model to a domain ServiceOffering entity.
func (m *ServiceOfferingModel) ToDomain() *catalog.ServiceOffering {
	return &catalog.ServiceOffering{
		TenantAggregateRoot: m.toDomainTenantAggregateRoot(),
		Name:                m.Name,
		Price:               m.Price,
		DurationMinutes:     m.DurationMinutes,
		Active:              m.Active,
	}
}

// FromDomain populates the persistence model from a domain ServiceOffering entity.
func (m *ServiceOfferingModel) FromDomain(o *catalog.ServiceOffering) {
	m.FromDomainTenantAggregateRoot(o.TenantAggregateRoot)
	m.Name = o.Name
	m.Price = o.Price
	m.DurationMinutes = o.DurationMinutes
	m.Active = o.Active
}

// ServiceOfferingModelFromDomain creates a new persistence model from a domain ServiceOffering.
func ServiceOfferingModelFromDomain(o *catalog.ServiceOffering) *ServiceOfferingModel {
	m := &ServiceOfferingModel{}
	m.FromDomain(o)
	return m
}
