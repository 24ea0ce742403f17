package models

import (
	"time"

	"github.com/barberia/backend/internal/domain/register"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JobModel is the persistence model for the Job aggregate root.
// Rows are insert-only; the commission column is the snapshot taken
// when the job was recorded.
type JobModel struct {
	TenantAggregateModel
	BarberID   uuid.UUID              `gorm:"type:uuid;not null;index"`
	ServiceID  uuid.UUID              `gorm:"type:uuid;not null;index"`
	CustomerID *uuid.UUID             `gorm:"type:uuid;index"`
	Price      decimal.Decimal        `gorm:"type:decimal(18,4);not null"`
	Commission decimal.Decimal        `gorm:"type:decimal(18,4);not null"`
	Method     register.PaymentMethod `gorm:"type:varchar(20);not null;index"`
	OccurredOn time.Time              `gorm:"type:date;not null;index:idx_jobs_tenant_occurred,priority:2"`
}

// TableName returns the table name for GORM
func (JobModel) TableName() string {
	return "jobs"
}

// ToDomain converts the persistence model to a domain Job entity.
func (m *JobModel) ToDomain() *register.Job {
	return &register.Job{
		TenantAggregateRoot: m.toDomainTenantAggregateRoot(),
		BarberID:            m.BarberID,
		ServiceID:           m.ServiceID,
		CustomerID:          m.CustomerID,
		Price:               m.Price,
		Commission:          m.Commission,
		Method:              m.Method,
		OccurredOn:          m.OccurredOn,
	}
}

// FromDomain populates the persistence model from a domain Job entity.
func (m *JobModel) FromDomain(j *register.Job) {
	m.FromDomainTenantAggregateRoot(j.TenantAggregateRoot)
	m.BarberID = j.BarberID
	m.ServiceID = j.ServiceID
	m.CustomerID = j.CustomerID
	m.Price = j.Price
	m.Commission = j.Commission
	m.Method = j.Method
	m.OccurredOn = j.OccurredOn
}

// JobModelFromDomain creates a new persistence model from a domain Job.
func JobModelFromDomain(j *register.Job) *JobModel {
	m := &JobModel{}
	m.FromDomain(j)
	return m
}

// ExpenseModel is the persistence model for the Expense aggregate root.
type ExpenseModel struct {
	TenantAggregateModel
	Description string          `gorm:"type:varchar(500);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	IncurredOn  time.Time       `gorm:"type:date;not null;index:idx_expenses_tenant_incurred,priority:2"`
}

// TableName returns the table name for GORM
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts the persistence model to a domain Expense entity.
func (m *ExpenseModel) ToDomain() *register.Expense {
	return &register.Expense{
		TenantAggregateRoot: m.toDomainTenantAggregateRoot(),
		Description:         m.Description,
		Amount:              m.Amount,
		IncurredOn:          m.IncurredOn,
	}
}

// FromDomain populates the persistence model from a domain Expense entity.
func (m *ExpenseModel) FromDomain(e *register.Expense) {
	m.FromDomainTenantAggregateRoot(e.TenantAggregateRoot)
	m.Description = e.Description
	m.Amount = e.Amount
	m.IncurredOn = e.IncurredOn
}

// ExpenseModelFromDomain creates a new persistence model from a domain Expense.
func ExpenseModelFromDomain(e *register.Expense) *ExpenseModel {
	m := &ExpenseModel{}
	m.FromDomain(e)
	return m
}

// DailyCloseModel is the persistence model for the DailyClose aggregate root.
// The unique index on (tenant_id, close_date) is the authoritative guard
// against closing the same day twice; the migration defines it over both
// columns.
type DailyCloseModel struct {
	TenantAggregateModel
	CloseDate        time.Time       `gorm:"type:date;not null;uniqueIndex:idx_daily_closes_tenant_date,priority:2"`
	TotalIncome      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TotalCommissions decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TotalExpenses    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	NetProfit        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (DailyCloseModel) TableName() string {
	return "daily_closes"
}

// ToDomain converts the persistence model to a domain DailyClose entity.
func (m *DailyCloseModel) ToDomain() *register.DailyClose {
	return &register.DailyClose{
		TenantAggregateRoot: m.toDomainTenantAggregateRoot(),
		CloseDate:           m.CloseDate,
		TotalIncome:         m.TotalIncome,
		TotalCommissions:    m.TotalCommissions,
		TotalExpenses:       m.TotalExpenses,
		NetProfit:           m.NetProfit,
	}
}

// FromDomain populates the persistence model from a domain DailyClose entity.
func (m *DailyCloseModel) FromDomain(c *register.DailyClose) {
	m.FromDomainTenantAggregateRoot(c.TenantAggregateRoot)
	m.CloseDate = c.CloseDate
	m.TotalIncome = c.TotalIncome
	m.TotalCommissions = c.TotalCommissions
	m.TotalExpenses = c.TotalExpenses
	m.NetProfit = c.NetProfit
}

// DailyCloseModelFromDomain creates a new persistence model from a domain DailyClose.
func DailyCloseModelFromDomain(c *register.DailyClose) *DailyCloseModel {
	m := &DailyCloseModel{}
	m.FromDomain(c)
	return m
}
