package register

import (
	"time"

	"github.com/barberia/backend/internal/domain/register"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JobResponse represents a job in API responses
type JobResponse struct {
	ID            uuid.UUID       `json:"id"`
	TenantID      uuid.UUID       `json:"tenant_id"`
	BarberID      uuid.UUID       `json:"barber_id"`
	ServiceID     uuid.UUID       `json:"service_id"`
	CustomerID    *uuid.UUID      `json:"customer_id,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Commission    decimal.Decimal `json:"commission"`
	Method        string          `json:"method"`
	MethodDisplay string          `json:"method_display"`
	OccurredOn    time.Time       `json:"occurred_on"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToJobResponse converts a domain job to a response DTO
func ToJobResponse(job *register.Job) *JobResponse {
	return &JobResponse{
		ID:            job.ID,
		TenantID:      job.TenantID,
		BarberID:      job.BarberID,
		ServiceID:     job.ServiceID,
		CustomerID:    job.CustomerID,
		Price:         job.Price,
		Commission:    job.Commission,
		Method:        job.Method.String(),
		MethodDisplay: job.Method.DisplayName(),
		OccurredOn:    job.OccurredOn,
		CreatedAt:     job.CreatedAt,
	}
}

// CreateJobRequest represents a request to record a job
type CreateJobRequest struct {
	BarberID   uuid.UUID        `json:"barber_id" binding:"required"`
	ServiceID  uuid.UUID        `json:"service_id" binding:"required"`
	CustomerID *uuid.UUID       `json:"customer_id"`
	Price      *decimal.Decimal `json:"price"` // defaults to the service offering price
	Method     string           `json:"method" binding:"required"`
	OccurredOn *time.Time       `json:"occurred_on"` // defaults to today
}

// JobListFilter defines filtering options for job list queries
type JobListFilter struct {
	BarberID *uuid.UUID `form:"barber_id"`
	Method   string     `form:"method"`
	FromDate *time.Time `form:"from" time_format:"2006-01-02"`
	ToDate   *time.Time `form:"to" time_format:"2006-01-02"`
	Page     int        `form:"page"`
	PageSize int        `form:"page_size"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID          uuid.UUID       `json:"id"`
	TenantID    uuid.UUID       `json:"tenant_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	IncurredOn  time.Time       `json:"incurred_on"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToExpenseResponse converts a domain expense to a response DTO
func ToExpenseResponse(expense *register.Expense) *ExpenseResponse {
	return &ExpenseResponse{
		ID:          expense.ID,
		TenantID:    expense.TenantID,
		Description: expense.Description,
		Amount:      expense.Amount,
		IncurredOn:  expense.IncurredOn,
		CreatedAt:   expense.CreatedAt,
	}
}

// CreateExpenseRequest represents a request to record an expense
type CreateExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	IncurredOn  *time.Time      `json:"incurred_on"` // defaults to today
}

// ExpenseListFilter defines filtering options for expense list queries
type ExpenseListFilter struct {
	FromDate *time.Time `form:"from" time_format:"2006-01-02"`
	ToDate   *time.Time `form:"to" time_format:"2006-01-02"`
	Page     int        `form:"page"`
	PageSize int        `form:"page_size"`
}

// BarberLineResponse is one row of the per-barber breakdown
type BarberLineResponse struct {
	BarberID    uuid.UUID       `json:"barber_id"`
	BarberName  string          `json:"barber_name"`
	Income      decimal.Decimal `json:"income"`
	Commissions decimal.Decimal `json:"commissions"`
	JobCount    int             `json:"job_count"`
}

// SummaryResponse represents the register totals for a period
type SummaryResponse struct {
	From         time.Time            `json:"from"`
	To           time.Time            `json:"to"`
	Label        string               `json:"label"`
	Granularity  string               `json:"granularity"`
	Income       decimal.Decimal      `json:"income"`
	Commissions  decimal.Decimal      `json:"commissions"`
	Expenses     decimal.Decimal      `json:"expenses"`
	Net          decimal.Decimal      `json:"net"`
	CashTotal    decimal.Decimal      `json:"cash_total"`
	DigitalTotal decimal.Decimal      `json:"digital_total"`
	PerBarber    []BarberLineResponse `json:"per_barber"`
	Closed       *bool                `json:"closed,omitempty"` // single-day periods only
	Close        *CloseResponse       `json:"close,omitempty"`
}

// CloseResponse represents a frozen daily close in API responses
type CloseResponse struct {
	ID               uuid.UUID       `json:"id"`
	TenantID         uuid.UUID       `json:"tenant_id"`
	CloseDate        time.Time       `json:"close_date"`
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalCommissions decimal.Decimal `json:"total_commissions"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	NetProfit        decimal.Decimal `json:"net_profit"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ToCloseResponse converts a domain daily close to a response DTO
func ToCloseResponse(dc *register.DailyClose) *CloseResponse {
	return &CloseResponse{
		ID:               dc.ID,
		TenantID:         dc.TenantID,
		CloseDate:        dc.CloseDate,
		TotalIncome:      dc.TotalIncome,
		TotalCommissions: dc.TotalCommissions,
		TotalExpenses:    dc.TotalExpenses,
		NetProfit:        dc.NetProfit,
		CreatedAt:        dc.CreatedAt,
	}
}

// CloseDayRequest represents a request to close the register for a date
type CloseDayRequest struct {
	Date time.Time `json:"date" binding:"required" time_format:"2006-01-02"`
}
