package register

import (
	"context"
	"time"

	"github.com/barberia/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// JobFilter defines filtering options for job queries
type JobFilter struct {
	shared.Filter
	BarberID   *uuid.UUID     // Filter by barber
	CustomerID *uuid.UUID     // Filter by customer
	Method     *PaymentMethod // Filter by payment method
	FromDate   *time.Time     // Filter by occurrence date range start (inclusive)
	ToDate     *time.Time     // Filter by occurrence date range end (inclusive)
}

// JobRepository defines the interface for job persistence
type JobRepository interface {
	// FindByID finds a job by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Job, error)

	// FindByIDForTenant finds a job by ID for a specific tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Job, error)

	// FindAllForTenant finds all jobs for a tenant with filtering
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter JobFilter) ([]Job, error)

	// FindByDateRange finds all jobs whose occurrence date falls within
	// [from, to], both inclusive calendar days
	FindByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]Job, error)

	// Save persists a new job. Jobs are immutable once created.
	Save(ctx context.Context, job *Job) error
}

// ExpenseFilter defines filtering options for expense queries
type ExpenseFilter struct {
	shared.Filter
	FromDate *time.Time // Filter by expense date range start (inclusive)
	ToDate   *time.Time // Filter by expense date range end (inclusive)
}

// ExpenseRepository defines the interface for expense persistence
type ExpenseRepository interface {
	// FindByID finds an expense by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)

	// FindByIDForTenant finds an expense by ID for a specific tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Expense, error)

	// FindAllForTenant finds all expenses for a tenant with filtering
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter ExpenseFilter) ([]Expense, error)

	// FindByDateRange finds all expenses whose date falls within [from, to]
	FindByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]Expense, error)

	// Save persists a new expense
	Save(ctx context.Context, expense *Expense) error
}

// DailyCloseRepository defines the interface for daily close persistence.
// Closes are insert-only; there is no update or delete path.
type DailyCloseRepository interface {
	// FindByDate finds the close for a specific date, or shared.ErrNotFound
	FindByDate(ctx context.Context, tenantID uuid.UUID, date time.Time) (*DailyClose, error)

	// Insert persists a new close. The storage layer enforces the
	// one-close-per-(tenant, date) invariant atomically; a duplicate
	// insert fails with shared.ErrAlreadyClosed regardless of any
	// earlier existence check.
	Insert(ctx context.Context, close *DailyClose) error

	// ListRecent returns closes ordered by close date descending,
	// capped at limit
	ListRecent(ctx context.Context, tenantID uuid.UUID, limit int) ([]DailyClose, error)
}
