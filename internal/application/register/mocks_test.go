package register

import (
	"context"
	"time"

	"github.com/barberia/backend/internal/domain/catalog"
	"github.com/barberia/backend/internal/domain/register"
	"github.com/barberia/backend/internal/domain/shared"
	"github.com/barberia/backend/internal/domain/staff"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockJobRepository is a mock implementation of register.JobRepository
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*register.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*register.Job), args.Error(1)
}

func (m *MockJobRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*register.Job, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*register.Job), args.Error(1)
}

func (m *MockJobRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter register.JobFilter) ([]register.Job, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]register.Job), args.Error(1)
}

func (m *MockJobRepository) FindByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]register.Job, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]register.Job), args.Error(1)
}

func (m *MockJobRepository) Save(ctx context.Context, job *register.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

// MockExpenseRepository is a mock implementation of register.ExpenseRepository
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*register.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*register.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*register.Expense, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*register.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter register.ExpenseFilter) ([]register.Expense, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]register.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]register.Expense, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]register.Expense), args.Error(1)
}

func (m *MockExpenseRepository) Save(ctx context.Context, expense *register.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

// MockDailyCloseRepository is a mock implementation of register.DailyCloseRepository
type MockDailyCloseRepository struct {
	mock.Mock
}

func (m *MockDailyCloseRepository) FindByDate(ctx context.Context, tenantID uuid.UUID, date time.Time) (*register.DailyClose, error) {
	args := m.Called(ctx, tenantID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*register.DailyClose), args.Error(1)
}

func (m *MockDailyCloseRepository) Insert(ctx context.Context, close *register.DailyClose) error {
	args := m.Called(ctx, close)
	return args.Error(0)
}

func (m *MockDailyCloseRepository) ListRecent(ctx context.Context, tenantID uuid.UUID, limit int) ([]register.DailyClose, error) {
	args := m.Called(ctx, tenantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]register.DailyClose), args.Error(1)
}

// MockBarberRepository is a mock implementation of staff.BarberRepository
type MockBarberRepository struct {
	mock.Mock
}

func (m *MockBarberRepository) FindByID(ctx context.Context, id uuid.UUID) (*staff.Barber, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Barber), args.Error(1)
}

func (m *MockBarberRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*staff.Barber, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Barber), args.Error(1)
}

func (m *MockBarberRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter staff.BarberFilter) ([]staff.Barber, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]staff.Barber), args.Error(1)
}

func (m *MockBarberRepository) FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]staff.Barber, error) {
	args := m.Called(ctx, tenantID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]staff.Barber), args.Error(1)
}

func (m *MockBarberRepository) Save(ctx context.Context, barber *staff.Barber) error {
	args := m.Called(ctx, barber)
	return args.Error(0)
}

func (m *MockBarberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOfferingRepository is a mock implementation of catalog.ServiceOfferingRepository
type MockOfferingRepository struct {
	mock.Mock
}

func (m *MockOfferingRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ServiceOffering, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ServiceOffering), args.Error(1)
}

func (m *MockOfferingRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catalog.ServiceOffering, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ServiceOffering), args.Error(1)
}

func (m *MockOfferingRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter catalog.ServiceOfferingFilter) ([]catalog.ServiceOffering, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.ServiceOffering), args.Error(1)
}

func (m *MockOfferingRepository) Save(ctx context.Context, offering *catalog.ServiceOffering) error {
	args := m.Called(ctx, offering)
	return args.Error(0)
}

func (m *MockOfferingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSummaryCache is a mock implementation of SummaryCache
type MockSummaryCache struct {
	mock.Mock
}

func (m *MockSummaryCache) GetDaySummary(ctx context.Context, tenantID uuid.UUID, date time.Time) (*SummaryResponse, error) {
	args := m.Called(ctx, tenantID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SummaryResponse), args.Error(1)
}

func (m *MockSummaryCache) SetDaySummary(ctx context.Context, tenantID uuid.UUID, date time.Time, summary *SummaryResponse) error {
	args := m.Called(ctx, tenantID, date, summary)
	return args.Error(0)
}

func (m *MockSummaryCache) InvalidateDay(ctx context.Context, tenantID uuid.UUID, date time.Time) error {
	args := m.Called(ctx, tenantID, date)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of shared.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}
