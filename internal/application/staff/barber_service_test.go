package staff

import (
	"context"
	"testing"

	"github.com/barberia/backend/internal/domain/shared"
	"github.com/barberia/backend/internal/domain/staff"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

// MockInvitationCodeRepository is a mock implementation of staff.InvitationCodeRepository
type MockInvitationCodeRepository struct {
	mock.Mock
}

func (m *MockInvitationCodeRepository) FindByCode(ctx context.Context, code string) (*staff.InvitationCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.InvitationCode), args.Error(1)
}

func (m *MockInvitationCodeRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]staff.InvitationCode, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]staff.InvitationCode), args.Error(1)
}

func (m *MockInvitationCodeRepository) Save(ctx context.Context, code *staff.InvitationCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func TestBarberService_Create(t *testing.T) {
	barberRepo := new(MockBarberRepository)
	svc := NewBarberService(barberRepo)
	ctx := context.Background()
	tenantID := uuid.New()

	barberRepo.On("Save", ctx, mock.AnythingOfType("*staff.Barber")).Return(nil)

	resp, err := svc.Create(ctx, tenantID, CreateBarberRequest{
		FullName:        "Juan Pérez",
		CommissionType:  "PERCENTAGE",
		CommissionValue: decimal.NewFromInt(45),
	})

	require.NoError(t, err)
	assert.Equal(t, "Juan Pérez", resp.FullName)
	assert.Equal(t, "PERCENTAGE", resp.CommissionType)
	assert.True(t, resp.Active)
	barberRepo.AssertExpectations(t)
}

func TestBarberService_Create_InvalidCommission(t *testing.T) {
	svc := NewBarberService(new(MockBarberRepository))

	_, err := svc.Create(context.Background(), uuid.New(), CreateBarberRequest{
		FullName:        "Juan",
		CommissionType:  "PERCENTAGE",
		CommissionValue: decimal.NewFromInt(150),
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_COMMISSION", domainErr.Code)
}

func TestBarberService_UpdateCommission(t *testing.T) {
	barberRepo := new(MockBarberRepository)
	svc := NewBarberService(barberRepo)
	ctx := context.Background()
	tenantID := uuid.New()

	barber, err := staff.NewBarber(tenantID, "Juan", "PERCENTAGE", decimal.NewFromInt(40))
	require.NoError(t, err)

	barberRepo.On("FindByIDForTenant", ctx, tenantID, barber.ID).Return(barber, nil)
	barberRepo.On("Save", ctx, barber).Return(nil)

	resp, err := svc.UpdateCommission(ctx, tenantID, barber.ID, UpdateCommissionRequest{
		CommissionType:  "FIXED",
		CommissionValue: decimal.NewFromInt(300),
	})

	require.NoError(t, err)
	assert.Equal(t, "FIXED", resp.CommissionType)
	assert.True(t, decimal.NewFromInt(300).Equal(resp.CommissionValue))
}

func TestBarberService_GetByID_NotFound(t *testing.T) {
	barberRepo := new(MockBarberRepository)
	svc := NewBarberService(barberRepo)
	ctx := context.Background()
	tenantID := uuid.New()
	id := uuid.New()

	barberRepo.On("FindByIDForTenant", ctx, tenantID, id).Return(nil, nil)

	_, err := svc.GetByID(ctx, tenantID, id)

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestBarberService_SetActive(t *testing.T) {
	barberRepo := new(MockBarberRepository)
	svc := NewBarberService(barberRepo)
	ctx := context.Background()
	tenantID := uuid.New()

	barber, err := staff.NewBarber(tenantID, "Juan", "PERCENTAGE", decimal.NewFromInt(40))
	require.NoError(t, err)

	barberRepo.On("FindByIDForTenant", ctx, tenantID, barber.ID).Return(barber, nil)
	barberRepo.On("Save", ctx, barber).Return(nil)

	resp, err := svc.SetActive(ctx, tenantID, barber.ID, false)

	require.NoError(t, err)
	assert.False(t, resp.Active)
}
