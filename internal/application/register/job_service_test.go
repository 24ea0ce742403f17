package register

import (
	"context"
	"testing"
	"time"

	"github.com/barberia/backend/internal/domain/catalog"
	"github.com/barberia/backend/internal/domain/register"
	"github.com/barberia/backend/internal/domain/shared"
	"github.com/barberia/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func moneyARS(v int64) valueobject.Money {
	return valueobject.NewMoneyARS(decimal.NewFromInt(v))
}

func testOffering(t *testing.T, tenantID uuid.UUID, price int64) *catalog.ServiceOffering {
	t.Helper()
	offering, err := catalog.NewServiceOffering(tenantID, "Corte", moneyARS(price), 30)
	require.NoError(t, err)
	return offering
}

func newTestJobService() (*JobService, *MockJobRepository, *MockBarberRepository, *MockOfferingRepository) {
	jobRepo := new(MockJobRepository)
	barberRepo := new(MockBarberRepository)
	offeringRepo := new(MockOfferingRepository)
	svc := NewJobService(jobRepo, barberRepo, offeringRepo)
	return svc, jobRepo, barberRepo, offeringRepo
}

func TestJobService_Create_SnapshotsCommission(t *testing.T) {
	svc, jobRepo, barberRepo, offeringRepo := newTestJobService()
	ctx := context.Background()
	tenantID := uuid.New()

	barber := testBarber(t, tenantID, "Juan") // 50% commission
	offering := testOffering(t, tenantID, 1000)
	occurredOn := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

	barberRepo.On("FindByIDForTenant", ctx, tenantID, barber.ID).Return(barber, nil)
	offeringRepo.On("FindByIDForTenant", ctx, tenantID, offering.ID).Return(offering, nil)
	jobRepo.On("Save", ctx, mock.AnythingOfType("*register.Job")).Return(nil)

	resp, err := svc.Create(ctx, tenantID, CreateJobRequest{
		BarberID:   barber.ID,
		ServiceID:  offering.ID,
		Method:     "CASH",
		OccurredOn: &occurredOn,
	})

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(resp.Price))
	assert.True(t, decimal.NewFromInt(500).Equal(resp.Commission))
	assert.Equal(t, "CASH", resp.Method)
	assert.Equal(t, "Efectivo", resp.MethodDisplay)
	assert.Equal(t, occurredOn, resp.OccurredOn)
	jobRepo.AssertExpectations(t)
}

func TestJobService_Create_PriceOverride(t *testing.T) {
	svc, jobRepo, barberRepo, offeringRepo := newTestJobService()
	ctx := context.Background()
	tenantID := uuid.New()

	barber := testBarber(t, tenantID, "Juan")
	offering := testOffering(t, tenantID, 1000)
	override := decimal.NewFromInt(1500)

	barberRepo.On("FindByIDForTenant", ctx, tenantID, barber.ID).Return(barber, nil)
	offeringRepo.On("FindByIDForTenant", ctx, tenantID, offering.ID).Return(offering, nil)
	jobRepo.On("Save", ctx, mock.AnythingOfType("*register.Job")).Return(nil)

	resp, err := svc.Create(ctx, tenantID, CreateJobRequest{
		BarberID:  barber.ID,
		ServiceID: offering.ID,
		Price:     &override,
		Method:    "DIGITAL_WALLET",
	})

	require.NoError(t, err)
	assert.True(t, override.Equal(resp.Price))
	// commission follows the actual price, not the list price
	assert.True(t, decimal.NewFromInt(750).Equal(resp.Commission))
}

func TestJobService_Create_InactiveBarber(t *testing.T) {
	svc, _, barberRepo, _ := newTestJobService()
	ctx := context.Background()
	tenantID := uuid.New()

	barber := testBarber(t, tenantID, "Juan")
	barber.Deactivate()
	barberRepo.On("FindByIDForTenant", ctx, tenantID, barber.ID).Return(barber, nil)

	_, err := svc.Create(ctx, tenantID, CreateJobRequest{
		BarberID:  barber.ID,
		ServiceID: uuid.New(),
		Method:    "CASH",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestJobService_Create_BarberNotFound(t *testing.T) {
	svc, _, barberRepo, _ := newTestJobService()
	ctx := context.Background()
	tenantID := uuid.New()
	barberID := uuid.New()

	barberRepo.On("FindByIDForTenant", ctx, tenantID, barberID).Return(nil, nil)

	_, err := svc.Create(ctx, tenantID, CreateJobRequest{
		BarberID:  barberID,
		ServiceID: uuid.New(),
		Method:    "CASH",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestJobService_Create_InvalidMethod(t *testing.T) {
	svc, _, barberRepo, offeringRepo := newTestJobService()
	ctx := context.Background()
	tenantID := uuid.New()

	barber := testBarber(t, tenantID, "Juan")
	offering := testOffering(t, tenantID, 1000)
	barberRepo.On("FindByIDForTenant", ctx, tenantID, barber.ID).Return(barber, nil)
	offeringRepo.On("FindByIDForTenant", ctx, tenantID, offering.ID).Return(offering, nil)

	_, err := svc.Create(ctx, tenantID, CreateJobRequest{
		BarberID:  barber.ID,
		ServiceID: offering.ID,
		Method:    "CHEQUE",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PAYMENT_METHOD", domainErr.Code)
}

func TestJobService_Create_InvalidatesDayCache(t *testing.T) {
	svc, jobRepo, barberRepo, offeringRepo := newTestJobService()
	cache := new(MockSummaryCache)
	svc.SetSummaryCache(cache)

	ctx := context.Background()
	tenantID := uuid.New()
	barber := testBarber(t, tenantID, "Juan")
	offering := testOffering(t, tenantID, 1000)
	occurredOn := time.Date(2026, time.March, 14, 15, 45, 0, 0, time.UTC)
	day := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

	barberRepo.On("FindByIDForTenant", ctx, tenantID, barber.ID).Return(barber, nil)
	offeringRepo.On("FindByIDForTenant", ctx, tenantID, offering.ID).Return(offering, nil)
	jobRepo.On("Save", ctx, mock.AnythingOfType("*register.Job")).Return(nil)
	cache.On("InvalidateDay", ctx, tenantID, day).Return(nil)

	_, err := svc.Create(ctx, tenantID, CreateJobRequest{
		BarberID:   barber.ID,
		ServiceID:  offering.ID,
		Method:     "CASH",
		OccurredOn: &occurredOn,
	})

	require.NoError(t, err)
	cache.AssertExpectations(t)
}

func TestJobService_List_InvalidMethodFilter(t *testing.T) {
	svc, _, _, _ := newTestJobService()

	_, err := svc.List(context.Background(), uuid.New(), JobListFilter{Method: "CHEQUE"})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PAYMENT_METHOD", domainErr.Code)
}

func TestJobService_List(t *testing.T) {
	svc, jobRepo, _, _ := newTestJobService()
	ctx := context.Background()
	tenantID := uuid.New()
	day := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

	jobs := []register.Job{testJob(t, tenantID, uuid.New(), 1000, 500, register.PaymentMethodCash, day)}
	jobRepo.On("FindAllForTenant", ctx, tenantID, mock.AnythingOfType("register.JobFilter")).Return(jobs, nil)

	responses, err := svc.List(ctx, tenantID, JobListFilter{})

	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.True(t, decimal.NewFromInt(1000).Equal(responses[0].Price))
}
