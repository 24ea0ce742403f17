package register

import (
	"context"
	"testing"
	"time"

	"github.com/barberia/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"
)

func TestExpenseService_Create(t *testing.T) {
	expenseRepo := new(MockExpenseRepository)
	svc := NewExpenseService(expenseRepo)
	ctx := context.Background()
	tenantID := uuid.New()
	incurredOn := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)

	expenseRepo.On("Save", ctx, mock.AnythingOfType("*register.Expense")).Return(nil)

	resp, err := svc.Create(ctx, tenantID, CreateExpenseRequest{
		Description: "razor blades",
		Amount:      decimal.NewFromInt(350),
		IncurredOn:  &incurredOn,
	})

	require.NoError(t, err)
	assert.Equal(t, "razor blades", resp.Description)
	assert.True(t, decimal.NewFromInt(350).Equal(resp.Amount))
	assert.Equal(t, time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC), resp.IncurredOn)
	expenseRepo.AssertExpectations(t)
}

func TestExpenseService_Create_InvalidAmount(t *testing.T) {
	svc := NewExpenseService(new(MockExpenseRepository))

	_, err := svc.Create(context.Background(), uuid.New(), CreateExpenseRequest{
		Description: "supplies",
		Amount:      decimal.NewFromInt(-10),
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_AMOUNT", domainErr.Code)
}

func TestExpenseService_Create_InvalidatesDayCache(t *testing.T) {
	expenseRepo := new(MockExpenseRepository)
	svc := NewExpenseService(expenseRepo)
	cache := new(MockSummaryCache)
	svc.SetSummaryCache(cache)

	ctx := context.Background()
	tenantID := uuid.New()
	incurredOn := time.Date(2026, time.March, 14, 18, 0, 0, 0, time.UTC)
	day := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

	expenseRepo.On("Save", ctx, mock.AnythingOfType("*register.Expense")).Return(nil)
	cache.On("InvalidateDay", ctx, tenantID, day).Return(nil)

	_, err := svc.Create(ctx, tenantID, CreateExpenseRequest{
		Description: "supplies",
		Amount:      decimal.NewFromInt(100),
		IncurredOn:  &incurredOn,
	})

	require.NoError(t, err)
	cache.AssertExpectations(t)
}
