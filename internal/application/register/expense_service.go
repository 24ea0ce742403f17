package register

import (
	"context"
	"time"

	"github.com/barberia/backend/internal/domain/register"
	"github.com/barberia/backend/internal/domain/shared"
	"github.com/barberia/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ExpenseService provides application-level expense operations
type ExpenseService struct {
	expenseRepo    register.ExpenseRepository
	cache          SummaryCache
	eventPublisher shared.EventPublisher
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo register.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// SetSummaryCache sets the summary cache used for day invalidation
func (s *ExpenseService) SetSummaryCache(cache SummaryCache) {
	s.cache = cache
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *ExpenseService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create records an expense
func (s *ExpenseService) Create(ctx context.Context, tenantID uuid.UUID, req CreateExpenseRequest) (*ExpenseResponse, error) {
	incurredOn := time.Now()
	if req.IncurredOn != nil {
		incurredOn = *req.IncurredOn
	}

	expense, err := register.NewExpense(
		tenantID,
		req.Description,
		valueobject.NewMoneyARS(req.Amount),
		incurredOn,
	)
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateDay(ctx, tenantID, expense.IncurredOn)
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, expense.GetDomainEvents()...)
	}

	return ToExpenseResponse(expense), nil
}

// GetByID gets an expense by ID
func (s *ExpenseService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Expense not found")
	}
	return ToExpenseResponse(expense), nil
}

// List lists expenses with filtering
func (s *ExpenseService) List(ctx context.Context, tenantID uuid.UUID, filter ExpenseListFilter) ([]ExpenseResponse, error) {
	domainFilter := register.ExpenseFilter{
		FromDate: filter.FromDate,
		ToDate:   filter.ToDate,
	}
	domainFilter.Page = filter.Page
	domainFilter.PageSize = filter.PageSize

	expenses, err := s.expenseRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = *ToExpenseResponse(&expenses[i])
	}
	return responses, nil
}
