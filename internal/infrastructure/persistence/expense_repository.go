package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/barberia/backend/internal/domain/register"
	"github.com/barberia/backend/internal/domain/shared"
	"github.com/barberia/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormExpenseRepository implements ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// FindByID finds an expense by its ID
func (r *GormExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*register.Expense, error) {
	var model models.ExpenseModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateStoreError(err)
	}
	return model.ToDomain(), nil
}

// FindByIDForTenant finds an expense by ID for a specific tenant
func (r *GormExpenseRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*register.Expense, error) {
	var model models.ExpenseModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateStoreError(err)
	}
	return model.ToDomain(), nil
}

// FindAllForTenant finds all expenses for a tenant with filtering
func (r *GormExpenseRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter register.ExpenseFilter) ([]register.Expense, error) {
	var expenseModels []models.ExpenseModel
	query := r.db.WithContext(ctx).Model(&models.ExpenseModel{}).
		Where("tenant_id = ?", tenantID)
	query = r.applyFilter(query, filter)

	if err := query.Find(&expenseModels).Error; err != nil {
		return nil, translateStoreError(err)
	}
	expenses := make([]register.Expense, len(expenseModels))
	for i, model := range expenseModels {
		expenses[i] = *model.ToDomain()
	}
	return expenses, nil
}

// FindByDateRange finds all expenses whose date falls within [from, to]
func (r *GormExpenseRepository) FindByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]register.Expense, error) {
	var expenseModels []models.ExpenseModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND incurred_on >= ? AND incurred_on <= ?", tenantID, from, to).
		Order("incurred_on ASC, created_at ASC").
		Find(&expenseModels).Error; err != nil {
		return nil, translateStoreError(err)
	}
	expenses := make([]register.Expense, len(expenseModels))
	for i, model := range expenseModels {
		expenses[i] = *model.ToDomain()
	}
	return expenses, nil
}

// Save persists a new expense
func (r *GormExpenseRepository) Save(ctx context.Context, expense *register.Expense) error {
	model := models.ExpenseModelFromDomain(expense)
	return translateStoreError(r.db.WithContext(ctx).Create(model).Error)
}

// applyFilter applies filter conditions to query
func (r *GormExpenseRepository) applyFilter(query *gorm.DB, filter register.ExpenseFilter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("description ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.FromDate != nil {
		query = query.Where("incurred_on >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("incurred_on <= ?", *filter.ToDate)
	}

	sortField := ValidateSortField(filter.OrderBy, ExpenseSortFields, "incurred_on")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	return query.Limit(filter.Limit()).Offset(filter.Offset())
}
