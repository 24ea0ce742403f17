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

// GormJobRepository implements JobRepository using GORM
type GormJobRepository struct {
	db *gorm.DB
}

// NewGormJobRepository creates a new GormJobRepository
func NewGormJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{db: db}
}

// FindByID finds a job by its ID
func (r *GormJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*register.Job, error) {
	var model models.JobModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateStoreError(err)
	}
	return model.ToDomain(), nil
}

// FindByIDForTenant finds a job by ID for a specific tenant
func (r *GormJobRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*register.Job, error) {
	var model models.JobModel
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

// FindAllForTenant finds all jobs for a tenant with filtering
func (r *GormJobRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter register.JobFilter) ([]register.Job, error) {
	var jobModels []models.JobModel
	query := r.db.WithContext(ctx).Model(&models.JobModel{}).
		Where("tenant_id = ?", tenantID)
	query = r.applyFilter(query, filter)

	if err := query.Find(&jobModels).Error; err != nil {
		return nil, translateStoreError(err)
	}
	jobs := make([]register.Job, len(jobModels))
	for i, model := range jobModels {
		jobs[i] = *model.ToDomain()
	}
	return jobs, nil
}

// FindByDateRange finds all jobs whose occurrence date falls within [from, to]
func (r *GormJobRepository) FindByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]register.Job, error) {
	var jobModels []models.JobModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND occurred_on >= ? AND occurred_on <= ?", tenantID, from, to).
		Order("occurred_on ASC, created_at ASC").
		Find(&jobModels).Error; err != nil {
		return nil, translateStoreError(err)
	}
	jobs := make([]register.Job, len(jobModels))
	for i, model := range jobModels {
		jobs[i] = *model.ToDomain()
	}
	return jobs, nil
}

// Save persists a new job. Jobs never change after creation, so this is
// always an insert.
func (r *GormJobRepository) Save(ctx context.Context, job *register.Job) error {
	model := models.JobModelFromDomain(job)
	return translateStoreError(r.db.WithContext(ctx).Create(model).Error)
}

// applyFilter applies filter conditions to query
func (r *GormJobRepository) applyFilter(query *gorm.DB, filter register.JobFilter) *gorm.DB {
	if filter.BarberID != nil {
		query = query.Where("barber_id = ?", *filter.BarberID)
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Method != nil {
		query = query.Where("method = ?", *filter.Method)
	}
	if filter.FromDate != nil {
		query = query.Where("occurred_on >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("occurred_on <= ?", *filter.ToDate)
	}

	sortField := ValidateSortField(filter.OrderBy, JobSortFields, "occurred_on")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	return query.Limit(filter.Limit()).Offset(filter.Offset())
}
