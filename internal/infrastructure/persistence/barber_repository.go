package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/barberia/backend/internal/domain/shared"
	"github.com/barberia/backend/internal/domain/staff"
	"github.com/barberia/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBarberRepository implements BarberRepository using GORM
type GormBarberRepository struct {
	db *gorm.DB
}

// NewGormBarberRepository creates a new GormBarberRepository
func NewGormBarberRepository(db *gorm.DB) *GormBarberRepository {
	return &GormBarberRepository{db: db}
}

// FindByID finds a barber by its ID
func (r *GormBarberRepository) FindByID(ctx context.Context, id uuid.UUID) (*staff.Barber, error) {
	var model models.BarberModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateStoreError(err)
	}
	return model.ToDomain(), nil
}

// FindByIDForTenant finds a barber by ID for a specific tenant
func (r *GormBarberRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*staff.Barber, error) {
	var model models.BarberModel
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

// FindAllForTenant finds all barbers for a tenant with filtering
func (r *GormBarberRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter staff.BarberFilter) ([]staff.Barber, error) {
	var barberModels []models.BarberModel
	query := r.db.WithContext(ctx).Model(&models.BarberModel{}).
		Where("tenant_id = ?", tenantID)

	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.Search != "" {
		query = query.Where("full_name ILIKE ?", "%"+filter.Search+"%")
	}

	sortField := ValidateSortField(filter.OrderBy, BarberSortFields, "full_name")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder)).
		Limit(filter.Limit()).Offset(filter.Offset())

	if err := query.Find(&barberModels).Error; err != nil {
		return nil, translateStoreError(err)
	}
	barbers := make([]staff.Barber, len(barberModels))
	for i, model := range barberModels {
		barbers[i] = *model.ToDomain()
	}
	return barbers, nil
}

// FindByIDs finds barbers by a set of IDs for a tenant
func (r *GormBarberRepository) FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]staff.Barber, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var barberModels []models.BarberModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id IN ?", tenantID, ids).
		Find(&barberModels).Error; err != nil {
		return nil, translateStoreError(err)
	}
	barbers := make([]staff.Barber, len(barberModels))
	for i, model := range barberModels {
		barbers[i] = *model.ToDomain()
	}
	return barbers, nil
}

// Save creates or updates a barber
func (r *GormBarberRepository) Save(ctx context.Context, barber *staff.Barber) error {
	model := models.BarberModelFromDomain(barber)
	return translateStoreError(r.db.WithContext(ctx).Save(model).Error)
}

// Delete removes a barber
func (r *GormBarberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.BarberModel{}, "id = ?", id)
	if result.Error != nil {
		return translateStoreError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
