package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/barberia/backend/internal/domain/catalog"
	"github.com/barberia/backend/internal/domain/shared"
	"github.com/barberia/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormServiceOfferingRepository implements ServiceOfferingRepository using GORM
type GormServiceOfferingRepository struct {
	db *gorm.DB
}

// NewGormServiceOfferingRepository creates a new GormServiceOfferingRepository
func NewGormServiceOfferingRepository(db *gorm.DB) *GormServiceOfferingRepository {
	return &GormServiceOfferingRepository{db: db}
}

// FindByID finds a service offering by its ID
func (r *GormServiceOfferingRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ServiceOffering, error) {
	var model models.ServiceOfferingModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateStoreError(err)
	}
	return model.ToDomain(), nil
}

// FindByIDForTenant finds a service offering by ID for a specific tenant
func (r *GormServiceOfferingRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catalog.ServiceOffering, error) {
	var model models.ServiceOfferingModel
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

// FindAllForTenant finds all service offerings for a tenant with filtering
func (r *GormServiceOfferingRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter catalog.ServiceOfferingFilter) ([]catalog.ServiceOffering, error) {
	var offeringModels []models.ServiceOfferingModel
	query := r.db.WithContext(ctx).Model(&models.ServiceOfferingModel{}).
		Where("tenant_id = ?", tenantID)

	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	sortField := ValidateSortField(filter.OrderBy, ServiceOfferingSortFields, "name")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder)).
		Limit(filter.Limit()).Offset(filter.Offset())

	if err := query.Find(&offeringModels).Error; err != nil {
		return nil, translateStoreError(err)
	}
	offerings := make([]catalog.ServiceOffering, len(offeringModels))
	for i, model := range offeringModels {
		offerings[i] = *model.ToDomain()
	}
	return offerings, nil
}

// Save creates or updates a service offering
func (r *GormServiceOfferingRepository) Save(ctx context.Context, offering *catalog.ServiceOffering) error {
	model := models.ServiceOfferingModelFromDomain(offering)
	return translateStoreError(r.db.WithContext(ctx).Save(model).Error)
}

// Delete removes a service offering
func (r *GormServiceOfferingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ServiceOfferingModel{}, "id = ?", id)
	if result.Error != nil {
		return translateStoreError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
