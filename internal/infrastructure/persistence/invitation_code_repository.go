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

// GormInvitationCodeRepository implements InvitationCodeRepository using GORM
type GormInvitationCodeRepository struct {
	db *gorm.DB
}

// NewGormInvitationCodeRepository creates a new GormInvitationCodeRepository
func NewGormInvitationCodeRepository(db *gorm.DB) *GormInvitationCodeRepository {
	return &GormInvitationCodeRepository{db: db}
}

// FindByCode finds an invitation code by its code string. Codes are
// globally unique, so no tenant scoping applies here: redeeming users
// do not yet belong to a shop.
func (r *GormInvitationCodeRepository) FindByCode(ctx context.Context, code string) (*staff.InvitationCode, error) {
	var model models.InvitationCodeModel
	if err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateStoreError(err)
	}
	return model.ToDomain(), nil
}

// FindAllForTenant lists invitation codes for a tenant
func (r *GormInvitationCodeRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]staff.InvitationCode, error) {
	var codeModels []models.InvitationCodeModel
	sortField := ValidateSortField(filter.OrderBy, map[string]bool{
		"created_at": true,
		"expires_at": true,
	}, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)

	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order(fmt.Sprintf("%s %s", sortField, sortOrder)).
		Limit(filter.Limit()).Offset(filter.Offset()).
		Find(&codeModels).Error; err != nil {
		return nil, translateStoreError(err)
	}
	codes := make([]staff.InvitationCode, len(codeModels))
	for i, model := range codeModels {
		codes[i] = *model.ToDomain()
	}
	return codes, nil
}

// Save creates or updates an invitation code
func (r *GormInvitationCodeRepository) Save(ctx context.Context, code *staff.InvitationCode) error {
	model := models.InvitationCodeModelFromDomain(code)
	return translateStoreError(r.db.WithContext(ctx).Save(model).Error)
}
