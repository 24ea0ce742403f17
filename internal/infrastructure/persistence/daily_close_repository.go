package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/barberia/backend/internal/domain/register"
	"github.com/barberia/backend/internal/domain/shared"
	"github.com/barberia/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDailyCloseRepository implements DailyCloseRepository using GORM.
// Closes are insert-only; the unique index on (tenant_id, close_date)
// makes the one-close-per-day invariant hold even under concurrent inserts.
type GormDailyCloseRepository struct {
	db *gorm.DB
}

// NewGormDailyCloseRepository creates a new GormDailyCloseRepository
func NewGormDailyCloseRepository(db *gorm.DB) *GormDailyCloseRepository {
	return &GormDailyCloseRepository{db: db}
}

// FindByDate finds the close for a specific date, or shared.ErrNotFound
func (r *GormDailyCloseRepository) FindByDate(ctx context.Context, tenantID uuid.UUID, date time.Time) (*register.DailyClose, error) {
	var model models.DailyCloseModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND close_date = ?", tenantID, register.NormalizeDate(date)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateStoreError(err)
	}
	return model.ToDomain(), nil
}

// Insert persists a new close. A duplicate (tenant, date) insert is
// rejected by the unique index and surfaces as shared.ErrAlreadyClosed,
// so racing closers cannot both win.
func (r *GormDailyCloseRepository) Insert(ctx context.Context, close *register.DailyClose) error {
	model := models.DailyCloseModelFromDomain(close)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyClosed
		}
		return translateStoreError(err)
	}
	return nil
}

// ListRecent returns closes ordered by close date descending, capped at limit
func (r *GormDailyCloseRepository) ListRecent(ctx context.Context, tenantID uuid.UUID, limit int) ([]register.DailyClose, error) {
	var closeModels []models.DailyCloseModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("close_date DESC").
		Limit(limit).
		Find(&closeModels).Error; err != nil {
		return nil, translateStoreError(err)
	}
	closes := make([]register.DailyClose, len(closeModels))
	for i, model := range closeModels {
		closes[i] = *model.ToDomain()
	}
	return closes, nil
}
