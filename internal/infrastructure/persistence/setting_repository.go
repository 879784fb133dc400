package persistence

import (
	"context"
	"errors"

	"github.com/govprop/backend/internal/domain/setting"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingRepository implements setting.Repository using GORM
type GormSettingRepository struct {
	db *gorm.DB
}

// NewGormSettingRepository creates a new GormSettingRepository
func NewGormSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

// FindByName returns the setting with the given name
func (r *GormSettingRepository) FindByName(ctx context.Context, name string) (*setting.Setting, error) {
	var m models.SettingModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Setting")
		}
		return nil, shared.NewInternalError(shared.CodeConfigUnavailable, "Configuration store unavailable", err)
	}
	return m.ToDomain(), nil
}

// Save inserts the setting or overwrites the existing value
func (r *GormSettingRepository) Save(ctx context.Context, s *setting.Setting) error {
	m := models.SettingModelFromDomain(s)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(m).Error
}

var _ setting.Repository = (*GormSettingRepository)(nil)
