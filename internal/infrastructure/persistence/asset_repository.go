package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/govprop/backend/internal/domain/asset"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAssetRepository implements asset.Repository using GORM
type GormAssetRepository struct {
	db *gorm.DB
}

// NewGormAssetRepository creates a new GormAssetRepository
func NewGormAssetRepository(db *gorm.DB) *GormAssetRepository {
	return &GormAssetRepository{db: db}
}

func (r *GormAssetRepository) live(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.AssetModel{}).Where("deleted_at IS NULL")
}

// FindByID finds a live asset by its ID
func (r *GormAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*asset.Asset, error) {
	var m models.AssetModel
	if err := r.live(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Asset")
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

// FindByIDForUpdate loads a live asset with SELECT ... FOR UPDATE
func (r *GormAssetRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*asset.Asset, error) {
	var m models.AssetModel
	if err := r.live(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Asset")
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

// FindAll lists live assets. Filters: "type" (asset.Type or string).
func (r *GormAssetRepository) FindAll(ctx context.Context, filter shared.Filter) ([]asset.Asset, int64, error) {
	query := r.live(ctx)
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(article_code) LIKE ?", pattern, pattern)
	}
	if t, ok := filter.Filters["type"]; ok {
		query = query.Where("type = ?", t)
	}

	var rows []models.AssetModel
	total, err := paginate(query, filter, AssetSortFields, &rows)
	if err != nil {
		return nil, 0, err
	}
	assets := make([]asset.Asset, len(rows))
	for i := range rows {
		assets[i] = *rows[i].ToDomain()
	}
	return assets, total, nil
}

// ExistsByName reports whether a live asset other than excludeID already uses name
func (r *GormAssetRepository) ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	query := r.live(ctx).Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name)))
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an asset
func (r *GormAssetRepository) Save(ctx context.Context, a *asset.Asset) error {
	return r.db.WithContext(ctx).Save(models.AssetModelFromDomain(a)).Error
}

// UpdateQuantity writes only the cached quantity
func (r *GormAssetRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	result := r.db.WithContext(ctx).Model(&models.AssetModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Asset")
	}
	return nil
}

var _ asset.Repository = (*GormAssetRepository)(nil)
