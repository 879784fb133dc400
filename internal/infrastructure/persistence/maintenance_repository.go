package persistence

import (
	"context"

	"github.com/govprop/backend/internal/domain/maintenance"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMaintenanceRepository implements maintenance.Repository using GORM
type GormMaintenanceRepository struct {
	db *gorm.DB
}

// NewGormMaintenanceRepository creates a new GormMaintenanceRepository
func NewGormMaintenanceRepository(db *gorm.DB) *GormMaintenanceRepository {
	return &GormMaintenanceRepository{db: db}
}

// FindByID finds a maintenance request
func (r *GormMaintenanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*maintenance.Maintenance, error) {
	return findDocument[maintenance.Maintenance](ctx, r.db, "Maintenance request", "", "id = ?", id)
}

// FindAll lists maintenance requests
func (r *GormMaintenanceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]maintenance.Maintenance, int64, error) {
	return listDocuments[maintenance.Maintenance](ctx, r.db, "", filter)
}

// Save creates or updates a maintenance request
func (r *GormMaintenanceRepository) Save(ctx context.Context, m *maintenance.Maintenance) error {
	return r.db.WithContext(ctx).Save(m).Error
}

var _ maintenance.Repository = (*GormMaintenanceRepository)(nil)
