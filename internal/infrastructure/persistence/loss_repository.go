package persistence

import (
	"context"

	"github.com/govprop/backend/internal/domain/loss"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLossRepository implements loss.Repository using GORM
type GormLossRepository struct {
	db *gorm.DB
}

// NewGormLossRepository creates a new GormLossRepository
func NewGormLossRepository(db *gorm.DB) *GormLossRepository {
	return &GormLossRepository{db: db}
}

// FindByID finds a loss report with its items
func (r *GormLossRepository) FindByID(ctx context.Context, id uuid.UUID) (*loss.Loss, error) {
	return findDocument[loss.Loss](ctx, r.db, "Loss report", "Items", "id = ?", id)
}

// FindAll lists loss reports
func (r *GormLossRepository) FindAll(ctx context.Context, filter shared.Filter) ([]loss.Loss, int64, error) {
	return listDocuments[loss.Loss](ctx, r.db, "Items", filter)
}

// Save creates or updates a loss report and its items
func (r *GormLossRepository) Save(ctx context.Context, l *loss.Loss) error {
	ids := make([]uuid.UUID, len(l.Items))
	for i := range l.Items {
		l.Items[i].LossID = l.ID
		ids[i] = l.Items[i].ID
	}
	return saveWithChildren(r.db.WithContext(ctx), l, l.ID, "loss_id", l.Items, ids)
}

var _ loss.Repository = (*GormLossRepository)(nil)
