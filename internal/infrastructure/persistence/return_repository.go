package persistence

import (
	"context"

	"github.com/govprop/backend/internal/domain/returns"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormReturnRepository implements returns.Repository using GORM
type GormReturnRepository struct {
	db *gorm.DB
}

// NewGormReturnRepository creates a new GormReturnRepository
func NewGormReturnRepository(db *gorm.DB) *GormReturnRepository {
	return &GormReturnRepository{db: db}
}

// FindByID finds a return with its items
func (r *GormReturnRepository) FindByID(ctx context.Context, id uuid.UUID) (*returns.Return, error) {
	return findDocument[returns.Return](ctx, r.db, "Return", "Items", "id = ?", id)
}

// FindAll lists returns
func (r *GormReturnRepository) FindAll(ctx context.Context, filter shared.Filter) ([]returns.Return, int64, error) {
	return listDocuments[returns.Return](ctx, r.db, "Items", filter)
}

// Save creates or updates a return and its items
func (r *GormReturnRepository) Save(ctx context.Context, ret *returns.Return) error {
	ids := make([]uuid.UUID, len(ret.Items))
	for i := range ret.Items {
		ret.Items[i].ReturnID = ret.ID
		ids[i] = ret.Items[i].ID
	}
	return saveWithChildren(r.db.WithContext(ctx), ret, ret.ID, "return_id", ret.Items, ids)
}

var _ returns.Repository = (*GormReturnRepository)(nil)
