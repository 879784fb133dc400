package persistence

import (
	"context"

	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/waste"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormWasteRepository implements waste.Repository using GORM
type GormWasteRepository struct {
	db *gorm.DB
}

// NewGormWasteRepository creates a new GormWasteRepository
func NewGormWasteRepository(db *gorm.DB) *GormWasteRepository {
	return &GormWasteRepository{db: db}
}

// FindByID finds a waste document with its items
func (r *GormWasteRepository) FindByID(ctx context.Context, id uuid.UUID) (*waste.Waste, error) {
	return findDocument[waste.Waste](ctx, r.db, "Waste", "Items", "id = ?", id)
}

// FindAll lists waste documents
func (r *GormWasteRepository) FindAll(ctx context.Context, filter shared.Filter) ([]waste.Waste, int64, error) {
	return listDocuments[waste.Waste](ctx, r.db, "Items", filter)
}

// Save creates or updates a waste document and its items
func (r *GormWasteRepository) Save(ctx context.Context, w *waste.Waste) error {
	ids := make([]uuid.UUID, len(w.Items))
	for i := range w.Items {
		w.Items[i].WasteID = w.ID
		ids[i] = w.Items[i].ID
	}
	return saveWithChildren(r.db.WithContext(ctx), w, w.ID, "waste_id", w.Items, ids)
}

var _ waste.Repository = (*GormWasteRepository)(nil)
