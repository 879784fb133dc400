package persistence

import (
	"context"

	"github.com/govprop/backend/internal/domain/requisition"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRequisitionRepository implements requisition.Repository using GORM
type GormRequisitionRepository struct {
	db *gorm.DB
}

// NewGormRequisitionRepository creates a new GormRequisitionRepository
func NewGormRequisitionRepository(db *gorm.DB) *GormRequisitionRepository {
	return &GormRequisitionRepository{db: db}
}

// FindByID finds a requisition with its items
func (r *GormRequisitionRepository) FindByID(ctx context.Context, id uuid.UUID) (*requisition.Requisition, error) {
	return findDocument[requisition.Requisition](ctx, r.db, "Requisition", "Items", "id = ?", id)
}

// FindByRISNo finds a requisition by its number
func (r *GormRequisitionRepository) FindByRISNo(ctx context.Context, risNo string) (*requisition.Requisition, error) {
	return findDocument[requisition.Requisition](ctx, r.db, "Requisition", "Items", "ris_no = ?", risNo)
}

// FindAll lists requisitions
func (r *GormRequisitionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]requisition.Requisition, int64, error) {
	return listDocuments[requisition.Requisition](ctx, r.db, "Items", filter)
}

// Save creates or updates a requisition and its items
func (r *GormRequisitionRepository) Save(ctx context.Context, ris *requisition.Requisition) error {
	ids := make([]uuid.UUID, len(ris.Items))
	for i := range ris.Items {
		ris.Items[i].RequisitionID = ris.ID
		ids[i] = ris.Items[i].ID
	}
	return saveWithChildren(r.db.WithContext(ctx), ris, ris.ID, "requisition_id", ris.Items, ids)
}

var _ requisition.Repository = (*GormRequisitionRepository)(nil)
