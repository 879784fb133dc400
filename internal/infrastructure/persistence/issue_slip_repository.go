package persistence

import (
	"context"

	"github.com/govprop/backend/internal/domain/issueslip"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormIssueSlipRepository implements issueslip.Repository using GORM
type GormIssueSlipRepository struct {
	db *gorm.DB
}

// NewGormIssueSlipRepository creates a new GormIssueSlipRepository
func NewGormIssueSlipRepository(db *gorm.DB) *GormIssueSlipRepository {
	return &GormIssueSlipRepository{db: db}
}

// FindByID finds an issue slip with its released stocks
func (r *GormIssueSlipRepository) FindByID(ctx context.Context, id uuid.UUID) (*issueslip.IssueSlip, error) {
	return findDocument[issueslip.IssueSlip](ctx, r.db, "Issue slip", "Stocks", "id = ?", id)
}

// FindBySlipNo finds an issue slip by its number
func (r *GormIssueSlipRepository) FindBySlipNo(ctx context.Context, slipNo string) (*issueslip.IssueSlip, error) {
	return findDocument[issueslip.IssueSlip](ctx, r.db, "Issue slip", "Stocks", "slip_no = ?", slipNo)
}

// FindAll lists issue slips
func (r *GormIssueSlipRepository) FindAll(ctx context.Context, filter shared.Filter) ([]issueslip.IssueSlip, int64, error) {
	return listDocuments[issueslip.IssueSlip](ctx, r.db, "Stocks", filter)
}

// Save creates or updates an issue slip and its stock links
func (r *GormIssueSlipRepository) Save(ctx context.Context, slip *issueslip.IssueSlip) error {
	ids := make([]uuid.UUID, len(slip.Stocks))
	for i := range slip.Stocks {
		slip.Stocks[i].IssueSlipID = slip.ID
		ids[i] = slip.Stocks[i].ID
	}
	return saveWithChildren(r.db.WithContext(ctx), slip, slip.ID, "issue_slip_id", slip.Stocks, ids)
}

var _ issueslip.Repository = (*GormIssueSlipRepository)(nil)
