package persistence

import (
	"context"
	"errors"

	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStockEntryRepository implements stock.EntryRepository using GORM.
// The ledger is append-only: there is no update or delete.
type GormStockEntryRepository struct {
	db *gorm.DB
}

// NewGormStockEntryRepository creates a new GormStockEntryRepository
func NewGormStockEntryRepository(db *gorm.DB) *GormStockEntryRepository {
	return &GormStockEntryRepository{db: db}
}

// Create appends an entry
func (r *GormStockEntryRepository) Create(ctx context.Context, entry *stock.Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// FindByID finds an entry by its ID
func (r *GormStockEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*stock.Entry, error) {
	var entry stock.Entry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Stock")
		}
		return nil, err
	}
	return &entry, nil
}

// FindByIDs finds entries by ID
func (r *GormStockEntryRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]stock.Entry, error) {
	var entries []stock.Entry
	if len(ids) == 0 {
		return entries, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindLatestByItem returns the newest entry of one unit
func (r *GormStockEntryRepository) FindLatestByItem(ctx context.Context, assetID uuid.UUID, itemNo string) (*stock.Entry, error) {
	var entry stock.Entry
	if err := r.db.WithContext(ctx).
		Where("asset_id = ? AND item_no = ?", assetID, itemNo).
		Order("created_at DESC").
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Stock")
		}
		return nil, err
	}
	return &entry, nil
}

// FindByAsset lists an asset's entries. Filters: "condition", "office_id".
func (r *GormStockEntryRepository) FindByAsset(ctx context.Context, assetID uuid.UUID, filter shared.Filter) ([]stock.Entry, int64, error) {
	query := r.db.WithContext(ctx).Model(&stock.Entry{}).Where("asset_id = ?", assetID)
	if c, ok := filter.Filters["condition"]; ok {
		query = query.Where("condition = ?", c)
	}
	if officeID, ok := filter.Filters["office_id"]; ok {
		query = query.Where("office_id = ?", officeID)
	}

	var entries []stock.Entry
	total, err := paginate(query, filter, StockEntrySortFields, &entries)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// FindByReference lists the entries written under a document number, oldest first
func (r *GormStockEntryRepository) FindByReference(ctx context.Context, reference string) ([]stock.Entry, error) {
	var entries []stock.Entry
	if err := r.db.WithContext(ctx).
		Where("reference = ?", reference).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// SumMovements totals ins and outs of quantity-affecting entries
func (r *GormStockEntryRepository) SumMovements(ctx context.Context, assetID uuid.UUID) (int, int, error) {
	var result struct {
		Ins  int
		Outs int
	}
	if err := r.db.WithContext(ctx).
		Model(&stock.Entry{}).
		Select("COALESCE(SUM(ins), 0) AS ins, COALESCE(SUM(outs), 0) AS outs").
		Where("asset_id = ? AND condition NOT IN ?", assetID, statusOnlyConditions()).
		Scan(&result).Error; err != nil {
		return 0, 0, err
	}
	return result.Ins, result.Outs, nil
}

func statusOnlyConditions() []string {
	var out []string
	for _, c := range stock.AllConditions {
		if c.IsStatusOnly() {
			out = append(out, c.String())
		}
	}
	return out
}

var _ stock.EntryRepository = (*GormStockEntryRepository)(nil)
