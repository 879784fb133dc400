package persistence

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GoquUnitReader answers current-unit queries with a latest-entry-per-unit join built by goqu
// and executed on the caller's gorm connection.
type GoquUnitReader struct {
	db *gorm.DB
}

// NewGoquUnitReader creates a new GoquUnitReader
func NewGoquUnitReader(db *gorm.DB) *GoquUnitReader {
	return &GoquUnitReader{db: db}
}

func (r *GoquUnitReader) dialect() goqu.DialectWrapper {
	if r.db.Dialector != nil && r.db.Dialector.Name() == "sqlite" {
		return goqu.Dialect("sqlite3")
	}
	return goqu.Dialect("postgres")
}

// CurrentUnitsSQL renders the query for an asset's current units
func (r *GoquUnitReader) CurrentUnitsSQL(assetID uuid.UUID) (string, error) {
	d := r.dialect()
	latest := d.From("stock_entries").
		Select(goqu.C("asset_id"), goqu.C("item_no"), goqu.MAX("created_at").As("latest")).
		Where(
			goqu.C("asset_id").Eq(assetID.String()),
			goqu.C("item_no").Neq(""),
		).
		GroupBy("asset_id", "item_no")

	query := d.From(goqu.T("stock_entries").As("e")).
		Select(goqu.T("e").All()).
		InnerJoin(latest.As("l"), goqu.On(
			goqu.I("e.asset_id").Eq(goqu.I("l.asset_id")),
			goqu.I("e.item_no").Eq(goqu.I("l.item_no")),
			goqu.I("e.created_at").Eq(goqu.I("l.latest")),
		)).
		Where(goqu.I("e.asset_id").Eq(assetID.String()))

	sql, _, err := query.Prepared(false).ToSQL()
	if err != nil {
		return "", fmt.Errorf("build current units query: %w", err)
	}
	return sql, nil
}

// CurrentUnits returns the authoritative entry of every numbered unit of an asset, by item number
func (r *GoquUnitReader) CurrentUnits(ctx context.Context, assetID uuid.UUID) ([]stock.Entry, error) {
	sql, err := r.CurrentUnitsSQL(assetID)
	if err != nil {
		return nil, err
	}
	var entries []stock.Entry
	if err := r.db.WithContext(ctx).Raw(sql).Scan(&entries).Error; err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return itemOrder(entries[i].ItemNo) < itemOrder(entries[j].ItemNo)
	})
	return entries, nil
}

func itemOrder(itemNo string) int {
	n, err := strconv.Atoi(itemNo)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return n
}

var _ stock.UnitReader = (*GoquUnitReader)(nil)
