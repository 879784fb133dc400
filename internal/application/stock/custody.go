package stock

import (
	"context"

	"github.com/govprop/backend/internal/application/txn"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/google/uuid"
)

// LoadCurrent loads a stock entry and rejects it when a newer entry exists for the same unit
func LoadCurrent(ctx context.Context, repos txn.TransactionalRepositories, stockID uuid.UUID) (*stock.Entry, error) {
	entry, err := repos.EntryRepo().FindByID(ctx, stockID)
	if err != nil {
		return nil, err
	}
	if !entry.IsUnitTracked() {
		return entry, nil
	}
	latest, err := repos.EntryRepo().FindLatestByItem(ctx, entry.AssetID, entry.ItemNo)
	if err != nil {
		return nil, err
	}
	if err := stock.EnsureLatest(entry, latest); err != nil {
		return nil, err
	}
	return entry, nil
}
