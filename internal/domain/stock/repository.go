package stock

import (
	"context"

	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EntryRepository is the append-only store of ledger entries
type EntryRepository interface {
	// Create appends an entry. Entries are never updated.
	Create(ctx context.Context, entry *Entry) error

	// FindByID finds an entry by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Entry, error)

	// FindByIDs finds entries by ID, in no particular order
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Entry, error)

	// FindLatestByItem returns the authoritative entry for a unit of an asset
	FindLatestByItem(ctx context.Context, assetID uuid.UUID, itemNo string) (*Entry, error)

	// FindByAsset lists an asset's entries, newest first
	FindByAsset(ctx context.Context, assetID uuid.UUID, filter shared.Filter) ([]Entry, int64, error)

	// FindByReference lists the entries written by one document
	FindByReference(ctx context.Context, reference string) ([]Entry, error)

	// SumMovements returns total ins and outs for an asset, excluding status-only conditions
	SumMovements(ctx context.Context, assetID uuid.UUID) (ins, outs int, err error)
}

// UnitReader answers "what condition is each unit in right now"
type UnitReader interface {
	// CurrentUnits returns the latest entry of every unit of an asset, ordered by item number
	CurrentUnits(ctx context.Context, assetID uuid.UUID) ([]Entry, error)
}
