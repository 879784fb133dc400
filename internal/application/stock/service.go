package stock

import (
	"context"

	"github.com/govprop/backend/internal/application/txn"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MovementRecorder receives one observation per ledger entry written
type MovementRecorder interface {
	RecordMovement(ctx context.Context, condition string, quantity int)
}

// Service is the stock ledger write path. Every quantity change goes through WriteMovement,
// which only accepts the repositories of an open unit of work.
type Service struct {
	txScope  txn.TransactionScope
	entries  stock.EntryRepository
	units    stock.UnitReader
	logger   *zap.Logger
	recorder MovementRecorder
}

// NewService creates a new stock Service
func NewService(txScope txn.TransactionScope, entries stock.EntryRepository, units stock.UnitReader, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		txScope: txScope,
		entries: entries,
		units:   units,
		logger:  logger,
	}
}

// SetMovementRecorder sets the metrics hook
func (s *Service) SetMovementRecorder(recorder MovementRecorder) {
	s.recorder = recorder
}

// WriteMovement appends one ledger entry and persists the asset's new quantity.
// The asset row stays locked until repos' transaction ends.
func (s *Service) WriteMovement(ctx context.Context, repos txn.TransactionalRepositories, m stock.Movement) (*stock.Entry, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	a, err := repos.AssetRepo().FindByIDForUpdate(ctx, m.AssetID)
	if err != nil {
		return nil, err
	}

	next, err := m.Condition.Apply(a.Quantity, m.Ins, m.Outs, m.Balance)
	if err != nil {
		return nil, err
	}

	entry, err := stock.NewEntry(m, next)
	if err != nil {
		return nil, err
	}
	if err := repos.EntryRepo().Create(ctx, entry); err != nil {
		return nil, err
	}

	if next != a.Quantity {
		if err := repos.AssetRepo().UpdateQuantity(ctx, a.ID, next); err != nil {
			return nil, err
		}
	}

	s.logger.Debug("stock movement written",
		zap.String("asset_id", a.ID.String()),
		zap.String("item_no", entry.ItemNo),
		zap.String("condition", entry.Condition.String()),
		zap.Int("ins", entry.Ins),
		zap.Int("outs", entry.Outs),
		zap.Int("balance", entry.Balance),
		zap.String("reference", entry.Reference),
	)
	if s.recorder != nil {
		s.recorder.RecordMovement(ctx, entry.Condition.String(), entry.Quantity())
	}
	return entry, nil
}

// CreateStock writes a single movement in its own transaction. Receipts in good condition
// are restocks and only apply to consumables.
func (s *Service) CreateStock(ctx context.Context, m stock.Movement) (*stock.Entry, error) {
	var entry *stock.Entry
	err := s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		if m.Condition == stock.ConditionGood {
			a, err := repos.AssetRepo().FindByID(ctx, m.AssetID)
			if err != nil {
				return err
			}
			if a.Type.IsUnitTracked() {
				return shared.NewDomainError(shared.CodeInvalidInput,
					"Property units are registered when the asset is created and cannot be restocked")
			}
			if m.Ins < 1 || m.Outs != 0 {
				return shared.NewDomainError(shared.CodeInvalidInput, "A restock must receive at least one unit")
			}
		}
		var err error
		entry, err = s.WriteMovement(ctx, repos, m)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// GetByID returns one ledger entry
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*EntryResponse, error) {
	entry, err := s.entries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToEntryResponse(entry)
	return &resp, nil
}

// ListByAsset pages through an asset's ledger, newest first
func (s *Service) ListByAsset(ctx context.Context, assetID uuid.UUID, filter EntryListFilter) ([]EntryResponse, int64, error) {
	entries, total, err := s.entries.FindByAsset(ctx, assetID, filter.ToShared())
	if err != nil {
		return nil, 0, err
	}
	return ToEntryResponses(entries), total, nil
}

// ListByReference returns the entries written by one document, oldest first
func (s *Service) ListByReference(ctx context.Context, reference string) ([]EntryResponse, error) {
	entries, err := s.entries.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	return ToEntryResponses(entries), nil
}

// CurrentUnits returns the authoritative entry of every numbered unit of an asset
func (s *Service) CurrentUnits(ctx context.Context, assetID uuid.UUID) ([]EntryResponse, error) {
	entries, err := s.units.CurrentUnits(ctx, assetID)
	if err != nil {
		return nil, err
	}
	return ToEntryResponses(entries), nil
}
