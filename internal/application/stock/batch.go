package stock

import (
	"context"

	"github.com/govprop/backend/internal/application/txn"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ApplyBatch writes every item through WriteMovement, in order. The first failure is
// returned as is and the caller's transaction rolls all earlier writes back.
func (s *Service) ApplyBatch(ctx context.Context, repos txn.TransactionalRepositories, officeID uuid.UUID, createdBy *uuid.UUID, items []stock.BatchItem) ([]stock.Entry, error) {
	if len(items) == 0 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Batch must contain at least one item")
	}

	office := officeRef(officeID)
	entries := make([]stock.Entry, 0, len(items))
	for i, item := range items {
		m, err := item.Movement(office, createdBy)
		if err != nil {
			return nil, err
		}
		entry, err := s.WriteMovement(ctx, repos, m)
		if err != nil {
			s.logger.Info("batch aborted",
				zap.Int("item_index", i),
				zap.String("asset_id", item.AssetID.String()),
				zap.Error(err),
			)
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

// CreateStockByBatch applies a batch in its own transaction
func (s *Service) CreateStockByBatch(ctx context.Context, officeID uuid.UUID, createdBy *uuid.UUID, items []stock.BatchItem) ([]stock.Entry, error) {
	var entries []stock.Entry
	err := s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		var err error
		entries, err = s.ApplyBatch(ctx, repos, officeID, createdBy, items)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// IssueStockByBatch issues every item to officeID in its own transaction
func (s *Service) IssueStockByBatch(ctx context.Context, officeID uuid.UUID, createdBy *uuid.UUID, items []stock.IssueItem) ([]stock.Entry, error) {
	var entries []stock.Entry
	err := s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		var err error
		entries, err = s.IssueInTx(ctx, repos, officeID, createdBy, items)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// IssueInTx issues items to officeID inside the caller's unit of work. Property assets get
// one reissued entry per unit, returned units first and then freshly numbered ones;
// consumables get a single entry.
func (s *Service) IssueInTx(ctx context.Context, repos txn.TransactionalRepositories, officeID uuid.UUID, createdBy *uuid.UUID, items []stock.IssueItem) ([]stock.Entry, error) {
	if len(items) == 0 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Issuance must contain at least one item")
	}
	if officeID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Receiving office is required")
	}

	var entries []stock.Entry
	for _, item := range items {
		batch, err := s.issueBatch(ctx, repos, item)
		if err != nil {
			return nil, err
		}
		written, err := s.ApplyBatch(ctx, repos, officeID, createdBy, batch)
		if err != nil {
			return nil, err
		}
		entries = append(entries, written...)
	}
	return entries, nil
}

func (s *Service) issueBatch(ctx context.Context, repos txn.TransactionalRepositories, item stock.IssueItem) ([]stock.BatchItem, error) {
	if item.Qty < 1 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Issued quantity must be at least 1")
	}

	a, err := repos.AssetRepo().FindByIDForUpdate(ctx, item.AssetID)
	if err != nil {
		return nil, err
	}
	if err := stock.CheckAvailability(a.Quantity, item.Qty); err != nil {
		return nil, err
	}

	good := stock.ConditionGood
	if !a.Type.IsUnitTracked() {
		return []stock.BatchItem{{
			AssetID:               a.ID,
			Reference:             item.Reference,
			SerialNo:              item.SerialNo,
			Qty:                   item.Qty,
			InitialCondition:      &good,
			Condition:             stock.ConditionReissued,
			NumberOfDaysToConsume: item.NumberOfDaysToConsume,
		}}, nil
	}

	units, err := repos.UnitReader().CurrentUnits(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	var returned []string
	for _, u := range units {
		if u.Condition == stock.ConditionReturned {
			returned = append(returned, u.ItemNo)
		}
	}
	reused, fresh, err := stock.PlanIssuance(a.InitialQty, a.Quantity, returned, item.Qty)
	if err != nil {
		return nil, err
	}

	back := stock.ConditionReturned
	batch := make([]stock.BatchItem, 0, item.Qty)
	unit := func(no string, from *stock.Condition) stock.BatchItem {
		return stock.BatchItem{
			AssetID:          a.ID,
			Reference:        item.Reference,
			SerialNo:         item.SerialNo,
			Qty:              1,
			ItemNo:           no,
			InitialCondition: from,
			Condition:        stock.ConditionReissued,
		}
	}
	for _, no := range reused {
		batch = append(batch, unit(no, &back))
	}
	for _, no := range fresh {
		batch = append(batch, unit(no, &good))
	}
	return batch, nil
}

func officeRef(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
