package stock

import (
	"context"
	"time"

	"github.com/govprop/backend/internal/application/txn"
	"github.com/govprop/backend/internal/domain/counter"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/google/uuid"
)

// TransferStock moves a held unit to another office under a new PTR number.
// The asset's pool quantity does not change.
func (s *Service) TransferStock(ctx context.Context, actor shared.Actor, stockID uuid.UUID, req TransferRequest) (*EntryResponse, error) {
	if !actor.CanManageStock() {
		return nil, shared.NewDomainError(shared.CodeForbidden, "Only supply officers can transfer stock")
	}
	if req.ToOfficeID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Destination office is required")
	}

	var entry *stock.Entry
	err := s.txScope.Execute(ctx, func(repos txn.TransactionalRepositories) error {
		source, err := LoadCurrent(ctx, repos, stockID)
		if err != nil {
			return err
		}
		if !source.Condition.IsHeld() || source.OfficeID == nil {
			return shared.NewDomainError(shared.CodeInvalidState, "Only issued stock can be transferred")
		}
		if *source.OfficeID == req.ToOfficeID {
			return shared.NewDomainError(shared.CodeInvalidInput, "Stock is already held by the destination office")
		}

		qty := req.Quantity
		if qty == 0 {
			qty = source.Quantity()
		}
		if err := stock.EnsureQuantity(source, qty); err != nil {
			return err
		}

		a, err := repos.AssetRepo().FindByIDForUpdate(ctx, source.AssetID)
		if err != nil {
			return err
		}
		ptrNo, err := counter.NextNumber(ctx, repos.CounterRepo(), counter.DocumentTransfer, time.Now())
		if err != nil {
			return err
		}

		to := req.ToOfficeID
		balance := a.Quantity
		initial := source.Condition
		entry, err = s.WriteMovement(ctx, repos, stock.Movement{
			AssetID:          source.AssetID,
			ItemNo:           source.ItemNo,
			Ins:              qty,
			Outs:             qty,
			Condition:        stock.ConditionTransferred,
			OfficeID:         &to,
			Reference:        ptrNo,
			SerialNo:         source.SerialNo,
			Balance:          &balance,
			InitialCondition: &initial,
			CreatedBy:        actor.UserRef(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	resp := ToEntryResponse(entry)
	return &resp, nil
}
