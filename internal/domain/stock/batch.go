package stock

import (
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BatchItem is one line of a batch issuance or return
type BatchItem struct {
	AssetID               uuid.UUID
	Reference             string
	SerialNo              string
	Qty                   int
	ItemNo                string
	InitialCondition      *Condition
	Condition             Condition
	Balance               *int
	NumberOfDaysToConsume *int
}

// Movement derives the ledger movement for the item: returns come in, everything else goes out.
func (b BatchItem) Movement(officeID *uuid.UUID, createdBy *uuid.UUID) (Movement, error) {
	if b.Qty < 1 {
		return Movement{}, shared.NewDomainError(shared.CodeInvalidInput, "Batch item quantity must be at least 1")
	}
	m := Movement{
		AssetID:               b.AssetID,
		ItemNo:                b.ItemNo,
		Condition:             b.Condition,
		OfficeID:              officeID,
		Reference:             b.Reference,
		SerialNo:              b.SerialNo,
		Balance:               b.Balance,
		NumberOfDaysToConsume: b.NumberOfDaysToConsume,
		InitialCondition:      b.InitialCondition,
		CreatedBy:             createdBy,
	}
	if b.Condition == ConditionReturned {
		m.Ins = b.Qty
	} else {
		m.Outs = b.Qty
	}
	return m, nil
}

// IssueItem requests issuance of qty units of an asset
type IssueItem struct {
	AssetID               uuid.UUID
	Qty                   int
	Reference             string
	SerialNo              string
	NumberOfDaysToConsume *int
}
