package returns

import (
	"fmt"
	"time"

	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/google/uuid"
)

// Status represents the status of a return
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusCompleted Status = "completed"
)

// IsValid returns true if the status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsTerminal returns true if no further transition is possible
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// CanTransitionTo returns true if the return can move to the target status
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusApproved
	case StatusApproved:
		return target == StatusCompleted
	}
	return false
}

// StockRemark says what the supply office should do with a returned unit
type StockRemark string

const (
	RemarkForReissue  StockRemark = "for-reissue"
	RemarkForDisposal StockRemark = "for-disposal"
)

// IsValid returns true if the remark is known
func (r StockRemark) IsValid() bool {
	return r == RemarkForReissue || r == RemarkForDisposal
}

// Condition is the ledger condition written when the return completes
func (r StockRemark) Condition() stock.Condition {
	if r == RemarkForDisposal {
		return stock.ConditionForDisposal
	}
	return stock.ConditionReturned
}

// Return hands issued units back to the supply office
type Return struct {
	shared.BaseAggregateRoot
	ReturnNo    string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	OfficeID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReturnedBy  uuid.UUID  `gorm:"type:uuid;not null"`
	Status      Status     `gorm:"type:varchar(20);not null;default:'pending';index"`
	Remarks     string     `gorm:"type:text"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid"`
	ApprovedBy  *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt  *time.Time
	CompletedBy *uuid.UUID `gorm:"type:uuid"`
	CompletedAt *time.Time
	Items       []ReturnItem `gorm:"foreignKey:ReturnID;references:ID"`
}

// TableName returns the table name for GORM
func (Return) TableName() string {
	return "returns"
}

// ReturnItem is one returned stock entry
type ReturnItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ReturnID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	StockID        uuid.UUID       `gorm:"type:uuid;not null"`
	AssetID        uuid.UUID       `gorm:"type:uuid;not null"`
	ItemNo         string          `gorm:"type:varchar(20)"`
	Quantity       int             `gorm:"not null"`
	StockRemarks   StockRemark     `gorm:"type:varchar(20);not null"`
	PriorCondition stock.Condition `gorm:"type:varchar(30)"`
}

// TableName returns the table name for GORM
func (ReturnItem) TableName() string {
	return "return_items"
}

// NewItem builds a return line from the entry being returned
func NewItem(entry *stock.Entry, quantity int, remark StockRemark) (ReturnItem, error) {
	if !remark.IsValid() {
		return ReturnItem{}, shared.NewDomainError(shared.CodeInvalidInput,
			fmt.Sprintf("Unknown stock remark %q", remark))
	}
	if err := stock.EnsureQuantity(entry, quantity); err != nil {
		return ReturnItem{}, err
	}
	return ReturnItem{
		ID:             uuid.New(),
		StockID:        entry.ID,
		AssetID:        entry.AssetID,
		ItemNo:         entry.ItemNo,
		Quantity:       quantity,
		StockRemarks:   remark,
		PriorCondition: entry.Condition,
	}, nil
}

// NewReturn creates a pending return
func NewReturn(returnNo string, officeID, returnedBy uuid.UUID, items []ReturnItem, remarks string, createdBy *uuid.UUID) (*Return, error) {
	if returnNo == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Return number is required")
	}
	if officeID == uuid.Nil || returnedBy == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Office and returning person are required")
	}
	r := &Return{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ReturnNo:          returnNo,
		OfficeID:          officeID,
		ReturnedBy:        returnedBy,
		Status:            StatusPending,
		CreatedBy:         createdBy,
	}
	if err := r.setItems(items); err != nil {
		return nil, err
	}
	r.Remarks = remarks
	r.AddDomainEvent(NewReturnCreatedEvent(r))
	return r, nil
}

func (r *Return) setItems(items []ReturnItem) error {
	if len(items) == 0 {
		return shared.NewDomainError(shared.CodeInvalidInput, "A return needs at least one item")
	}
	seen := make(map[uuid.UUID]bool, len(items))
	for i := range items {
		if seen[items[i].StockID] {
			return shared.NewDomainError(shared.CodeInvalidInput, "A stock entry can only appear once per return")
		}
		seen[items[i].StockID] = true
		items[i].ReturnID = r.ID
	}
	r.Items = items
	return nil
}

// Update replaces the items and remarks of a pending return
func (r *Return) Update(items []ReturnItem, remarks string) error {
	if r.Status != StatusPending {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Cannot update return in %s status", r.Status))
	}
	if err := r.setItems(items); err != nil {
		return err
	}
	r.Remarks = remarks
	r.IncrementVersion()
	return nil
}

// Approve moves the return to approved
func (r *Return) Approve(approverID *uuid.UUID) error {
	if !r.Status.CanTransitionTo(StatusApproved) {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Cannot approve return in %s status", r.Status))
	}
	now := time.Now()
	r.Status = StatusApproved
	r.ApprovedBy = approverID
	r.ApprovedAt = &now
	r.IncrementVersion()
	r.AddDomainEvent(NewReturnApprovedEvent(r))
	return nil
}

// Complete moves the return to completed. The caller writes the ledger entries.
func (r *Return) Complete(completedBy *uuid.UUID) error {
	if !r.Status.CanTransitionTo(StatusCompleted) {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Cannot complete return in %s status", r.Status))
	}
	now := time.Now()
	r.Status = StatusCompleted
	r.CompletedBy = completedBy
	r.CompletedAt = &now
	r.IncrementVersion()
	r.AddDomainEvent(NewReturnCompletedEvent(r))
	return nil
}

// BatchItems maps the return lines onto ledger movements
func (r *Return) BatchItems() []stock.BatchItem {
	items := make([]stock.BatchItem, 0, len(r.Items))
	for _, it := range r.Items {
		prior := it.PriorCondition
		items = append(items, stock.BatchItem{
			AssetID:          it.AssetID,
			Reference:        r.ReturnNo,
			Qty:              it.Quantity,
			ItemNo:           it.ItemNo,
			InitialCondition: &prior,
			Condition:        it.StockRemarks.Condition(),
		})
	}
	return items
}
