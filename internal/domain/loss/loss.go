package loss

import (
	"fmt"
	"time"

	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/google/uuid"
)

// Status represents the status of a loss report
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

// CanTransitionTo returns true if the report can move to the target status
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusApproved
	case StatusApproved:
		return target == StatusCompleted
	}
	return false
}

// Loss reports units that were lost, stolen, damaged or destroyed while held by an office
type Loss struct {
	shared.BaseAggregateRoot
	LossNo      string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	OfficeID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReportedBy  uuid.UUID  `gorm:"type:uuid;not null"`
	Status      Status     `gorm:"type:varchar(20);not null;default:'pending';index"`
	Remarks     string     `gorm:"type:text"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid"`
	ApprovedBy  *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt  *time.Time
	CompletedBy *uuid.UUID `gorm:"type:uuid"`
	CompletedAt *time.Time
	Items       []LossItem `gorm:"foreignKey:LossID;references:ID"`
}

// TableName returns the table name for GORM
func (Loss) TableName() string {
	return "losses"
}

// LossItem is one reported unit or consumable quantity
type LossItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	LossID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	StockID        uuid.UUID       `gorm:"type:uuid;not null"`
	AssetID        uuid.UUID       `gorm:"type:uuid;not null"`
	ItemNo         string          `gorm:"type:varchar(20)"`
	Quantity       int             `gorm:"not null"`
	Condition      stock.Condition `gorm:"type:varchar(30);not null"`
	Circumstances  string          `gorm:"type:text"`
	PriorCondition stock.Condition `gorm:"type:varchar(30)"`
}

// TableName returns the table name for GORM
func (LossItem) TableName() string {
	return "loss_items"
}

// NewItem builds a loss line from the entry that holds the unit
func NewItem(entry *stock.Entry, quantity int, condition stock.Condition, circumstances string) (LossItem, error) {
	if !condition.IsLoss() {
		return LossItem{}, shared.NewDomainError(shared.CodeInvalidInput,
			fmt.Sprintf("%q is not a loss condition", condition))
	}
	if err := stock.EnsureQuantity(entry, quantity); err != nil {
		return LossItem{}, err
	}
	return LossItem{
		ID:             uuid.New(),
		StockID:        entry.ID,
		AssetID:        entry.AssetID,
		ItemNo:         entry.ItemNo,
		Quantity:       quantity,
		Condition:      condition,
		Circumstances:  circumstances,
		PriorCondition: entry.Condition,
	}, nil
}

// NewLoss creates a pending loss report
func NewLoss(lossNo string, officeID, reportedBy uuid.UUID, items []LossItem, remarks string, createdBy *uuid.UUID) (*Loss, error) {
	if lossNo == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Loss number is required")
	}
	if officeID == uuid.Nil || reportedBy == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Office and reporting person are required")
	}
	l := &Loss{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		LossNo:            lossNo,
		OfficeID:          officeID,
		ReportedBy:        reportedBy,
		Status:            StatusPending,
		Remarks:           remarks,
		CreatedBy:         createdBy,
	}
	if err := l.setItems(items); err != nil {
		return nil, err
	}
	l.AddDomainEvent(NewLossReportedEvent(l))
	return l, nil
}

func (l *Loss) setItems(items []LossItem) error {
	if len(items) == 0 {
		return shared.NewDomainError(shared.CodeInvalidInput, "A loss report needs at least one item")
	}
	seen := make(map[uuid.UUID]bool, len(items))
	for i := range items {
		if seen[items[i].StockID] {
			return shared.NewDomainError(shared.CodeInvalidInput, "A stock entry can only appear once per loss report")
		}
		seen[items[i].StockID] = true
		items[i].LossID = l.ID
	}
	l.Items = items
	return nil
}

// Update replaces the items and remarks of a pending report
func (l *Loss) Update(items []LossItem, remarks string) error {
	if l.Status != StatusPending {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Cannot update loss report in %s status", l.Status))
	}
	if err := l.setItems(items); err != nil {
		return err
	}
	l.Remarks = remarks
	l.IncrementVersion()
	return nil
}

// Approve moves the report to approved
func (l *Loss) Approve(approverID *uuid.UUID) error {
	if !l.Status.CanTransitionTo(StatusApproved) {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Cannot approve loss report in %s status", l.Status))
	}
	now := time.Now()
	l.Status = StatusApproved
	l.ApprovedBy = approverID
	l.ApprovedAt = &now
	l.IncrementVersion()
	l.AddDomainEvent(NewLossApprovedEvent(l))
	return nil
}

// Complete moves the report to completed. The caller writes the ledger entries.
func (l *Loss) Complete(completedBy *uuid.UUID) error {
	if !l.Status.CanTransitionTo(StatusCompleted) {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Cannot complete loss report in %s status", l.Status))
	}
	now := time.Now()
	l.Status = StatusCompleted
	l.CompletedBy = completedBy
	l.CompletedAt = &now
	l.IncrementVersion()
	l.AddDomainEvent(NewLossCompletedEvent(l))
	return nil
}

// BatchItems maps the reported lines onto status-only ledger movements
func (l *Loss) BatchItems() []stock.BatchItem {
	items := make([]stock.BatchItem, 0, len(l.Items))
	for _, it := range l.Items {
		prior := it.PriorCondition
		items = append(items, stock.BatchItem{
			AssetID:          it.AssetID,
			Reference:        l.LossNo,
			Qty:              it.Quantity,
			ItemNo:           it.ItemNo,
			InitialCondition: &prior,
			Condition:        it.Condition,
		})
	}
	return items
}
