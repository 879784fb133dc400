package waste

import (
	"fmt"
	"time"

	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/google/uuid"
)

// Status represents the status of a waste disposal document
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// IsValid returns true if the status is valid
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusCompleted
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo returns true if the document can move to the target status
func (s Status) CanTransitionTo(target Status) bool {
	return s == StatusPending && target == StatusCompleted
}

// Waste lists unserviceable units awaiting disposal
type Waste struct {
	shared.BaseAggregateRoot
	WasteNo     string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	OfficeID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status      Status     `gorm:"type:varchar(20);not null;default:'pending';index"`
	Remarks     string     `gorm:"type:text"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid"`
	CompletedBy *uuid.UUID `gorm:"type:uuid"`
	CompletedAt *time.Time
	Items       []WasteItem `gorm:"foreignKey:WasteID;references:ID"`
}

// TableName returns the table name for GORM
func (Waste) TableName() string {
	return "wastes"
}

// WasteItem is one entry slated for disposal
type WasteItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	WasteID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	StockID        uuid.UUID       `gorm:"type:uuid;not null"`
	AssetID        uuid.UUID       `gorm:"type:uuid;not null"`
	ItemNo         string          `gorm:"type:varchar(20)"`
	Quantity       int             `gorm:"not null"`
	PriorCondition stock.Condition `gorm:"type:varchar(30)"`
}

// TableName returns the table name for GORM
func (WasteItem) TableName() string {
	return "waste_items"
}

// Disposable reports whether a unit in condition c can be put on a waste document
func Disposable(c stock.Condition) bool {
	return c == stock.ConditionForDisposal || c == stock.ConditionDamaged
}

// NewItem builds a waste line from the entry that marks the unit unserviceable
func NewItem(entry *stock.Entry, quantity int) (WasteItem, error) {
	if !Disposable(entry.Condition) {
		return WasteItem{}, shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Stock %s is %s; only for-disposal or damaged units can be wasted", entry.ID, entry.Condition))
	}
	if err := stock.EnsureQuantity(entry, quantity); err != nil {
		return WasteItem{}, err
	}
	return WasteItem{
		ID:             uuid.New(),
		StockID:        entry.ID,
		AssetID:        entry.AssetID,
		ItemNo:         entry.ItemNo,
		Quantity:       quantity,
		PriorCondition: entry.Condition,
	}, nil
}

// NewWaste creates a pending waste document
func NewWaste(wasteNo string, officeID uuid.UUID, items []WasteItem, remarks string, createdBy *uuid.UUID) (*Waste, error) {
	if wasteNo == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Waste number is required")
	}
	if officeID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Office ID is required")
	}
	w := &Waste{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		WasteNo:           wasteNo,
		OfficeID:          officeID,
		Status:            StatusPending,
		Remarks:           remarks,
		CreatedBy:         createdBy,
	}
	if err := w.setItems(items); err != nil {
		return nil, err
	}
	w.AddDomainEvent(NewWasteCreatedEvent(w))
	return w, nil
}

func (w *Waste) setItems(items []WasteItem) error {
	if len(items) == 0 {
		return shared.NewDomainError(shared.CodeInvalidInput, "A waste document needs at least one item")
	}
	seen := make(map[uuid.UUID]bool, len(items))
	for i := range items {
		if seen[items[i].StockID] {
			return shared.NewDomainError(shared.CodeInvalidInput, "A stock entry can only appear once per waste document")
		}
		seen[items[i].StockID] = true
		items[i].WasteID = w.ID
	}
	w.Items = items
	return nil
}

// Update replaces items and remarks while pending
func (w *Waste) Update(items []WasteItem, remarks string) error {
	if w.Status != StatusPending {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Cannot update waste document in %s status", w.Status))
	}
	if err := w.setItems(items); err != nil {
		return err
	}
	w.Remarks = remarks
	w.IncrementVersion()
	return nil
}

// Complete records disposal approval. The caller writes the ledger entries.
func (w *Waste) Complete(completedBy *uuid.UUID) error {
	if !w.Status.CanTransitionTo(StatusCompleted) {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Cannot complete waste document in %s status", w.Status))
	}
	now := time.Now()
	w.Status = StatusCompleted
	w.CompletedBy = completedBy
	w.CompletedAt = &now
	w.IncrementVersion()
	w.AddDomainEvent(NewWasteCompletedEvent(w))
	return nil
}

// BatchItems maps the disposal lines onto destroyed ledger movements
func (w *Waste) BatchItems() []stock.BatchItem {
	items := make([]stock.BatchItem, 0, len(w.Items))
	for _, it := range w.Items {
		prior := it.PriorCondition
		items = append(items, stock.BatchItem{
			AssetID:          it.AssetID,
			Reference:        w.WasteNo,
			Qty:              it.Quantity,
			ItemNo:           it.ItemNo,
			InitialCondition: &prior,
			Condition:        stock.ConditionDestroyed,
		})
	}
	return items
}
