package waste

import (
	"github.com/govprop/backend/internal/domain/shared"
)

// AggregateTypeWaste is the aggregate type name for events
const AggregateTypeWaste = "Waste"

const (
	EventTypeWasteCreated   = "WasteCreated"
	EventTypeWasteCompleted = "WasteCompleted"
)

// WasteCreatedEvent is raised when units are queued for disposal
type WasteCreatedEvent struct {
	shared.BaseDomainEvent
	WasteNo   string `json:"waste_no"`
	ItemCount int    `json:"item_count"`
}

// NewWasteCreatedEvent creates a new WasteCreatedEvent
func NewWasteCreatedEvent(w *Waste) *WasteCreatedEvent {
	return &WasteCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeWasteCreated, AggregateTypeWaste, w.ID),
		WasteNo:         w.WasteNo,
		ItemCount:       len(w.Items),
	}
}

// WasteCompletedEvent is raised when disposal is approved
type WasteCompletedEvent struct {
	shared.BaseDomainEvent
	WasteNo string `json:"waste_no"`
}

// NewWasteCompletedEvent creates a new WasteCompletedEvent
func NewWasteCompletedEvent(w *Waste) *WasteCompletedEvent {
	return &WasteCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeWasteCompleted, AggregateTypeWaste, w.ID),
		WasteNo:         w.WasteNo,
	}
}
