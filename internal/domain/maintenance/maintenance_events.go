package maintenance

import (
	"github.com/govprop/backend/internal/domain/shared"
)

// AggregateTypeMaintenance is the aggregate type name for events
const AggregateTypeMaintenance = "Maintenance"

// EventTypeMaintenanceStatusChanged is raised on every transition, including creation
const EventTypeMaintenanceStatusChanged = "MaintenanceStatusChanged"

// MaintenanceStatusChangedEvent carries the old and new status
type MaintenanceStatusChangedEvent struct {
	shared.BaseDomainEvent
	MaintenanceNo string `json:"maintenance_no"`
	From          Status `json:"from,omitempty"`
	To            Status `json:"to"`
}

// NewMaintenanceStatusChangedEvent creates a new MaintenanceStatusChangedEvent
func NewMaintenanceStatusChangedEvent(m *Maintenance, from Status) *MaintenanceStatusChangedEvent {
	return &MaintenanceStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMaintenanceStatusChanged, AggregateTypeMaintenance, m.ID),
		MaintenanceNo:   m.MaintenanceNo,
		From:            from,
		To:              m.Status,
	}
}
