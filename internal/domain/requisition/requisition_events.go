package requisition

import (
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AggregateTypeRequisition is the aggregate type name for events
const AggregateTypeRequisition = "Requisition"

// EventTypeRequisitionStatusChanged is raised on creation and on every transition
const EventTypeRequisitionStatusChanged = "RequisitionStatusChanged"

// RequisitionStatusChangedEvent carries the old and new status
type RequisitionStatusChangedEvent struct {
	shared.BaseDomainEvent
	RISNo    string    `json:"ris_no"`
	OfficeID uuid.UUID `json:"office_id"`
	From     Status    `json:"from,omitempty"`
	To       Status    `json:"to"`
}

// NewRequisitionStatusChangedEvent creates a new RequisitionStatusChangedEvent
func NewRequisitionStatusChangedEvent(r *Requisition, from Status) *RequisitionStatusChangedEvent {
	return &RequisitionStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRequisitionStatusChanged, AggregateTypeRequisition, r.ID),
		RISNo:           r.RISNo,
		OfficeID:        r.OfficeID,
		From:            from,
		To:              r.Status,
	}
}
