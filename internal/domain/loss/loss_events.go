package loss

import (
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AggregateTypeLoss is the aggregate type name for events
const AggregateTypeLoss = "Loss"

const (
	EventTypeLossReported  = "LossReported"
	EventTypeLossApproved  = "LossApproved"
	EventTypeLossCompleted = "LossCompleted"
)

// ReportedItem summarises a line of a loss report for notifications
type ReportedItem struct {
	ItemNo    string `json:"item_no"`
	Quantity  int    `json:"quantity"`
	Condition string `json:"condition"`
}

// LossReportedEvent is raised when an office files a loss report and approval is requested
type LossReportedEvent struct {
	shared.BaseDomainEvent
	LossNo     string         `json:"loss_no"`
	OfficeID   uuid.UUID      `json:"office_id"`
	ReportedBy uuid.UUID      `json:"reported_by"`
	Items      []ReportedItem `json:"items"`
}

// NewLossReportedEvent creates a new LossReportedEvent
func NewLossReportedEvent(l *Loss) *LossReportedEvent {
	items := make([]ReportedItem, 0, len(l.Items))
	for _, it := range l.Items {
		items = append(items, ReportedItem{ItemNo: it.ItemNo, Quantity: it.Quantity, Condition: it.Condition.String()})
	}
	return &LossReportedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLossReported, AggregateTypeLoss, l.ID),
		LossNo:          l.LossNo,
		OfficeID:        l.OfficeID,
		ReportedBy:      l.ReportedBy,
		Items:           items,
	}
}

// LossApprovedEvent is raised when a loss report is approved
type LossApprovedEvent struct {
	shared.BaseDomainEvent
	LossNo string `json:"loss_no"`
}

// NewLossApprovedEvent creates a new LossApprovedEvent
func NewLossApprovedEvent(l *Loss) *LossApprovedEvent {
	return &LossApprovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLossApproved, AggregateTypeLoss, l.ID),
		LossNo:          l.LossNo,
	}
}

// LossCompletedEvent is raised once the losses are on the ledger
type LossCompletedEvent struct {
	shared.BaseDomainEvent
	LossNo string `json:"loss_no"`
}

// NewLossCompletedEvent creates a new LossCompletedEvent
func NewLossCompletedEvent(l *Loss) *LossCompletedEvent {
	return &LossCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLossCompleted, AggregateTypeLoss, l.ID),
		LossNo:          l.LossNo,
	}
}
