package issueslip

import (
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AggregateTypeIssueSlip is the aggregate type name for events
const AggregateTypeIssueSlip = "IssueSlip"

const (
	EventTypeIssueSlipCreated = "IssueSlipCreated"
	EventTypeIssueSlipIssued  = "IssueSlipIssued"
)

// IssueSlipCreatedEvent is raised when a slip is drafted
type IssueSlipCreatedEvent struct {
	shared.BaseDomainEvent
	SlipNo   string    `json:"slip_no"`
	AssetID  uuid.UUID `json:"asset_id"`
	OfficeID uuid.UUID `json:"office_id"`
	Quantity int       `json:"quantity"`
}

// NewIssueSlipCreatedEvent creates a new IssueSlipCreatedEvent
func NewIssueSlipCreatedEvent(s *IssueSlip) *IssueSlipCreatedEvent {
	return &IssueSlipCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeIssueSlipCreated, AggregateTypeIssueSlip, s.ID),
		SlipNo:          s.SlipNo,
		AssetID:         s.AssetID,
		OfficeID:        s.OfficeID,
		Quantity:        s.Quantity,
	}
}

// IssueSlipIssuedEvent is raised when units leave the pool on a slip
type IssueSlipIssuedEvent struct {
	shared.BaseDomainEvent
	SlipNo     string    `json:"slip_no"`
	AssetID    uuid.UUID `json:"asset_id"`
	OfficeID   uuid.UUID `json:"office_id"`
	ReceivedBy uuid.UUID `json:"received_by"`
	ItemNos    []string  `json:"item_nos"`
}

// NewIssueSlipIssuedEvent creates a new IssueSlipIssuedEvent
func NewIssueSlipIssuedEvent(s *IssueSlip) *IssueSlipIssuedEvent {
	itemNos := make([]string, 0, len(s.Stocks))
	for _, st := range s.Stocks {
		itemNos = append(itemNos, st.ItemNo)
	}
	return &IssueSlipIssuedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeIssueSlipIssued, AggregateTypeIssueSlip, s.ID),
		SlipNo:          s.SlipNo,
		AssetID:         s.AssetID,
		OfficeID:        s.OfficeID,
		ReceivedBy:      s.ReceivedBy,
		ItemNos:         itemNos,
	}
}
