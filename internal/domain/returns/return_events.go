package returns

import (
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AggregateTypeReturn is the aggregate type name for events
const AggregateTypeReturn = "Return"

const (
	EventTypeReturnCreated   = "ReturnCreated"
	EventTypeReturnApproved  = "ReturnApproved"
	EventTypeReturnCompleted = "ReturnCompleted"
)

// ReturnCreatedEvent is raised when an office files a return
type ReturnCreatedEvent struct {
	shared.BaseDomainEvent
	ReturnNo  string    `json:"return_no"`
	OfficeID  uuid.UUID `json:"office_id"`
	ItemCount int       `json:"item_count"`
}

// NewReturnCreatedEvent creates a new ReturnCreatedEvent
func NewReturnCreatedEvent(r *Return) *ReturnCreatedEvent {
	return &ReturnCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReturnCreated, AggregateTypeReturn, r.ID),
		ReturnNo:        r.ReturnNo,
		OfficeID:        r.OfficeID,
		ItemCount:       len(r.Items),
	}
}

// ReturnApprovedEvent is raised when a return is approved
type ReturnApprovedEvent struct {
	shared.BaseDomainEvent
	ReturnNo   string     `json:"return_no"`
	ApprovedBy *uuid.UUID `json:"approved_by,omitempty"`
}

// NewReturnApprovedEvent creates a new ReturnApprovedEvent
func NewReturnApprovedEvent(r *Return) *ReturnApprovedEvent {
	return &ReturnApprovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReturnApproved, AggregateTypeReturn, r.ID),
		ReturnNo:        r.ReturnNo,
		ApprovedBy:      r.ApprovedBy,
	}
}

// ReturnCompletedEvent is raised when returned units are back on the ledger
type ReturnCompletedEvent struct {
	shared.BaseDomainEvent
	ReturnNo string    `json:"return_no"`
	OfficeID uuid.UUID `json:"office_id"`
}

// NewReturnCompletedEvent creates a new ReturnCompletedEvent
func NewReturnCompletedEvent(r *Return) *ReturnCompletedEvent {
	return &ReturnCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReturnCompleted, AggregateTypeReturn, r.ID),
		ReturnNo:        r.ReturnNo,
		OfficeID:        r.OfficeID,
	}
}
