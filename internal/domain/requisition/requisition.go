package requisition

import (
	"fmt"
	"strings"
	"time"

	"github.com/govprop/backend/internal/domain/setting"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/google/uuid"
)

// Status represents the status of a requisition and issue slip (RIS)
type Status string

const (
	StatusForEvaluation Status = "for-evaluation"
	StatusEvaluating    Status = "evaluating"
	StatusForReview     Status = "for-review"
	StatusPending       Status = "pending"
	StatusIssued        Status = "issued"
	StatusCancelled     Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusForEvaluation: {StatusEvaluating, StatusCancelled},
	StatusEvaluating:    {StatusForReview, StatusCancelled},
	StatusForReview:     {StatusPending, StatusCancelled},
	StatusPending:       {StatusIssued, StatusCancelled},
}

// IsValid returns true if the status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusForEvaluation, StatusEvaluating, StatusForReview, StatusPending, StatusIssued, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsTerminal returns true for issued and cancelled
func (s Status) IsTerminal() bool {
	return s == StatusIssued || s == StatusCancelled
}

// CanTransitionTo returns true if the requisition can move to the target status
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Requisition is an office's request for consumables
type Requisition struct {
	shared.BaseAggregateRoot
	RISNo           string     `gorm:"column:ris_no;type:varchar(50);not null;uniqueIndex"`
	OfficeID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	RequestedBy     uuid.UUID  `gorm:"type:uuid;not null"`
	IssuingOfficeID *uuid.UUID `gorm:"type:uuid"`
	Purpose         string     `gorm:"type:text"`
	Status          Status     `gorm:"type:varchar(20);not null;default:'for-evaluation';index"`
	EntityName      string     `gorm:"type:varchar(200)"`
	FundCluster     string     `gorm:"type:varchar(100)"`
	CreatedBy       *uuid.UUID `gorm:"type:uuid"`
	EvaluatedBy     *uuid.UUID `gorm:"type:uuid"`
	ReviewedBy      *uuid.UUID `gorm:"type:uuid"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	IssuedBy        *uuid.UUID `gorm:"type:uuid"`
	IssuedAt        *time.Time
	CancelReason    string `gorm:"type:text"`
	CancelledAt     *time.Time
	Items           []RequisitionItem `gorm:"foreignKey:RequisitionID;references:ID"`
}

// TableName returns the table name for GORM
func (Requisition) TableName() string {
	return "requisitions"
}

// RequisitionItem is one requested consumable
type RequisitionItem struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RequisitionID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	AssetID               uuid.UUID  `gorm:"type:uuid;not null"`
	RequestedQty          int        `gorm:"not null"`
	ApprovedQty           int        `gorm:"not null;default:0"`
	NumberOfDaysToConsume *int       `gorm:"column:number_of_days_to_consume"`
	Remarks               string     `gorm:"type:text"`
	StockID               *uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (RequisitionItem) TableName() string {
	return "requisition_items"
}

// ItemRequest is a requested line
type ItemRequest struct {
	AssetID      uuid.UUID
	RequestedQty int
	Remarks      string
}

// Approval sets the approved quantity of a line during evaluation
type Approval struct {
	ItemID                uuid.UUID
	ApprovedQty           int
	NumberOfDaysToConsume *int
}

// NewRequisition creates a requisition awaiting evaluation
func NewRequisition(risNo string, officeID, requestedBy uuid.UUID, purpose string, items []ItemRequest, stamp setting.Stamp, createdBy *uuid.UUID) (*Requisition, error) {
	if risNo == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "RIS number is required")
	}
	if officeID == uuid.Nil || requestedBy == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Office and requester are required")
	}
	r := &Requisition{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		RISNo:             risNo,
		OfficeID:          officeID,
		RequestedBy:       requestedBy,
		Purpose:           strings.TrimSpace(purpose),
		Status:            StatusForEvaluation,
		EntityName:        stamp.EntityName,
		FundCluster:       stamp.FundCluster,
		CreatedBy:         createdBy,
	}
	if err := r.setItems(items); err != nil {
		return nil, err
	}
	r.AddDomainEvent(NewRequisitionStatusChangedEvent(r, ""))
	return r, nil
}

func (r *Requisition) setItems(requests []ItemRequest) error {
	if len(requests) == 0 {
		return shared.NewDomainError(shared.CodeInvalidInput, "A requisition needs at least one item")
	}
	seen := make(map[uuid.UUID]bool, len(requests))
	items := make([]RequisitionItem, 0, len(requests))
	for _, req := range requests {
		if req.AssetID == uuid.Nil {
			return shared.NewDomainError(shared.CodeInvalidInput, "Asset ID is required")
		}
		if req.RequestedQty < 1 {
			return shared.NewDomainError(shared.CodeInvalidInput, "Requested quantity must be at least 1")
		}
		if seen[req.AssetID] {
			return shared.NewDomainError(shared.CodeInvalidInput, "An asset can only appear once per requisition")
		}
		seen[req.AssetID] = true
		items = append(items, RequisitionItem{
			ID:            uuid.New(),
			RequisitionID: r.ID,
			AssetID:       req.AssetID,
			RequestedQty:  req.RequestedQty,
			Remarks:       req.Remarks,
		})
	}
	r.Items = items
	return nil
}

func (r *Requisition) transition(target Status) error {
	if !r.Status.CanTransitionTo(target) {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Cannot move requisition from %s to %s", r.Status, target))
	}
	from := r.Status
	r.Status = target
	r.IncrementVersion()
	r.AddDomainEvent(NewRequisitionStatusChangedEvent(r, from))
	return nil
}

// Update replaces the requested items while the requisition awaits evaluation
func (r *Requisition) Update(purpose string, items []ItemRequest) error {
	if r.Status != StatusForEvaluation {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Cannot update requisition in %s status", r.Status))
	}
	if err := r.setItems(items); err != nil {
		return err
	}
	r.Purpose = strings.TrimSpace(purpose)
	r.IncrementVersion()
	return nil
}

// StartEvaluation moves the requisition to evaluating
func (r *Requisition) StartEvaluation(by *uuid.UUID) error {
	if err := r.transition(StatusEvaluating); err != nil {
		return err
	}
	r.EvaluatedBy = by
	return nil
}

// SubmitForReview records approved quantities. onHand gives the current quantity per asset;
// approvals beyond the request or the stock on hand are rejected.
func (r *Requisition) SubmitForReview(approvals []Approval, onHand map[uuid.UUID]int, by *uuid.UUID) error {
	if r.Status != StatusEvaluating {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Cannot move requisition from %s to %s", r.Status, StatusForReview))
	}
	byItem := make(map[uuid.UUID]Approval, len(approvals))
	for _, a := range approvals {
		byItem[a.ItemID] = a
	}
	for i := range r.Items {
		item := &r.Items[i]
		a, ok := byItem[item.ID]
		if !ok {
			return shared.NewDomainError(shared.CodeInvalidInput,
				fmt.Sprintf("Missing approved quantity for item %s", item.ID))
		}
		if a.ApprovedQty < 0 || a.ApprovedQty > item.RequestedQty {
			return shared.NewDomainError(shared.CodeInvalidInput,
				fmt.Sprintf("Approved quantity for item %s must be between 0 and %d", item.ID, item.RequestedQty))
		}
		if err := stock.CheckAvailability(onHand[item.AssetID], a.ApprovedQty); err != nil {
			return err
		}
		if a.NumberOfDaysToConsume != nil && *a.NumberOfDaysToConsume < 0 {
			return shared.NewDomainError(shared.CodeInvalidInput, "Number of days to consume cannot be negative")
		}
		item.ApprovedQty = a.ApprovedQty
		item.NumberOfDaysToConsume = a.NumberOfDaysToConsume
	}
	if r.TotalApproved() == 0 {
		return shared.NewDomainError(shared.CodeInvalidInput, "At least one item must be approved; cancel the requisition instead")
	}
	if err := r.transition(StatusForReview); err != nil {
		return err
	}
	r.ReviewedBy = by
	return nil
}

// Approve moves a reviewed requisition to pending issuance
func (r *Requisition) Approve(by *uuid.UUID) error {
	if err := r.transition(StatusPending); err != nil {
		return err
	}
	r.ApprovedBy = by
	return nil
}

// MarkIssued links the created ledger entries to their lines and closes the requisition.
// entries must follow the order of IssueItems.
func (r *Requisition) MarkIssued(entries []stock.Entry, issuingOfficeID uuid.UUID, by *uuid.UUID) error {
	if !r.Status.CanTransitionTo(StatusIssued) {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Cannot move requisition from %s to %s", r.Status, StatusIssued))
	}
	idx := 0
	for i := range r.Items {
		if r.Items[i].ApprovedQty == 0 {
			continue
		}
		if idx >= len(entries) {
			return shared.NewDomainError(shared.CodeInvalidInput, "Issued entries do not match approved items")
		}
		id := entries[idx].ID
		r.Items[i].StockID = &id
		idx++
	}
	if err := r.transition(StatusIssued); err != nil {
		return err
	}
	now := time.Now()
	r.IssuingOfficeID = &issuingOfficeID
	r.IssuedBy = by
	r.IssuedAt = &now
	return nil
}

// Cancel withdraws a requisition that has not been issued
func (r *Requisition) Cancel(reason string) error {
	if err := r.transition(StatusCancelled); err != nil {
		return err
	}
	now := time.Now()
	r.CancelReason = reason
	r.CancelledAt = &now
	return nil
}

// TotalApproved sums approved quantities
func (r *Requisition) TotalApproved() int {
	total := 0
	for _, it := range r.Items {
		total += it.ApprovedQty
	}
	return total
}

// IssueItems lists the approved lines as issuance requests, skipping zero approvals
func (r *Requisition) IssueItems() []stock.IssueItem {
	items := make([]stock.IssueItem, 0, len(r.Items))
	for _, it := range r.Items {
		if it.ApprovedQty == 0 {
			continue
		}
		items = append(items, stock.IssueItem{
			AssetID:               it.AssetID,
			Qty:                   it.ApprovedQty,
			Reference:             r.RISNo,
			NumberOfDaysToConsume: it.NumberOfDaysToConsume,
		})
	}
	return items
}
