package issueslip

import (
	"fmt"
	"time"

	"github.com/govprop/backend/internal/domain/setting"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/google/uuid"
)

// Status represents the status of an issue slip
type Status string

const (
	StatusPending Status = "pending"
	StatusIssued  Status = "issued"
)

// IsValid returns true if the status is valid
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusIssued
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo returns true if the slip can move to the target status
func (s Status) CanTransitionTo(target Status) bool {
	return s == StatusPending && target == StatusIssued
}

// IssueSlip records the release of property units to a person in an office
type IssueSlip struct {
	shared.BaseAggregateRoot
	SlipNo          string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	AssetID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	OfficeID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReceivedBy      uuid.UUID  `gorm:"type:uuid;not null"`
	IssuingOfficeID uuid.UUID  `gorm:"type:uuid;not null"`
	Quantity        int        `gorm:"not null"`
	Status          Status     `gorm:"type:varchar(20);not null;default:'pending';index"`
	EntityName      string     `gorm:"type:varchar(200)"`
	FundCluster     string     `gorm:"type:varchar(100)"`
	Remarks         string     `gorm:"type:text"`
	CreatedBy       *uuid.UUID `gorm:"type:uuid"`
	IssuedBy        *uuid.UUID `gorm:"type:uuid"`
	IssuedAt        *time.Time
	Stocks          []IssueSlipStock `gorm:"foreignKey:IssueSlipID;references:ID"`
}

// TableName returns the table name for GORM
func (IssueSlip) TableName() string {
	return "issue_slips"
}

// IssueSlipStock links an issued slip to the ledger entry of each released unit
type IssueSlipStock struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	IssueSlipID uuid.UUID `gorm:"type:uuid;not null;index"`
	StockID     uuid.UUID `gorm:"type:uuid;not null"`
	ItemNo      string    `gorm:"type:varchar(20)"`
}

// TableName returns the table name for GORM
func (IssueSlipStock) TableName() string {
	return "issue_slip_stocks"
}

// NewIssueSlip creates a pending slip
func NewIssueSlip(slipNo string, assetID, officeID, receivedBy, issuingOfficeID uuid.UUID, quantity int, stamp setting.Stamp, remarks string, createdBy *uuid.UUID) (*IssueSlip, error) {
	if slipNo == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Slip number is required")
	}
	slip := &IssueSlip{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SlipNo:            slipNo,
		Status:            StatusPending,
		EntityName:        stamp.EntityName,
		FundCluster:       stamp.FundCluster,
		IssuingOfficeID:   issuingOfficeID,
		CreatedBy:         createdBy,
	}
	if err := slip.apply(assetID, officeID, receivedBy, quantity, remarks); err != nil {
		return nil, err
	}
	slip.AddDomainEvent(NewIssueSlipCreatedEvent(slip))
	return slip, nil
}

func (s *IssueSlip) apply(assetID, officeID, receivedBy uuid.UUID, quantity int, remarks string) error {
	if assetID == uuid.Nil {
		return shared.NewDomainError(shared.CodeInvalidInput, "Asset ID is required")
	}
	if officeID == uuid.Nil {
		return shared.NewDomainError(shared.CodeInvalidInput, "Office ID is required")
	}
	if receivedBy == uuid.Nil {
		return shared.NewDomainError(shared.CodeInvalidInput, "Receiver is required")
	}
	if quantity < 1 {
		return shared.NewDomainError(shared.CodeInvalidInput, "Quantity must be at least 1")
	}
	s.AssetID = assetID
	s.OfficeID = officeID
	s.ReceivedBy = receivedBy
	s.Quantity = quantity
	s.Remarks = remarks
	return nil
}

// Update edits a pending slip
func (s *IssueSlip) Update(assetID, officeID, receivedBy uuid.UUID, quantity int, remarks string) error {
	if s.Status != StatusPending {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Cannot update issue slip in %s status", s.Status))
	}
	if err := s.apply(assetID, officeID, receivedBy, quantity, remarks); err != nil {
		return err
	}
	s.IncrementVersion()
	return nil
}

// MarkIssued records the released units and closes the slip
func (s *IssueSlip) MarkIssued(entries []stock.Entry, issuedBy *uuid.UUID) error {
	if !s.Status.CanTransitionTo(StatusIssued) {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Cannot issue slip in %s status", s.Status))
	}
	if len(entries) == 0 {
		return shared.NewDomainError(shared.CodeInvalidInput, "An issued slip must release at least one unit")
	}
	s.Stocks = make([]IssueSlipStock, 0, len(entries))
	for _, e := range entries {
		s.Stocks = append(s.Stocks, IssueSlipStock{
			ID:          uuid.New(),
			IssueSlipID: s.ID,
			StockID:     e.ID,
			ItemNo:      e.ItemNo,
		})
	}
	now := time.Now()
	s.Status = StatusIssued
	s.IssuedBy = issuedBy
	s.IssuedAt = &now
	s.IncrementVersion()
	s.AddDomainEvent(NewIssueSlipIssuedEvent(s))
	return nil
}

// IssueItem is the issuance request the slip makes against the ledger
func (s *IssueSlip) IssueItem() stock.IssueItem {
	return stock.IssueItem{
		AssetID:   s.AssetID,
		Qty:       s.Quantity,
		Reference: s.SlipNo,
	}
}
