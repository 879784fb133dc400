package maintenance

import (
	"fmt"
	"strings"
	"time"

	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/google/uuid"
)

// Status represents the status of a maintenance request
type Status string

const (
	StatusPending     Status = "pending"
	StatusScheduled   Status = "scheduled"
	StatusRescheduled Status = "rescheduled"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:     {StatusCancelled, StatusScheduled, StatusCompleted},
	StatusScheduled:   {StatusRescheduled, StatusCompleted},
	StatusRescheduled: {StatusRescheduled, StatusCompleted},
}

// IsValid returns true if the status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusScheduled, StatusRescheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo returns true if the request can move to the target status
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Outcome is the result recorded when maintenance completes
type Outcome string

const (
	OutcomeRepaired      Outcome = "repaired"
	OutcomeUnserviceable Outcome = "unserviceable"
)

// IsValid returns true if the outcome is known
func (o Outcome) IsValid() bool {
	return o == OutcomeRepaired || o == OutcomeUnserviceable
}

// Maintenance is a repair request for one held unit
type Maintenance struct {
	shared.BaseAggregateRoot
	MaintenanceNo  string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	StockID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	AssetID        uuid.UUID       `gorm:"type:uuid;not null"`
	ItemNo         string          `gorm:"type:varchar(20)"`
	OfficeID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	RequestedBy    uuid.UUID       `gorm:"type:uuid;not null"`
	Description    string          `gorm:"type:text;not null"`
	PriorCondition stock.Condition `gorm:"type:varchar(30)"`
	Status         Status          `gorm:"type:varchar(20);not null;default:'pending';index"`
	ScheduledAt    *time.Time
	Outcome        *Outcome   `gorm:"type:varchar(20)"`
	Findings       string     `gorm:"type:text"`
	CancelReason   string     `gorm:"type:text"`
	CreatedBy      *uuid.UUID `gorm:"type:uuid"`
	CompletedBy    *uuid.UUID `gorm:"type:uuid"`
	CompletedAt    *time.Time
	CancelledAt    *time.Time
}

// TableName returns the table name for GORM
func (Maintenance) TableName() string {
	return "maintenances"
}

// NewMaintenance files a pending request for the unit recorded by entry
func NewMaintenance(maintenanceNo string, entry *stock.Entry, requestedBy uuid.UUID, description string, createdBy *uuid.UUID) (*Maintenance, error) {
	if maintenanceNo == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Maintenance number is required")
	}
	if entry.OfficeID == nil {
		return nil, shared.NewDomainError(shared.CodeInvalidState, "Only units held by an office can be sent for maintenance")
	}
	if requestedBy == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Requester is required")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Description of the defect is required")
	}
	m := &Maintenance{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		MaintenanceNo:     maintenanceNo,
		StockID:           entry.ID,
		AssetID:           entry.AssetID,
		ItemNo:            entry.ItemNo,
		OfficeID:          *entry.OfficeID,
		RequestedBy:       requestedBy,
		Description:       description,
		PriorCondition:    entry.Condition,
		Status:            StatusPending,
		CreatedBy:         createdBy,
	}
	m.AddDomainEvent(NewMaintenanceStatusChangedEvent(m, ""))
	return m, nil
}

func (m *Maintenance) transition(target Status) error {
	if !m.Status.CanTransitionTo(target) {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Cannot move maintenance from %s to %s", m.Status, target))
	}
	from := m.Status
	m.Status = target
	m.IncrementVersion()
	m.AddDomainEvent(NewMaintenanceStatusChangedEvent(m, from))
	return nil
}

// Update edits the description of a pending request
func (m *Maintenance) Update(description string) error {
	if m.Status != StatusPending {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Cannot update maintenance in %s status", m.Status))
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "Description of the defect is required")
	}
	m.Description = description
	m.IncrementVersion()
	return nil
}

// Schedule sets the service date
func (m *Maintenance) Schedule(at time.Time) error {
	if at.IsZero() {
		return shared.NewDomainError(shared.CodeInvalidInput, "Schedule date is required")
	}
	if err := m.transition(StatusScheduled); err != nil {
		return err
	}
	m.ScheduledAt = &at
	return nil
}

// Reschedule moves the service date
func (m *Maintenance) Reschedule(at time.Time) error {
	if at.IsZero() {
		return shared.NewDomainError(shared.CodeInvalidInput, "Schedule date is required")
	}
	if err := m.transition(StatusRescheduled); err != nil {
		return err
	}
	m.ScheduledAt = &at
	return nil
}

// Cancel withdraws a pending request
func (m *Maintenance) Cancel(reason string) error {
	if err := m.transition(StatusCancelled); err != nil {
		return err
	}
	now := time.Now()
	m.CancelReason = reason
	m.CancelledAt = &now
	return nil
}

// Complete records the outcome. The caller writes the ledger entry from Movement.
func (m *Maintenance) Complete(outcome Outcome, findings string, completedBy *uuid.UUID) error {
	if !outcome.IsValid() {
		return shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("Unknown maintenance outcome %q", outcome))
	}
	if err := m.transition(StatusCompleted); err != nil {
		return err
	}
	now := time.Now()
	m.Outcome = &outcome
	m.Findings = findings
	m.CompletedBy = completedBy
	m.CompletedAt = &now
	return nil
}

// Movement is the ledger entry recording a completed request. Repaired units keep their
// condition; unserviceable ones become damaged. Neither moves quantity.
func (m *Maintenance) Movement(balance int) stock.Movement {
	prior := m.PriorCondition
	officeID := m.OfficeID
	mv := stock.Movement{
		AssetID:          m.AssetID,
		ItemNo:           m.ItemNo,
		Condition:        m.PriorCondition,
		OfficeID:         &officeID,
		Reference:        m.MaintenanceNo,
		InitialCondition: &prior,
		CreatedBy:        m.CompletedBy,
	}
	if m.Outcome != nil && *m.Outcome == OutcomeUnserviceable {
		mv.Condition = stock.ConditionDamaged
	}
	if mv.Condition == stock.ConditionTransferred {
		mv.Balance = &balance
	}
	return mv
}
