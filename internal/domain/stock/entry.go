package stock

import (
	"strings"
	"time"

	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Movement describes one ledger write requested by a lifecycle handler
type Movement struct {
	AssetID               uuid.UUID
	ItemNo                string
	Ins                   int
	Outs                  int
	Condition             Condition
	OfficeID              *uuid.UUID
	Reference             string
	SerialNo              string
	Balance               *int
	NumberOfDaysToConsume *int
	InitialCondition      *Condition
	CreatedBy             *uuid.UUID
}

// Validate checks the movement's shape before any asset is loaded
func (m Movement) Validate() error {
	if m.AssetID == uuid.Nil {
		return shared.NewDomainError(shared.CodeInvalidInput, "Asset ID is required")
	}
	if !m.Condition.IsValid() {
		return shared.NewDomainError(shared.CodeInvalidInput, "Invalid stock condition")
	}
	if m.Ins < 0 || m.Outs < 0 {
		return shared.NewDomainError(shared.CodeInvalidInput, "Ins and outs cannot be negative")
	}
	if m.Ins > 0 && m.Outs > 0 && m.Condition != ConditionTransferred {
		return shared.NewDomainError(shared.CodeInvalidInput, "Only transfers may record ins and outs together")
	}
	if m.InitialCondition != nil && !m.InitialCondition.IsValid() {
		return shared.NewDomainError(shared.CodeInvalidInput, "Invalid initial condition")
	}
	if m.NumberOfDaysToConsume != nil && *m.NumberOfDaysToConsume < 0 {
		return shared.NewDomainError(shared.CodeInvalidInput, "Number of days to consume cannot be negative")
	}
	return nil
}

// Entry is an immutable stock ledger record. Corrections are new entries.
type Entry struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AssetID               uuid.UUID  `gorm:"type:uuid;not null;index:idx_stock_entries_unit,priority:1"`
	ItemNo                string     `gorm:"type:varchar(20);not null;default:'';index:idx_stock_entries_unit,priority:2"`
	SerialNo              string     `gorm:"type:varchar(100)"`
	Ins                   int        `gorm:"not null;default:0"`
	Outs                  int        `gorm:"not null;default:0"`
	Balance               int        `gorm:"not null"`
	NumberOfDaysToConsume *int       `gorm:"column:number_of_days_to_consume"`
	Condition             Condition  `gorm:"type:varchar(30);not null;index"`
	InitialCondition      *Condition `gorm:"type:varchar(30)"`
	Reference             string     `gorm:"type:varchar(100);index"`
	OfficeID              *uuid.UUID `gorm:"type:uuid;index"`
	CreatedBy             *uuid.UUID `gorm:"type:uuid"`
	CreatedAt             time.Time  `gorm:"not null;index:idx_stock_entries_unit,priority:3"`
}

// TableName returns the table name for GORM
func (Entry) TableName() string {
	return "stock_entries"
}

// NewEntry builds the ledger record for a movement whose resulting balance is known
func NewEntry(m Movement, balance int) (*Entry, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &Entry{
		ID:                    uuid.New(),
		AssetID:               m.AssetID,
		ItemNo:                strings.TrimSpace(m.ItemNo),
		SerialNo:              strings.TrimSpace(m.SerialNo),
		Ins:                   m.Ins,
		Outs:                  m.Outs,
		Balance:               balance,
		NumberOfDaysToConsume: m.NumberOfDaysToConsume,
		Condition:             m.Condition,
		InitialCondition:      m.InitialCondition,
		Reference:             m.Reference,
		OfficeID:              m.OfficeID,
		CreatedBy:             m.CreatedBy,
		CreatedAt:             time.Now(),
	}, nil
}

// Quantity is the number of units the entry moved
func (e *Entry) Quantity() int {
	if e.Outs > e.Ins {
		return e.Outs
	}
	return e.Ins
}

// IsUnitTracked reports whether the entry belongs to an individually numbered unit
func (e *Entry) IsUnitTracked() bool {
	return e.ItemNo != ""
}

// HeldBy reports whether the entry places the unit in the custody of officeID
func (e *Entry) HeldBy(officeID uuid.UUID) bool {
	return e.Condition.IsHeld() && e.OfficeID != nil && *e.OfficeID == officeID
}
