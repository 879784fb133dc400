package asset

import (
	"fmt"
	"strings"
	"time"

	"github.com/govprop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Type classifies an asset
type Type string

const (
	// TypeConsumable is stock tracked in bulk, never by unit
	TypeConsumable Type = "consumable"
	// TypeSEP is semi-expendable property, tracked per unit
	TypeSEP Type = "sep"
	// TypePPE is property, plant and equipment, tracked per unit
	TypePPE Type = "ppe"
)

// IsValid returns true if the type is known
func (t Type) IsValid() bool {
	switch t {
	case TypeConsumable, TypeSEP, TypePPE:
		return true
	}
	return false
}

// IsUnitTracked reports whether units of this type get item numbers
func (t Type) IsUnitTracked() bool {
	return t == TypeSEP || t == TypePPE
}

// String returns the string representation of Type
func (t Type) String() string {
	return string(t)
}

// PropertyNumber holds the parts of a property's stock number
type PropertyNumber struct {
	Year         int
	PropertyCode string
	SerialNumber string
	Location     string
	Counter      int
}

// Validate checks the caller-supplied parts. Counter is allocated by the registry.
func (p PropertyNumber) Validate() error {
	if p.Year < 1900 || p.Year > 9999 {
		return shared.NewDomainError(shared.CodeInvalidInput, "Property year must be a four digit year")
	}
	if strings.TrimSpace(p.PropertyCode) == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "Property code is required")
	}
	if strings.TrimSpace(p.SerialNumber) == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "Serial number is required")
	}
	if strings.TrimSpace(p.Location) == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "Location code is required")
	}
	return nil
}

// Format renders {year}-{propertyCode}-{serialNumber}-{quantity}-{location}-{counter}
func (p PropertyNumber) Format(quantity int) string {
	return fmt.Sprintf("%d-%s-%s-%d-%s-%04d",
		p.Year, p.PropertyCode, p.SerialNumber, quantity, p.Location, p.Counter)
}

// Asset is a catalog item whose Quantity caches the net effect of its ledger entries
type Asset struct {
	shared.BaseAggregateRoot
	Type           Type
	Name           string
	Description    string
	Unit           string
	Cost           decimal.Decimal
	ArticleCode    string
	Quantity       int
	InitialQty     int
	PropertyNumber *PropertyNumber
	DeletedAt      *time.Time
}

// NewConsumable creates a consumable asset with its opening quantity
func NewConsumable(name, description, unit string, cost decimal.Decimal, articleCode string, quantity int) (*Asset, error) {
	a := &Asset{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Type:              TypeConsumable,
		Name:              strings.TrimSpace(name),
		Description:       description,
		Unit:              strings.TrimSpace(unit),
		Cost:              cost,
		ArticleCode:       strings.TrimSpace(articleCode),
		Quantity:          quantity,
		InitialQty:        quantity,
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	a.AddDomainEvent(NewAssetCreatedEvent(a))
	return a, nil
}

// NewProperty creates a SEP or PPE asset. pn.Counter must already be allocated.
func NewProperty(t Type, name, description, unit string, cost decimal.Decimal, articleCode string, quantity int, pn PropertyNumber) (*Asset, error) {
	if !t.IsUnitTracked() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Property assets must be of type sep or ppe")
	}
	if err := pn.Validate(); err != nil {
		return nil, err
	}
	a := &Asset{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Type:              t,
		Name:              strings.TrimSpace(name),
		Description:       description,
		Unit:              strings.TrimSpace(unit),
		Cost:              cost,
		ArticleCode:       strings.TrimSpace(articleCode),
		Quantity:          quantity,
		InitialQty:        quantity,
		PropertyNumber:    &pn,
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	a.AddDomainEvent(NewAssetCreatedEvent(a))
	return a, nil
}

func (a *Asset) validate() error {
	if !a.Type.IsValid() {
		return shared.NewDomainError(shared.CodeInvalidInput, "Invalid asset type")
	}
	if a.Name == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "Asset name is required")
	}
	if len(a.Name) > 200 {
		return shared.NewDomainError(shared.CodeInvalidInput, "Asset name cannot exceed 200 characters")
	}
	if a.Unit == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "Unit of measurement is required")
	}
	if a.Cost.IsNegative() {
		return shared.NewDomainError(shared.CodeInvalidInput, "Cost cannot be negative")
	}
	if a.Quantity < 0 {
		return shared.NewDomainError(shared.CodeInvalidInput, "Quantity cannot be negative")
	}
	if a.Type.IsUnitTracked() && a.InitialQty < 1 {
		return shared.NewDomainError(shared.CodeInvalidInput, "Property assets need at least one unit")
	}
	return nil
}

// StockNumber returns the human-readable property number, or "" for consumables
func (a *Asset) StockNumber() string {
	if a.PropertyNumber == nil {
		return ""
	}
	return a.PropertyNumber.Format(a.InitialQty)
}

// TotalValue is cost times quantity on hand
func (a *Asset) TotalValue() decimal.Decimal {
	return a.Cost.Mul(decimal.NewFromInt(int64(a.Quantity)))
}

// IsDeleted reports whether the asset was soft-deleted
func (a *Asset) IsDeleted() bool {
	return a.DeletedAt != nil
}

// Update changes the static attributes
func (a *Asset) Update(name, description, unit string, cost decimal.Decimal, articleCode string) error {
	if a.IsDeleted() {
		return shared.NewNotFoundError("Asset")
	}
	prev := *a
	a.Name = strings.TrimSpace(name)
	a.Description = description
	a.Unit = strings.TrimSpace(unit)
	a.Cost = cost
	a.ArticleCode = strings.TrimSpace(articleCode)
	if err := a.validate(); err != nil {
		*a = prev
		return err
	}
	a.IncrementVersion()
	return nil
}

// UpdateLocation moves a property's location code
func (a *Asset) UpdateLocation(location string) error {
	if a.PropertyNumber == nil {
		return shared.NewDomainError(shared.CodeInvalidInput, "Consumables have no property location")
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "Location code is required")
	}
	a.PropertyNumber.Location = location
	a.IncrementVersion()
	return nil
}

// SetQuantity replaces the cached quantity. Only the ledger write path calls this.
func (a *Asset) SetQuantity(quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError(shared.CodeInsufficientStock, "Quantity cannot go negative")
	}
	a.Quantity = quantity
	a.Touch()
	return nil
}

// IssuedCount is the number of units currently out of the pool
func (a *Asset) IssuedCount() int {
	issued := a.InitialQty - a.Quantity
	if issued < 0 {
		return 0
	}
	return issued
}

// Delete soft-deletes a pristine asset
func (a *Asset) Delete() error {
	if a.IsDeleted() {
		return shared.NewNotFoundError("Asset")
	}
	if a.InitialQty != a.Quantity {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Asset %q has stock movements and cannot be deleted", a.Name))
	}
	now := time.Now()
	a.DeletedAt = &now
	a.IncrementVersion()
	a.AddDomainEvent(NewAssetDeletedEvent(a))
	return nil
}
