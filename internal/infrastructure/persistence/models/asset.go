package models

import (
	"time"

	"github.com/govprop/backend/internal/domain/asset"
	"github.com/shopspring/decimal"
)

// AssetModel is the persistence model for the Asset aggregate
type AssetModel struct {
	AggregateModel
	Type            asset.Type      `gorm:"type:varchar(20);not null;index"`
	Name            string          `gorm:"type:varchar(200);not null;index"`
	Description     string          `gorm:"type:text"`
	Unit            string          `gorm:"type:varchar(50);not null"`
	Cost            decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ArticleCode     string          `gorm:"type:varchar(100)"`
	Quantity        int             `gorm:"not null;default:0"`
	InitialQty      int             `gorm:"column:initial_qty;not null;default:0"`
	PropertyYear    *int            `gorm:"column:property_year"`
	PropertyCode    *string         `gorm:"column:property_code;type:varchar(50)"`
	SerialNumber    *string         `gorm:"column:serial_number;type:varchar(100)"`
	Location        *string         `gorm:"column:location;type:varchar(50)"`
	PropertyCounter *int            `gorm:"column:property_counter"`
	DeletedAt       *time.Time      `gorm:"index"`
}

// TableName returns the table name for GORM
func (AssetModel) TableName() string {
	return "assets"
}

// ToDomain converts the persistence model to a domain Asset
func (m *AssetModel) ToDomain() *asset.Asset {
	a := &asset.Asset{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Type:              m.Type,
		Name:              m.Name,
		Description:       m.Description,
		Unit:              m.Unit,
		Cost:              m.Cost,
		ArticleCode:       m.ArticleCode,
		Quantity:          m.Quantity,
		InitialQty:        m.InitialQty,
		DeletedAt:         m.DeletedAt,
	}
	if m.PropertyYear != nil {
		pn := &asset.PropertyNumber{Year: *m.PropertyYear}
		if m.PropertyCode != nil {
			pn.PropertyCode = *m.PropertyCode
		}
		if m.SerialNumber != nil {
			pn.SerialNumber = *m.SerialNumber
		}
		if m.Location != nil {
			pn.Location = *m.Location
		}
		if m.PropertyCounter != nil {
			pn.Counter = *m.PropertyCounter
		}
		a.PropertyNumber = pn
	}
	return a
}

// FromDomain populates the persistence model from a domain Asset
func (m *AssetModel) FromDomain(a *asset.Asset) {
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	m.Type = a.Type
	m.Name = a.Name
	m.Description = a.Description
	m.Unit = a.Unit
	m.Cost = a.Cost
	m.ArticleCode = a.ArticleCode
	m.Quantity = a.Quantity
	m.InitialQty = a.InitialQty
	m.DeletedAt = a.DeletedAt
	m.PropertyYear, m.PropertyCode, m.SerialNumber, m.Location, m.PropertyCounter = nil, nil, nil, nil, nil
	if pn := a.PropertyNumber; pn != nil {
		year, code, serial, location, counter := pn.Year, pn.PropertyCode, pn.SerialNumber, pn.Location, pn.Counter
		m.PropertyYear = &year
		m.PropertyCode = &code
		m.SerialNumber = &serial
		m.Location = &location
		m.PropertyCounter = &counter
	}
}

// AssetModelFromDomain creates a persistence model from a domain Asset
func AssetModelFromDomain(a *asset.Asset) *AssetModel {
	m := &AssetModel{}
	m.FromDomain(a)
	return m
}
