package asset

import (
	"time"

	"github.com/govprop/backend/internal/domain/asset"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetResponse represents an asset in API responses. Cost and TotalValue are omitted
// for callers that may not see monetary fields.
type AssetResponse struct {
	ID           uuid.UUID        `json:"id"`
	Type         string           `json:"type"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	Unit         string           `json:"unit"`
	Cost         *decimal.Decimal `json:"cost,omitempty"`
	TotalValue   *decimal.Decimal `json:"total_value,omitempty"`
	ArticleCode  string           `json:"article_code,omitempty"`
	Quantity     int              `json:"quantity"`
	InitialQty   int              `json:"initial_qty"`
	IssuedCount  int              `json:"issued_count"`
	StockNumber  string           `json:"stock_number,omitempty"`
	Year         int              `json:"year,omitempty"`
	PropertyCode string           `json:"property_code,omitempty"`
	SerialNumber string           `json:"serial_number,omitempty"`
	Location     string           `json:"location,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	Version      int              `json:"version"`
}

// ToAssetResponse converts an asset for the given caller
func ToAssetResponse(a *asset.Asset, actor shared.Actor) AssetResponse {
	resp := AssetResponse{
		ID:          a.ID,
		Type:        a.Type.String(),
		Name:        a.Name,
		Description: a.Description,
		Unit:        a.Unit,
		ArticleCode: a.ArticleCode,
		Quantity:    a.Quantity,
		InitialQty:  a.InitialQty,
		IssuedCount: a.IssuedCount(),
		StockNumber: a.StockNumber(),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		Version:     a.Version,
	}
	if pn := a.PropertyNumber; pn != nil {
		resp.Year = pn.Year
		resp.PropertyCode = pn.PropertyCode
		resp.SerialNumber = pn.SerialNumber
		resp.Location = pn.Location
	}
	if actor.CanSeeCost() {
		cost := a.Cost
		total := a.TotalValue()
		resp.Cost = &cost
		resp.TotalValue = &total
	}
	return resp
}

// CreateConsumableRequest registers a consumable
type CreateConsumableRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Description string          `json:"description" binding:"max=2000"`
	Unit        string          `json:"unit" binding:"required,max=50"`
	Cost        decimal.Decimal `json:"cost"`
	ArticleCode string          `json:"article_code" binding:"max=100"`
	Quantity    int             `json:"quantity" binding:"min=0"`
}

// CreatePropertyRequest registers a SEP or PPE asset
type CreatePropertyRequest struct {
	Type         string          `json:"type" binding:"required,oneof=sep ppe"`
	Name         string          `json:"name" binding:"required,min=1,max=200"`
	Description  string          `json:"description" binding:"max=2000"`
	Unit         string          `json:"unit" binding:"required,max=50"`
	Cost         decimal.Decimal `json:"cost"`
	ArticleCode  string          `json:"article_code" binding:"max=100"`
	Quantity     int             `json:"quantity" binding:"required,min=1"`
	Year         int             `json:"year" binding:"required,min=1900,max=9999"`
	PropertyCode string          `json:"property_code" binding:"required,max=50"`
	SerialNumber string          `json:"serial_number" binding:"required,max=100"`
	Location     string          `json:"location" binding:"required,max=50"`
}

// UpdateRequest changes static attributes. Location only applies to property assets.
type UpdateRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Description string          `json:"description" binding:"max=2000"`
	Unit        string          `json:"unit" binding:"required,max=50"`
	Cost        decimal.Decimal `json:"cost"`
	ArticleCode string          `json:"article_code" binding:"max=100"`
	Location    *string         `json:"location" binding:"omitempty,max=50"`
}

// ListFilter represents filter options for the asset list
type ListFilter struct {
	Search   string `form:"search"`
	Type     string `form:"type" binding:"omitempty,oneof=consumable sep ppe"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToShared converts the filter to a repository filter
func (f ListFilter) ToShared() shared.Filter {
	filter := shared.NewFilter(f.Page, f.PageSize, f.OrderBy, f.OrderDir, f.Search)
	if f.Type != "" {
		filter.Filters["type"] = f.Type
	}
	return filter
}
