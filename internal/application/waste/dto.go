package waste

import (
	"time"

	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/waste"
	"github.com/google/uuid"
)

// WasteItemRequest names an unserviceable stock entry
type WasteItemRequest struct {
	StockID  uuid.UUID `json:"stock_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
}

// CreateWasteRequest queues units for disposal
type CreateWasteRequest struct {
	Items   []WasteItemRequest `json:"items" binding:"required,min=1,dive"`
	Remarks string             `json:"remarks" binding:"max=500"`
}

// UpdateWasteRequest replaces the lines of a pending document
type UpdateWasteRequest CreateWasteRequest

// WasteItemResponse is one disposal line
type WasteItemResponse struct {
	StockID        uuid.UUID `json:"stock_id"`
	AssetID        uuid.UUID `json:"asset_id"`
	ItemNo         string    `json:"item_no,omitempty"`
	Quantity       int       `json:"quantity"`
	PriorCondition string    `json:"prior_condition"`
}

// WasteResponse represents a waste document
type WasteResponse struct {
	ID          uuid.UUID           `json:"id"`
	WasteNo     string              `json:"waste_no"`
	OfficeID    uuid.UUID           `json:"office_id"`
	Status      string              `json:"status"`
	Remarks     string              `json:"remarks,omitempty"`
	Items       []WasteItemResponse `json:"items"`
	CompletedBy *uuid.UUID          `json:"completed_by,omitempty"`
	CompletedAt *time.Time          `json:"completed_at,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	Version     int                 `json:"version"`
}

// ToWasteResponse maps a waste document
func ToWasteResponse(w *waste.Waste) WasteResponse {
	items := make([]WasteItemResponse, len(w.Items))
	for i, it := range w.Items {
		items[i] = WasteItemResponse{
			StockID:        it.StockID,
			AssetID:        it.AssetID,
			ItemNo:         it.ItemNo,
			Quantity:       it.Quantity,
			PriorCondition: it.PriorCondition.String(),
		}
	}
	return WasteResponse{
		ID:          w.ID,
		WasteNo:     w.WasteNo,
		OfficeID:    w.OfficeID,
		Status:      w.Status.String(),
		Remarks:     w.Remarks,
		Items:       items,
		CompletedBy: w.CompletedBy,
		CompletedAt: w.CompletedAt,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
		Version:     w.Version,
	}
}

// ListFilter represents filter options for listing waste documents
type ListFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending completed"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToShared converts the filter to a repository filter
func (f ListFilter) ToShared() shared.Filter {
	filter := shared.NewFilter(f.Page, f.PageSize, f.OrderBy, f.OrderDir, "")
	if f.Status != "" {
		filter.Filters["status"] = f.Status
	}
	return filter
}
