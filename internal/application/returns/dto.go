package returns

import (
	"time"

	"github.com/govprop/backend/internal/domain/returns"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ReturnItemRequest names a held stock entry to hand back
type ReturnItemRequest struct {
	StockID      uuid.UUID `json:"stock_id" binding:"required"`
	Quantity     int       `json:"quantity" binding:"required,min=1"`
	StockRemarks string    `json:"stock_remarks" binding:"required,oneof=for-reissue for-disposal"`
}

// CreateReturnRequest files a return
type CreateReturnRequest struct {
	ReturnedBy uuid.UUID           `json:"returned_by" binding:"required"`
	Items      []ReturnItemRequest `json:"items" binding:"required,min=1,dive"`
	Remarks    string              `json:"remarks" binding:"max=500"`
}

// UpdateReturnRequest replaces the lines of a pending return
type UpdateReturnRequest struct {
	Items   []ReturnItemRequest `json:"items" binding:"required,min=1,dive"`
	Remarks string              `json:"remarks" binding:"max=500"`
}

// ReturnItemResponse is one returned line
type ReturnItemResponse struct {
	StockID        uuid.UUID `json:"stock_id"`
	AssetID        uuid.UUID `json:"asset_id"`
	ItemNo         string    `json:"item_no,omitempty"`
	Quantity       int       `json:"quantity"`
	StockRemarks   string    `json:"stock_remarks"`
	PriorCondition string    `json:"prior_condition"`
}

// ReturnResponse represents a return
type ReturnResponse struct {
	ID          uuid.UUID            `json:"id"`
	ReturnNo    string               `json:"return_no"`
	OfficeID    uuid.UUID            `json:"office_id"`
	ReturnedBy  uuid.UUID            `json:"returned_by"`
	Status      string               `json:"status"`
	Remarks     string               `json:"remarks,omitempty"`
	Items       []ReturnItemResponse `json:"items"`
	ApprovedBy  *uuid.UUID           `json:"approved_by,omitempty"`
	ApprovedAt  *time.Time           `json:"approved_at,omitempty"`
	CompletedBy *uuid.UUID           `json:"completed_by,omitempty"`
	CompletedAt *time.Time           `json:"completed_at,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	Version     int                  `json:"version"`
}

// ToReturnResponse maps a return
func ToReturnResponse(r *returns.Return) ReturnResponse {
	items := make([]ReturnItemResponse, len(r.Items))
	for i, it := range r.Items {
		items[i] = ReturnItemResponse{
			StockID:        it.StockID,
			AssetID:        it.AssetID,
			ItemNo:         it.ItemNo,
			Quantity:       it.Quantity,
			StockRemarks:   string(it.StockRemarks),
			PriorCondition: it.PriorCondition.String(),
		}
	}
	return ReturnResponse{
		ID:          r.ID,
		ReturnNo:    r.ReturnNo,
		OfficeID:    r.OfficeID,
		ReturnedBy:  r.ReturnedBy,
		Status:      r.Status.String(),
		Remarks:     r.Remarks,
		Items:       items,
		ApprovedBy:  r.ApprovedBy,
		ApprovedAt:  r.ApprovedAt,
		CompletedBy: r.CompletedBy,
		CompletedAt: r.CompletedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Version:     r.Version,
	}
}

// ListFilter represents filter options for listing returns
type ListFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending approved completed"`
	OfficeID string `form:"office_id" binding:"omitempty,uuid"`
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
	if id, err := uuid.Parse(f.OfficeID); err == nil {
		filter.Filters["office_id"] = id
	}
	return filter
}
