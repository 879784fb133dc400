package loss

import (
	"time"

	"github.com/govprop/backend/internal/domain/loss"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// LossItemRequest names a held stock entry and what happened to it
type LossItemRequest struct {
	StockID       uuid.UUID `json:"stock_id" binding:"required"`
	Quantity      int       `json:"quantity" binding:"required,min=1"`
	Condition     string    `json:"condition" binding:"required,oneof=lost stolen damaged destroyed"`
	Circumstances string    `json:"circumstances" binding:"max=2000"`
}

// CreateLossRequest files a loss report
type CreateLossRequest struct {
	ReportedBy uuid.UUID         `json:"reported_by" binding:"required"`
	Items      []LossItemRequest `json:"items" binding:"required,min=1,dive"`
	Remarks    string            `json:"remarks" binding:"max=500"`
}

// UpdateLossRequest replaces the lines of a pending report
type UpdateLossRequest struct {
	Items   []LossItemRequest `json:"items" binding:"required,min=1,dive"`
	Remarks string            `json:"remarks" binding:"max=500"`
}

// LossItemResponse is one reported line
type LossItemResponse struct {
	StockID        uuid.UUID `json:"stock_id"`
	AssetID        uuid.UUID `json:"asset_id"`
	ItemNo         string    `json:"item_no,omitempty"`
	Quantity       int       `json:"quantity"`
	Condition      string    `json:"condition"`
	Circumstances  string    `json:"circumstances,omitempty"`
	PriorCondition string    `json:"prior_condition"`
}

// LossResponse represents a loss report
type LossResponse struct {
	ID          uuid.UUID          `json:"id"`
	LossNo      string             `json:"loss_no"`
	OfficeID    uuid.UUID          `json:"office_id"`
	ReportedBy  uuid.UUID          `json:"reported_by"`
	Status      string             `json:"status"`
	Remarks     string             `json:"remarks,omitempty"`
	Items       []LossItemResponse `json:"items"`
	ApprovedBy  *uuid.UUID         `json:"approved_by,omitempty"`
	ApprovedAt  *time.Time         `json:"approved_at,omitempty"`
	CompletedBy *uuid.UUID         `json:"completed_by,omitempty"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Version     int                `json:"version"`
}

// ToLossResponse maps a loss report
func ToLossResponse(l *loss.Loss) LossResponse {
	items := make([]LossItemResponse, len(l.Items))
	for i, it := range l.Items {
		items[i] = LossItemResponse{
			StockID:        it.StockID,
			AssetID:        it.AssetID,
			ItemNo:         it.ItemNo,
			Quantity:       it.Quantity,
			Condition:      it.Condition.String(),
			Circumstances:  it.Circumstances,
			PriorCondition: it.PriorCondition.String(),
		}
	}
	return LossResponse{
		ID:          l.ID,
		LossNo:      l.LossNo,
		OfficeID:    l.OfficeID,
		ReportedBy:  l.ReportedBy,
		Status:      l.Status.String(),
		Remarks:     l.Remarks,
		Items:       items,
		ApprovedBy:  l.ApprovedBy,
		ApprovedAt:  l.ApprovedAt,
		CompletedBy: l.CompletedBy,
		CompletedAt: l.CompletedAt,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
		Version:     l.Version,
	}
}

// ListFilter represents filter options for listing loss reports
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
