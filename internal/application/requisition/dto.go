package requisition

import (
	"time"

	"github.com/govprop/backend/internal/domain/requisition"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ItemRequest is one requested consumable
type ItemRequest struct {
	AssetID      uuid.UUID `json:"asset_id" binding:"required"`
	RequestedQty int       `json:"requested_qty" binding:"required,min=1"`
	Remarks      string    `json:"remarks" binding:"max=500"`
}

// CreateRequisitionRequest files a requisition
type CreateRequisitionRequest struct {
	RequestedBy uuid.UUID     `json:"requested_by" binding:"required"`
	Purpose     string        `json:"purpose" binding:"max=1000"`
	Items       []ItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateRequisitionRequest replaces the purpose and items
type UpdateRequisitionRequest struct {
	Purpose string        `json:"purpose" binding:"max=1000"`
	Items   []ItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ApprovalRequest sets the approved quantity of one line
type ApprovalRequest struct {
	ItemID                uuid.UUID `json:"item_id" binding:"required"`
	ApprovedQty           int       `json:"approved_qty" binding:"min=0"`
	NumberOfDaysToConsume *int      `json:"number_of_days_to_consume" binding:"omitempty,min=0"`
}

// ReviewRequest carries the approvals for every line
type ReviewRequest struct {
	Items []ApprovalRequest `json:"items" binding:"required,min=1,dive"`
}

// CancelRequest withdraws a requisition
type CancelRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// RequisitionItemResponse is one line
type RequisitionItemResponse struct {
	ID                    uuid.UUID  `json:"id"`
	AssetID               uuid.UUID  `json:"asset_id"`
	RequestedQty          int        `json:"requested_qty"`
	ApprovedQty           int        `json:"approved_qty"`
	NumberOfDaysToConsume *int       `json:"number_of_days_to_consume,omitempty"`
	Remarks               string     `json:"remarks,omitempty"`
	StockID               *uuid.UUID `json:"stock_id,omitempty"`
}

// RequisitionResponse represents a requisition
type RequisitionResponse struct {
	ID              uuid.UUID                 `json:"id"`
	RISNo           string                    `json:"ris_no"`
	OfficeID        uuid.UUID                 `json:"office_id"`
	RequestedBy     uuid.UUID                 `json:"requested_by"`
	IssuingOfficeID *uuid.UUID                `json:"issuing_office_id,omitempty"`
	Purpose         string                    `json:"purpose,omitempty"`
	Status          string                    `json:"status"`
	EntityName      string                    `json:"entity_name"`
	FundCluster     string                    `json:"fund_cluster"`
	Items           []RequisitionItemResponse `json:"items"`
	EvaluatedBy     *uuid.UUID                `json:"evaluated_by,omitempty"`
	ReviewedBy      *uuid.UUID                `json:"reviewed_by,omitempty"`
	ApprovedBy      *uuid.UUID                `json:"approved_by,omitempty"`
	IssuedBy        *uuid.UUID                `json:"issued_by,omitempty"`
	IssuedAt        *time.Time                `json:"issued_at,omitempty"`
	CancelReason    string                    `json:"cancel_reason,omitempty"`
	CancelledAt     *time.Time                `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
	Version         int                       `json:"version"`
}

// ToRequisitionResponse maps a requisition
func ToRequisitionResponse(r *requisition.Requisition) RequisitionResponse {
	items := make([]RequisitionItemResponse, len(r.Items))
	for i, it := range r.Items {
		items[i] = RequisitionItemResponse{
			ID:                    it.ID,
			AssetID:               it.AssetID,
			RequestedQty:          it.RequestedQty,
			ApprovedQty:           it.ApprovedQty,
			NumberOfDaysToConsume: it.NumberOfDaysToConsume,
			Remarks:               it.Remarks,
			StockID:               it.StockID,
		}
	}
	return RequisitionResponse{
		ID:              r.ID,
		RISNo:           r.RISNo,
		OfficeID:        r.OfficeID,
		RequestedBy:     r.RequestedBy,
		IssuingOfficeID: r.IssuingOfficeID,
		Purpose:         r.Purpose,
		Status:          r.Status.String(),
		EntityName:      r.EntityName,
		FundCluster:     r.FundCluster,
		Items:           items,
		EvaluatedBy:     r.EvaluatedBy,
		ReviewedBy:      r.ReviewedBy,
		ApprovedBy:      r.ApprovedBy,
		IssuedBy:        r.IssuedBy,
		IssuedAt:        r.IssuedAt,
		CancelReason:    r.CancelReason,
		CancelledAt:     r.CancelledAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		Version:         r.Version,
	}
}

// ListFilter represents filter options for listing requisitions
type ListFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=for-evaluation evaluating for-review pending issued cancelled"`
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
