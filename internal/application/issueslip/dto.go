package issueslip

import (
	"time"

	"github.com/govprop/backend/internal/domain/issueslip"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CreateIssueSlipRequest drafts a slip
type CreateIssueSlipRequest struct {
	AssetID    uuid.UUID `json:"asset_id" binding:"required"`
	OfficeID   uuid.UUID `json:"office_id" binding:"required"`
	ReceivedBy uuid.UUID `json:"received_by" binding:"required"`
	Quantity   int       `json:"quantity" binding:"required,min=1"`
	Remarks    string    `json:"remarks" binding:"max=500"`
}

// UpdateIssueSlipRequest replaces the editable fields of a pending slip
type UpdateIssueSlipRequest CreateIssueSlipRequest

// IssueSlipStockResponse is one unit released on a slip
type IssueSlipStockResponse struct {
	StockID uuid.UUID `json:"stock_id"`
	ItemNo  string    `json:"item_no,omitempty"`
}

// IssueSlipResponse represents an issue slip
type IssueSlipResponse struct {
	ID              uuid.UUID                `json:"id"`
	SlipNo          string                   `json:"slip_no"`
	AssetID         uuid.UUID                `json:"asset_id"`
	OfficeID        uuid.UUID                `json:"office_id"`
	ReceivedBy      uuid.UUID                `json:"received_by"`
	IssuingOfficeID uuid.UUID                `json:"issuing_office_id"`
	Quantity        int                      `json:"quantity"`
	Status          string                   `json:"status"`
	EntityName      string                   `json:"entity_name"`
	FundCluster     string                   `json:"fund_cluster"`
	Remarks         string                   `json:"remarks,omitempty"`
	CreatedBy       *uuid.UUID               `json:"created_by,omitempty"`
	IssuedBy        *uuid.UUID               `json:"issued_by,omitempty"`
	IssuedAt        *time.Time               `json:"issued_at,omitempty"`
	Stocks          []IssueSlipStockResponse `json:"stocks"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
	Version         int                      `json:"version"`
}

// ToIssueSlipResponse maps a slip
func ToIssueSlipResponse(s *issueslip.IssueSlip) IssueSlipResponse {
	stocks := make([]IssueSlipStockResponse, len(s.Stocks))
	for i, st := range s.Stocks {
		stocks[i] = IssueSlipStockResponse{StockID: st.StockID, ItemNo: st.ItemNo}
	}
	return IssueSlipResponse{
		ID:              s.ID,
		SlipNo:          s.SlipNo,
		AssetID:         s.AssetID,
		OfficeID:        s.OfficeID,
		ReceivedBy:      s.ReceivedBy,
		IssuingOfficeID: s.IssuingOfficeID,
		Quantity:        s.Quantity,
		Status:          s.Status.String(),
		EntityName:      s.EntityName,
		FundCluster:     s.FundCluster,
		Remarks:         s.Remarks,
		CreatedBy:       s.CreatedBy,
		IssuedBy:        s.IssuedBy,
		IssuedAt:        s.IssuedAt,
		Stocks:          stocks,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
		Version:         s.Version,
	}
}

// ToIssueSlipResponses maps a page of slips
func ToIssueSlipResponses(slips []issueslip.IssueSlip) []IssueSlipResponse {
	out := make([]IssueSlipResponse, len(slips))
	for i := range slips {
		out[i] = ToIssueSlipResponse(&slips[i])
	}
	return out
}

// ListFilter represents filter options for listing slips
type ListFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending issued"`
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
