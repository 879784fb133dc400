package maintenance

import (
	"time"

	"github.com/govprop/backend/internal/domain/maintenance"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CreateMaintenanceRequest files a repair request
type CreateMaintenanceRequest struct {
	StockID     uuid.UUID `json:"stock_id" binding:"required"`
	RequestedBy uuid.UUID `json:"requested_by" binding:"required"`
	Description string    `json:"description" binding:"required,max=2000"`
}

// UpdateMaintenanceRequest edits a pending request
type UpdateMaintenanceRequest struct {
	Description string `json:"description" binding:"required,max=2000"`
}

// ScheduleRequest sets or moves the service date
type ScheduleRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

// CancelRequest withdraws a request
type CancelRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// CompleteRequest records the result of the repair
type CompleteRequest struct {
	Outcome  string `json:"outcome" binding:"required,oneof=repaired unserviceable"`
	Findings string `json:"findings" binding:"max=2000"`
}

// MaintenanceResponse represents a repair request
type MaintenanceResponse struct {
	ID             uuid.UUID  `json:"id"`
	MaintenanceNo  string     `json:"maintenance_no"`
	StockID        uuid.UUID  `json:"stock_id"`
	AssetID        uuid.UUID  `json:"asset_id"`
	ItemNo         string     `json:"item_no,omitempty"`
	OfficeID       uuid.UUID  `json:"office_id"`
	RequestedBy    uuid.UUID  `json:"requested_by"`
	Description    string     `json:"description"`
	PriorCondition string     `json:"prior_condition"`
	Status         string     `json:"status"`
	ScheduledAt    *time.Time `json:"scheduled_at,omitempty"`
	Outcome        string     `json:"outcome,omitempty"`
	Findings       string     `json:"findings,omitempty"`
	CancelReason   string     `json:"cancel_reason,omitempty"`
	CompletedBy    *uuid.UUID `json:"completed_by,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CancelledAt    *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	Version        int        `json:"version"`
}

// ToMaintenanceResponse maps a request
func ToMaintenanceResponse(m *maintenance.Maintenance) MaintenanceResponse {
	resp := MaintenanceResponse{
		ID:             m.ID,
		MaintenanceNo:  m.MaintenanceNo,
		StockID:        m.StockID,
		AssetID:        m.AssetID,
		ItemNo:         m.ItemNo,
		OfficeID:       m.OfficeID,
		RequestedBy:    m.RequestedBy,
		Description:    m.Description,
		PriorCondition: m.PriorCondition.String(),
		Status:         m.Status.String(),
		ScheduledAt:    m.ScheduledAt,
		Findings:       m.Findings,
		CancelReason:   m.CancelReason,
		CompletedBy:    m.CompletedBy,
		CompletedAt:    m.CompletedAt,
		CancelledAt:    m.CancelledAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		Version:        m.Version,
	}
	if m.Outcome != nil {
		resp.Outcome = string(*m.Outcome)
	}
	return resp
}

// ListFilter represents filter options for listing requests
type ListFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending scheduled rescheduled completed cancelled"`
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
