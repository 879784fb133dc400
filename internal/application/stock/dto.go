package stock

import (
	"time"

	"github.com/govprop/backend/internal/domain/shared"
	"github.com/govprop/backend/internal/domain/stock"
	"github.com/google/uuid"
)

// EntryResponse represents a ledger entry in API responses
type EntryResponse struct {
	ID                    uuid.UUID  `json:"id"`
	AssetID               uuid.UUID  `json:"asset_id"`
	ItemNo                string     `json:"item_no,omitempty"`
	SerialNo              string     `json:"serial_no,omitempty"`
	Ins                   int        `json:"ins"`
	Outs                  int        `json:"outs"`
	Balance               int        `json:"balance"`
	NumberOfDaysToConsume *int       `json:"number_of_days_to_consume,omitempty"`
	Condition             string     `json:"condition"`
	InitialCondition      *string    `json:"initial_condition,omitempty"`
	Reference             string     `json:"reference,omitempty"`
	OfficeID              *uuid.UUID `json:"office_id,omitempty"`
	CreatedBy             *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}

// ToEntryResponse converts a ledger entry to a response
func ToEntryResponse(e *stock.Entry) EntryResponse {
	resp := EntryResponse{
		ID:                    e.ID,
		AssetID:               e.AssetID,
		ItemNo:                e.ItemNo,
		SerialNo:              e.SerialNo,
		Ins:                   e.Ins,
		Outs:                  e.Outs,
		Balance:               e.Balance,
		NumberOfDaysToConsume: e.NumberOfDaysToConsume,
		Condition:             e.Condition.String(),
		Reference:             e.Reference,
		OfficeID:              e.OfficeID,
		CreatedBy:             e.CreatedBy,
		CreatedAt:             e.CreatedAt,
	}
	if e.InitialCondition != nil {
		ic := e.InitialCondition.String()
		resp.InitialCondition = &ic
	}
	return resp
}

// ToEntryResponses converts a slice of entries
func ToEntryResponses(entries []stock.Entry) []EntryResponse {
	out := make([]EntryResponse, len(entries))
	for i := range entries {
		out[i] = ToEntryResponse(&entries[i])
	}
	return out
}

// EntryListFilter represents filter options for an asset's ledger
type EntryListFilter struct {
	Condition string `form:"condition" binding:"omitempty,stock_condition"`
	OfficeID  string `form:"office_id" binding:"omitempty,uuid"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string `form:"order_by"`
	OrderDir  string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToShared converts the filter to a repository filter
func (f EntryListFilter) ToShared() shared.Filter {
	filter := shared.NewFilter(f.Page, f.PageSize, f.OrderBy, f.OrderDir, "")
	if f.Condition != "" {
		filter.Filters["condition"] = f.Condition
	}
	if id, err := uuid.Parse(f.OfficeID); err == nil {
		filter.Filters["office_id"] = id
	}
	return filter
}

// CreateStockRequest represents a single ledger movement
type CreateStockRequest struct {
	AssetID               uuid.UUID  `json:"asset_id" binding:"required"`
	ItemNo                string     `json:"item_no" binding:"max=20"`
	Ins                   int        `json:"ins" binding:"min=0"`
	Outs                  int        `json:"outs" binding:"min=0"`
	Condition             string     `json:"condition" binding:"required,stock_condition"`
	OfficeID              *uuid.UUID `json:"office_id"`
	Reference             string     `json:"reference" binding:"max=100"`
	SerialNo              string     `json:"serial_no" binding:"max=100"`
	Balance               *int       `json:"balance" binding:"omitempty,min=0"`
	NumberOfDaysToConsume *int       `json:"number_of_days_to_consume" binding:"omitempty,min=0"`
}

// ToMovement converts the request into a ledger movement
func (r CreateStockRequest) ToMovement(createdBy *uuid.UUID) (stock.Movement, error) {
	c, err := stock.ParseCondition(r.Condition)
	if err != nil {
		return stock.Movement{}, err
	}
	return stock.Movement{
		AssetID:               r.AssetID,
		ItemNo:                r.ItemNo,
		Ins:                   r.Ins,
		Outs:                  r.Outs,
		Condition:             c,
		OfficeID:              r.OfficeID,
		Reference:             r.Reference,
		SerialNo:              r.SerialNo,
		Balance:               r.Balance,
		NumberOfDaysToConsume: r.NumberOfDaysToConsume,
		CreatedBy:             createdBy,
	}, nil
}

// BatchItemRequest is one line of a batch request
type BatchItemRequest struct {
	AssetID               uuid.UUID `json:"asset_id" binding:"required"`
	Reference             string    `json:"reference" binding:"max=100"`
	SerialNo              string    `json:"serial_no" binding:"max=100"`
	Qty                   int       `json:"qty" binding:"required,min=1"`
	ItemNo                string    `json:"item_no" binding:"max=20"`
	InitialCondition      string    `json:"initial_condition" binding:"omitempty,stock_condition"`
	Condition             string    `json:"condition" binding:"required,stock_condition"`
	Balance               *int      `json:"balance" binding:"omitempty,min=0"`
	NumberOfDaysToConsume *int      `json:"number_of_days_to_consume" binding:"omitempty,min=0"`
}

// BatchRequest applies several movements for one office atomically
type BatchRequest struct {
	OfficeID uuid.UUID          `json:"office_id" binding:"required"`
	Items    []BatchItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ToBatchItems converts the request lines into domain batch items
func (r BatchRequest) ToBatchItems() ([]stock.BatchItem, error) {
	items := make([]stock.BatchItem, len(r.Items))
	for i, line := range r.Items {
		c, err := stock.ParseCondition(line.Condition)
		if err != nil {
			return nil, err
		}
		item := stock.BatchItem{
			AssetID:               line.AssetID,
			Reference:             line.Reference,
			SerialNo:              line.SerialNo,
			Qty:                   line.Qty,
			ItemNo:                line.ItemNo,
			Condition:             c,
			Balance:               line.Balance,
			NumberOfDaysToConsume: line.NumberOfDaysToConsume,
		}
		if line.InitialCondition != "" {
			ic, err := stock.ParseCondition(line.InitialCondition)
			if err != nil {
				return nil, err
			}
			item.InitialCondition = &ic
		}
		items[i] = item
	}
	return items, nil
}

// IssueItemRequest is one asset line of an issuance
type IssueItemRequest struct {
	AssetID               uuid.UUID `json:"asset_id" binding:"required"`
	Qty                   int       `json:"qty" binding:"required,min=1"`
	Reference             string    `json:"reference" binding:"max=100"`
	SerialNo              string    `json:"serial_no" binding:"max=100"`
	NumberOfDaysToConsume *int      `json:"number_of_days_to_consume" binding:"omitempty,min=0"`
}

// IssueRequest issues several assets to one office
type IssueRequest struct {
	OfficeID uuid.UUID          `json:"office_id" binding:"required"`
	Items    []IssueItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ToIssueItems converts the request lines into domain issue items
func (r IssueRequest) ToIssueItems() []stock.IssueItem {
	items := make([]stock.IssueItem, len(r.Items))
	for i, line := range r.Items {
		items[i] = stock.IssueItem{
			AssetID:               line.AssetID,
			Qty:                   line.Qty,
			Reference:             line.Reference,
			SerialNo:              line.SerialNo,
			NumberOfDaysToConsume: line.NumberOfDaysToConsume,
		}
	}
	return items
}

// TransferRequest moves held stock to another office. Quantity 0 transfers everything the entry holds.
type TransferRequest struct {
	ToOfficeID uuid.UUID `json:"to_office_id" binding:"required"`
	Quantity   int       `json:"quantity" binding:"min=0"`
}
