package handler

import (
	"github.com/gin-gonic/gin"
	stockapp "github.com/govprop/backend/internal/application/stock"
)

// StockHandler serves the stock ledger
type StockHandler struct {
	BaseHandler
	stockService *stockapp.Service
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stockService *stockapp.Service) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// Create godoc
//
//	@Summary		Write one ledger movement
//	@Description	A good-condition receipt restocks a consumable; other conditions record a status change
//	@Tags			stocks
//	@Accept			json
//	@Produce		json
//	@Param			request	body		stockapp.CreateStockRequest	true	"Movement"
//	@Success		201		{object}	APIResponse[stockapp.EntryResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/stocks [post]
func (h *StockHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req stockapp.CreateStockRequest
	if !h.bindJSON(c, &req) {
		return
	}
	movement, err := req.ToMovement(actor.UserRef())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	entry, err := h.stockService.CreateStock(c.Request.Context(), movement)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, stockapp.ToEntryResponse(entry))
}

// CreateBatch godoc
//
//	@Summary		Write several movements for one office atomically
//	@Tags			stocks
//	@Accept			json
//	@Produce		json
//	@Param			request	body		stockapp.BatchRequest	true	"Batch"
//	@Success		201		{object}	APIResponse[[]stockapp.EntryResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/stocks/batch [post]
func (h *StockHandler) CreateBatch(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req stockapp.BatchRequest
	if !h.bindJSON(c, &req) {
		return
	}
	items, err := req.ToBatchItems()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	entries, err := h.stockService.CreateStockByBatch(c.Request.Context(), req.OfficeID, actor.UserRef(), items)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, stockapp.ToEntryResponses(entries))
}

// Issue godoc
//
//	@Summary		Issue stock to an office
//	@Description	Consumables issue the quantity in one entry; properties reissue the lowest pristine unit numbers
//	@Tags			stocks
//	@Accept			json
//	@Produce		json
//	@Param			request	body		stockapp.IssueRequest	true	"Issuance"
//	@Success		201		{object}	APIResponse[[]stockapp.EntryResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/stocks/issue [post]
func (h *StockHandler) Issue(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req stockapp.IssueRequest
	if !h.bindJSON(c, &req) {
		return
	}
	entries, err := h.stockService.IssueStockByBatch(c.Request.Context(), req.OfficeID, actor.UserRef(), req.ToIssueItems())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, stockapp.ToEntryResponses(entries))
}

// Transfer godoc
//
//	@Summary		Transfer held stock to another office
//	@Tags			stocks
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Stock entry ID"
//	@Param			request	body		stockapp.TransferRequest	true	"Transfer"
//	@Success		201		{object}	APIResponse[stockapp.EntryResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/stocks/{id}/transfer [post]
func (h *StockHandler) Transfer(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req stockapp.TransferRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.stockService.TransferStock(c.Request.Context(), actor, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get godoc
//
//	@Summary	Get a ledger entry
//	@Tags		stocks
//	@Produce	json
//	@Param		id	path		string	true	"Stock entry ID"
//	@Success	200	{object}	APIResponse[stockapp.EntryResponse]
//	@Failure	404	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/stocks/{id} [get]
func (h *StockHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.stockService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListByReference godoc
//
//	@Summary	List the entries written by one document
//	@Tags		stocks
//	@Produce	json
//	@Param		reference	path		string	true	"Document number, e.g. IS-2026-03-0001"
//	@Success	200			{object}	APIResponse[[]stockapp.EntryResponse]
//	@Security	BearerAuth
//	@Router		/stocks/reference/{reference} [get]
func (h *StockHandler) ListByReference(c *gin.Context) {
	resp, err := h.stockService.ListByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListByAsset godoc
//
//	@Summary	Page through an asset's ledger, newest first
//	@Tags		assets
//	@Produce	json
//	@Param		id			path		string	true	"Asset ID"
//	@Param		condition	query		string	false	"Condition"
//	@Param		office_id	query		string	false	"Office ID"
//	@Param		page		query		int		false	"Page"
//	@Param		page_size	query		int		false	"Page size"
//	@Success	200			{object}	APIResponse[[]stockapp.EntryResponse]
//	@Security	BearerAuth
//	@Router		/assets/{id}/stocks [get]
func (h *StockHandler) ListByAsset(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var filter stockapp.EntryListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	entries, total, err := h.stockService.ListByAsset(c.Request.Context(), id, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, entries, total, filter.ToShared())
}

// CurrentUnits godoc
//
//	@Summary		Current state of every numbered unit
//	@Description	Returns the latest ledger entry of each item number of the asset
//	@Tags			assets
//	@Produce		json
//	@Param			id	path		string	true	"Asset ID"
//	@Success		200	{object}	APIResponse[[]stockapp.EntryResponse]
//	@Security		BearerAuth
//	@Router			/assets/{id}/units [get]
func (h *StockHandler) CurrentUnits(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.stockService.CurrentUnits(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
