package handler

import (
	"github.com/gin-gonic/gin"
	wasteapp "github.com/govprop/backend/internal/application/waste"
)

// WasteHandler serves waste material reports
type WasteHandler struct {
	BaseHandler
	service *wasteapp.Service
}

// NewWasteHandler creates a new WasteHandler
func NewWasteHandler(service *wasteapp.Service) *WasteHandler {
	return &WasteHandler{service: service}
}

// Create godoc
//
//	@Summary	Draft a waste report
//	@Tags		wastes
//	@Accept		json
//	@Produce	json
//	@Param		request	body		wasteapp.CreateWasteRequest	true	"Waste report"
//	@Success	201		{object}	APIResponse[wasteapp.WasteResponse]
//	@Failure	400		{object}	ErrorResponse
//	@Failure	403		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/wastes [post]
func (h *WasteHandler) Create(c *gin.Context) {
	createDocument(&h.BaseHandler, c, h.service.Create)
}

// List godoc
//
//	@Summary	List waste reports
//	@Tags		wastes
//	@Produce	json
//	@Param		status		query		string	false	"pending or completed"
//	@Param		page		query		int		false	"Page"
//	@Param		page_size	query		int		false	"Page size"
//	@Success	200			{object}	APIResponse[[]wasteapp.WasteResponse]
//	@Security	BearerAuth
//	@Router		/wastes [get]
func (h *WasteHandler) List(c *gin.Context) {
	listDocuments(&h.BaseHandler, c, h.service.List)
}

// Get godoc
//
//	@Summary	Get a waste report
//	@Tags		wastes
//	@Produce	json
//	@Param		id	path		string	true	"Waste ID"
//	@Success	200	{object}	APIResponse[wasteapp.WasteResponse]
//	@Failure	404	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/wastes/{id} [get]
func (h *WasteHandler) Get(c *gin.Context) {
	getDocument(&h.BaseHandler, c, h.service.GetByID)
}

// Update godoc
//
//	@Summary	Edit a pending waste report
//	@Tags		wastes
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Waste ID"
//	@Param		request	body		wasteapp.UpdateWasteRequest	true	"Waste report"
//	@Success	200		{object}	APIResponse[wasteapp.WasteResponse]
//	@Failure	400		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/wastes/{id} [put]
func (h *WasteHandler) Update(c *gin.Context) {
	updateDocument(&h.BaseHandler, c, h.service.UpdateByID)
}

// Complete godoc
//
//	@Summary		Dispose of the listed units
//	@Description	Writes a for-disposal entry per unit under the report's office
//	@Tags			wastes
//	@Produce		json
//	@Param			id	path		string	true	"Waste ID"
//	@Success		200	{object}	APIResponse[wasteapp.WasteResponse]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/wastes/{id}/complete [post]
func (h *WasteHandler) Complete(c *gin.Context) {
	transition(&h.BaseHandler, c, h.service.UpdateStatusToCompleted)
}
