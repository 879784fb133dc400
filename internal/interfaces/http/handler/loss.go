package handler

import (
	"github.com/gin-gonic/gin"
	lossapp "github.com/govprop/backend/internal/application/loss"
)

// LossHandler serves loss reports
type LossHandler struct {
	BaseHandler
	service *lossapp.Service
}

// NewLossHandler creates a new LossHandler
func NewLossHandler(service *lossapp.Service) *LossHandler {
	return &LossHandler{service: service}
}

// Create godoc
//
//	@Summary	Report lost, stolen, damaged or destroyed units
//	@Tags		losses
//	@Accept		json
//	@Produce	json
//	@Param		request	body		lossapp.CreateLossRequest	true	"Loss report"
//	@Success	201		{object}	APIResponse[lossapp.LossResponse]
//	@Failure	400		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/losses [post]
func (h *LossHandler) Create(c *gin.Context) {
	createDocument(&h.BaseHandler, c, h.service.Create)
}

// List godoc
//
//	@Summary	List loss reports
//	@Tags		losses
//	@Produce	json
//	@Param		status		query		string	false	"pending, approved or completed"
//	@Param		page		query		int		false	"Page"
//	@Param		page_size	query		int		false	"Page size"
//	@Success	200			{object}	APIResponse[[]lossapp.LossResponse]
//	@Security	BearerAuth
//	@Router		/losses [get]
func (h *LossHandler) List(c *gin.Context) {
	listDocuments(&h.BaseHandler, c, h.service.List)
}

// Get godoc
//
//	@Summary	Get a loss report
//	@Tags		losses
//	@Produce	json
//	@Param		id	path		string	true	"Loss ID"
//	@Success	200	{object}	APIResponse[lossapp.LossResponse]
//	@Failure	404	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/losses/{id} [get]
func (h *LossHandler) Get(c *gin.Context) {
	getDocument(&h.BaseHandler, c, h.service.GetByID)
}

// Update godoc
//
//	@Summary	Edit a pending loss report
//	@Tags		losses
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Loss ID"
//	@Param		request	body		lossapp.UpdateLossRequest	true	"Loss report"
//	@Success	200		{object}	APIResponse[lossapp.LossResponse]
//	@Failure	400		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/losses/{id} [put]
func (h *LossHandler) Update(c *gin.Context) {
	updateDocument(&h.BaseHandler, c, h.service.UpdateByID)
}

// Approve godoc
//
//	@Summary	Approve a loss report
//	@Tags		losses
//	@Produce	json
//	@Param		id	path		string	true	"Loss ID"
//	@Success	200	{object}	APIResponse[lossapp.LossResponse]
//	@Failure	400	{object}	ErrorResponse
//	@Failure	403	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/losses/{id}/approve [post]
func (h *LossHandler) Approve(c *gin.Context) {
	transition(&h.BaseHandler, c, h.service.UpdateStatusToApproved)
}

// Complete godoc
//
//	@Summary		Complete a loss report
//	@Description	Writes each unit's reported condition to the ledger
//	@Tags			losses
//	@Produce		json
//	@Param			id	path		string	true	"Loss ID"
//	@Success		200	{object}	APIResponse[lossapp.LossResponse]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/losses/{id}/complete [post]
func (h *LossHandler) Complete(c *gin.Context) {
	transition(&h.BaseHandler, c, h.service.UpdateStatusToCompleted)
}
