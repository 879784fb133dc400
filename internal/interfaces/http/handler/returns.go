package handler

import (
	"github.com/gin-gonic/gin"
	returnsapp "github.com/govprop/backend/internal/application/returns"
)

// ReturnHandler serves returns of issued stock
type ReturnHandler struct {
	BaseHandler
	service *returnsapp.Service
}

// NewReturnHandler creates a new ReturnHandler
func NewReturnHandler(service *returnsapp.Service) *ReturnHandler {
	return &ReturnHandler{service: service}
}

// Create godoc
//
//	@Summary	File a return
//	@Tags		returns
//	@Accept		json
//	@Produce	json
//	@Param		request	body		returnsapp.CreateReturnRequest	true	"Return"
//	@Success	201		{object}	APIResponse[returnsapp.ReturnResponse]
//	@Failure	400		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/returns [post]
func (h *ReturnHandler) Create(c *gin.Context) {
	createDocument(&h.BaseHandler, c, h.service.Create)
}

// List godoc
//
//	@Summary	List returns
//	@Tags		returns
//	@Produce	json
//	@Param		status		query		string	false	"pending, approved or completed"
//	@Param		page		query		int		false	"Page"
//	@Param		page_size	query		int		false	"Page size"
//	@Success	200			{object}	APIResponse[[]returnsapp.ReturnResponse]
//	@Security	BearerAuth
//	@Router		/returns [get]
func (h *ReturnHandler) List(c *gin.Context) {
	listDocuments(&h.BaseHandler, c, h.service.List)
}

// Get godoc
//
//	@Summary	Get a return
//	@Tags		returns
//	@Produce	json
//	@Param		id	path		string	true	"Return ID"
//	@Success	200	{object}	APIResponse[returnsapp.ReturnResponse]
//	@Failure	404	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/returns/{id} [get]
func (h *ReturnHandler) Get(c *gin.Context) {
	getDocument(&h.BaseHandler, c, h.service.GetByID)
}

// Update godoc
//
//	@Summary	Edit a pending return
//	@Tags		returns
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"Return ID"
//	@Param		request	body		returnsapp.UpdateReturnRequest	true	"Return"
//	@Success	200		{object}	APIResponse[returnsapp.ReturnResponse]
//	@Failure	400		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/returns/{id} [put]
func (h *ReturnHandler) Update(c *gin.Context) {
	updateDocument(&h.BaseHandler, c, h.service.UpdateByID)
}

// Approve godoc
//
//	@Summary	Approve a return
//	@Tags		returns
//	@Produce	json
//	@Param		id	path		string	true	"Return ID"
//	@Success	200	{object}	APIResponse[returnsapp.ReturnResponse]
//	@Failure	400	{object}	ErrorResponse
//	@Failure	403	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/returns/{id}/approve [post]
func (h *ReturnHandler) Approve(c *gin.Context) {
	transition(&h.BaseHandler, c, h.service.UpdateStatusToApproved)
}

// Complete godoc
//
//	@Summary		Complete a return
//	@Description	Receives the returned units back into stock with their declared condition
//	@Tags			returns
//	@Produce		json
//	@Param			id	path		string	true	"Return ID"
//	@Success		200	{object}	APIResponse[returnsapp.ReturnResponse]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/returns/{id}/complete [post]
func (h *ReturnHandler) Complete(c *gin.Context) {
	transition(&h.BaseHandler, c, h.service.UpdateStatusToCompleted)
}
