package handler

import (
	"github.com/gin-gonic/gin"
	requisitionapp "github.com/govprop/backend/internal/application/requisition"
)

// RequisitionHandler serves requisition and issue slips (RIS)
type RequisitionHandler struct {
	BaseHandler
	service *requisitionapp.Service
}

// NewRequisitionHandler creates a new RequisitionHandler
func NewRequisitionHandler(service *requisitionapp.Service) *RequisitionHandler {
	return &RequisitionHandler{service: service}
}

// Create godoc
//
//	@Summary	File a requisition
//	@Tags		requisitions
//	@Accept		json
//	@Produce	json
//	@Param		request	body		requisitionapp.CreateRequisitionRequest	true	"Requisition"
//	@Success	201		{object}	APIResponse[requisitionapp.RequisitionResponse]
//	@Failure	400		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/requisitions [post]
func (h *RequisitionHandler) Create(c *gin.Context) {
	createDocument(&h.BaseHandler, c, h.service.Create)
}

// List godoc
//
//	@Summary	List requisitions
//	@Tags		requisitions
//	@Produce	json
//	@Param		status		query		string	false	"Status"
//	@Param		page		query		int		false	"Page"
//	@Param		page_size	query		int		false	"Page size"
//	@Success	200			{object}	APIResponse[[]requisitionapp.RequisitionResponse]
//	@Security	BearerAuth
//	@Router		/requisitions [get]
func (h *RequisitionHandler) List(c *gin.Context) {
	listDocuments(&h.BaseHandler, c, h.service.List)
}

// Get godoc
//
//	@Summary	Get a requisition
//	@Tags		requisitions
//	@Produce	json
//	@Param		id	path		string	true	"Requisition ID"
//	@Success	200	{object}	APIResponse[requisitionapp.RequisitionResponse]
//	@Failure	404	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/requisitions/{id} [get]
func (h *RequisitionHandler) Get(c *gin.Context) {
	getDocument(&h.BaseHandler, c, h.service.GetByID)
}

// GetByRISNo godoc
//
//	@Summary	Get a requisition by its RIS number
//	@Tags		requisitions
//	@Produce	json
//	@Param		ris_no	path		string	true	"RIS number"
//	@Success	200		{object}	APIResponse[requisitionapp.RequisitionResponse]
//	@Failure	404		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/requisitions/ris/{ris_no} [get]
func (h *RequisitionHandler) GetByRISNo(c *gin.Context) {
	resp, err := h.service.GetByRISNo(c.Request.Context(), c.Param("ris_no"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update godoc
//
//	@Summary	Edit a requisition awaiting evaluation
//	@Tags		requisitions
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string									true	"Requisition ID"
//	@Param		request	body		requisitionapp.UpdateRequisitionRequest	true	"Requisition"
//	@Success	200		{object}	APIResponse[requisitionapp.RequisitionResponse]
//	@Failure	400		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/requisitions/{id} [put]
func (h *RequisitionHandler) Update(c *gin.Context) {
	updateDocument(&h.BaseHandler, c, h.service.UpdateByID)
}

// Evaluate godoc
//
//	@Summary	Start evaluating a requisition
//	@Tags		requisitions
//	@Produce	json
//	@Param		id	path		string	true	"Requisition ID"
//	@Success	200	{object}	APIResponse[requisitionapp.RequisitionResponse]
//	@Failure	400	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/requisitions/{id}/evaluate [post]
func (h *RequisitionHandler) Evaluate(c *gin.Context) {
	transition(&h.BaseHandler, c, h.service.UpdateStatusToEvaluating)
}

// Review godoc
//
//	@Summary	Set approved quantities and send for review
//	@Tags		requisitions
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Requisition ID"
//	@Param		request	body		requisitionapp.ReviewRequest	true	"Approvals"
//	@Success	200		{object}	APIResponse[requisitionapp.RequisitionResponse]
//	@Failure	400		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/requisitions/{id}/review [post]
func (h *RequisitionHandler) Review(c *gin.Context) {
	updateDocument(&h.BaseHandler, c, h.service.UpdateStatusToForReview)
}

// Approve godoc
//
//	@Summary	Approve a reviewed requisition for issuance
//	@Tags		requisitions
//	@Produce	json
//	@Param		id	path		string	true	"Requisition ID"
//	@Success	200	{object}	APIResponse[requisitionapp.RequisitionResponse]
//	@Failure	400	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/requisitions/{id}/approve [post]
func (h *RequisitionHandler) Approve(c *gin.Context) {
	transition(&h.BaseHandler, c, h.service.UpdateStatusToPending)
}

// Cancel godoc
//
//	@Summary	Cancel a requisition
//	@Tags		requisitions
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Requisition ID"
//	@Param		request	body		requisitionapp.CancelRequest	true	"Reason"
//	@Success	200		{object}	APIResponse[requisitionapp.RequisitionResponse]
//	@Failure	400		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/requisitions/{id}/cancel [post]
func (h *RequisitionHandler) Cancel(c *gin.Context) {
	updateDocument(&h.BaseHandler, c, h.service.UpdateStatusToCancelled)
}

// Issue godoc
//
//	@Summary		Issue the approved quantities
//	@Description	Issues every approved line to the requesting office in one transaction
//	@Tags			requisitions
//	@Produce		json
//	@Param			id	path		string	true	"Requisition ID"
//	@Success		200	{object}	APIResponse[requisitionapp.RequisitionResponse]
//	@Failure		400	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/requisitions/{id}/issue [post]
func (h *RequisitionHandler) Issue(c *gin.Context) {
	transition(&h.BaseHandler, c, h.service.UpdateStatusToIssued)
}
