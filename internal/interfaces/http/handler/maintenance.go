package handler

import (
	"github.com/gin-gonic/gin"
	maintenanceapp "github.com/govprop/backend/internal/application/maintenance"
)

// MaintenanceHandler serves repair requests for property units
type MaintenanceHandler struct {
	BaseHandler
	service *maintenanceapp.Service
}

// NewMaintenanceHandler creates a new MaintenanceHandler
func NewMaintenanceHandler(service *maintenanceapp.Service) *MaintenanceHandler {
	return &MaintenanceHandler{service: service}
}

// Create godoc
//
//	@Summary	Request maintenance of a unit
//	@Tags		maintenances
//	@Accept		json
//	@Produce	json
//	@Param		request	body		maintenanceapp.CreateMaintenanceRequest	true	"Maintenance request"
//	@Success	201		{object}	APIResponse[maintenanceapp.MaintenanceResponse]
//	@Failure	400		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/maintenances [post]
func (h *MaintenanceHandler) Create(c *gin.Context) {
	createDocument(&h.BaseHandler, c, h.service.Create)
}

// List godoc
//
//	@Summary	List maintenance requests
//	@Tags		maintenances
//	@Produce	json
//	@Param		status		query		string	false	"pending, scheduled, rescheduled, completed or cancelled"
//	@Param		page		query		int		false	"Page"
//	@Param		page_size	query		int		false	"Page size"
//	@Success	200			{object}	APIResponse[[]maintenanceapp.MaintenanceResponse]
//	@Security	BearerAuth
//	@Router		/maintenances [get]
func (h *MaintenanceHandler) List(c *gin.Context) {
	listDocuments(&h.BaseHandler, c, h.service.List)
}

// Get godoc
//
//	@Summary	Get a maintenance request
//	@Tags		maintenances
//	@Produce	json
//	@Param		id	path		string	true	"Maintenance ID"
//	@Success	200	{object}	APIResponse[maintenanceapp.MaintenanceResponse]
//	@Failure	404	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/maintenances/{id} [get]
func (h *MaintenanceHandler) Get(c *gin.Context) {
	getDocument(&h.BaseHandler, c, h.service.GetByID)
}

// Update godoc
//
//	@Summary	Edit a pending maintenance request
//	@Tags		maintenances
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string									true	"Maintenance ID"
//	@Param		request	body		maintenanceapp.UpdateMaintenanceRequest	true	"Maintenance request"
//	@Success	200		{object}	APIResponse[maintenanceapp.MaintenanceResponse]
//	@Failure	400		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/maintenances/{id} [put]
func (h *MaintenanceHandler) Update(c *gin.Context) {
	updateDocument(&h.BaseHandler, c, h.service.UpdateByID)
}

// Schedule godoc
//
//	@Summary	Schedule the repair
//	@Tags		maintenances
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"Maintenance ID"
//	@Param		request	body		maintenanceapp.ScheduleRequest	true	"Service date"
//	@Success	200		{object}	APIResponse[maintenanceapp.MaintenanceResponse]
//	@Failure	400		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/maintenances/{id}/schedule [post]
func (h *MaintenanceHandler) Schedule(c *gin.Context) {
	updateDocument(&h.BaseHandler, c, h.service.UpdateStatusToScheduled)
}

// Reschedule godoc
//
//	@Summary	Move the service date
//	@Tags		maintenances
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"Maintenance ID"
//	@Param		request	body		maintenanceapp.ScheduleRequest	true	"Service date"
//	@Success	200		{object}	APIResponse[maintenanceapp.MaintenanceResponse]
//	@Failure	400		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/maintenances/{id}/reschedule [post]
func (h *MaintenanceHandler) Reschedule(c *gin.Context) {
	updateDocument(&h.BaseHandler, c, h.service.UpdateStatusToRescheduled)
}

// Cancel godoc
//
//	@Summary	Cancel a maintenance request
//	@Tags		maintenances
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Maintenance ID"
//	@Param		request	body		maintenanceapp.CancelRequest	true	"Reason"
//	@Success	200		{object}	APIResponse[maintenanceapp.MaintenanceResponse]
//	@Failure	400		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/maintenances/{id}/cancel [post]
func (h *MaintenanceHandler) Cancel(c *gin.Context) {
	updateDocument(&h.BaseHandler, c, h.service.UpdateStatusToCancelled)
}

// Complete godoc
//
//	@Summary		Record the repair outcome
//	@Description	A repaired unit goes back to good condition; an unserviceable one is marked for disposal
//	@Tags			maintenances
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Maintenance ID"
//	@Param			request	body		maintenanceapp.CompleteRequest	true	"Outcome"
//	@Success		200		{object}	APIResponse[maintenanceapp.MaintenanceResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/maintenances/{id}/complete [post]
func (h *MaintenanceHandler) Complete(c *gin.Context) {
	updateDocument(&h.BaseHandler, c, h.service.UpdateStatusToCompleted)
}
