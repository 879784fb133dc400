package handler

import (
	"github.com/gin-gonic/gin"
	settingapp "github.com/govprop/backend/internal/application/setting"
)

// SettingHandler serves the document configuration store
type SettingHandler struct {
	BaseHandler
	service *settingapp.Service
}

// NewSettingHandler creates a new SettingHandler
func NewSettingHandler(service *settingapp.Service) *SettingHandler {
	return &SettingHandler{service: service}
}

// Get godoc
//
//	@Summary	Read a setting
//	@Tags		settings
//	@Produce	json
//	@Param		name	path		string	true	"entityName, fundCluster or lossApproverEmail"
//	@Success	200		{object}	APIResponse[settingapp.SettingResponse]
//	@Failure	404		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/settings/{name} [get]
func (h *SettingHandler) Get(c *gin.Context) {
	resp, err := h.service.GetConfigByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update godoc
//
//	@Summary		Replace a setting
//	@Description	Admin only. Cached copies on every instance are invalidated.
//	@Tags			settings
//	@Accept			json
//	@Produce		json
//	@Param			name	path		string							true	"Setting name"
//	@Param			request	body		settingapp.UpdateSettingRequest	true	"Value"
//	@Success		200		{object}	APIResponse[settingapp.SettingResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/settings/{name} [put]
func (h *SettingHandler) Update(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req settingapp.UpdateSettingRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.service.UpdateConfigByName(c.Request.Context(), actor, c.Param("name"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
