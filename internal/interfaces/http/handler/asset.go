package handler

import (
	"github.com/gin-gonic/gin"
	assetapp "github.com/govprop/backend/internal/application/asset"
)

// AssetHandler serves the asset catalogue
type AssetHandler struct {
	BaseHandler
	assetService *assetapp.Service
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(assetService *assetapp.Service) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// CreateConsumable godoc
//
//	@Summary		Register a consumable
//	@Description	Creates a consumable asset with its opening quantity
//	@Tags			assets
//	@Accept			json
//	@Produce		json
//	@Param			request	body		assetapp.CreateConsumableRequest	true	"Consumable"
//	@Success		201		{object}	APIResponse[assetapp.AssetResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/assets/consumables [post]
func (h *AssetHandler) CreateConsumable(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req assetapp.CreateConsumableRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.assetService.CreateConsumable(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// CreateProperty godoc
//
//	@Summary		Register a property
//	@Description	Creates an SEP or PPE asset and numbers its units in the ledger
//	@Tags			assets
//	@Accept			json
//	@Produce		json
//	@Param			request	body		assetapp.CreatePropertyRequest	true	"Property"
//	@Success		201		{object}	APIResponse[assetapp.AssetResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/assets/properties [post]
func (h *AssetHandler) CreateProperty(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req assetapp.CreatePropertyRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.assetService.CreateProperty(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get godoc
//
//	@Summary	Get an asset
//	@Tags		assets
//	@Produce	json
//	@Param		id	path		string	true	"Asset ID"
//	@Success	200	{object}	APIResponse[assetapp.AssetResponse]
//	@Failure	404	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/assets/{id} [get]
func (h *AssetHandler) Get(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.assetService.GetAssetByID(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List godoc
//
//	@Summary	List assets
//	@Tags		assets
//	@Produce	json
//	@Param		search		query		string	false	"Name or property number"
//	@Param		type		query		string	false	"consumable, sep or ppe"
//	@Param		page		query		int		false	"Page"
//	@Param		page_size	query		int		false	"Page size"
//	@Success	200			{object}	APIResponse[[]assetapp.AssetResponse]
//	@Security	BearerAuth
//	@Router		/assets [get]
func (h *AssetHandler) List(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var filter assetapp.ListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	assets, total, err := h.assetService.List(c.Request.Context(), actor, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, assets, total, filter.ToShared())
}

// Update godoc
//
//	@Summary	Update an asset's descriptive fields
//	@Tags		assets
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Asset ID"
//	@Param		request	body		assetapp.UpdateRequest	true	"Changes"
//	@Success	200		{object}	APIResponse[assetapp.AssetResponse]
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/assets/{id} [put]
func (h *AssetHandler) Update(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req assetapp.UpdateRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.assetService.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete godoc
//
//	@Summary		Delete an asset
//	@Description	Soft-deletes an asset none of whose units have moved
//	@Tags			assets
//	@Param			id	path	string	true	"Asset ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/assets/{id} [delete]
func (h *AssetHandler) Delete(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	if err := h.assetService.Delete(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
