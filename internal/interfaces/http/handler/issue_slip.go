package handler

import (
	"github.com/gin-gonic/gin"
	issueslipapp "github.com/govprop/backend/internal/application/issueslip"
)

// IssueSlipHandler serves issue slips (IS)
type IssueSlipHandler struct {
	BaseHandler
	service *issueslipapp.Service
}

// NewIssueSlipHandler creates a new IssueSlipHandler
func NewIssueSlipHandler(service *issueslipapp.Service) *IssueSlipHandler {
	return &IssueSlipHandler{service: service}
}

// Create godoc
//
//	@Summary	Draft an issue slip
//	@Tags		issue-slips
//	@Accept		json
//	@Produce	json
//	@Param		request	body		issueslipapp.CreateIssueSlipRequest	true	"Issue slip"
//	@Success	201		{object}	APIResponse[issueslipapp.IssueSlipResponse]
//	@Failure	400		{object}	ErrorResponse
//	@Failure	403		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/issue-slips [post]
func (h *IssueSlipHandler) Create(c *gin.Context) {
	createDocument(&h.BaseHandler, c, h.service.Create)
}

// List godoc
//
//	@Summary	List issue slips
//	@Tags		issue-slips
//	@Produce	json
//	@Param		status		query		string	false	"pending or issued"
//	@Param		office_id	query		string	false	"Receiving office"
//	@Param		page		query		int		false	"Page"
//	@Param		page_size	query		int		false	"Page size"
//	@Success	200			{object}	APIResponse[[]issueslipapp.IssueSlipResponse]
//	@Security	BearerAuth
//	@Router		/issue-slips [get]
func (h *IssueSlipHandler) List(c *gin.Context) {
	listDocuments(&h.BaseHandler, c, h.service.List)
}

// Get godoc
//
//	@Summary	Get an issue slip
//	@Tags		issue-slips
//	@Produce	json
//	@Param		id	path		string	true	"Issue slip ID"
//	@Success	200	{object}	APIResponse[issueslipapp.IssueSlipResponse]
//	@Failure	404	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/issue-slips/{id} [get]
func (h *IssueSlipHandler) Get(c *gin.Context) {
	getDocument(&h.BaseHandler, c, h.service.GetByID)
}

// Update godoc
//
//	@Summary	Replace the lines of a pending issue slip
//	@Tags		issue-slips
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string								true	"Issue slip ID"
//	@Param		request	body		issueslipapp.UpdateIssueSlipRequest	true	"Issue slip"
//	@Success	200		{object}	APIResponse[issueslipapp.IssueSlipResponse]
//	@Failure	400		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/issue-slips/{id} [put]
func (h *IssueSlipHandler) Update(c *gin.Context) {
	updateDocument(&h.BaseHandler, c, h.service.UpdateByID)
}

// Issue godoc
//
//	@Summary		Issue the slip
//	@Description	Issues every line to the receiving office in one transaction
//	@Tags			issue-slips
//	@Produce		json
//	@Param			id	path		string	true	"Issue slip ID"
//	@Success		200	{object}	APIResponse[issueslipapp.IssueSlipResponse]
//	@Failure		400	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/issue-slips/{id}/issue [post]
func (h *IssueSlipHandler) Issue(c *gin.Context) {
	transition(&h.BaseHandler, c, h.service.UpdateStatusToIssued)
}
