package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/govprop/backend/internal/domain/shared"
)

// Lifecycle document endpoints all authenticate, bind, call one service method and wrap the result.

func createDocument[Req, Resp any](h *BaseHandler, c *gin.Context,
	fn func(context.Context, shared.Actor, Req) (Resp, error)) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req Req
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := fn(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

func updateDocument[Req, Resp any](h *BaseHandler, c *gin.Context,
	fn func(context.Context, shared.Actor, uuid.UUID, Req) (Resp, error)) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req Req
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := fn(c.Request.Context(), actor, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// transition runs a status change that takes no body
func transition[Resp any](h *BaseHandler, c *gin.Context,
	fn func(context.Context, shared.Actor, uuid.UUID) (Resp, error)) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	resp, err := fn(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

func getDocument[Resp any](h *BaseHandler, c *gin.Context, fn func(context.Context, uuid.UUID) (Resp, error)) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	resp, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

type sharedFilter interface {
	ToShared() shared.Filter
}

func listDocuments[F sharedFilter, Resp any](h *BaseHandler, c *gin.Context,
	fn func(context.Context, F) ([]Resp, int64, error)) {
	var filter F
	if !h.bindQuery(c, &filter) {
		return
	}
	items, total, err := fn(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, filter.ToShared())
}
