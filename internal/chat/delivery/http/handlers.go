package http

import (
	"github.com/gin-gonic/gin"

	"chat-session-manager/pkg/response"
)

// Create godoc
// @Summary     Create a chat session
// @Description Registers a new session. The id is generated unless supplied.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body createReq false "Optional session id"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - session already exists"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// Send godoc
// @Summary     Send a message
// @Description Runs one conversation turn against the session's provider context.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Session ID"
// @Param       body body sendReq true "User message"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Bad Gateway - provider unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions/{id}/messages [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Send(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Send: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSendResp(output))
}

// History godoc
// @Summary     Get session history
// @Description Returns the full exchange history of a session in order.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions/{id} [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.History(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// Clear godoc
// @Summary     Clear session history
// @Description Empties the history and resets the provider context. The session survives.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} clearResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions/{id}/clear [POST]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Clear(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newClearResp(output))
}

// Delete godoc
// @Summary     Delete a session
// @Description Removes the session entirely.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} deleteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Delete(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDeleteResp(output))
}

// List godoc
// @Summary     List sessions
// @Description Returns a snapshot of all live session summaries.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Cleanup godoc
// @Summary     Evict stale sessions
// @Description Removes sessions idle longer than max_age (default from config).
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body cleanupReq false "Optional max idle age, e.g. 24h"
// @Success     200 {object} cleanupResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions/cleanup [POST]
func (h *handler) Cleanup(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCleanupReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Cleanup(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Cleanup: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCleanupResp(output))
}
