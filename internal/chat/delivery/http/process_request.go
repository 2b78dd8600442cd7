package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processCreateReq binds the create session request body. An empty body is
// allowed: every field is optional.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, req.validate()
}

// processSendReq binds the send message request body + URI param.
func (h *handler) processSendReq(c *gin.Context) (sendReq, error) {
	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, req.validate()
}

// processCleanupReq binds the cleanup request body. An empty body means the
// configured default max age.
func (h *handler) processCleanupReq(c *gin.Context) (cleanupReq, error) {
	var req cleanupReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, req.validate()
}
