package http

import (
	"github.com/gin-gonic/gin"
)

// processPreviewReq binds and validates the quick-entry preview body.
func (h *handler) processPreviewReq(c *gin.Context) (previewReq, error) {
	var req previewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errBadRequest(err)
	}
	if err := req.validate(); err != nil {
		return req, h.mapError(err)
	}
	return req, nil
}

// processCreateReq binds and validates the create task body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errBadRequest(err)
	}
	return req, req.validate()
}

// processTimelineReq binds the timeline query parameters.
func (h *handler) processTimelineReq(c *gin.Context) (timelineReq, error) {
	var req timelineReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errBadRequest(err)
	}
	return req, req.validate()
}
