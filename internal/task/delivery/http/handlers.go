package http

import (
	"github.com/gin-gonic/gin"

	"tasks-timeline/pkg/response"
)

// Preview godoc
// @Summary     Preview quick-entry rewriting
// @Description Rewrites shorthand such as "due tomorrow " into task markers and dates without saving anything.
// @Tags        QuickEntry
// @Accept      json
// @Produce     json
// @Param       body body previewReq true "Text to rewrite"
// @Success     200  {object} previewResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/quick-entry/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPreviewReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	output, err := h.uc.Preview(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPreviewResp(output))
}

// Create godoc
// @Summary     Add a task
// @Description Appends "- [ ] <text>" to a note, optionally rewriting quick-entry shorthand first.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task to add"
// @Success     200  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Note not found"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
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

// Timeline godoc
// @Summary     Task timeline
// @Description Groups the vault's tasks by date with today's counters.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       from query string false "Start date (YYYY-MM-DD, today, in 2 weeks, ...)"
// @Param       to   query string false "End date (YYYY-MM-DD, today, in 2 weeks, ...)"
// @Success     200 {object} timelineResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timeline [GET]
func (h *handler) Timeline(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTimelineReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Timeline(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Timeline: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTimelineResp(output))
}

// ListFiles godoc
// @Summary     List notes
// @Description Lists the notes tasks can be added to, with picker labels.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Success     200 {object} filesResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/files [GET]
func (h *handler) ListFiles(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListFiles(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListFiles: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newFilesResp(output))
}
