package http

import (
	"io"

	"github.com/gin-gonic/gin"

	"quickentry/internal/middleware"
	"quickentry/pkg/response"
)

// Add godoc
// @Summary     Add a line
// @Description Appends a new input line; non-empty text schedules a debounced parse.
// @Tags        Lines
// @Accept      json
// @Produce     json
// @Param       body body addReq false "Initial text (optional)"
// @Success     200 {object} lineResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/lines [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	v, err := h.uc.Add(ctx, middleware.ScopeFrom(c), req.Text)
	if err != nil {
		h.l.Errorf(ctx, "line.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newLineResp(v))
}

// UpdateText godoc
// @Summary     Update a line's text
// @Description Replaces the text, cancelling any in-flight parse and scheduling a new one when the text qualifies.
// @Tags        Lines
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Line ID"
// @Param       body body updateTextReq true "New text"
// @Success     200 {object} lineResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/lines/{id} [PUT]
func (h *handler) UpdateText(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateTextReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	v, err := h.uc.UpdateText(ctx, middleware.ScopeFrom(c), req.ID, req.Text)
	if err != nil {
		h.l.Errorf(ctx, "line.UpdateText: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newLineResp(v))
}

// Remove godoc
// @Summary     Remove a line
// @Description Deletes a line and cancels its in-flight parse.
// @Tags        Lines
// @Produce     json
// @Param       id path string true "Line ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/lines/{id} [DELETE]
func (h *handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.Remove(ctx, middleware.ScopeFrom(c), id); err != nil {
		h.l.Errorf(ctx, "line.Remove: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// List godoc
// @Summary     List lines
// @Description Returns all lines in order with their current parse results.
// @Tags        Lines
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/lines [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, newListResp(h.uc.List(ctx, middleware.ScopeFrom(c))))
}

// SetOverride godoc
// @Summary     Set a manual override
// @Description Attaches a manual subject and/or instant to a line; overrides win over parsed fields at commit.
// @Tags        Lines
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Line ID"
// @Param       body body overrideReq true "Override fields"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/lines/{id}/override [PUT]
func (h *handler) SetOverride(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOverrideReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.SetOverride(ctx, middleware.ScopeFrom(c), req.toOverride()); err != nil {
		h.l.Errorf(ctx, "line.SetOverride: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// CommitAll godoc
// @Summary     Commit all lines
// @Description Rebuilds every non-empty line's entry, dispatches side effects, removes succeeded lines, and retains failed ones.
// @Tags        Lines
// @Produce     json
// @Success     200 {object} commitResp
// @Failure     400 {object} response.Resp "Bad Request - nothing to commit"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/lines/commit [POST]
func (h *handler) CommitAll(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.CommitAll(ctx, middleware.ScopeFrom(c))
	if err != nil {
		h.l.Errorf(ctx, "line.CommitAll: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCommitResp(out))
}

// OpenSession godoc
// @Summary     Get the open work session
// @Description Returns the currently open work session, if any.
// @Tags        Work
// @Produce     json
// @Success     200 {object} sessionResp
// @Router      /api/v1/work/session [GET]
func (h *handler) OpenSession(c *gin.Context) {
	ctx := c.Request.Context()
	s, open := h.uc.OpenSession(ctx, middleware.ScopeFrom(c))
	response.OK(c, newSessionResp(s, open))
}

// Events godoc
// @Summary     Stream line state transitions
// @Description Server-sent events feed of parse state transitions. Single consumer; transitions are best-effort.
// @Tags        Lines
// @Produce     text/event-stream
// @Success     200 {string} string "SSE stream"
// @Router      /api/v1/lines/events [GET]
func (h *handler) Events(c *gin.Context) {
	c.Writer.Header().Set("Cache-Control", "no-cache")

	events := h.uc.Events()
	clientGone := c.Request.Context().Done()

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("line", newEventResp(ev))
			return true
		case <-clientGone:
			return false
		}
	})
}
