package http

import (
	"github.com/gin-gonic/gin"

	"quickentry/internal/middleware"
	"quickentry/pkg/response"
)

// Create godoc
// @Summary     Create a variable
// @Description Creates a named recurring token usable inside arithmetic shortcut lines.
// @Tags        Variables
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Variable definition"
// @Success     200 {object} variableResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - name already exists"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/variables [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	v, err := h.uc.Create(ctx, middleware.ScopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "variable.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newVariableResp(v))
}

// List godoc
// @Summary     List variables
// @Description Returns the scope's variables, optionally filtered by kind.
// @Tags        Variables
// @Produce     json
// @Param       kind   query string false "Filter by kind (meal/expense/income)"
// @Param       limit  query int    false "Page size (default: 20)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/variables [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, middleware.ScopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "variable.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get a variable
// @Description Returns a single variable by ID.
// @Tags        Variables
// @Produce     json
// @Param       id path string true "Variable ID"
// @Success     200 {object} variableResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/variables/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	v, err := h.uc.Detail(ctx, middleware.ScopeFrom(c), id)
	if err != nil {
		h.l.Errorf(ctx, "variable.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newVariableResp(v))
}

// Update godoc
// @Summary     Update a variable
// @Description Partially updates a variable; omitted fields keep their value.
// @Tags        Variables
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Variable ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} variableResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/variables/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	v, err := h.uc.Update(ctx, middleware.ScopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "variable.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newVariableResp(v))
}

// Delete godoc
// @Summary     Delete a variable
// @Description Permanently removes a variable by ID.
// @Tags        Variables
// @Produce     json
// @Param       id path string true "Variable ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/variables/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.Delete(ctx, middleware.ScopeFrom(c), id); err != nil {
		h.l.Errorf(ctx, "variable.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
