package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var (
	errMissingID    = errors.New("id is required")
	errEmptyPayload = errors.New("subject or instant is required")
)

// processAddReq binds the add-line request body. An empty body creates an
// empty line.
func (h *handler) processAddReq(c *gin.Context) (addReq, error) {
	var req addReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateTextReq binds the text body and the URI param.
func (h *handler) processUpdateTextReq(c *gin.Context) (updateTextReq, error) {
	var req updateTextReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}

// processOverrideReq binds the override body and the URI param. At least one
// of subject/instant must be present.
func (h *handler) processOverrideReq(c *gin.Context) (overrideReq, error) {
	var req overrideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	if req.Subject == nil && req.Instant == nil {
		return req, errEmptyPayload
	}
	return req, nil
}
