package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vacation-rentals/dto"
	"vacation-rentals/middleware"
)

// render writes an HTML page with the current user filled in.
func render(c *gin.Context, name string, data dto.PageData) {
	data.CurrentUser = middleware.CurrentUser(c)
	if data.Errors == nil {
		data.Errors = dto.FormErrors{}
	}
	c.HTML(http.StatusOK, name, data)
}

// serverError logs err against the request and answers a bare 500.
// Callers return right after.
func serverError(c *gin.Context, err error) {
	_ = c.Error(err)
	middleware.RequestLogger(c).WithError(err).Error("Unhandled data-layer failure")
	c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
