package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vacation-rentals/dto"
	"vacation-rentals/views"
)

// PageController serves pages with no data of their own.
type PageController struct{}

func NewPageController() *PageController {
	return &PageController{}
}

// Home handles GET /home.
func (ctrl *PageController) Home(c *gin.Context) {
	render(c, views.Home, dto.NewPageData("Home", nil))
}

// HealthCheck handles GET /health.
func (ctrl *PageController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "vacation-rentals",
	})
}
