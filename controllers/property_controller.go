package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vacation-rentals/dto"
	"vacation-rentals/middleware"
	"vacation-rentals/services"
	"vacation-rentals/views"
)

// PropertyController serves the listing and new-property pages. Both
// routes sit behind RequireLogin.
type PropertyController struct {
	service services.PropertyService
	deny    middleware.DenyFunc
}

// NewPropertyController builds the controller. deny answers a request
// whose session user vanished between the guard and the insert.
func NewPropertyController(service services.PropertyService, deny middleware.DenyFunc) *PropertyController {
	return &PropertyController{service: service, deny: deny}
}

// List handles GET /properties.
func (ctrl *PropertyController) List(c *gin.Context) {
	properties, err := ctrl.service.List(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}

	data := dto.NewPageData("Properties", nil)
	data.Properties = properties
	render(c, views.Properties, data)
}

// New handles GET/POST /properties/new.
func (ctrl *PropertyController) New(c *gin.Context) {
	data := dto.NewPageData("New property", nil)
	var form dto.PropertyForm
	data.Form = form

	if c.Request.Method != http.MethodPost {
		render(c, views.PropertyNew, data)
		return
	}

	errs := bindForm(c, &form)
	data.Form = form
	if errs.Any() {
		data.Errors = errs
		render(c, views.PropertyNew, data)
		return
	}

	host := middleware.CurrentUser(c)
	if host == nil {
		ctrl.deny(c, middleware.ErrUnauthorized)
		return
	}

	property, err := ctrl.service.Create(c.Request.Context(), host.ID, form)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			ctrl.deny(c, middleware.ErrUnauthorized)
			return
		}
		serverError(c, err)
		return
	}

	middleware.RequestLogger(c).WithField("property_id", property.ID).Info("Vacation property created")
	c.Redirect(http.StatusFound, "/properties")
}
