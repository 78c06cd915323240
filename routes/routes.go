package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"vacation-rentals/config"
	"vacation-rentals/controllers"
	"vacation-rentals/middleware"
	"vacation-rentals/services"
	"vacation-rentals/utils"
	"vacation-rentals/views"
)

// Dependencies are the already-built layers the router wires together.
type Dependencies struct {
	Config          *config.Config
	Signer          *utils.SessionSigner
	UserService     services.UserService
	PropertyService services.PropertyService
}

// SetupRouter builds the gin engine with middleware, templates and the
// full route table.
func SetupRouter(deps Dependencies) (*gin.Engine, error) {
	tmpl, err := views.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	cookie := utils.CookieOptions{
		Name:   deps.Config.SessionCookieName,
		Secure: deps.Config.CookieSecure,
	}
	deny := middleware.RedirectToLogin(deps.Config.LoginPath)

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.HandleMethodNotAllowed = true

	// Global middleware must be registered before the routes.
	router.Use(middleware.RequestID(), middleware.AccessLog(), middleware.Recovery())
	router.Use(middleware.LoadSession(middleware.SessionConfig{
		Signer: deps.Signer,
		Cookie: cookie,
		Loader: deps.UserService,
	}))
	if deps.Config.RedirectAuthenticated {
		router.Use(middleware.RedirectAuthenticated("/home", "/login", "/register"))
	}

	authController := controllers.NewAuthController(deps.UserService, deps.Signer, cookie)
	pageController := controllers.NewPageController()
	propertyController := controllers.NewPropertyController(deps.PropertyService, deny)
	reservationController := controllers.NewReservationController()

	// Public routes
	router.GET("/health", pageController.HealthCheck)
	for _, path := range []string{"/", "/register"} {
		router.GET(path, authController.Register)
		router.POST(path, authController.Register)
	}
	router.GET("/login", authController.Login)
	router.POST("/login", authController.Login)
	router.POST("/logout", authController.Logout)
	router.GET("/reservations/:id", reservationController.New)
	router.POST("/reservations/:id", reservationController.New)

	// Routes that need a signed-in user
	authed := router.Group("/")
	authed.Use(middleware.RequireLogin(deny))
	{
		authed.GET("/home", pageController.Home)
		authed.GET("/properties", propertyController.List)
		authed.GET("/properties/new", propertyController.New)
		authed.POST("/properties/new", propertyController.New)
	}

	return router, nil
}
