package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vacation-rentals/domain"
	"vacation-rentals/dto"
	"vacation-rentals/middleware"
	"vacation-rentals/services"
	"vacation-rentals/utils"
	"vacation-rentals/views"
)

// AuthController serves registration, login and logout.
type AuthController struct {
	service services.UserService
	signer  *utils.SessionSigner
	cookie  utils.CookieOptions
}

// NewAuthController builds the controller. signer and cookie decide what
// the session cookie looks like.
func NewAuthController(service services.UserService, signer *utils.SessionSigner, cookie utils.CookieOptions) *AuthController {
	return &AuthController{service: service, signer: signer, cookie: cookie}
}

// Register handles GET/POST / and /register.
func (ctrl *AuthController) Register(c *gin.Context) {
	data := dto.NewPageData("Sign up", nil)
	var form dto.RegisterForm
	data.Form = form

	if c.Request.Method != http.MethodPost {
		render(c, views.Register, data)
		return
	}

	// 1. Field validation
	errs := bindForm(c, &form)
	data.Form = form
	if errs.Any() {
		data.Errors = errs
		render(c, views.Register, data)
		return
	}

	// 2. Create the account (uniqueness check + insert)
	user, err := ctrl.service.Register(c.Request.Context(), form)
	if err != nil {
		if errors.Is(err, services.ErrEmailInUse) {
			data.Errors.Add("email", "Email address already in use.")
			render(c, views.Register, data)
			return
		}
		if errors.Is(err, services.ErrPasswordTooLong) {
			data.Errors.Add("password", "Field cannot be longer than 72 bytes.")
			render(c, views.Register, data)
			return
		}
		serverError(c, err)
		return
	}

	// 3. Remembered session, then home
	if err := ctrl.startSession(c, user); err != nil {
		serverError(c, err)
		return
	}
	middleware.RequestLogger(c).WithField("user_id", user.ID).Info("User registered")
	c.Redirect(http.StatusFound, "/home")
}

// Login handles GET/POST /login.
func (ctrl *AuthController) Login(c *gin.Context) {
	data := dto.NewPageData("Log in", nil)
	var form dto.LoginForm
	data.Form = form

	if c.Request.Method != http.MethodPost {
		render(c, views.Login, data)
		return
	}

	errs := bindForm(c, &form)
	data.Form = form
	if errs.Any() {
		data.Errors = errs
		render(c, views.Login, data)
		return
	}

	user, err := ctrl.service.Authenticate(c.Request.Context(), form)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Same message whichever half was wrong.
			data.Errors.Add("password", "Invalid credentials.")
			render(c, views.Login, data)
			return
		}
		serverError(c, err)
		return
	}

	if err := ctrl.startSession(c, user); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/home")
}

// Logout handles POST /logout. Only POST is routed so a prefetch or a
// plain link cannot end the session.
func (ctrl *AuthController) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c.Writer, ctrl.cookie)
	c.Redirect(http.StatusFound, "/home")
}

func (ctrl *AuthController) startSession(c *gin.Context, user *domain.User) error {
	token, err := ctrl.signer.Sign(user.ID)
	if err != nil {
		return err
	}
	utils.SetSessionCookie(c.Writer, ctrl.cookie, token, ctrl.signer.TTL())
	return nil
}
