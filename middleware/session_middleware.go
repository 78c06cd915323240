package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"vacation-rentals/domain"
	"vacation-rentals/services"
	"vacation-rentals/utils"
)

const sessionContextKey = "session"

// ErrUnauthorized is the result of a guard rejecting an anonymous session.
var ErrUnauthorized = errors.New("authentication required")

// Session is the request-scoped identity. A nil User means anonymous.
type Session struct {
	User *domain.User
}

// IsAuthenticated reports whether a user is attached.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.User != nil
}

// UserLoader resolves the user id stored in a session cookie.
type UserLoader interface {
	LoadUser(ctx context.Context, id uint) services.LoadResult
}

// SessionConfig is what LoadSession needs to read cookies.
type SessionConfig struct {
	Signer *utils.SessionSigner
	Cookie utils.CookieOptions
	Loader UserLoader
}

// LoadSession runs before every handler. It verifies the session cookie,
// loads the user and stores a *Session in the gin context. Any failure
// leaves an anonymous session; not-found and lookup errors are logged
// at different levels so a broken database is visible.
func LoadSession(cfg SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := &Session{}
		c.Set(sessionContextKey, session)

		token, err := c.Cookie(cfg.Cookie.Name)
		if err != nil || token == "" {
			c.Next()
			return
		}

		claims, err := cfg.Signer.Verify(token)
		if err != nil {
			RequestLogger(c).WithError(err).Debug("Ignoring invalid session cookie")
			c.Next()
			return
		}

		result := cfg.Loader.LoadUser(c.Request.Context(), claims.UserID)
		switch result.Status {
		case services.LoadFound:
			session.User = result.User
		case services.LoadNotFound:
			RequestLogger(c).WithField("user_id", claims.UserID).Debug("Session user no longer exists")
		case services.LoadFailed:
			RequestLogger(c).WithFields(logrus.Fields{
				"user_id": claims.UserID,
				"error":   result.Err,
			}).Error("Session user lookup failed, treating request as anonymous")
		}

		c.Next()
	}
}

// CurrentSession returns the session LoadSession attached. It never
// returns nil; without LoadSession the session is anonymous.
func CurrentSession(c *gin.Context) *Session {
	if v, ok := c.Get(sessionContextKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	return &Session{}
}

// CurrentUser is shorthand for CurrentSession(c).User.
func CurrentUser(c *gin.Context) *domain.User {
	return CurrentSession(c).User
}

// Guard inspects a session and returns nil to let the request through.
type Guard func(s *Session) error

// LoginRequired rejects anonymous sessions with ErrUnauthorized.
func LoginRequired(s *Session) error {
	if !s.IsAuthenticated() {
		return ErrUnauthorized
	}
	return nil
}

// DenyFunc turns a guard's error into a response.
type DenyFunc func(c *gin.Context, err error)

// RequireLogin guards a route with LoginRequired.
func RequireLogin(deny DenyFunc) gin.HandlerFunc {
	return Require(LoginRequired, deny)
}

// Require composes a guard into a gin handler. On rejection deny writes
// the response and the chain is aborted.
func Require(guard Guard, deny DenyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := guard(CurrentSession(c)); err != nil {
			deny(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectToLogin sends unauthorized requests to loginPath?next=<path>.
// With an empty loginPath it answers 401 instead.
func RedirectToLogin(loginPath string) DenyFunc {
	return func(c *gin.Context, err error) {
		if loginPath == "" {
			c.String(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
			return
		}
		target := loginPath + "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
		c.Redirect(http.StatusFound, target)
	}
}

// RedirectAuthenticated sends signed-in users on one of paths to target.
// paths are matched against the resolved route path (c.FullPath()).
func RedirectAuthenticated(target string, paths ...string) gin.HandlerFunc {
	match := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		match[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := match[c.FullPath()]; ok && CurrentSession(c).IsAuthenticated() {
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}
		c.Next()
	}
}
