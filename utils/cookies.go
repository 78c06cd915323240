package utils

import (
	"net/http"
	"time"
)

// CookieOptions controls the attributes of the session cookie.
type CookieOptions struct {
	Name   string
	Secure bool
}

// SetSessionCookie writes a persistent ("remember me") session cookie.
func SetSessionCookie(w http.ResponseWriter, opts CookieOptions, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     opts.Name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   opts.Secure,
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
	})
}

// ClearSessionCookie expires the session cookie on the client.
func ClearSessionCookie(w http.ResponseWriter, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     opts.Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   opts.Secure,
		MaxAge:   -1,
	})
}
