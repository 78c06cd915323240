package views

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names, as passed to gin's c.HTML.
const (
	Register    = "register.html"
	Login       = "login.html"
	Home        = "home.html"
	Properties  = "properties.html"
	PropertyNew = "property_new.html"
)

// Templates parses every embedded page and partial into one set.
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.html")
}
