package dto

import "vacation-rentals/domain"

// PageData is the root object every template receives.
type PageData struct {
	Title       string
	CurrentUser *domain.User
	Form        interface{}
	Errors      FormErrors
	Properties  []domain.VacationProperty
}

// NewPageData returns PageData with an empty error set.
func NewPageData(title string, user *domain.User) PageData {
	return PageData{
		Title:       title,
		CurrentUser: user,
		Errors:      FormErrors{},
	}
}
