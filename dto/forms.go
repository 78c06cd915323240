package dto

// RegisterForm is what the registration page posts.
type RegisterForm struct {
	Name        string `form:"name" binding:"required,max=120"`
	Email       string `form:"email" binding:"required,email,max=320"`
	Password    string `form:"password" binding:"required,max=72"`
	CountryCode string `form:"country_code" binding:"required,number,max=4"`
	PhoneNumber string `form:"phone_number" binding:"required,number,max=20"`
}

// LoginForm is what the login page posts.
type LoginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// PropertyForm is what the new-property page posts.
type PropertyForm struct {
	Description string `form:"description" binding:"required"`
	ImageURL    string `form:"image_url" binding:"required,url,max=2048"`
}

// FormErrors holds validation messages keyed by form field name.
type FormErrors map[string][]string

// Add appends msg to field.
func (e FormErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Has reports whether field has any error.
func (e FormErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// Any reports whether any field has an error.
func (e FormErrors) Any() bool {
	for _, msgs := range e {
		if len(msgs) > 0 {
			return true
		}
	}
	return false
}
