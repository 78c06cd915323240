package controllers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"vacation-rentals/dto"
)

// bindForm decodes the posted form into form (a pointer to a dto form
// struct) and returns per-field messages keyed by the form tag name.
// An empty result means the form is valid.
func bindForm(c *gin.Context, form interface{}) dto.FormErrors {
	errs := dto.FormErrors{}

	err := c.ShouldBindWith(form, binding.Form)
	if err == nil {
		return errs
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		errs.Add("form", "The submitted form could not be read.")
		return errs
	}

	for _, fe := range validationErrs {
		errs.Add(formFieldName(form, fe.StructField()), fieldMessage(fe))
	}
	return errs
}

// formFieldName maps a struct field to the name the browser posts.
func formFieldName(form interface{}, structField string) string {
	t := reflect.TypeOf(form)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(structField); ok {
		if tag := strings.Split(f.Tag.Get("form"), ",")[0]; tag != "" {
			return tag
		}
	}
	return strings.ToLower(structField)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Invalid email address."
	case "number", "numeric":
		return "Only digits are allowed."
	case "url":
		return "Invalid URL."
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	default:
		return "Invalid value."
	}
}
