package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names in errors.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// ValidationDetail is one field-level problem with a request body.
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks req's struct tags. It returns nil when req is valid.
func Validate(req any) []ValidationDetail {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []ValidationDetail{{Message: err.Error()}}
	}

	details := make([]ValidationDetail, 0, len(verrs))
	for _, e := range verrs {
		details = append(details, ValidationDetail{
			Field:   fieldPath(e),
			Message: validationMessage(e),
		})
	}

	return details
}

// fieldPath drops the struct name from the namespace: "lines[0].tariff_code".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "required_without":
		return "This field is required when " + strings.ToLower(e.Param()) + " is empty"
	case "max":
		if e.Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must have at most " + e.Param() + " items"
	case "len":
		return "Must be exactly " + e.Param() + " characters"
	case "alpha":
		return "Must contain only letters"
	default:
		return "Invalid value"
	}
}
