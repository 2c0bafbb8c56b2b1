// Package validate performs the client-side form checks for the login,
// registration, and profile surfaces. Validation failures are caught at
// the interaction boundary and never reach the data layer.
package validate

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_-]{3,20}$`)

// ValidationError aggregates per-field validation failures.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// Credentials are the login form inputs.
type Credentials struct {
	Username string `json:"username" validate:"required,username"`
	Password string `json:"password" validate:"required,min=8"`
}

// Registration are the account creation form inputs.
type Registration struct {
	Username string `json:"username" validate:"required,username"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Profile are the profile update form inputs. Empty fields are skipped.
type Profile struct {
	Email string `json:"email" validate:"omitempty,email"`
}

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()

	// Report JSON field names so messages line up with the form labels.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	_ = val.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	return val
}

// Struct validates any of the form structs above, returning a
// *ValidationError with one message per failed field.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return &ValidationError{Fields: fields}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "username":
		return "3-20 characters: letters, numbers, _ or -"
	case "email":
		return "not a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	default:
		return "invalid value"
	}
}
