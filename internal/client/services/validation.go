package services

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// LoginForm is the credential submission validated before any network
// call is made.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Remember bool
}

// SignupForm is the account creation submission. ConfirmPassword and
// AgreeTerms are checked locally and never sent over the wire.
type SignupForm struct {
	FullName        string `validate:"required"`
	Email           string `validate:"required,email"`
	Phone           string `validate:"required"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	Role            string `validate:"required"`
	AgreeTerms      bool   `validate:"eq=true"`
	Remember        bool
}

// VolunteerForm is the new-volunteer submission.
type VolunteerForm struct {
	Name             string `validate:"required"`
	Email            string `validate:"required,email"`
	Phone            string `validate:"required"`
	Role             string `validate:"required"`
	Schedule         string
	EmergencyContact string
	Skills           []string
}

// FieldError is a single per-field validation failure.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates per-field failures. It is produced before
// dispatch; a form that fails validation makes no network call.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// fieldMessage translates a validator failure into the user-visible
// message for that field.
func fieldMessage(field, tag string) string {
	switch field {
	case "Email":
		if tag == "required" {
			return "Email is required"
		}
		return "Please enter a valid email address"
	case "Password":
		if tag == "required" {
			return "Password is required"
		}
		return "Password must be at least 6 characters"
	case "ConfirmPassword":
		if tag == "required" {
			return "Please confirm your password"
		}
		return "Passwords do not match"
	case "FullName", "Name":
		return "Full name is required"
	case "Phone":
		return "Phone number is required"
	case "Role":
		return "Please select a role"
	case "AgreeTerms":
		return "You must agree to the terms and conditions"
	default:
		return field + " is " + tag
	}
}

// checkForm validates a form struct and converts validator failures into
// a *ValidationError.
func checkForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	ve := &ValidationError{}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe.Field(), fe.Tag()),
		})
	}
	return ve
}
