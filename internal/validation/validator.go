package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"signup/internal/domain"
)

// MinPasswordLength matches the registration endpoint's own minimum.
const MinPasswordLength = 8

const notBlankValidatorTag string = "notblank"

// input mirrors domain.RegistrationForm with the rules attached. The form tag
// carries the domain.Field name reported for each failure.
type input struct {
	FirstName       string `form:"firstName" validate:"notblank"`
	LastName        string `form:"lastName" validate:"notblank"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=8"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
}

// Validator checks a RegistrationForm. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the custom tags registered.
func New() (*Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation(notBlankValidatorTag, notBlankValidator); err != nil {
		return nil, fmt.Errorf("register %s validator: %w", notBlankValidatorTag, err)
	}
	validate.RegisterTagNameFunc(formFieldName)
	return &Validator{validate: validate}, nil
}

var _ domain.Validator = (*Validator)(nil)

// Validate returns one message per invalid field; the map is empty when the
// form can be submitted.
func (v *Validator) Validate(form domain.RegistrationForm) domain.ValidationErrors {
	return collect(v.validate.Struct(input{
		FirstName:       form.FirstName,
		LastName:        form.LastName,
		Email:           strings.TrimSpace(form.Email),
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
	}))
}

// collect turns a validator error into per-field messages. An error that is
// not a field failure blocks every field rather than letting the form through.
func collect(err error) domain.ValidationErrors {
	errs := make(domain.ValidationErrors)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		for _, field := range domain.Fields {
			errs[field] = fieldErrorMessage(field, "", "")
		}
		return errs
	}
	for _, fe := range fieldErrs {
		field := domain.Field(fe.Field())
		if _, seen := errs[field]; seen {
			continue
		}
		errs[field] = fieldErrorMessage(field, fe.Tag(), fe.Param())
	}
	return errs
}

func notBlankValidator(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func formFieldName(sf reflect.StructField) string {
	if name := sf.Tag.Get("form"); name != "" {
		return name
	}
	return sf.Name
}
