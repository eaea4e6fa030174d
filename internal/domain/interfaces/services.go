package interfaces

import domaintypes "signup/internal/domain/types"

// Validator computes per-field error messages for a form. It must be pure:
// no I/O, and the same input always yields the same errors.
type Validator interface {
	Validate(form domaintypes.RegistrationForm) domaintypes.ValidationErrors
}

// ValidatorFunc adapts a plain function to Validator.
type ValidatorFunc func(form domaintypes.RegistrationForm) domaintypes.ValidationErrors

// Validate calls fn(form).
func (fn ValidatorFunc) Validate(form domaintypes.RegistrationForm) domaintypes.ValidationErrors {
	return fn(form)
}
