package types

import (
	"strings"

	"github.com/samber/lo"
)

// Field names one input of the registration form. Values match the input
// names the form has always used, so they are stable across front ends.
type Field string

const (
	FieldFirstName       Field = "firstName"
	FieldLastName        Field = "lastName"
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

// Fields lists the form inputs in display order.
var Fields = []Field{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPassword,
	FieldConfirmPassword,
}

// String returns the input name.
func (f Field) String() string { return string(f) }

// Label returns the human-readable caption for the input.
func (f Field) Label() string {
	switch f {
	case FieldFirstName:
		return "First Name"
	case FieldLastName:
		return "Last Name"
	case FieldEmail:
		return "Email Address"
	case FieldPassword:
		return "Password"
	case FieldConfirmPassword:
		return "Confirm Password"
	default:
		return string(f)
	}
}

// Secret reports whether the input holds a password and must be masked.
func (f Field) Secret() bool {
	return f == FieldPassword || f == FieldConfirmPassword
}

// Valid reports whether f is one of the form's inputs.
func (f Field) Valid() bool {
	return lo.Contains(Fields, f)
}

// RegistrationForm holds the raw values typed into the registration form.
type RegistrationForm struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Get returns the value of field; ok is false for an unknown field.
func (f RegistrationForm) Get(field Field) (value string, ok bool) {
	switch field {
	case FieldFirstName:
		return f.FirstName, true
	case FieldLastName:
		return f.LastName, true
	case FieldEmail:
		return f.Email, true
	case FieldPassword:
		return f.Password, true
	case FieldConfirmPassword:
		return f.ConfirmPassword, true
	}
	return "", false
}

// Set stores value into field and reports whether the field exists.
func (f *RegistrationForm) Set(field Field, value string) bool {
	switch field {
	case FieldFirstName:
		f.FirstName = value
	case FieldLastName:
		f.LastName = value
	case FieldEmail:
		f.Email = value
	case FieldPassword:
		f.Password = value
	case FieldConfirmPassword:
		f.ConfirmPassword = value
	default:
		return false
	}
	return true
}

// IsZero reports whether every input is empty.
func (f RegistrationForm) IsZero() bool {
	return f == RegistrationForm{}
}

// Request builds the wire payload. The confirmation never leaves the client.
func (f RegistrationForm) Request() RegistrationRequest {
	return RegistrationRequest{
		Email:     strings.TrimSpace(f.Email),
		Password:  f.Password,
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
	}
}

// RegistrationRequest is the JSON body posted to the registration endpoint.
type RegistrationRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
