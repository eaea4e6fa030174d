package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signup/internal/domain"
	"signup/internal/validation"
)

func validForm() domain.RegistrationForm {
	return domain.RegistrationForm{
		FirstName:       "John",
		LastName:        "Doe",
		Email:           "john@example.com",
		Password:        "s3cret-pass",
		ConfirmPassword: "s3cret-pass",
	}
}

func newValidator(t *testing.T) *validation.Validator {
	t.Helper()
	v, err := validation.New()
	require.NoError(t, err)
	return v
}

func TestValidate_ValidFormHasNoErrors(t *testing.T) {
	errs := newValidator(t).Validate(validForm())
	assert.True(t, errs.Empty())
}

func TestValidate_EmptyFormReportsEveryField(t *testing.T) {
	errs := newValidator(t).Validate(domain.RegistrationForm{})

	assert.Equal(t, domain.ValidationErrors{
		domain.FieldFirstName:       validation.MessageFirstNameRequired,
		domain.FieldLastName:        validation.MessageLastNameRequired,
		domain.FieldEmail:           validation.MessageEmailRequired,
		domain.FieldPassword:        validation.MessagePasswordRequired,
		domain.FieldConfirmPassword: validation.MessageConfirmRequired,
	}, errs)
	assert.Equal(t, domain.Fields, errs.Fields())
}

func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(f *domain.RegistrationForm)
		field domain.Field
		want  string
	}{
		{"blank first name", func(f *domain.RegistrationForm) { f.FirstName = "   " }, domain.FieldFirstName, validation.MessageFirstNameRequired},
		{"blank last name", func(f *domain.RegistrationForm) { f.LastName = "\t" }, domain.FieldLastName, validation.MessageLastNameRequired},
		{"missing email", func(f *domain.RegistrationForm) { f.Email = "" }, domain.FieldEmail, validation.MessageEmailRequired},
		{"malformed email", func(f *domain.RegistrationForm) { f.Email = "john.example.com" }, domain.FieldEmail, validation.MessageEmailInvalid},
		{"missing password", func(f *domain.RegistrationForm) { f.Password = "" }, domain.FieldPassword, validation.MessagePasswordRequired},
		{"short password", func(f *domain.RegistrationForm) { f.Password, f.ConfirmPassword = "short", "short" }, domain.FieldPassword, validation.PasswordTooShortMessage("8")},
		{"missing confirmation", func(f *domain.RegistrationForm) { f.ConfirmPassword = "" }, domain.FieldConfirmPassword, validation.MessageConfirmRequired},
		{"mismatched confirmation", func(f *domain.RegistrationForm) { f.ConfirmPassword = "different-pass" }, domain.FieldConfirmPassword, validation.MessagePasswordMismatch},
	}

	v := newValidator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.edit(&form)

			errs := v.Validate(form)

			require.Len(t, errs, 1, "unexpected errors: %v", errs)
			assert.Equal(t, tt.want, errs[tt.field])
		})
	}
}

func TestValidate_EmailSurroundingSpaceIsAccepted(t *testing.T) {
	form := validForm()
	form.Email = "  john@example.com "

	assert.True(t, newValidator(t).Validate(form).Empty())
}

func TestValidate_PasswordLengthCountsCharacters(t *testing.T) {
	form := validForm()
	form.Password = strings.Repeat("é", validation.MinPasswordLength)
	form.ConfirmPassword = form.Password

	assert.True(t, newValidator(t).Validate(form).Empty())
}
