package validation

import (
	"fmt"

	"signup/internal/domain"
)

const (
	fieldErrTagRequired string = "required"
	fieldErrTagEqField  string = "eqfield"
	strFieldErrTagMin   string = "min"
	strFieldErrTagEmail string = "email"

	MessageFirstNameRequired string = "First name is required"
	MessageLastNameRequired  string = "Last name is required"
	MessageEmailRequired     string = "Email is required"
	MessageEmailInvalid      string = "Please enter a valid email address"
	MessagePasswordRequired  string = "Password is required"
	MessageConfirmRequired   string = "Please confirm your password"
	MessagePasswordMismatch  string = "Passwords do not match"
)

var requiredMessages = map[domain.Field]string{
	domain.FieldFirstName:       MessageFirstNameRequired,
	domain.FieldLastName:        MessageLastNameRequired,
	domain.FieldEmail:           MessageEmailRequired,
	domain.FieldPassword:        MessagePasswordRequired,
	domain.FieldConfirmPassword: MessageConfirmRequired,
}

// PasswordTooShortMessage is reported when the password is under min characters.
func PasswordTooShortMessage(min string) string {
	return fmt.Sprintf("Password must be at least %s characters long", min)
}

func fieldErrorMessage(field domain.Field, tag, param string) string {
	switch tag {
	case fieldErrTagRequired, notBlankValidatorTag:
		if msg, ok := requiredMessages[field]; ok {
			return msg
		}
		return fmt.Sprintf("%s is required", field.Label())
	case strFieldErrTagEmail:
		return MessageEmailInvalid
	case strFieldErrTagMin:
		return PasswordTooShortMessage(param)
	case fieldErrTagEqField:
		return MessagePasswordMismatch
	default:
		return fmt.Sprintf("%s must be valid", field.Label())
	}
}
