// Package validation implements the registration form's client-side
// Validator on top of go-playground/validator struct tags.
//
// Rules, in the order they are checked per field:
//
//   - firstName, lastName: must not be blank
//   - email: required, then a valid address
//   - password: required, then at least MinPasswordLength characters
//   - confirmPassword: required, then equal to password
//
// Only the first failing rule of each field is reported, and every message is
// phrased for display next to the offending input.
package validation
