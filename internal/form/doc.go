// Package form holds the state of a registration form and drives its
// submission.
//
// A Holder owns three pieces of state: the field values, the per-field
// validation errors, and a flag that is set while a registration request is
// in flight. Editing a field clears only that field's error. Submitting
// re-runs the Validator over every field before anything is sent, and only an
// error-free form reaches the registration endpoint. While a request is
// outstanding further submits are suppressed.
//
// Submit always reports back through a domain.Outcome rather than an error:
// validation failures carry the field messages, and server or network
// failures carry a single message meant for a global notification. Neither is
// retried, and both leave the field values untouched for correction.
package form
