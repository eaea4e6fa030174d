// Package commands defines the signup CLI and wires dependencies for subcommands.
//
// Commands
//
//   - register       Fill in and submit the registration form
//   - draft show     Print the saved, unfinished form (passwords masked)
//   - draft clear    Delete the saved form
//
// # Implementation
//
// The root command loads an optional .env file, resolves flags against the
// SIGNUP_* environment, and builds the dependency graph (logger, validator,
// registration client, draft store) before any subcommand runs, so handlers
// share one app context.
//
// register runs an interactive terminal form by default; --batch submits the
// values given as flags exactly once and exits non-zero unless the account
// was created. When a passphrase is set, an unfinished form is kept as an
// encrypted draft and offered again on the next run.
package commands
