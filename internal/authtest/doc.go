// Package authtest runs an in-memory registration endpoint for tests.
//
// HTTP API
//
//	POST /auth/register
//	    Create an account from {email, password, first_name, last_name}.
//
// Behaviour
//
//   - All state is held in memory and dropped when the test ends.
//   - Missing or malformed fields answer 422 with a list-shaped "detail",
//     the way request-model validation failures are reported.
//   - Passwords shorter than 8 characters answer 400 with
//     "Password must be at least 8 characters long".
//   - A second registration for an email answers 400 with
//     "Email already registered".
//   - Success answers 200 {"message": ..., "user_id": N}.
//
// Options can hold requests in flight (WithGate) or replace the handler's
// answer entirely (WithResponse) to exercise client edge cases.
package authtest
