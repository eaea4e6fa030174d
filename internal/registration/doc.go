// Package registration provides an HTTP implementation of the
// domain.RegistrationClient interface.
//
// The registration endpoint is a remote authentication service that creates
// user accounts. This package only speaks its wire contract:
//
//	POST {base}/auth/register
//	    {"email": ..., "password": ..., "first_name": ..., "last_name": ...}
//
// Any 2xx status is success, regardless of the response body. Any other
// status becomes a *domain.RejectedError whose Detail is taken from the
// response's JSON "detail" field: a plain string is used as-is, and a list
// of {"msg": ...} objects contributes its first message. Anything else leaves
// Detail empty so callers fall back to a generic message.
//
// Requests accept a context and carry an X-Request-ID header that is also
// attached to every log line about the request.
package registration
