package types

import (
	"fmt"

	"github.com/samber/lo"
)

// ValidationErrors maps a field to its message. A missing key means the
// field is valid; an empty map means the whole form is.
type ValidationErrors map[Field]string

// Empty reports whether no field has an error.
func (e ValidationErrors) Empty() bool { return len(e) == 0 }

// Fields returns the failing fields in display order.
func (e ValidationErrors) Fields() []Field {
	return lo.Filter(Fields, func(f Field, _ int) bool {
		_, ok := e[f]
		return ok
	})
}

// Clone returns a copy that is safe to hand out of a lock.
func (e ValidationErrors) Clone() ValidationErrors {
	out := make(ValidationErrors, len(e))
	for f, msg := range e {
		out[f] = msg
	}
	return out
}

// RejectedError is returned when the registration endpoint answers with a
// non-2xx status. Detail is the server's "detail" string, possibly empty.
type RejectedError struct {
	StatusCode int
	Status     string
	Detail     string
}

func (e *RejectedError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("registration rejected: %s", e.Status)
	}
	return fmt.Sprintf("registration rejected (%s): %s", e.Status, e.Detail)
}
