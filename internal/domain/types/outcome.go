package types

// View identifies a screen the front end can show.
type View string

const (
	ViewRegister View = "register"
	ViewLogin    View = "login"
)

// OutcomeKind classifies the result of a submit attempt.
type OutcomeKind int

const (
	// OutcomeInvalid means client-side validation failed; nothing was sent.
	OutcomeInvalid OutcomeKind = iota
	// OutcomeSuppressed means another submission was still in flight.
	OutcomeSuppressed
	// OutcomeRegistered means the endpoint accepted the registration.
	OutcomeRegistered
	// OutcomeFailed means the endpoint rejected the request or was unreachable.
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeInvalid:
		return "invalid"
	case OutcomeSuppressed:
		return "suppressed"
	case OutcomeRegistered:
		return "registered"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is what a submit attempt reports back to the front end.
type Outcome struct {
	Kind OutcomeKind
	// Message is the global notification to show, if any.
	Message string
	// NextView is set when the front end should navigate.
	NextView View
	// Errors holds the per-field messages for OutcomeInvalid.
	Errors ValidationErrors
	// Err is the underlying failure for OutcomeFailed.
	Err error
}
