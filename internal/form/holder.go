package form

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"signup/internal/domain"
)

const (
	MessageRegistered = "Registration successful! You can now login with your credentials."
	MessageRejected   = "Registration failed. Please try again."
	MessageNetwork    = "Network error. Please check if the server is running."
)

// ErrUnknownField is returned by Set for a name that is not a form input.
var ErrUnknownField = errors.New("unknown form field")

// Holder is safe for concurrent use: the UI loop edits it while a submission
// may be running on another goroutine.
type Holder struct {
	validator domain.Validator
	client    domain.RegistrationClient
	log       logrus.FieldLogger

	mu         sync.Mutex
	values     domain.RegistrationForm
	errors     domain.ValidationErrors
	submitting bool
}

// New returns an empty form. A nil logger discards output.
func New(validator domain.Validator, client domain.RegistrationClient, log logrus.FieldLogger) *Holder {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &Holder{
		validator: validator,
		client:    client,
		log:       log,
		errors:    make(domain.ValidationErrors),
	}
}

// Load replaces every field value, e.g. from a saved draft. Errors are cleared.
func (h *Holder) Load(values domain.RegistrationForm) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.values = values
	h.errors = make(domain.ValidationErrors)
}

// Values returns a snapshot of the field values.
func (h *Holder) Values() domain.RegistrationForm {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.values
}

// Value returns one field's current value.
func (h *Holder) Value(field domain.Field) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	v, _ := h.values.Get(field)
	return v
}

// Set updates field and drops any error shown for it. Other fields keep their
// errors until the next submit.
func (h *Holder) Set(field domain.Field, value string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.values.Set(field, value) {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	delete(h.errors, field)
	return nil
}

// Errors returns a copy of the current validation errors.
func (h *Holder) Errors() domain.ValidationErrors {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.errors.Clone()
}

// Error returns the message for field, or "" when it is valid.
func (h *Holder) Error(field domain.Field) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.errors[field]
}

// Submitting reports whether a registration request is in flight.
func (h *Holder) Submitting() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.submitting
}

// Reset empties the form; used when the user navigates away.
func (h *Holder) Reset() {
	h.Load(domain.RegistrationForm{})
}

// Submit validates the form and, when it is valid, registers it. It blocks
// until the endpoint answers or the request fails.
func (h *Holder) Submit(ctx context.Context) domain.Outcome {
	request, outcome, ok := h.begin()
	if !ok {
		return outcome
	}
	defer h.finish()

	log := h.log.WithField("email", request.Email)
	log.Debug("Submitting registration")

	err := h.client.Register(ctx, request)
	if err == nil {
		log.Info("Registration accepted")
		return domain.Outcome{
			Kind:     domain.OutcomeRegistered,
			Message:  MessageRegistered,
			NextView: domain.ViewLogin,
		}
	}

	var rejected *domain.RejectedError
	if errors.As(err, &rejected) {
		message := rejected.Detail
		if message == "" {
			message = MessageRejected
		}
		log.WithFields(logrus.Fields{
			"status": rejected.StatusCode,
			"detail": rejected.Detail,
		}).Warn("Registration rejected")
		return domain.Outcome{Kind: domain.OutcomeFailed, Message: message, Err: err}
	}

	log.WithError(err).Error("Registration error")
	return domain.Outcome{Kind: domain.OutcomeFailed, Message: MessageNetwork, Err: err}
}

// begin runs validation and claims the in-flight flag in one critical
// section. ok is false when nothing should be sent.
func (h *Holder) begin() (domain.RegistrationRequest, domain.Outcome, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.submitting {
		h.log.Debug("Submission already in flight, ignoring submit")
		return domain.RegistrationRequest{}, domain.Outcome{Kind: domain.OutcomeSuppressed}, false
	}

	h.errors = h.validator.Validate(h.values)
	if h.errors == nil {
		h.errors = make(domain.ValidationErrors)
	}
	if !h.errors.Empty() {
		h.log.WithField("fields", h.errors.Fields()).Debug("Form has validation errors")
		return domain.RegistrationRequest{}, domain.Outcome{
			Kind:   domain.OutcomeInvalid,
			Errors: h.errors.Clone(),
		}, false
	}

	h.submitting = true
	return h.values.Request(), domain.Outcome{}, true
}

func (h *Holder) finish() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.submitting = false
}
