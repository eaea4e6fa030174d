package app

import (
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"signup/internal/domain"
	"signup/internal/form"
	"signup/internal/registration"
	"signup/internal/store"
	"signup/internal/validation"
)

// Wire bundles the stores, services, and clients for the CLI.
type Wire struct {
	Validator domain.Validator
	Registrar domain.RegistrationClient
	Drafts    domain.DraftStore
	Log       *logrus.Logger

	logCloser io.Closer
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, logCloser, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}

	validator, err := validation.New()
	if err != nil {
		_ = logCloser.Close()
		return nil, err
	}

	rc := registration.NewHTTP(cfg.Endpoint, httpClient, log.WithField("component", "registration"))

	log.WithFields(logrus.Fields{
		"endpoint": cfg.Endpoint,
		"home":     cfg.Home,
		"timeout":  cfg.Timeout.String(),
	}).Debug("App wired")

	return &Wire{
		Validator: validator,
		Registrar: rc,
		Drafts:    store.NewDraftFileStore(cfg.Home),
		Log:       log,
		logCloser: logCloser,
	}, nil
}

// NewHolder returns an empty registration form bound to this app's
// validator and registration client.
func (w *Wire) NewHolder() *form.Holder {
	return form.New(w.Validator, w.Registrar, w.Log.WithField("component", "form"))
}

// Close releases the log file, if one was opened.
func (w *Wire) Close() error {
	if w.logCloser == nil {
		return nil
	}
	return w.logCloser.Close()
}
