package app

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the process logger and returns a closer for any file it
// opened. Passwords are never handed to it.
func NewLogger(cfg Config) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	if cfg.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, err
		}
		log.SetFormatter(&logrus.JSONFormatter{})
		log.SetOutput(f)
		return log, f, nil
	case cfg.LogToStderr:
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		log.SetOutput(os.Stderr)
		// stdout already carries the outcome; stderr only gets problems
		if !cfg.Debug {
			log.SetLevel(logrus.WarnLevel)
		}
	default:
		log.SetOutput(io.Discard)
	}
	return log, nopCloser{}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
