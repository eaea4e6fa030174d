package app

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	DefaultEndpoint = "http://localhost:8000"
	DefaultTimeout  = 30 * time.Second
)

// Environment variables consulted for settings not given as flags.
const (
	EnvEndpoint = "SIGNUP_ENDPOINT"
	EnvTimeout  = "SIGNUP_TIMEOUT"
	EnvDebug    = "SIGNUP_DEBUG"
	EnvHome     = "SIGNUP_HOME"
	EnvLogFile  = "SIGNUP_LOG_FILE"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home     string        // config directory, e.g. $HOME/.signup
	Endpoint string        // registration service base URL, e.g. http://localhost:8000
	Timeout  time.Duration // per-request bound; 0 means no timeout

	LogFile     string // append logs here when set
	LogToStderr bool   // otherwise logs are discarded (the TUI owns the terminal)
	Debug       bool
}

// ApplyEnv fills settings from the environment unless isSet reports that the
// matching flag was given explicitly.
func (c *Config) ApplyEnv(isSet func(flag string) bool) error {
	if v, ok := os.LookupEnv(EnvEndpoint); ok && v != "" && !isSet("endpoint") {
		c.Endpoint = v
	}
	if v, ok := os.LookupEnv(EnvHome); ok && v != "" && !isSet("home") {
		c.Home = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok && v != "" && !isSet("log-file") {
		c.LogFile = v
	}
	if v, ok := os.LookupEnv(EnvTimeout); ok && v != "" && !isSet("timeout") {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}
	if v, ok := os.LookupEnv(EnvDebug); ok && v != "" && !isSet("debug") {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Debug = b
	}
	return nil
}

// Validate rejects configurations the app cannot run with.
func (c Config) Validate() error {
	if c.Home == "" {
		return fmt.Errorf("home directory not set")
	}
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint not set")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}
