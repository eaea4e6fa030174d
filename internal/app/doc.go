// Package app wires application dependencies for the CLI.
//
// It resolves Config from flags, an optional .env file and the process
// environment, then builds the logger, validator, registration client and
// draft store, exposing them via the Wire struct for commands to use.
package app
