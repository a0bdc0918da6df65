// Package config turns command-line arguments into a validated Config.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/eventtools/eventkv/internal/exit"
)

var (
	ErrNoArguments         = errors.New("no arguments provided")
	ErrExpectedOneArgument = errors.New("expected exactly one argument: <path to event data>")
)

// Config represents the complete configuration for the eventkv tool.
type Config struct {
	// InputFile is the path to the event-data file.
	InputFile string
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if _, err := os.Stat(c.InputFile); err != nil {
		return fmt.Errorf("event data file %s not found: %w", c.InputFile, err)
	}
	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// The surface is exactly one positional argument; there are no flags.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.UsageErrorf("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	if len(args) != 2 {
		return nil, exit.UsageErrorf("Error: %v\n\n%s", ErrExpectedOneArgument, Usage())
	}

	config := &Config{InputFile: args[1]}

	if err := config.Validate(); err != nil {
		return nil, exit.Errorf("Error: %v\n", err)
	}

	return config, nil
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `eventkv - event data decoder

Usage: eventkv <file>

Reads a file of key:"value" pairs, derives the "five" field from the
values of "one".."four", and prints the result as pretty-printed JSON.

Examples:
  eventkv event.txt
`
}
