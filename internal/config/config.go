// Package config provides configuration for pgn2csv.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/pgn2csv-go/internal/errors"
)

// Config holds all program configuration and the shared output streams.
type Config struct {
	// Verbosity: 0=nothing, 1=summary, 2=one line per diagnostic
	Verbosity int

	// Lexer options
	AllowNestedComments bool
	AllowNullMoves      bool

	// SkippingCurrentGame silences lexer warnings while movetext is skipped.
	SkippingCurrentGame bool

	// Sub-configurations
	Output *OutputConfig
	Replay *ReplayConfig

	// Name of the input being processed, used in log lines.
	CurrentInputFile string

	// LogFile receives warnings and diagnostics.
	LogFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity: 1,
		Output:    NewOutputConfig(),
		Replay:    NewReplayConfig(),
		LogFile:   os.Stderr,
	}
}

// SetLog redirects warnings and diagnostics.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks the configuration before any file is opened.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Replay.Validate()
}
