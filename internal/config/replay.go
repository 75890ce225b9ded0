package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/pgn2csv-go/internal/errors"
)

// Engine selects the chess rules implementation used to replay moves.
type Engine int

const (
	BuiltinEngine Engine = iota // internal/engine board
	NotnilEngine                // github.com/notnil/chess
)

// String returns the flag spelling of the engine.
func (e Engine) String() string {
	if e == NotnilEngine {
		return "notnil"
	}
	return "builtin"
}

// ParseEngine converts a flag value into an Engine.
func ParseEngine(s string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "builtin":
		return BuiltinEngine, nil
	case "notnil":
		return NotnilEngine, nil
	}
	return BuiltinEngine, fmt.Errorf("unknown engine %q: %w", s, errors.ErrInvalidConfig)
}

// ReplayConfig holds settings for position replay.
type ReplayConfig struct {
	Engine Engine

	// UseFENTag starts a game from its FEN header when one is present
	UseFENTag bool
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{
		Engine:    BuiltinEngine,
		UseFENTag: true,
	}
}

// Validate checks the replay configuration.
func (r *ReplayConfig) Validate() error {
	if r.Engine != BuiltinEngine && r.Engine != NotnilEngine {
		return fmt.Errorf("engine %d: %w", r.Engine, errors.ErrInvalidConfig)
	}
	return nil
}
