// Package errors defines the failure kinds of pgn2csv. Problems with a
// single game are wrapped in GameError and end up in the diagnostics table;
// the rest stop the run.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInputOpen indicates an input that could not be opened or decoded.
	ErrInputOpen = errors.New("cannot open input")

	// ErrMalformedTimeControl indicates a TimeControl header not in "N+N" form.
	ErrMalformedTimeControl = errors.New("malformed time control")

	// ErrAnnotationParse indicates a comment without an eval or clock marker.
	ErrAnnotationParse = errors.New("no annotation in comment")

	// ErrIllegalMove indicates a move that does not resolve against the position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrUnsupportedVariant indicates a variant the replayer cannot follow.
	ErrUnsupportedVariant = errors.New("unsupported variant")

	// ErrSinkWrite indicates an output table that could not be written.
	ErrSinkWrite = errors.New("sink write failure")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrParseFailure indicates unreadable PGN input. Every ParseError
	// matches it.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// GameError places a per-game failure: which game, which move.
type GameError struct {
	Err error

	// 1-based position of the game in the input
	GameNum int

	// Site link of the game, empty before the headers are complete
	GameID string

	// Half-move the failure belongs to, 0 for headers
	PlyNum   int
	MoveText string
}

func (e *GameError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "game %d", e.GameNum)
	if e.GameID != "" {
		fmt.Fprintf(&sb, " (%s)", e.GameID)
	}
	if e.PlyNum > 0 {
		fmt.Fprintf(&sb, " ply %d", e.PlyNum)
	}
	if e.MoveText != "" {
		fmt.Fprintf(&sb, " %q", e.MoveText)
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	return sb.String()
}

func (e *GameError) Unwrap() error { return e.Err }

// ParseError is a failure reading the input, located by file and line.
type ParseError struct {
	Err  error
	File string
	Line int
}

func (e *ParseError) Error() string {
	var loc []string
	if e.File != "" {
		loc = append(loc, e.File)
	}
	if e.Line > 0 {
		loc = append(loc, fmt.Sprint(e.Line))
	}

	msg := ErrParseFailure.Error()
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if len(loc) == 0 {
		return msg
	}
	return strings.Join(loc, ":") + ": " + msg
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParseFailure}
	}
	return []error{ErrParseFailure, e.Err}
}

// Is, As and Join forward to the standard library so callers need only
// this package.
func Is(err, target error) bool    { return errors.Is(err, target) }
func As(err error, target any) bool { return errors.As(err, target) }
func Join(errs ...error) error     { return errors.Join(errs...) }
