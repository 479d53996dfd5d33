// Package errors provides sentinel errors and error types for the chess rules
// engine. It separates malformed input, illegal moves and structurally invalid
// positions while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates malformed position text: wrong field count,
	// unknown characters, or a field with bad syntax.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidPosition indicates position text that parses but breaks a
	// structural rule of chess (row count, king count, impossible castling).
	ErrInvalidPosition = errors.New("invalid position")

	// ErrMalformedMove indicates move text that does not match <from><to>[=<promo>].
	ErrMalformedMove = errors.New("malformed move")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoHistory indicates an undo with no recorded moves.
	ErrNoHistory = errors.New("no moves to undo")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidScript indicates a scenario file that cannot be used.
	ErrInvalidScript = errors.New("invalid scenario")
)

// PositionError describes why a FEN string was rejected. It names the FEN
// field, the offending text, and a human-readable reason.
type PositionError struct {
	Err    error  // ErrInvalidFEN or ErrInvalidPosition
	Field  string // FEN field name, e.g. "castling rights"
	Value  string // The offending text (may be empty)
	Reason string // What rule was broken
}

// Error returns a formatted error message including all available context.
func (e *PositionError) Error() string {
	var parts []string

	if e.Field != "" {
		if e.Value != "" {
			parts = append(parts, fmt.Sprintf("%s %q", e.Field, e.Value))
		} else {
			parts = append(parts, e.Field)
		}
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ": ")
	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%v: %s", e.Err, context)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "invalid position"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PositionError wrapper.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// MoveError wraps a move rejection with the move text and ply it happened at.
type MoveError struct {
	Err      error  // ErrMalformedMove or ErrIllegalMove
	MoveText string // The move text that caused the error (if known)
	PlyNum   int    // 1-based ply the move would have been (0 if not applicable)
	Reason   string // Why the move was rejected
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	msg := strings.Join(parts, ", ")
	if e.Err != nil {
		if msg != "" {
			msg += ": "
		}
		msg += e.Err.Error()
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if msg == "" {
		return "move error"
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// InvalidFEN builds a PositionError for malformed position text.
func InvalidFEN(field, value, reason string) error {
	return &PositionError{Err: ErrInvalidFEN, Field: field, Value: value, Reason: reason}
}

// InvalidPosition builds a PositionError for a structural rule violation.
func InvalidPosition(field, value, reason string) error {
	return &PositionError{Err: ErrInvalidPosition, Field: field, Value: value, Reason: reason}
}

// IllegalMove builds a MoveError for a move rejected by the rules.
func IllegalMove(moveText, reason string) error {
	return &MoveError{Err: ErrIllegalMove, MoveText: moveText, Reason: reason}
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
