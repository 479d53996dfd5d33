package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidPosition", ErrInvalidPosition, ErrInvalidPosition},
		{"ErrMalformedMove", ErrMalformedMove, ErrMalformedMove},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrNoHistory", ErrNoHistory, ErrNoHistory},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrInvalidScript", ErrInvalidScript, ErrInvalidScript},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrInvalidFEN, ErrInvalidPosition) || errors.Is(ErrMalformedMove, ErrIllegalMove) {
		t.Error("sentinel errors should not match each other")
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to parse position: %w", ErrInvalidFEN)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Errorf("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

func TestPositionError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		contains []string
	}{
		{
			name:     "malformed field",
			err:      InvalidFEN("en passant target", "e5", "must be on rank 3 or 6"),
			sentinel: ErrInvalidFEN,
			contains: []string{"invalid FEN", "en passant target", `"e5"`, "rank 3 or 6"},
		},
		{
			name:     "structural rule",
			err:      InvalidPosition("piece placement", "", "white has no king"),
			sentinel: ErrInvalidPosition,
			contains: []string{"invalid position", "piece placement", "white has no king"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.sentinel)
			}
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestPositionError_As(t *testing.T) {
	wrapped := Wrap(InvalidFEN("halfmove clock", "x", "must be a non-negative integer"), "loading")

	var posErr *PositionError
	if !errors.As(wrapped, &posErr) {
		t.Fatal("errors.As() could not extract PositionError")
	}
	if posErr.Field != "halfmove clock" || posErr.Value != "x" {
		t.Errorf("extracted %+v", posErr)
	}
}

func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name:     "full context",
			err:      &MoveError{Err: ErrIllegalMove, MoveText: "e1g1", PlyNum: 9, Reason: "king passes through check"},
			contains: []string{"ply 9", "e1g1", "illegal move", "passes through check"},
		},
		{
			name:     "minimal context",
			err:      &MoveError{Err: ErrMalformedMove},
			contains: []string{"malformed move"},
		},
		{
			name:     "empty",
			err:      &MoveError{},
			contains: []string{"move error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestMoveError_Unwrap(t *testing.T) {
	err := IllegalMove("a2a5", "not a reachable square")

	if !errors.Is(err, ErrIllegalMove) {
		t.Error("errors.Is(err, ErrIllegalMove) = false, want true")
	}
	var moveErr *MoveError
	if !As(fmt.Errorf("game: %w", err), &moveErr) || moveErr.MoveText != "a2a5" {
		t.Errorf("As() failed to extract MoveError, got %+v", moveErr)
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")

	if !Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "move %d in scenario %d", 15, 3)

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "move 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
	if Wrapf(nil, "x %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
