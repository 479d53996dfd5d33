// Package testutil provides shared test utilities for the chessrules-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// MustPosition parses a FEN string and calls t.Fatal if it is rejected.
func MustPosition(t *testing.T, fen string) chess.Position {
	t.Helper()
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse FEN %q: %v", fen, err)
	}
	return pos
}

// MustGame creates a game from a FEN string, or from the starting position
// when fen is empty. It calls t.Fatal if the FEN is rejected.
func MustGame(t *testing.T, fen string) *game.Game {
	t.Helper()
	if fen == "" {
		return game.New()
	}
	g, err := game.NewFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to load FEN %q: %v", fen, err)
	}
	return g
}

// PlayMoves plays every move in order and calls t.Fatal on the first one
// the game rejects. It returns the result of the last move.
func PlayMoves(t *testing.T, g *game.Game, moves ...string) game.MoveResult {
	t.Helper()
	var res game.MoveResult
	for i, m := range moves {
		res = g.Move(m)
		if !res.Valid {
			t.Fatalf("move %d (%s) rejected: %v %v", i+1, m, res.Feedback, res.Err)
		}
	}
	return res
}

// MustSquare returns the square with the given name and calls t.Fatal if
// the name is not a square.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, ok := chess.ParseSquare(name)
	if !ok {
		t.Fatalf("bad square name %q", name)
	}
	return sq
}
