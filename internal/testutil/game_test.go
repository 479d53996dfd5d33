package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

func TestMustPosition(t *testing.T) {
	pos := MustPosition(t, engine.InitialFEN)
	AssertEqual(t, pos.WhiteKing, chess.E1)
	AssertEqual(t, pos.BlackKing, chess.E8)
	AssertEqual(t, pos.ToMove, chess.White)
}

func TestMustGame(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want string
	}{
		{"empty uses start", "", engine.InitialFEN},
		{"custom", "4k3/8/8/8/8/8/8/4K3 b - - 3 20", "4k3/8/8/8/8/8/8/4K3 b - - 3 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := MustGame(t, tt.fen)
			AssertEqual(t, g.FEN(), tt.want)
		})
	}
}

func TestPlayMoves(t *testing.T) {
	g := MustGame(t, "")
	res := PlayMoves(t, g, "e2e4", "e7e5", "g1f3")
	AssertTrue(t, res.Valid)
	AssertEqual(t, res.Notation, "Nf3")
	AssertEqual(t, g.Notation(), []string{"e4 e5", "Nf3"})
}

func TestMustSquare(t *testing.T) {
	AssertEqual(t, MustSquare(t, "a8"), chess.Square(0))
	AssertEqual(t, MustSquare(t, "h1"), chess.Square(63))
}
