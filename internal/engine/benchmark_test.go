package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

var benchFENs = map[string]string{
	"Initial":   InitialFEN,
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkParseFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				ParseFEN(fen)
			}
		})
	}
}

func BenchmarkFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			pos := MustParseFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				FEN(&pos)
			}
		})
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			pos := MustParseFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				LegalMoves(&pos)
			}
		})
	}
}

func BenchmarkTryApplyMove(b *testing.B) {
	cases := []struct {
		name     string
		fen      string
		from, to string
	}{
		{"PawnMove", benchFENs["Initial"], "e2", "e4"},
		{"PieceMove", benchFENs["Midgame"], "f3", "g5"},
		{"Castle", benchFENs["Castling"], "e1", "g1"},
		{"EnPassant", benchFENs["EnPassant"], "f5", "e6"},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			pos := MustParseFEN(tc.fen)
			from, _ := chess.ParseSquare(tc.from)
			to, _ := chess.ParseSquare(tc.to)
			move, err := BuildMove(&pos, from, to, chess.Empty)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				TryApplyMove(&pos, move)
			}
		})
	}
}

func BenchmarkEvaluate(b *testing.B) {
	pos := MustParseFEN(benchFENs["Complex"])
	for i := 0; i < b.N; i++ {
		Evaluate(&pos)
	}
}

func BenchmarkPerft3(b *testing.B) {
	pos := MustParseFEN(InitialFEN)
	for i := 0; i < b.N; i++ {
		perft(&pos, 3)
	}
}
