package engine

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// play applies a sequence of move texts from fen and returns the result.
func play(t *testing.T, fen string, moves ...string) chess.Position {
	t.Helper()
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
	}
	for _, text := range moves {
		pos = mustApply(t, &pos, text)
	}
	return pos
}

func mustApply(t *testing.T, pos *chess.Position, text string) chess.Position {
	t.Helper()
	move, err := buildFromText(pos, text)
	if err != nil {
		t.Fatalf("BuildMove(%s) failed: %v", text, err)
	}
	next, err := TryApplyMove(pos, move)
	if err != nil {
		t.Fatalf("TryApplyMove(%s) failed: %v", text, err)
	}
	return next
}

func buildFromText(pos *chess.Position, text string) (chess.Move, error) {
	from, to, promo, err := ParseMoveText(text)
	if err != nil {
		return chess.Move{}, err
	}
	return BuildMove(pos, from, to, promo)
}

func squareNames(squares []chess.Square) []string {
	names := make([]string, 0, len(squares))
	for _, s := range squares {
		names = append(names, s.Name())
	}
	sort.Strings(names)
	return names
}

func TestPseudoLegalMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{"knight from b1", InitialFEN, "b1", []string{"a3", "c3"}},
		{"pawn double step", InitialFEN, "e2", []string{"e3", "e4"}},
		{"boxed in rook", InitialFEN, "a1", []string{}},
		{"empty square", InitialFEN, "e4", []string{}},
		{
			name: "pawn blocked double step",
			fen:  "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1",
			from: "e2",
			want: []string{},
		},
		{
			name: "pawn captures only opposing pieces",
			fen:  "4k3/8/8/3p1N2/4P3/8/8/4K3 w - - 0 1",
			from: "e4",
			want: []string{"d5", "e5"},
		},
		{
			name: "bishop stops at first blocker",
			fen:  "4k3/8/8/8/8/2p5/1B6/K7 w - - 0 1",
			from: "b2",
			want: []string{"a3", "c1", "c3"},
		},
		{
			name: "king avoids attacked squares",
			fen:  "4k3/8/8/8/8/8/3r4/4K3 w - - 0 1",
			from: "e1",
			want: []string{"d2", "f1"},
		},
		{
			name: "king keeps away from enemy king",
			fen:  "8/8/8/3k4/8/3K4/8/8 w - - 0 1",
			from: "d3",
			want: []string{"c2", "c3", "d2", "e2", "e3"},
		},
		{
			name: "queen repeats king directions",
			fen:  "4k3/8/8/8/8/8/PPP5/1Q2K3 w - - 0 1",
			from: "b1",
			want: []string{"a1", "c1", "d1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustParseFEN(tt.fen)
			got := squareNames(PseudoLegalMoves(&pos, sq(tt.from)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("PseudoLegalMoves(%s) mismatch (-want +got):\n%s", tt.from, diff)
			}
		})
	}
}

func TestIsAttacked(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		by     chess.Colour
		want   bool
	}{
		{"pawn diagonal", InitialFEN, "e3", chess.White, true},
		{"knight and pawn", InitialFEN, "a3", chess.White, true},
		{"pawn push is not an attack", InitialFEN, "e4", chess.White, false},
		{"black defends f6", InitialFEN, "f6", chess.Black, true},
		{"empty diagonal in front of a pawn", "4k3/8/8/8/3p4/8/8/4K3 w - - 0 1", "e3", chess.Black, true},
		{"square ahead of a pawn", "4k3/8/8/8/3p4/8/8/4K3 w - - 0 1", "d3", chess.Black, false},
		{"kings do not attack", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "d1", chess.White, false},
		{"defended piece", "4k3/8/8/8/8/8/8/R2NK3 w - - 0 1", "d1", chess.White, true},
		{"ray blocked", "4k3/8/8/8/8/8/8/R2NK3 w - - 0 1", "e1", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustParseFEN(tt.fen)
			if got := IsAttacked(&pos, sq(tt.square), tt.by); got != tt.want {
				t.Errorf("IsAttacked(%s, %v) = %v, want %v", tt.square, tt.by, got, tt.want)
			}
		})
	}
}

func TestCastlingMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		king string
		want []string
	}{
		{"blocked in initial position", InitialFEN, "e1", []string{}},
		{"both sides open", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1", []string{"c1", "g1"}},
		{"black both sides", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8", []string{"c8", "g8"}},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1", "e1", []string{}},
		{"transit attacked by rook", "r3kr2/8/8/8/8/8/8/R3K2R w KQq - 0 1", "e1", []string{"c1"}},
		{"transit attacked by pawn", "r3k2r/8/8/8/8/8/2p5/R3K2R w KQkq - 0 1", "e1", []string{"g1"}},
		{"knight on b1 blocks queenside", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", "e1", []string{"g1"}},
		{"king in check", "r3k2r/8/8/8/8/8/4r3/R3K2R w KQq - 0 1", "e1", []string{}},
		{"not a king", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "a1", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustParseFEN(tt.fen)
			got := squareNames(CastlingMoves(&pos, sq(tt.king)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CastlingMoves(%s) mismatch (-want +got):\n%s", tt.king, diff)
			}
		})
	}
}

func TestTryApplyMove(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		move    string
		wantFEN string
	}{
		{
			name:    "double pawn push sets en passant target",
			fen:     InitialFEN,
			move:    "e2e4",
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:    "black move increments fullmove",
			fen:     "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			move:    "g8f6",
			wantFEN: "rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 1 2",
		},
		{
			name:    "white kingside castle relocates rook",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:    "e1g1",
			wantFEN: "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
		},
		{
			name:    "white queenside castle relocates rook",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:    "e1c1",
			wantFEN: "r3k2r/8/8/8/8/8/8/2KR3R b kq - 1 1",
		},
		{
			name:    "black kingside castle relocates rook",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 3 9",
			move:    "e8g8",
			wantFEN: "r4rk1/8/8/8/8/8/8/R3K2R w KQ - 4 10",
		},
		{
			name:    "en passant removes the jumped pawn",
			fen:     "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
			move:    "e5f6",
			wantFEN: "rnbqkbnr/ppp1p1pp/5P2/3p4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3",
		},
		{
			name:    "promotion defaults to queen",
			fen:     "7k/P7/8/8/8/8/8/K7 w - - 5 40",
			move:    "a7a8",
			wantFEN: "Q6k/8/8/8/8/8/8/K7 b - - 0 40",
		},
		{
			name:    "underpromotion",
			fen:     "7k/P7/8/8/8/8/8/K7 w - - 0 40",
			move:    "a7a8=n",
			wantFEN: "N6k/8/8/8/8/8/8/K7 b - - 0 40",
		},
		{
			name:    "black promotion keeps the mover's colour",
			fen:     "k7/8/8/8/8/8/p7/7K b - - 0 40",
			move:    "a2a1=R",
			wantFEN: "k7/8/8/8/8/8/8/r6K w - - 0 41",
		},
		{
			name:    "rook leaving home revokes its right",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:    "a1a2",
			wantFEN: "r3k2r/8/8/8/8/8/R7/4K2R b Kkq - 1 1",
		},
		{
			name:    "capturing a rook at home revokes the opponent's right",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:    "a1a8",
			wantFEN: "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
		{
			name:    "king move revokes both rights",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:    "e1f1",
			wantFEN: "r3k2r/8/8/8/8/8/8/R4K1R b kq - 1 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustParseFEN(tt.fen)
			next := mustApply(t, &pos, tt.move)
			if got := FEN(&next); got != tt.wantFEN {
				t.Errorf("FEN after %s = %q, want %q", tt.move, got, tt.wantFEN)
			}
			if got := FEN(&pos); got != tt.fen {
				t.Errorf("input position changed to %q", got)
			}
			if next.WhiteKing != next.FindKing(chess.White) || next.BlackKing != next.FindKing(chess.Black) {
				t.Errorf("cached king squares out of date: %v %v", next.WhiteKing, next.BlackKing)
			}
		})
	}
}

func TestTryApplyMove_Rejects(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
	}{
		{"unreachable square", InitialFEN, "e2e5"},
		{"own piece on destination", InitialFEN, "a1a2"},
		{"pinned bishop", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", "e2d3"},
		{"king into check", "4k3/8/8/8/8/8/3r4/4K3 w - - 0 1", "e1e2"},
		{"king next to king", "8/8/8/3k4/8/3K4/8/8 w - - 0 1", "d3d4"},
		{"castle through blocked squares", InitialFEN, "e1g1"},
		{"castle through check", "r3kr2/8/8/8/8/8/8/R3K2R w KQq - 0 1", "e1g1"},
		{"ignores check", "4k3/8/8/8/8/8/4r3/R3K3 w Q - 0 1", "a1a2"},
		{
			name: "en passant exposing the king",
			fen:  "8/8/8/KPp4r/8/8/8/7k w - c6 0 1",
			move: "b5c6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustParseFEN(tt.fen)
			before := pos
			move, err := buildFromText(&pos, tt.move)
			if err != nil {
				t.Fatalf("BuildMove(%s) failed: %v", tt.move, err)
			}
			next, err := TryApplyMove(&pos, move)
			if !errors.Is(err, errors.ErrIllegalMove) {
				t.Fatalf("TryApplyMove(%s) error = %v, want ErrIllegalMove", tt.move, err)
			}
			if next != before || pos != before {
				t.Errorf("rejected move changed the position")
			}
		})
	}
}

func TestBuildMove(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		move      string
		wantClass chess.MoveClass
		wantCapt  chess.Piece
		wantPromo chess.Piece
		wantErr   bool
	}{
		{name: "pawn push", fen: InitialFEN, move: "e2e4", wantClass: chess.PawnMove},
		{name: "knight", fen: InitialFEN, move: "g1f3", wantClass: chess.PieceMove},
		{name: "empty square", fen: InitialFEN, move: "e4e5", wantErr: true},
		{name: "wrong side", fen: InitialFEN, move: "e7e5", wantErr: true},
		{name: "promotion suffix on a push", fen: InitialFEN, move: "e2e4=q", wantErr: true},
		{
			name:      "kingside castle",
			fen:       "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:      "e1g1",
			wantClass: chess.KingsideCastle,
		},
		{
			name:      "queenside castle",
			fen:       "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move:      "e8c8",
			wantClass: chess.QueensideCastle,
		},
		{
			name:      "en passant",
			fen:       "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
			move:      "e5f6",
			wantClass: chess.EnPassantPawnMove,
			wantCapt:  chess.B(chess.Pawn),
		},
		{
			name:      "capture",
			fen:       "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
			move:      "e4d5",
			wantClass: chess.PawnMove,
			wantCapt:  chess.B(chess.Pawn),
		},
		{
			name:      "promotion",
			fen:       "7k/P7/8/8/8/8/8/K7 w - - 0 40",
			move:      "a7a8=B",
			wantClass: chess.PawnMoveWithPromotion,
			wantPromo: chess.W(chess.Bishop),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustParseFEN(tt.fen)
			move, err := buildFromText(&pos, tt.move)
			if (err != nil) != tt.wantErr {
				t.Fatalf("BuildMove(%s) error = %v, wantErr %v", tt.move, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrIllegalMove) {
					t.Errorf("BuildMove(%s) error = %v, want ErrIllegalMove", tt.move, err)
				}
				return
			}
			if move.Class != tt.wantClass || move.Captured != tt.wantCapt || move.Promotion != tt.wantPromo {
				t.Errorf("BuildMove(%s) = class %v captured %v promotion %v", tt.move, move.Class, move.Captured, move.Promotion)
			}
		})
	}
}

func TestBuildMove_RejectsBadPromotionPiece(t *testing.T) {
	pos := MustParseFEN("7k/P7/8/8/8/8/8/K7 w - - 0 40")
	if _, err := BuildMove(&pos, sq("a7"), sq("a8"), chess.King); !errors.Is(err, errors.ErrIllegalMove) {
		t.Errorf("BuildMove() promoting to a king: error = %v, want ErrIllegalMove", err)
	}
}

func TestUndoMove(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
	}{
		{"pawn push", InitialFEN, "e2e4"},
		{"en passant", "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3", "e5f6"},
		{"castle", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 3 9", "e8c8"},
		{"promotion capture", "1r5k/P7/8/8/8/8/8/K7 w - - 7 40", "a7b8=N"},
		{"rook capture", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "h1h8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustParseFEN(tt.fen)
			move, err := buildFromText(&pos, tt.move)
			if err != nil {
				t.Fatalf("BuildMove(%s) failed: %v", tt.move, err)
			}
			next, err := TryApplyMove(&pos, move)
			if err != nil {
				t.Fatalf("TryApplyMove(%s) failed: %v", tt.move, err)
			}

			UndoMove(&next, move, pos.SaveState())
			if diff := cmp.Diff(pos, next); diff != "" {
				t.Errorf("UndoMove(%s) mismatch (-want +got):\n%s", tt.move, diff)
			}
		})
	}
}
