package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// offset is a (row, file) step on the board.
type offset struct {
	dRow, dFile int
}

var (
	knightOffsets = []offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}

	diagonalDirs = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	// The king steps once in every direction; the queen slides along the same set.
	kingDirs = append(append([]offset{}, diagonalDirs...), straightDirs...)
)

// PseudoLegalMoves returns the destinations the piece on sq can reach by its
// movement pattern, without checking whether the mover's king ends up in
// check. Castling and en passant are not included. The king's destinations
// already exclude squares attacked by the opponent or next to the enemy king.
func PseudoLegalMoves(pos *chess.Position, sq chess.Square) []chess.Square {
	piece := pos.Get(sq)
	if piece == chess.Empty {
		return nil
	}
	colour := chess.ExtractColour(piece)

	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		return pawnMoves(pos, sq, colour)
	case chess.Knight:
		return stepMoves(pos, sq, colour, knightOffsets)
	case chess.Bishop:
		return slideMoves(pos, sq, colour, diagonalDirs)
	case chess.Rook:
		return slideMoves(pos, sq, colour, straightDirs)
	case chess.Queen:
		return slideMoves(pos, sq, colour, kingDirs)
	case chess.King:
		return kingMoves(pos, sq, colour)
	}
	return nil
}

// stepMoves returns the single-step destinations that are empty or hold an
// opposing piece.
func stepMoves(pos *chess.Position, from chess.Square, colour chess.Colour, offsets []offset) []chess.Square {
	var moves []chess.Square
	for _, o := range offsets {
		to, ok := from.Offset(o.dRow, o.dFile)
		if !ok || chess.IsColour(pos.Get(to), colour) {
			continue
		}
		moves = append(moves, to)
	}
	return moves
}

// slideMoves casts rays until the first occupied square, which is included
// only when it holds an opposing piece.
func slideMoves(pos *chess.Position, from chess.Square, colour chess.Colour, dirs []offset) []chess.Square {
	var moves []chess.Square
	for _, dir := range dirs {
		to, ok := from.Offset(dir.dRow, dir.dFile)
		for ok {
			target := pos.Get(to)
			if target != chess.Empty {
				if !chess.IsColour(target, colour) {
					moves = append(moves, to)
				}
				break
			}
			moves = append(moves, to)
			to, ok = to.Offset(dir.dRow, dir.dFile)
		}
	}
	return moves
}

// kingMoves returns the king's single steps, dropping squares next to the
// enemy king or attacked by the opponent.
func kingMoves(pos *chess.Position, from chess.Square, colour chess.Colour) []chess.Square {
	enemyKing := pos.KingSquare(colour.Opposite())
	var moves []chess.Square
	for _, to := range stepMoves(pos, from, colour, kingDirs) {
		if to.IsAdjacent(enemyKing) || IsAttacked(pos, to, colour.Opposite()) {
			continue
		}
		moves = append(moves, to)
	}
	return moves
}
