package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	kingSq := pos.KingSquare(colour)

	// If king position not tracked, search for it
	if !kingSq.Valid() {
		kingSq = pos.FindKing(colour)
		if !kingSq.Valid() {
			return false // No king found
		}
	}

	return IsAttacked(pos, kingSq, colour.Opposite())
}

// IsAttacked returns true if any piece of colour by, other than its king,
// attacks sq. Squares next to the attacking king are not reported; callers
// that care check king adjacency themselves.
func IsAttacked(pos *chess.Position, sq chess.Square, by chess.Colour) bool {
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		piece := pos.Get(from)
		if !chess.IsColour(piece, by) {
			continue
		}
		if attacks(pos, from, chess.ExtractPiece(piece), by, sq) {
			return true
		}
	}
	return false
}

// attacks reports whether a piece of the given type and colour on from
// attacks target. Kings never attack here.
func attacks(pos *chess.Position, from chess.Square, piece chess.Piece, colour chess.Colour, target chess.Square) bool {
	switch piece {
	case chess.Pawn:
		return pawnAttacks(from, colour, target)
	case chess.Knight:
		return stepAttacks(from, knightOffsets, target)
	case chess.Bishop:
		return rayAttacks(pos, from, diagonalDirs, target)
	case chess.Rook:
		return rayAttacks(pos, from, straightDirs, target)
	case chess.Queen:
		return rayAttacks(pos, from, kingDirs, target)
	}
	return false
}

// stepAttacks reports whether target is one of the offsets away from from.
func stepAttacks(from chess.Square, offsets []offset, target chess.Square) bool {
	for _, o := range offsets {
		if to, ok := from.Offset(o.dRow, o.dFile); ok && to == target {
			return true
		}
	}
	return false
}

// rayAttacks reports whether a ray from from reaches target before being
// blocked. The first occupied square of a ray is attacked whatever its colour.
func rayAttacks(pos *chess.Position, from chess.Square, dirs []offset, target chess.Square) bool {
	for _, dir := range dirs {
		to, ok := from.Offset(dir.dRow, dir.dFile)
		for ok {
			if to == target {
				return true
			}
			if pos.Get(to) != chess.Empty {
				break // Blocked
			}
			to, ok = to.Offset(dir.dRow, dir.dFile)
		}
	}
	return false
}
