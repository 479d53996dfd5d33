package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnMoves returns the pawn's pushes and ordinary captures.
func pawnMoves(pos *chess.Position, from chess.Square, colour chess.Colour) []chess.Square {
	var moves []chess.Square
	dir := chess.PawnDirection(colour)

	// Single push, and the double push from the start row behind it.
	if one, ok := from.Offset(dir, 0); ok && pos.Get(one) == chess.Empty {
		moves = append(moves, one)
		if from.Row() == chess.PawnStartRow(colour) {
			if two, ok := from.Offset(2*dir, 0); ok && pos.Get(two) == chess.Empty {
				moves = append(moves, two)
			}
		}
	}

	for _, dFile := range []int{-1, 1} {
		to, ok := from.Offset(dir, dFile)
		if ok && chess.IsColour(pos.Get(to), colour.Opposite()) {
			moves = append(moves, to)
		}
	}
	return moves
}

// EnPassantTarget returns the en passant destination of the pawn on sq, or
// NoSquare when it has none.
func EnPassantTarget(pos *chess.Position, sq chess.Square) chess.Square {
	piece := pos.Get(sq)
	if pos.EnPassant == chess.NoSquare || chess.ExtractPiece(piece) != chess.Pawn {
		return chess.NoSquare
	}
	colour := chess.ExtractColour(piece)
	if colour != pos.ToMove {
		return chess.NoSquare
	}

	dir := chess.PawnDirection(colour)
	for _, dFile := range []int{-1, 1} {
		to, ok := sq.Offset(dir, dFile)
		if !ok || to != pos.EnPassant || pos.Get(to) != chess.Empty {
			continue
		}
		// The jumped pawn must be standing behind the target.
		jumped, _ := to.Offset(-dir, 0)
		if pos.Get(jumped) == chess.MakeColouredPiece(colour.Opposite(), chess.Pawn) {
			return to
		}
	}
	return chess.NoSquare
}

// pawnAttacks reports whether a pawn of the colour on from attacks target.
// Pawns attack both forward diagonals whatever stands there.
func pawnAttacks(from chess.Square, colour chess.Colour, target chess.Square) bool {
	dir := chess.PawnDirection(colour)
	return target.Row()-from.Row() == dir && abs(target.File()-from.File()) == 1
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
