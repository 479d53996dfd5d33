package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	return IsInCheck(pos, pos.ToMove) && !HasLegalMoves(pos)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	return !IsInCheck(pos, pos.ToMove) && !HasLegalMoves(pos)
}

// Status holds the per-position outcome flags for the side to move.
// Repetition is a property of a game's history and is not covered here.
type Status struct {
	Check                bool
	Checkmate            bool
	Stalemate            bool
	FiftyMoveRule        bool
	InsufficientMaterial bool
}

// Draw reports whether any position-only draw condition holds.
func (s Status) Draw() bool {
	return s.Stalemate || s.FiftyMoveRule || s.InsufficientMaterial
}

// Evaluate computes the outcome flags of the position for the side to move.
func Evaluate(pos *chess.Position) Status {
	check := IsInCheck(pos, pos.ToMove)
	hasMoves := HasLegalMoves(pos)
	return Status{
		Check:                check,
		Checkmate:            check && !hasMoves,
		Stalemate:            !check && !hasMoves,
		FiftyMoveRule:        IsFiftyMoveDraw(pos),
		InsufficientMaterial: HasInsufficientMaterial(pos),
	}
}
