package chess

// Move is an immutable record of a single half-move.
type Move struct {
	// Colour of the side making the move.
	Colour Colour

	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	From Square
	To   Square

	// The coloured piece being moved.
	Piece Piece

	// The coloured piece captured (Empty if no capture). For en passant
	// this is the jumped pawn, which does not stand on To.
	Captured Piece

	// The coloured piece promoted to (Empty if not a promotion).
	Promotion Piece
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return m.Captured != Empty
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// IsEnPassant returns true if this move captures en passant.
func (m Move) IsEnPassant() bool {
	return m.Class == EnPassantPawnMove
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// CapturedSquare returns the square the captured piece stood on: one row
// behind To for en passant, To otherwise.
func (m Move) CapturedSquare() Square {
	if m.Class != EnPassantPawnMove {
		return m.To
	}
	sq, _ := m.To.Offset(-PawnDirection(m.Colour), 0)
	return sq
}

// PlacedPiece returns the piece that stands on To after the move.
func (m Move) PlacedPiece() Piece {
	if m.Promotion != Empty {
		return m.Promotion
	}
	return m.Piece
}

// String returns the move in input format, e.g. "e2e4" or "e7e8=Q".
func (m Move) String() string {
	s := m.From.Name() + m.To.Name()
	if m.Promotion != Empty {
		s += "=" + string(ExtractPiece(m.Promotion).Letter())
	}
	return s
}
