// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Symbol returns the FEN side-to-move letter for the colour.
func (c Colour) Symbol() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Piece represents a chess piece type, or a coloured piece once combined
// with a colour by MakeColouredPiece. The zero value is an empty square.
type Piece int

const (
	Empty Piece = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece type.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// IsMinor reports whether the piece type is a knight or a bishop.
func (p Piece) IsMinor() bool {
	return p == Knight || p == Bishop
}

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnMoveWithPromotion
	EnPassantPawnMove
	PieceMove
	KingsideCastle
	QueensideCastle
)

// String returns a short name for the move class.
func (mc MoveClass) String() string {
	switch mc {
	case PawnMove:
		return "pawn"
	case PawnMoveWithPromotion:
		return "promotion"
	case EnPassantPawnMove:
		return "en passant"
	case PieceMove:
		return "piece"
	case KingsideCastle:
		return "kingside castle"
	case QueensideCastle:
		return "queenside castle"
	default:
		return "unknown"
	}
}

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// IsColour reports whether the square content is a piece of the given colour.
func IsColour(colouredPiece Piece, colour Colour) bool {
	return colouredPiece != Empty && ExtractColour(colouredPiece) == colour
}

// FENLetter returns the FEN letter for a coloured piece: uppercase for
// White, lowercase for Black.
func FENLetter(colouredPiece Piece) byte {
	letter := ExtractPiece(colouredPiece).Letter()
	if ExtractColour(colouredPiece) == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// PieceFromLetter converts a letter (either case) to a piece type.
// Returns Empty for anything else.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	default:
		return Empty
	}
}

// PawnDirection returns the row delta of a pawn step: -1 for White (towards
// rank 8, row 0), +1 for Black.
func PawnDirection(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// PawnStartRow returns the row from which pawns of the colour may double step.
func PawnStartRow(colour Colour) int {
	if colour == White {
		return 6
	}
	return 1
}

// PromotionRow returns the row on which pawns of the colour promote.
func PromotionRow(colour Colour) int {
	if colour == White {
		return 0
	}
	return 7
}
