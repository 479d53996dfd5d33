package chess

// CastlingRights holds the four independent castling permissions.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights is the castling state of the initial position.
var AllCastlingRights = CastlingRights{
	WhiteKingside:  true,
	WhiteQueenside: true,
	BlackKingside:  true,
	BlackQueenside: true,
}

// Has reports whether the colour may still castle on the given side.
func (cr CastlingRights) Has(colour Colour, kingside bool) bool {
	switch {
	case colour == White && kingside:
		return cr.WhiteKingside
	case colour == White:
		return cr.WhiteQueenside
	case kingside:
		return cr.BlackKingside
	default:
		return cr.BlackQueenside
	}
}

// Set grants one castling right.
func (cr *CastlingRights) Set(colour Colour, kingside bool) {
	cr.set(colour, kingside, true)
}

// Revoke clears one castling right.
func (cr *CastlingRights) Revoke(colour Colour, kingside bool) {
	cr.set(colour, kingside, false)
}

func (cr *CastlingRights) set(colour Colour, kingside, value bool) {
	switch {
	case colour == White && kingside:
		cr.WhiteKingside = value
	case colour == White:
		cr.WhiteQueenside = value
	case kingside:
		cr.BlackKingside = value
	default:
		cr.BlackQueenside = value
	}
}

// RevokeAll clears both castling rights of a colour.
func (cr *CastlingRights) RevokeAll(colour Colour) {
	cr.Revoke(colour, true)
	cr.Revoke(colour, false)
}

// String returns the FEN castling field ("KQkq" subset or "-").
func (cr CastlingRights) String() string {
	var b []byte
	if cr.WhiteKingside {
		b = append(b, 'K')
	}
	if cr.WhiteQueenside {
		b = append(b, 'Q')
	}
	if cr.BlackKingside {
		b = append(b, 'k')
	}
	if cr.BlackQueenside {
		b = append(b, 'q')
	}
	if len(b) == 0 {
		return "-"
	}
	return string(b)
}

// Position represents a chess position with all state needed for move
// legality. It is a plain value: assigning it copies the whole position.
type Position struct {
	// The board squares, a8 first, h1 last.
	Squares [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	// The square jumped over by the last double pawn step, or NoSquare.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current full move number, starting at 1.
	MoveNumber uint

	Castling CastlingRights

	// Keep track of where the two kings are for check detection.
	WhiteKing Square
	BlackKing Square
}

// NewPosition creates a position with an empty board.
func NewPosition() Position {
	return Position{
		ToMove:     White,
		EnPassant:  NoSquare,
		MoveNumber: 1,
		WhiteKing:  NoSquare,
		BlackKing:  NoSquare,
	}
}

// NewInitialPosition creates the standard chess starting position.
func NewInitialPosition() Position {
	p := NewPosition()
	p.SetupInitialPosition()
	return p
}

// SetupInitialPosition sets up the standard chess starting position.
func (p *Position) SetupInitialPosition() {
	p.Squares = [NumSquares]Piece{}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		p.Squares[NewSquare(0, file)] = B(backRank[file])
		p.Squares[NewSquare(1, file)] = B(Pawn)
		p.Squares[NewSquare(6, file)] = W(Pawn)
		p.Squares[NewSquare(7, file)] = W(backRank[file])
	}

	p.WhiteKing = E1
	p.BlackKing = E8
	p.Castling = AllCastlingRights
	p.ToMove = White
	p.MoveNumber = 1
	p.EnPassant = NoSquare
	p.HalfmoveClock = 0
}

// Get returns the piece on a square (Empty for off-board squares).
func (p *Position) Get(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return p.Squares[sq]
}

// Set places a piece on a square.
func (p *Position) Set(sq Square, piece Piece) {
	if sq.Valid() {
		p.Squares[sq] = piece
	}
}

// KingSquare returns the cached king square of a colour.
func (p *Position) KingSquare(colour Colour) Square {
	if colour == White {
		return p.WhiteKing
	}
	return p.BlackKing
}

// SetKingSquare updates the cached king square of a colour.
func (p *Position) SetKingSquare(colour Colour, sq Square) {
	if colour == White {
		p.WhiteKing = sq
	} else {
		p.BlackKing = sq
	}
}

// FindKing scans the board for the king of a colour.
func (p *Position) FindKing(colour Colour) Square {
	king := MakeColouredPiece(colour, King)
	for sq := Square(0); sq < NumSquares; sq++ {
		if p.Squares[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// Copy returns an independent copy of the position.
func (p *Position) Copy() Position {
	return *p
}

// PieceCount returns the number of pieces on the board, kings included.
func (p *Position) PieceCount() int {
	count := 0
	for _, piece := range p.Squares {
		if piece != Empty {
			count++
		}
	}
	return count
}

// PositionState captures every field of a position except the board squares.
// Undo restores it verbatim and rewrites the squares from the move record.
type PositionState struct {
	ToMove        Colour
	EnPassant     Square
	HalfmoveClock uint
	MoveNumber    uint
	Castling      CastlingRights
	WhiteKing     Square
	BlackKing     Square
}

// SaveState captures the non-board state for later restoration.
func (p *Position) SaveState() PositionState {
	return PositionState{
		ToMove:        p.ToMove,
		EnPassant:     p.EnPassant,
		HalfmoveClock: p.HalfmoveClock,
		MoveNumber:    p.MoveNumber,
		Castling:      p.Castling,
		WhiteKing:     p.WhiteKing,
		BlackKing:     p.BlackKing,
	}
}

// RestoreState restores previously saved non-board state.
func (p *Position) RestoreState(s PositionState) {
	p.ToMove = s.ToMove
	p.EnPassant = s.EnPassant
	p.HalfmoveClock = s.HalfmoveClock
	p.MoveNumber = s.MoveNumber
	p.Castling = s.Castling
	p.WhiteKing = s.WhiteKing
	p.BlackKing = s.BlackKing
}
