package chess

// Square is a board index in [0,64), row-major from a8 (0) to h1 (63).
type Square int

// NoSquare marks an absent square, e.g. no en passant target.
const NoSquare Square = -1

// Named squares used by castling and the initial position.
const (
	A8 Square = 0
	B8 Square = 1
	C8 Square = 2
	D8 Square = 3
	E8 Square = 4
	F8 Square = 5
	G8 Square = 6
	H8 Square = 7
	A1 Square = 56
	B1 Square = 57
	C1 Square = 58
	D1 Square = 59
	E1 Square = 60
	F1 Square = 61
	G1 Square = 62
	H1 Square = 63
)

// squareNames maps every algebraic square name to its index. Built once at
// init and never written afterwards.
var squareNames = buildSquareNames()

func buildSquareNames() map[string]Square {
	names := make(map[string]Square, NumSquares)
	for sq := Square(0); sq < NumSquares; sq++ {
		names[sq.Name()] = sq
	}
	return names
}

// NewSquare returns the square at the given row (0 = rank 8) and file (0 = a).
func NewSquare(row, file int) Square {
	return Square(row*BoardSize + file)
}

// ParseSquare converts an algebraic name such as "e4" to a square.
func ParseSquare(name string) (Square, bool) {
	sq, ok := squareNames[name]
	return sq, ok
}

// Valid reports whether the square is on the board.
func (sq Square) Valid() bool {
	return sq >= 0 && sq < NumSquares
}

// File returns the file index, 0 for the a-file.
func (sq Square) File() int {
	return int(sq) % BoardSize
}

// Row returns the row index, 0 for rank 8.
func (sq Square) Row() int {
	return int(sq) / BoardSize
}

// Rank returns the chess rank number, 1 to 8.
func (sq Square) Rank() int {
	return BoardSize - sq.Row()
}

// Name returns the algebraic name of the square ("-" for NoSquare).
func (sq Square) Name() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('8' - sq.Row())})
}

// String implements fmt.Stringer.
func (sq Square) String() string {
	return sq.Name()
}

// Offset returns the square dRow rows and dFile files away, and false if
// that falls off the board.
func (sq Square) Offset(dRow, dFile int) (Square, bool) {
	row := sq.Row() + dRow
	file := sq.File() + dFile
	if row < 0 || row >= BoardSize || file < 0 || file >= BoardSize {
		return NoSquare, false
	}
	return NewSquare(row, file), true
}

// IsLight reports whether the square is a light square.
func (sq Square) IsLight() bool {
	return (sq.Row()+sq.File())%2 == 0
}

// IsAdjacent reports whether two distinct squares touch, including diagonally.
func (sq Square) IsAdjacent(other Square) bool {
	if sq == other || !sq.Valid() || !other.Valid() {
		return false
	}
	dr := sq.Row() - other.Row()
	df := sq.File() - other.File()
	return dr >= -1 && dr <= 1 && df >= -1 && df <= 1
}
