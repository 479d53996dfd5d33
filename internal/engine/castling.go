package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castlingRoute holds the fixed squares of one castling move.
type castlingRoute struct {
	colour   chess.Colour
	kingside bool
	class    chess.MoveClass

	kingFrom, kingTo chess.Square
	rookFrom, rookTo chess.Square

	// Squares strictly between king and rook, all of which must be empty.
	between []chess.Square
	// Squares the king stands on or crosses, none of which may be attacked.
	kingPath []chess.Square
}

var castlingRoutes = []castlingRoute{
	{
		colour: chess.White, kingside: true, class: chess.KingsideCastle,
		kingFrom: chess.E1, kingTo: chess.G1, rookFrom: chess.H1, rookTo: chess.F1,
		between:  []chess.Square{chess.F1, chess.G1},
		kingPath: []chess.Square{chess.E1, chess.F1, chess.G1},
	},
	{
		colour: chess.White, kingside: false, class: chess.QueensideCastle,
		kingFrom: chess.E1, kingTo: chess.C1, rookFrom: chess.A1, rookTo: chess.D1,
		between:  []chess.Square{chess.B1, chess.C1, chess.D1},
		kingPath: []chess.Square{chess.E1, chess.D1, chess.C1},
	},
	{
		colour: chess.Black, kingside: true, class: chess.KingsideCastle,
		kingFrom: chess.E8, kingTo: chess.G8, rookFrom: chess.H8, rookTo: chess.F8,
		between:  []chess.Square{chess.F8, chess.G8},
		kingPath: []chess.Square{chess.E8, chess.F8, chess.G8},
	},
	{
		colour: chess.Black, kingside: false, class: chess.QueensideCastle,
		kingFrom: chess.E8, kingTo: chess.C8, rookFrom: chess.A8, rookTo: chess.D8,
		between:  []chess.Square{chess.B8, chess.C8, chess.D8},
		kingPath: []chess.Square{chess.E8, chess.D8, chess.C8},
	},
}

// castlingRouteFor returns the route of one colour and side.
func castlingRouteFor(colour chess.Colour, kingside bool) castlingRoute {
	for _, r := range castlingRoutes {
		if r.colour == colour && r.kingside == kingside {
			return r
		}
	}
	panic("unreachable: every colour has two castling routes")
}

// castlingRouteByKingMove returns the route whose king moves from -> to.
func castlingRouteByKingMove(colour chess.Colour, from, to chess.Square) (castlingRoute, bool) {
	for _, r := range castlingRoutes {
		if r.colour == colour && r.kingFrom == from && r.kingTo == to {
			return r, true
		}
	}
	return castlingRoute{}, false
}

// CastlingMoves returns the castling destinations of the king on kingSq:
// zero, one or two squares.
func CastlingMoves(pos *chess.Position, kingSq chess.Square) []chess.Square {
	piece := pos.Get(kingSq)
	if chess.ExtractPiece(piece) != chess.King {
		return nil
	}
	colour := chess.ExtractColour(piece)

	var moves []chess.Square
	for _, r := range castlingRoutes {
		if r.colour == colour && canCastle(pos, r) {
			moves = append(moves, r.kingTo)
		}
	}
	return moves
}

// canCastle checks every precondition of one castling route.
func canCastle(pos *chess.Position, r castlingRoute) bool {
	if !pos.Castling.Has(r.colour, r.kingside) {
		return false
	}
	if pos.Get(r.kingFrom) != chess.MakeColouredPiece(r.colour, chess.King) ||
		pos.Get(r.rookFrom) != chess.MakeColouredPiece(r.colour, chess.Rook) {
		return false
	}
	for _, sq := range r.between {
		if pos.Get(sq) != chess.Empty {
			return false
		}
	}

	opponent := r.colour.Opposite()
	enemyKing := pos.KingSquare(opponent)
	for _, sq := range r.kingPath {
		if IsAttacked(pos, sq, opponent) || sq.IsAdjacent(enemyKing) {
			return false
		}
	}
	return true
}

// updateCastlingRightsForRook removes the castling right tied to a rook's
// home square when a rook leaves it or is captured there.
func updateCastlingRightsForRook(pos *chess.Position, colour chess.Colour, sq chess.Square) {
	for _, r := range castlingRoutes {
		if r.colour == colour && r.rookFrom == sq {
			pos.Castling.Revoke(colour, r.kingside)
		}
	}
}
