package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// BuildMove builds a move record for the side to move from two squares and an
// optional promotion piece type (chess.Empty for none). It classifies castling,
// en passant and promotion, but does not check legality; TryApplyMove does.
func BuildMove(pos *chess.Position, from, to chess.Square, promo chess.Piece) (chess.Move, error) {
	text := from.Name() + to.Name()
	piece := pos.Get(from)
	if piece == chess.Empty {
		return chess.Move{}, errors.IllegalMove(text, "no piece on "+from.Name())
	}
	colour := chess.ExtractColour(piece)
	if colour != pos.ToMove {
		return chess.Move{}, errors.IllegalMove(text, fmt.Sprintf("it is %s's turn", pos.ToMove))
	}

	move := chess.Move{
		Colour: colour,
		Class:  chess.PieceMove,
		From:   from,
		To:     to,
		Piece:  piece,
	}
	if target := pos.Get(to); chess.IsColour(target, colour.Opposite()) {
		move.Captured = target
	}

	switch chess.ExtractPiece(piece) {
	case chess.King:
		if r, ok := castlingRouteByKingMove(colour, from, to); ok {
			move.Class = r.class
		}
	case chess.Pawn:
		move.Class = chess.PawnMove
		switch {
		case to == pos.EnPassant && to.File() != from.File() && pos.Get(to) == chess.Empty:
			move.Class = chess.EnPassantPawnMove
			move.Captured = chess.MakeColouredPiece(colour.Opposite(), chess.Pawn)
		case to.Row() == chess.PromotionRow(colour):
			move.Class = chess.PawnMoveWithPromotion
			if promo == chess.Empty {
				promo = chess.Queen
			}
			move.Promotion = chess.MakeColouredPiece(colour, promo)
		}
	}

	if promo != chess.Empty && !move.IsPromotion() {
		return chess.Move{}, errors.IllegalMove(text, "only a pawn reaching the last rank can promote")
	}
	if move.IsPromotion() {
		switch promo {
		case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
		default:
			return chess.Move{}, errors.IllegalMove(text, "cannot promote to "+promo.String())
		}
	}
	return move, nil
}

// CandidateDestinations returns every square the piece on sq may try to
// reach: its pseudo-legal moves plus castling for a king and the en passant
// target for a pawn.
func CandidateDestinations(pos *chess.Position, sq chess.Square) []chess.Square {
	dests := PseudoLegalMoves(pos, sq)
	switch chess.ExtractPiece(pos.Get(sq)) {
	case chess.King:
		dests = append(dests, CastlingMoves(pos, sq)...)
	case chess.Pawn:
		if ep := EnPassantTarget(pos, sq); ep != chess.NoSquare {
			dests = append(dests, ep)
		}
	}
	return dests
}

// TryApplyMove applies a move to a copy of the position and returns the copy.
// The move is rejected with an error wrapping errors.ErrIllegalMove when the
// mover does not own the piece, the destination is unreachable, or the move
// would leave the mover's king attacked. The input position is never changed.
func TryApplyMove(pos *chess.Position, move chess.Move) (chess.Position, error) {
	text := move.String()
	if pos.Get(move.From) != move.Piece || move.Piece == chess.Empty {
		return *pos, errors.IllegalMove(text, "piece is not on "+move.From.Name())
	}
	if move.Colour != pos.ToMove || !chess.IsColour(move.Piece, pos.ToMove) {
		return *pos, errors.IllegalMove(text, fmt.Sprintf("it is %s's turn", pos.ToMove))
	}
	if !containsSquare(CandidateDestinations(pos, move.From), move.To) {
		return *pos, errors.IllegalMove(text, move.To.Name()+" is not reachable")
	}

	next := pos.Copy()
	applyMove(&next, move)

	if IsInCheck(&next, move.Colour) {
		return *pos, errors.IllegalMove(text, "king would be left in check")
	}
	return next, nil
}

// applyMove performs the board mutation and state updates of a move that is
// known to be pseudo-legal.
func applyMove(pos *chess.Position, move chess.Move) {
	colour := move.Colour
	pieceType := chess.ExtractPiece(move.Piece)

	pos.Set(move.From, chess.Empty)
	if move.IsEnPassant() {
		pos.Set(move.CapturedSquare(), chess.Empty)
	}
	pos.Set(move.To, move.PlacedPiece())

	if move.IsCastle() {
		r := castlingRouteFor(colour, move.Class == chess.KingsideCastle)
		pos.Set(r.rookTo, pos.Get(r.rookFrom))
		pos.Set(r.rookFrom, chess.Empty)
	}

	switch pieceType {
	case chess.King:
		pos.SetKingSquare(colour, move.To)
		pos.Castling.RevokeAll(colour)
	case chess.Rook:
		updateCastlingRightsForRook(pos, colour, move.From)
	}
	if chess.ExtractPiece(move.Captured) == chess.Rook {
		updateCastlingRightsForRook(pos, colour.Opposite(), move.To)
	}

	if pieceType == chess.Pawn || move.IsCapture() {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}
	if colour == chess.Black {
		pos.MoveNumber++
	}

	// Set en passant square if double pawn push
	pos.EnPassant = chess.NoSquare
	if pieceType == chess.Pawn && abs(move.To.Row()-move.From.Row()) == 2 {
		pos.EnPassant, _ = move.From.Offset(chess.PawnDirection(colour), 0)
	}

	pos.ToMove = colour.Opposite()
}

// UndoMove reverses a move applied to pos. The board squares are rewritten
// from the move record and every other field is restored from prior.
func UndoMove(pos *chess.Position, move chess.Move, prior chess.PositionState) {
	pos.Set(move.To, chess.Empty)
	if move.IsCapture() {
		pos.Set(move.CapturedSquare(), move.Captured)
	}
	pos.Set(move.From, move.Piece)

	if move.IsCastle() {
		r := castlingRouteFor(move.Colour, move.Class == chess.KingsideCastle)
		pos.Set(r.rookFrom, pos.Get(r.rookTo))
		pos.Set(r.rookTo, chess.Empty)
	}

	pos.RestoreState(prior)
}

func containsSquare(squares []chess.Square, sq chess.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
