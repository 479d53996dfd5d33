package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// promotionPieces are the piece types a pawn may promote to, strongest first.
var promotionPieces = []chess.Piece{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// LegalMoves returns every legal move of the side to move. Promotions are
// expanded to one move per promotion piece.
func LegalMoves(pos *chess.Position) []chess.Move {
	var moves []chess.Move
	forEachLegalMove(pos, func(m chess.Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// LegalMovesFrom returns the legal moves of the piece on sq.
func LegalMovesFrom(pos *chess.Position, sq chess.Square) []chess.Move {
	var moves []chess.Move
	legalMovesFrom(pos, sq, func(m chess.Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(pos *chess.Position) bool {
	found := false
	forEachLegalMove(pos, func(chess.Move) bool {
		found = true
		return false
	})
	return found
}

// forEachLegalMove calls yield for each legal move until yield returns false.
func forEachLegalMove(pos *chess.Position, yield func(chess.Move) bool) {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if !chess.IsColour(pos.Get(sq), pos.ToMove) {
			continue
		}
		if !legalMovesFrom(pos, sq, yield) {
			return
		}
	}
}

// legalMovesFrom yields the legal moves of one piece. It returns false once
// yield has asked to stop.
func legalMovesFrom(pos *chess.Position, from chess.Square, yield func(chess.Move) bool) bool {
	piece := pos.Get(from)
	if !chess.IsColour(piece, pos.ToMove) {
		return true
	}

	for _, to := range CandidateDestinations(pos, from) {
		promos := []chess.Piece{chess.Empty}
		if chess.ExtractPiece(piece) == chess.Pawn && to.Row() == chess.PromotionRow(pos.ToMove) {
			promos = promotionPieces
		}
		for _, promo := range promos {
			move, err := BuildMove(pos, from, to, promo)
			if err != nil {
				continue
			}
			if _, err := TryApplyMove(pos, move); err != nil {
				continue
			}
			if !yield(move) {
				return false
			}
		}
	}
	return true
}
