package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// FiftyMoveLimit is the halfmove clock value at which the game is drawn.
const FiftyMoveLimit = 100

// IsFiftyMoveDraw returns true once 50 full moves have passed without a pawn
// move or capture.
func IsFiftyMoveDraw(pos *chess.Position) bool {
	return pos.HalfmoveClock >= FiftyMoveLimit
}

// HasInsufficientMaterial returns true if the position matches one of the
// recognised dead material patterns:
// - K vs K
// - K+B vs K or K+N vs K (either side)
// - K+B vs K+B with both bishops on the same colour squares
//
// Positions with more than four pieces are never reported, so this is an
// approximation rather than a full dead-position test.
func HasInsufficientMaterial(pos *chess.Position) bool {
	if pos.PieceCount() > 4 {
		return false
	}

	var whitePieces, blackPieces []chess.Piece
	var whiteBishopOnLight, blackBishopOnLight bool

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := pos.Get(sq)
		if piece == chess.Empty {
			continue
		}

		colour := chess.ExtractColour(piece)
		pieceType := chess.ExtractPiece(piece)

		// Kings don't count for material
		if pieceType == chess.King {
			continue
		}

		if colour == chess.White {
			whitePieces = append(whitePieces, pieceType)
			if pieceType == chess.Bishop {
				whiteBishopOnLight = sq.IsLight()
			}
		} else {
			blackPieces = append(blackPieces, pieceType)
			if pieceType == chess.Bishop {
				blackBishopOnLight = sq.IsLight()
			}
		}
	}

	switch {
	case len(whitePieces) == 0 && len(blackPieces) == 0:
		return true
	case len(whitePieces) == 0 && len(blackPieces) == 1:
		return blackPieces[0].IsMinor()
	case len(blackPieces) == 0 && len(whitePieces) == 1:
		return whitePieces[0].IsMinor()
	case len(whitePieces) == 1 && len(blackPieces) == 1:
		return whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop &&
			whiteBishopOnLight == blackBishopOnLight
	}
	return false
}
