package engine

import (
	"regexp"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// moveTextPattern matches <from><to>[=<promo>], e.g. "e2e4" or "e7e8=q".
var moveTextPattern = regexp.MustCompile(`^([a-h][1-8])([a-h][1-8])(=([qrbnQRBN]))?$`)

// ParseMoveText splits move text into its squares and promotion piece type
// (chess.Empty when absent). Text that does not match the move format is
// rejected with errors.ErrMalformedMove before the board is consulted.
func ParseMoveText(text string) (from, to chess.Square, promo chess.Piece, err error) {
	m := moveTextPattern.FindStringSubmatch(text)
	if m == nil {
		return chess.NoSquare, chess.NoSquare, chess.Empty, &errors.MoveError{
			Err:      errors.ErrMalformedMove,
			MoveText: text,
			Reason:   "expected <from><to>[=<q|r|b|n>]",
		}
	}

	from, _ = chess.ParseSquare(m[1])
	to, _ = chess.ParseSquare(m[2])
	if m[4] != "" {
		promo = chess.PieceFromLetter(m[4][0])
	}
	return from, to, promo, nil
}

// MoveNotation renders a move in the short algebraic form used by the game
// ledger: "e4", "xd5", "e8=Q", "Nf3", "Bxc6", "O-O", "O-O-O", followed by
// "#" for checkmate or "+" for check.
func MoveNotation(move chess.Move, check, checkmate bool) string {
	var sb strings.Builder

	switch move.Class {
	case chess.KingsideCastle:
		sb.WriteString("O-O")
	case chess.QueensideCastle:
		sb.WriteString("O-O-O")
	default:
		if piece := chess.ExtractPiece(move.Piece); piece != chess.Pawn {
			sb.WriteByte(piece.Letter())
		}
		if move.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(move.To.Name())
		if move.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(chess.ExtractPiece(move.Promotion).Letter())
		}
	}

	switch {
	case checkmate:
		sb.WriteByte('#')
	case check:
		sb.WriteByte('+')
	}
	return sb.String()
}
