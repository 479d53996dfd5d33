// Package engine implements the chess rules: FEN parsing and rendering, move
// generation, legality filtering, move application and outcome detection.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Field names used in FEN error messages.
const (
	fieldPlacement = "piece placement"
	fieldSide      = "side to move"
	fieldCastling  = "castling rights"
	fieldEnPassant = "en passant target"
	fieldHalfmove  = "halfmove clock"
	fieldFullmove  = "fullmove number"
)

var (
	castlingPattern  = regexp.MustCompile(`^(K?Q?k?q?|-)$`)
	enPassantPattern = regexp.MustCompile(`^(-|[a-h][36])$`)
	halfmovePattern  = regexp.MustCompile(`^[0-9]+$`)
	fullmovePattern  = regexp.MustCompile(`^[1-9][0-9]*$`)
)

// ParseFEN validates a FEN string and returns the position it describes.
// Malformed text is reported with errors.ErrInvalidFEN; text that parses but
// breaks a structural rule (row layout, kings, castling pieces) with
// errors.ErrInvalidPosition.
func ParseFEN(fen string) (chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return chess.Position{}, errors.InvalidFEN("", "",
			fmt.Sprintf("must contain exactly 6 fields, found %d", len(parts)))
	}

	pos := chess.NewPosition()

	if err := parsePiecePlacement(&pos, parts[0]); err != nil {
		return chess.Position{}, err
	}
	if err := parseSideToMove(&pos, parts[1]); err != nil {
		return chess.Position{}, err
	}
	if err := parseCastlingRights(&pos, parts[2]); err != nil {
		return chess.Position{}, err
	}
	if err := parseEnPassant(&pos, parts[3]); err != nil {
		return chess.Position{}, err
	}
	if err := parseClocks(&pos, parts[4], parts[5]); err != nil {
		return chess.Position{}, err
	}

	return pos, nil
}

// MustParseFEN is like ParseFEN but panics on error. Intended for constants
// and tests.
func MustParseFEN(fen string) chess.Position {
	pos, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePiecePlacement parses the board field and checks the king count.
func parsePiecePlacement(pos *chess.Position, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != chess.BoardSize {
		return errors.InvalidPosition(fieldPlacement, placement,
			fmt.Sprintf("must contain exactly 8 rows, found %d", len(rows)))
	}

	whiteKings, blackKings := 0, 0
	for row, text := range rows {
		file := 0
		for i := 0; i < len(text); i++ {
			c := text[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			piece := chess.PieceFromLetter(c)
			if piece == chess.Empty {
				return errors.InvalidFEN(fieldPlacement, string(c), "unknown piece character")
			}
			if file >= chess.BoardSize {
				return errors.InvalidPosition(fieldPlacement, text, "row does not have exactly 8 squares")
			}

			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			sq := chess.NewSquare(row, file)
			pos.Set(sq, chess.MakeColouredPiece(colour, piece))

			if piece == chess.King {
				if colour == chess.White {
					whiteKings++
				} else {
					blackKings++
				}
				pos.SetKingSquare(colour, sq)
			}
			file++
		}
		if file != chess.BoardSize {
			return errors.InvalidPosition(fieldPlacement, text, "row does not have exactly 8 squares")
		}
	}

	if whiteKings != 1 {
		return errors.InvalidPosition(fieldPlacement, "",
			fmt.Sprintf("must contain exactly one white king, found %d", whiteKings))
	}
	if blackKings != 1 {
		return errors.InvalidPosition(fieldPlacement, "",
			fmt.Sprintf("must contain exactly one black king, found %d", blackKings))
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, side string) error {
	switch side {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return errors.InvalidFEN(fieldSide, side, "must be 'w' or 'b'")
	}
	return nil
}

// parseCastlingRights parses the castling field. A right is only accepted
// when the king and the matching rook still stand on their home squares.
func parseCastlingRights(pos *chess.Position, field string) error {
	if !castlingPattern.MatchString(field) {
		return errors.InvalidFEN(fieldCastling, field, "must be a subset of 'KQkq' in that order, or '-'")
	}

	for i := 0; i < len(field) && field != "-"; i++ {
		c := field[i]
		colour := chess.White
		if c == 'k' || c == 'q' {
			colour = chess.Black
		}
		kingside := c == 'K' || c == 'k'

		route := castlingRouteFor(colour, kingside)
		if pos.Get(route.kingFrom) != chess.MakeColouredPiece(colour, chess.King) {
			return errors.InvalidPosition(fieldCastling, field,
				fmt.Sprintf("%s king is not on %s", strings.ToLower(colour.String()), route.kingFrom))
		}
		if pos.Get(route.rookFrom) != chess.MakeColouredPiece(colour, chess.Rook) {
			return errors.InvalidPosition(fieldCastling, field,
				fmt.Sprintf("%s rook is not on %s", strings.ToLower(colour.String()), route.rookFrom))
		}
		pos.Castling.Set(colour, kingside)
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, field string) error {
	if !enPassantPattern.MatchString(field) {
		return errors.InvalidFEN(fieldEnPassant, field, "must be '-' or a square on rank 3 or 6")
	}
	pos.EnPassant = chess.NoSquare
	if field != "-" {
		pos.EnPassant, _ = chess.ParseSquare(field)
	}
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, halfmove, fullmove string) error {
	if !halfmovePattern.MatchString(halfmove) {
		return errors.InvalidFEN(fieldHalfmove, halfmove, "must be a non-negative integer")
	}
	hm, err := strconv.ParseUint(halfmove, 10, 32)
	if err != nil {
		return errors.InvalidFEN(fieldHalfmove, halfmove, "out of range")
	}

	if !fullmovePattern.MatchString(fullmove) {
		return errors.InvalidFEN(fieldFullmove, fullmove, "must be a positive integer")
	}
	fm, err := strconv.ParseUint(fullmove, 10, 32)
	if err != nil {
		return errors.InvalidFEN(fieldFullmove, fullmove, "out of range")
	}

	pos.HalfmoveClock = uint(hm)
	pos.MoveNumber = uint(fm)
	return nil
}

// FEN converts a position to a FEN string.
func FEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePlacement(&sb, pos)
	sb.WriteByte(' ')
	sb.WriteByte(pos.ToMove.Symbol())
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.Name())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.MoveNumber)

	return sb.String()
}

// PlacementFEN returns only the piece placement field of the position.
func PlacementFEN(pos *chess.Position) string {
	var sb strings.Builder
	writePiecePlacement(&sb, pos)
	return sb.String()
}

// writePiecePlacement writes the piece placement to the builder.
func writePiecePlacement(sb *strings.Builder, pos *chess.Position) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.Get(chess.NewSquare(row, file))
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(chess.FENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}
