// Package output renders move results, scenario reports and boards as text
// or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/script"
)

// DefaultLineLength is the wrap width of move lists.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// MoveText numbers the notation strings of a ledger, e.g.
// ["e4 e5", "Nf3"] from move 1 becomes "1. e4 e5 2. Nf3". A leading
// Black move is written "1... e5".
func MoveText(notation []string, firstMove uint) []string {
	tokens := make([]string, 0, len(notation)*3)
	for i, pair := range notation {
		number := firstMove + uint(i)
		if rest, ok := strings.CutPrefix(pair, "... "); ok {
			tokens = append(tokens, fmt.Sprintf("%d...", number))
			pair = rest
		} else {
			tokens = append(tokens, fmt.Sprintf("%d.", number))
		}
		tokens = append(tokens, strings.Fields(pair)...)
	}
	return tokens
}

// OutputMoveText writes the numbered move list, wrapped at maxLineLength.
func OutputMoveText(w io.Writer, notation []string, firstMove uint, maxLineLength int) {
	if len(notation) == 0 {
		return
	}
	ow := NewOutputWriter(w, maxLineLength)
	for _, tok := range MoveText(notation, firstMove) {
		ow.Write(tok)
	}
	ow.NewLine()
}

// OutputMoveResult writes the feedback of one move, one line each.
func OutputMoveResult(w io.Writer, res game.MoveResult) {
	for _, line := range res.Feedback {
		fmt.Fprintln(w, line)
	}
}

// OutputBoard draws the position as an ASCII diagram with White at the
// bottom. Empty squares are dots.
func OutputBoard(w io.Writer, pos *chess.Position, coordinates bool) {
	border := "  +-----------------+"
	if coordinates {
		fmt.Fprintln(w, border)
	}
	for row := 0; row < chess.BoardSize; row++ {
		var sb strings.Builder
		if coordinates {
			fmt.Fprintf(&sb, "%d | ", chess.BoardSize-row)
		}
		for file := 0; file < chess.BoardSize; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			piece := pos.Get(chess.NewSquare(row, file))
			if piece == chess.Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(chess.FENLetter(piece))
			}
		}
		if coordinates {
			sb.WriteString(" |")
		}
		fmt.Fprintln(w, sb.String())
	}
	if coordinates {
		fmt.Fprintln(w, border)
		fmt.Fprintln(w, "    a b c d e f g h")
	}
}

// OutputReport writes a scenario report in text form.
func OutputReport(w io.Writer, r *script.Report, cfg *config.Config) {
	fmt.Fprintf(w, "Scenario: %s\n", r.Name)
	if r.Err != nil {
		fmt.Fprintf(w, "Error: %v\n\n", r.Err)
		return
	}
	fmt.Fprintf(w, "Start: %s\n", r.StartFEN)

	if cfg.Output.ShowFeedback {
		for _, res := range r.Results {
			fmt.Fprintf(w, "%s: %s\n", res.Text, strings.Join(res.Feedback, " "))
		}
	}
	if cfg.Output.ShowNotation {
		OutputMoveText(w, r.Notation, firstMoveNumber(r.StartFEN), DefaultLineLength)
	}
	fmt.Fprintf(w, "Final: %s\n", r.FinalFEN)
	if status := statusLine(r); status != "" {
		fmt.Fprintf(w, "Status: %s\n", status)
	}
	if cfg.Output.ShowBoard {
		OutputBoard(w, &r.Final, cfg.Output.Coordinates)
	}

	if r.Passed() {
		fmt.Fprintln(w, "Result: ok")
	} else {
		fmt.Fprintln(w, "Result: FAILED")
		for _, m := range r.Mismatches {
			fmt.Fprintf(w, "  %s\n", m)
		}
	}
	fmt.Fprintln(w)
}

func statusLine(r *script.Report) string {
	var parts []string
	switch {
	case r.Checkmate && r.Winner != "":
		parts = append(parts, "checkmate, "+r.Winner+" wins")
	case r.Checkmate:
		parts = append(parts, "checkmate")
	case r.Check:
		parts = append(parts, "check")
	}
	if r.Stalemate {
		parts = append(parts, "stalemate")
	}
	if r.Draw {
		parts = append(parts, "draw")
	}
	return strings.Join(parts, ", ")
}

// firstMoveNumber returns the full move number of a FEN, or 1.
func firstMoveNumber(fen string) uint {
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return 1
	}
	return pos.MoveNumber
}
