package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/script"
)

// JSONReport represents a scenario report in JSON format.
type JSONReport struct {
	Name       string     `json:"name"`
	Source     string     `json:"source,omitempty"`
	StartFEN   string     `json:"startFEN"`
	FinalFEN   string     `json:"finalFEN,omitempty"`
	Moves      []JSONMove `json:"moves,omitempty"`
	MoveText   string     `json:"moveText,omitempty"`
	Check      bool       `json:"check"`
	Checkmate  bool       `json:"checkmate"`
	Stalemate  bool       `json:"stalemate"`
	Draw       bool       `json:"draw"`
	Winner     string     `json:"winner,omitempty"`
	Passed     bool       `json:"passed"`
	Mismatches []string   `json:"mismatches,omitempty"`
	Error      string     `json:"error,omitempty"`
}

// JSONMove represents one attempted move in JSON format.
type JSONMove struct {
	Ply       int      `json:"ply"`
	Color     string   `json:"color"` // "white" or "black"
	Move      string   `json:"move"`
	SAN       string   `json:"san,omitempty"`
	Valid     bool     `json:"valid"`
	Capture   bool     `json:"capture,omitempty"`
	Check     bool     `json:"check,omitempty"`
	Checkmate bool     `json:"checkmate,omitempty"`
	Stalemate bool     `json:"stalemate,omitempty"`
	Draw      bool     `json:"draw,omitempty"`
	Winner    string   `json:"winner,omitempty"`
	Loser     string   `json:"loser,omitempty"`
	Feedback  []string `json:"feedback"`
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Reports []*JSONReport `json:"reports"`
	Passed  int           `json:"passed"`
	Failed  int           `json:"failed"`
}

// ReportToJSON converts a scenario report to JSON format.
func ReportToJSON(r *script.Report, source string) *JSONReport {
	jr := &JSONReport{
		Name:       r.Name,
		Source:     source,
		StartFEN:   r.StartFEN,
		Passed:     r.Passed(),
		Mismatches: r.Mismatches,
	}
	if r.Err != nil {
		jr.Error = r.Err.Error()
		return jr
	}

	jr.FinalFEN = r.FinalFEN
	jr.Check = r.Check
	jr.Checkmate = r.Checkmate
	jr.Stalemate = r.Stalemate
	jr.Draw = r.Draw
	jr.Winner = r.Winner

	start, err := engine.ParseFEN(r.StartFEN)
	if err != nil {
		return jr
	}
	jr.Moves = convertResults(r.Results, start.ToMove)
	jr.MoveText = strings.Join(MoveText(r.Notation, start.MoveNumber), " ")
	return jr
}

// convertResults numbers the attempted moves. Rejected moves keep the ply
// and colour of the move they failed to replace.
func convertResults(results []game.MoveResult, toMove chess.Colour) []JSONMove {
	moves := make([]JSONMove, 0, len(results))
	ply := 1
	for _, res := range results {
		moves = append(moves, MoveResultToJSON(res, ply, toMove))
		if res.Valid {
			ply++
			toMove = toMove.Opposite()
		}
	}
	return moves
}

// MoveResultToJSON converts a single move result to JSON format.
func MoveResultToJSON(res game.MoveResult, ply int, mover chess.Colour) JSONMove {
	jm := JSONMove{
		Ply:       ply,
		Color:     colorName(mover),
		Move:      res.Text,
		SAN:       res.Notation,
		Valid:     res.Valid,
		Capture:   res.Capture,
		Check:     res.OpponentInCheck,
		Checkmate: res.OpponentInCheckmate,
		Stalemate: res.Stalemate,
		Draw:      res.Draw,
		Feedback:  res.Feedback,
	}
	if res.Winner != nil {
		jm.Winner = colorName(*res.Winner)
	}
	if res.Loser != nil {
		jm.Loser = colorName(*res.Loser)
	}
	return jm
}

// OutputMoveResultJSON writes one move result as a single JSON line.
func OutputMoveResultJSON(w io.Writer, res game.MoveResult, ply int, mover chess.Colour) error {
	return json.NewEncoder(w).Encode(MoveResultToJSON(res, ply, mover))
}

// OutputReportsJSON writes reports as one JSON document.
func OutputReportsJSON(w io.Writer, reports []*JSONReport) error {
	out := &JSONOutput{Reports: reports}
	for _, r := range reports {
		if r.Passed {
			out.Passed++
		} else {
			out.Failed++
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}
