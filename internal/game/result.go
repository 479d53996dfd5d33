package game

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Feedback messages reported to the player.
const (
	msgInvalidFormat = "Invalid move format: "
	msgInvalidMove   = "Invalid move"
	msgCapture       = "Piece captured."
	msgSuccess       = "Move successful."
	msgCheck         = "Opponent is in check."
	msgStalemate     = "Stalemate!"
	msgDraw          = "Draw!"
)

// MoveResult is the outcome of one call to Game.Move.
type MoveResult struct {
	// Text is the move text as given.
	Text string `json:"move"`

	Valid               bool `json:"valid"`
	Capture             bool `json:"capture"`
	OpponentInCheck     bool `json:"check"`
	OpponentInCheckmate bool `json:"checkmate"`
	Stalemate           bool `json:"stalemate"`
	Draw                bool `json:"draw"`

	// Winner and Loser are set on checkmate only.
	Winner *chess.Colour `json:"-"`
	Loser  *chess.Colour `json:"-"`

	// Notation is the short algebraic form of an accepted move.
	Notation string `json:"notation,omitempty"`

	Feedback []string `json:"feedback"`

	// Err holds the rejection reason of an invalid move.
	Err error `json:"-"`
}

// WinnerName returns "White" or "Black" after a checkmate, "" otherwise.
func (r MoveResult) WinnerName() string {
	if r.Winner == nil {
		return ""
	}
	return r.Winner.String()
}

func (r *MoveResult) say(msg string) {
	r.Feedback = append(r.Feedback, msg)
}

func checkmateMessage(winner, loser chess.Colour) string {
	return fmt.Sprintf("Checkmate! %s wins, %s loses.", winner, loser)
}
