// Package game holds a chess game session: the current position, the move
// history and the outcome queries built on top of the engine.
package game

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/history"
)

// RepetitionLimit is the number of occurrences of one position that draws
// the game.
const RepetitionLimit = 3

// Game is a single chess game. It is not safe for concurrent use; see Locked.
type Game struct {
	pos     chess.Position
	history *history.Ledger
}

// New creates a game at the standard starting position.
func New() *Game {
	return &Game{
		pos:     chess.NewInitialPosition(),
		history: history.NewLedger(),
	}
}

// NewFromFEN creates a game from a FEN string.
func NewFromFEN(fen string) (*Game, error) {
	g := New()
	if err := g.Load(fen); err != nil {
		return nil, err
	}
	return g, nil
}

// Load replaces the position with the one described by fen and clears the
// history. The game is unchanged if fen is rejected.
func (g *Game) Load(fen string) error {
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return err
	}
	g.pos = pos
	g.history.Reset()
	return nil
}

// Reset returns the game to the standard starting position.
func (g *Game) Reset() {
	g.pos = chess.NewInitialPosition()
	g.history.Reset()
}

// Move plays a move given as "<from><to>[=<promo>]", e.g. "e2e4" or
// "a7a8=N". A rejected move leaves the game untouched and is reported in
// the result, never as a panic.
func (g *Game) Move(text string) MoveResult {
	res := MoveResult{Text: text}

	from, to, promo, err := engine.ParseMoveText(text)
	if err != nil {
		res.Err = g.atPly(err)
		res.say(msgInvalidFormat + text)
		return res
	}

	move, err := engine.BuildMove(&g.pos, from, to, promo)
	var next chess.Position
	if err == nil {
		next, err = engine.TryApplyMove(&g.pos, move)
	}
	if err != nil {
		res.Err = g.atPly(err)
		res.say(msgInvalidMove)
		return res
	}

	status := engine.Evaluate(&next)
	hash := hashing.PlacementHash(&next)
	repeated := g.history.Repetitions(hash)+1 >= RepetitionLimit ||
		g.history.MaxRepetitions() >= RepetitionLimit
	draw := status.Draw() || repeated

	entry := history.Entry{
		Move:      move,
		State:     next.SaveState(),
		Prior:     g.pos.SaveState(),
		Check:     status.Check,
		Checkmate: status.Checkmate,
		Stalemate: status.Stalemate,
		Draw:      draw,
		Notation:  engine.MoveNotation(move, status.Check, status.Checkmate),
		Hash:      hash,
	}
	g.history.Record(entry)
	g.pos = next

	res.Valid = true
	res.Notation = entry.Notation
	if move.IsCapture() {
		res.Capture = true
		res.say(msgCapture)
	} else {
		res.say(msgSuccess)
	}

	switch {
	case status.Checkmate:
		winner, loser := move.Colour, move.Colour.Opposite()
		res.Winner, res.Loser = &winner, &loser
		res.OpponentInCheckmate = true
		res.say(checkmateMessage(winner, loser))
	case status.Check:
		res.OpponentInCheck = true
		res.say(msgCheck)
	}
	if status.Stalemate {
		res.Stalemate = true
		res.say(msgStalemate)
	}
	if draw {
		res.Draw = true
		res.say(msgDraw)
	}
	return res
}

// atPly stamps a move rejection with the ply the move would have been.
func (g *Game) atPly(err error) error {
	var me *errors.MoveError
	if errors.As(err, &me) {
		me.PlyNum = g.history.Len() + 1
	}
	return err
}

// Undo takes back the last move. It returns errors.ErrNoHistory when no
// move has been played.
func (g *Game) Undo() error {
	entry, ok := g.history.Pop()
	if !ok {
		return errors.ErrNoHistory
	}
	engine.UndoMove(&g.pos, entry.Move, entry.Prior)
	return nil
}

// FENAfterUndo returns the FEN the game would have after taking back steps
// moves. The game itself is not changed.
func (g *Game) FENAfterUndo(steps int) (string, error) {
	if steps < 0 {
		return "", fmt.Errorf("negative undo count %d: %w", steps, errors.ErrNoHistory)
	}
	if steps > g.history.Len() {
		return "", fmt.Errorf("cannot undo %d of %d moves: %w", steps, g.history.Len(), errors.ErrNoHistory)
	}
	c := g.Clone()
	for i := 0; i < steps; i++ {
		if err := c.Undo(); err != nil {
			return "", err
		}
	}
	return c.FEN(), nil
}

// Clone returns an independent copy of the game, history included.
func (g *Game) Clone() *Game {
	return &Game{
		pos:     g.pos.Copy(),
		history: g.history.Clone(),
	}
}

// FEN returns the current position in Forsyth-Edwards Notation.
func (g *Game) FEN() string {
	return engine.FEN(&g.pos)
}

// Position returns a copy of the current position.
func (g *Game) Position() chess.Position {
	return g.pos.Copy()
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.pos.ToMove
}

// LegalMoves returns every legal move for the side to move.
func (g *Game) LegalMoves() []chess.Move {
	return engine.LegalMoves(&g.pos)
}

// IsCheck reports whether the side to move is in check.
func (g *Game) IsCheck() bool {
	return engine.IsInCheck(&g.pos, g.pos.ToMove)
}

// IsCheckmate reports whether the side to move is checkmated.
func (g *Game) IsCheckmate() bool {
	return engine.IsCheckmate(&g.pos)
}

// IsStalemate reports whether the side to move is stalemated.
func (g *Game) IsStalemate() bool {
	return engine.IsStalemate(&g.pos)
}

// InsufficientMaterial reports whether neither side can force mate.
func (g *Game) InsufficientMaterial() bool {
	return engine.HasInsufficientMaterial(&g.pos)
}

// ThreefoldRepetition reports whether any recorded position occurred at
// least three times. Positions are compared by piece placement only.
func (g *Game) ThreefoldRepetition() bool {
	return g.history.MaxRepetitions() >= RepetitionLimit
}

// IsDraw reports the fifty-move rule, stalemate, insufficient material or
// threefold repetition.
func (g *Game) IsDraw() bool {
	return engine.IsFiftyMoveDraw(&g.pos) ||
		engine.IsStalemate(&g.pos) ||
		engine.HasInsufficientMaterial(&g.pos) ||
		g.ThreefoldRepetition()
}

// History returns the recorded moves, oldest first.
func (g *Game) History() []history.Entry {
	return g.history.Entries()
}

// Notation returns the move list, one string per full move.
func (g *Game) Notation() []string {
	return g.history.Notation()
}

// Plies returns the number of moves played.
func (g *Game) Plies() int {
	return g.history.Len()
}

// Version changes every time a move is played or taken back.
func (g *Game) Version() uint64 {
	return g.history.Version()
}
