package game

import (
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Locked serializes access to a Game shared between goroutines.
type Locked struct {
	mu   sync.Mutex
	game *Game
}

// NewLocked wraps g. The caller must not use g directly afterwards.
func NewLocked(g *Game) *Locked {
	return &Locked{game: g}
}

// Move plays a move; see Game.Move.
func (l *Locked) Move(text string) MoveResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.game.Move(text)
}

// Undo takes back the last move; see Game.Undo.
func (l *Locked) Undo() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.game.Undo()
}

// FEN returns the current position as FEN.
func (l *Locked) FEN() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.game.FEN()
}

// Turn returns the side to move.
func (l *Locked) Turn() chess.Colour {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.game.Turn()
}

// Snapshot returns an independent copy of the wrapped game.
func (l *Locked) Snapshot() *Game {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.game.Clone()
}

// Do runs fn with exclusive access to the game.
func (l *Locked) Do(fn func(g *Game)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.game)
}
