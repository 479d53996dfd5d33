// Package history records the moves of a game: one immutable entry per
// committed move, the per-move notation paired by full move, and the
// repetition tally of the positions reached.
package history

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// blackFirstPrefix stands in for White's half of a full move when the
// ledger starts with a Black move.
const blackFirstPrefix = "..."

// Entry is the record of one committed move. It is never modified after
// being recorded.
type Entry struct {
	Move chess.Move

	// State is the non-board state after the move; Prior is the state before
	// it, which undo restores.
	State chess.PositionState
	Prior chess.PositionState

	Check     bool
	Checkmate bool
	Stalemate bool
	Draw      bool

	// Notation is the move in short algebraic form, e.g. "Nf3+".
	Notation string

	// Hash is the placement hash of the resulting board.
	Hash uint64
}

// Ledger is the ordered, versioned sequence of entries of one game.
// Version is bumped on every Record and Pop.
type Ledger struct {
	entries  []Entry
	notation []string
	tally    *hashing.RepetitionTally
	version  uint64
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{tally: hashing.NewRepetitionTally()}
}

// Record appends an entry, counts its position and extends the notation.
// A Black move joins the string of the White move before it.
func (l *Ledger) Record(e Entry) {
	joinsWhite := e.Move.Colour == chess.Black &&
		len(l.entries) > 0 && l.entries[len(l.entries)-1].Move.Colour == chess.White

	switch {
	case joinsWhite:
		l.notation[len(l.notation)-1] += " " + e.Notation
	case e.Move.Colour == chess.Black:
		l.notation = append(l.notation, blackFirstPrefix+" "+e.Notation)
	default:
		l.notation = append(l.notation, e.Notation)
	}

	l.entries = append(l.entries, e)
	l.tally.Add(e.Hash)
	l.version++
}

// Pop removes and returns the most recent entry, undoing its notation and
// repetition count. It returns false if the ledger is empty.
func (l *Ledger) Pop() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	last := l.entries[len(l.entries)-1]
	l.entries = l.entries[:len(l.entries)-1]

	joinedWhite := last.Move.Colour == chess.Black &&
		len(l.entries) > 0 && l.entries[len(l.entries)-1].Move.Colour == chess.White
	i := len(l.notation) - 1
	if joinedWhite {
		l.notation[i] = strings.TrimSuffix(l.notation[i], " "+last.Notation)
	} else {
		l.notation = l.notation[:i]
	}

	l.tally.Remove(last.Hash)
	l.version++
	return last, true
}

// Len returns the number of recorded moves.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the recorded entries, oldest first.
func (l *Ledger) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// Notation returns a copy of the notation strings, one per full move,
// e.g. ["e4 e5", "Nf3"].
func (l *Ledger) Notation() []string {
	return append([]string(nil), l.notation...)
}

// Version returns a counter that changes whenever the ledger does.
func (l *Ledger) Version() uint64 {
	return l.version
}

// Repetitions returns how many recorded positions have the given hash.
func (l *Ledger) Repetitions(hash uint64) int {
	return l.tally.Count(hash)
}

// MaxRepetitions returns the highest occurrence count of any recorded position.
func (l *Ledger) MaxRepetitions() int {
	return l.tally.MaxCount()
}

// Reset empties the ledger.
func (l *Ledger) Reset() {
	l.entries = nil
	l.notation = nil
	l.tally.Reset()
	l.version++
}

// Clone returns a deep copy that shares nothing with l.
func (l *Ledger) Clone() *Ledger {
	return &Ledger{
		entries:  append([]Entry(nil), l.entries...),
		notation: append([]string(nil), l.notation...),
		tally:    l.tally.Clone(),
		version:  l.version,
	}
}
