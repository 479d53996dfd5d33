// Package hashing provides position hashing and repetition counting.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// zobristSeed fixes the random table so hashes are stable between runs.
const zobristSeed = 0x5eed_c4e5

// pieceSlots covers every coloured piece encoding.
const pieceSlots = int(chess.NumPieceValues) << chess.PieceShift

// zobristPieces holds one random key per (coloured piece, square) pair.
var zobristPieces = buildZobristTable()

func buildZobristTable() [pieceSlots][chess.NumSquares]uint64 {
	var table [pieceSlots][chess.NumSquares]uint64
	rng := rand.New(rand.NewSource(zobristSeed))
	for piece := range table {
		for sq := range table[piece] {
			table[piece][sq] = rng.Uint64()
		}
	}
	return table
}

// PlacementHash returns the Zobrist hash of the piece placement only. Side
// to move, castling rights, en passant target and clocks do not contribute,
// so positions that differ only in those fields hash the same.
func PlacementHash(pos *chess.Position) uint64 {
	var hash uint64
	for sq, piece := range pos.Squares {
		if piece != chess.Empty {
			hash ^= zobristPieces[piece][sq]
		}
	}
	return hash
}

// RepetitionTally counts how often each position hash has been recorded.
// Entries are removed when their count drops to zero.
type RepetitionTally struct {
	counts map[uint64]int
}

// NewRepetitionTally creates an empty tally.
func NewRepetitionTally() *RepetitionTally {
	return &RepetitionTally{counts: make(map[uint64]int)}
}

// Add records one more occurrence of hash and returns the new count.
func (t *RepetitionTally) Add(hash uint64) int {
	t.counts[hash]++
	return t.counts[hash]
}

// Remove takes back one occurrence of hash.
func (t *RepetitionTally) Remove(hash uint64) {
	n, ok := t.counts[hash]
	if !ok {
		return
	}
	if n <= 1 {
		delete(t.counts, hash)
		return
	}
	t.counts[hash] = n - 1
}

// Count returns how many times hash has been recorded.
func (t *RepetitionTally) Count(hash uint64) int {
	return t.counts[hash]
}

// MaxCount returns the highest count of any hash, 0 when empty.
func (t *RepetitionTally) MaxCount() int {
	max := 0
	for _, n := range t.counts {
		if n > max {
			max = n
		}
	}
	return max
}

// Len returns the number of distinct hashes.
func (t *RepetitionTally) Len() int {
	return len(t.counts)
}

// Reset clears the tally.
func (t *RepetitionTally) Reset() {
	t.counts = make(map[uint64]int)
}

// Clone returns an independent copy of the tally.
func (t *RepetitionTally) Clone() *RepetitionTally {
	c := &RepetitionTally{counts: make(map[uint64]int, len(t.counts))}
	for h, n := range t.counts {
		c.counts[h] = n
	}
	return c
}
