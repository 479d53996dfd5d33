package game_test

import (
	"sync"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestLocked_Concurrent(t *testing.T) {
	l := game.NewLocked(game.New())

	const workers = 8
	const rounds = 25

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				l.Do(func(g *game.Game) {
					moves := g.LegalMoves()
					if len(moves) == 0 {
						return
					}
					g.Move(moves[(w+i)%len(moves)].String())
				})
				if _, err := engine.ParseFEN(l.FEN()); err != nil {
					t.Errorf("worker %d produced a bad FEN: %v", w, err)
					return
				}
				if i%3 == 0 {
					_ = l.Undo()
				}
			}
		}(w)
	}
	wg.Wait()

	snap := l.Snapshot()
	plies := snap.Plies()
	for i := 0; i < plies; i++ {
		testutil.AssertNoError(t, snap.Undo())
	}
	testutil.AssertFEN(t, snap, engine.InitialFEN)
}

func TestLocked_Delegates(t *testing.T) {
	l := game.NewLocked(game.New())

	res := l.Move("e2e4")
	testutil.AssertTrue(t, res.Valid)
	testutil.AssertEqual(t, l.Turn().String(), "Black")

	snap := l.Snapshot()
	testutil.AssertNoError(t, l.Undo())
	testutil.AssertEqual(t, l.FEN(), engine.InitialFEN)
	testutil.AssertEqual(t, snap.Plies(), 1, "snapshot is independent")
}
