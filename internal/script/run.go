package script

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// Report is the outcome of replaying one scenario.
type Report struct {
	Name     string            `json:"name"`
	StartFEN string            `json:"start_fen"`
	Results  []game.MoveResult `json:"moves"`
	FinalFEN string            `json:"final_fen"`
	Notation []string          `json:"notation"`
	Final    chess.Position    `json:"-"`

	Check     bool   `json:"check"`
	Checkmate bool   `json:"checkmate"`
	Stalemate bool   `json:"stalemate"`
	Draw      bool   `json:"draw"`
	Winner    string `json:"winner,omitempty"`

	// Rejected holds the indexes of the moves the game did not accept.
	Rejected []int `json:"rejected,omitempty"`

	// Mismatches describes every way the replay differs from the
	// scenario's expectations.
	Mismatches []string `json:"mismatches,omitempty"`

	// Err is set when the scenario could not be replayed at all.
	Err   error  `json:"-"`
	Error string `json:"error,omitempty"`
}

// Passed reports whether the replay met every expectation.
func (r *Report) Passed() bool {
	return r.Err == nil && len(r.Mismatches) == 0
}

// Options control a replay.
type Options struct {
	// StopOnInvalid ends the replay at the first rejected move.
	StopOnInvalid bool
}

// Run replays a scenario with default options.
func Run(s Scenario) *Report {
	return Options{}.Run(s)
}

// Run replays the moves of a scenario on a fresh game and checks the
// outcome against the scenario's expectations.
func (o Options) Run(s Scenario) *Report {
	r := &Report{Name: s.Name, StartFEN: s.StartFEN()}

	g, err := game.NewFromFEN(r.StartFEN)
	if err != nil {
		r.Err = err
		r.Error = err.Error()
		return r
	}

	for i, text := range s.Moves {
		res := g.Move(text)
		r.Results = append(r.Results, res)
		if res.Valid {
			if res.Winner != nil {
				r.Winner = strings.ToLower(res.Winner.String())
			}
			continue
		}
		r.Rejected = append(r.Rejected, i)
		if o.StopOnInvalid {
			break
		}
	}

	r.FinalFEN = g.FEN()
	r.Final = g.Position()
	r.Notation = g.Notation()
	r.Check = g.IsCheck()
	r.Checkmate = g.IsCheckmate()
	r.Stalemate = g.IsStalemate()
	r.Draw = g.IsDraw()

	r.compare(s)
	return r
}

func (r *Report) compare(s Scenario) {
	var want []int
	if s.Expect != nil {
		want = s.Expect.Invalid
	}
	if !sameIndexes(want, r.Rejected) {
		r.mismatch("rejected moves %v, want %v", r.Rejected, want)
	}

	e := s.Expect
	if e == nil {
		return
	}
	if e.FEN != "" && e.FEN != r.FinalFEN {
		r.mismatch("final fen %q, want %q", r.FinalFEN, e.FEN)
	}
	r.compareFlag("check", e.Check, r.Check)
	r.compareFlag("checkmate", e.Checkmate, r.Checkmate)
	r.compareFlag("stalemate", e.Stalemate, r.Stalemate)
	r.compareFlag("draw", e.Draw, r.Draw)
	if e.Winner != "" && !strings.EqualFold(e.Winner, r.Winner) {
		r.mismatch("winner %q, want %q", r.Winner, strings.ToLower(e.Winner))
	}
	if e.Notation != nil {
		if diff := cmp.Diff(e.Notation, r.Notation); diff != "" {
			r.mismatch("notation (-want +got):\n%s", diff)
		}
	}
}

func (r *Report) compareFlag(name string, want *bool, got bool) {
	if want != nil && *want != got {
		r.mismatch("%s = %v, want %v", name, got, *want)
	}
}

func (r *Report) mismatch(format string, args ...interface{}) {
	r.Mismatches = append(r.Mismatches, fmt.Sprintf(format, args...))
}

func sameIndexes(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[int]int, len(a))
	for _, i := range a {
		seen[i]++
	}
	for _, i := range b {
		if seen[i] == 0 {
			return false
		}
		seen[i]--
	}
	return true
}

// Record builds a scenario whose expectations are the outcome of report,
// so that replaying it again passes.
func Record(s Scenario, report *Report) Scenario {
	check, mate, stale, draw := report.Check, report.Checkmate, report.Stalemate, report.Draw
	out := Scenario{
		Name:  s.Name,
		FEN:   s.FEN,
		Moves: append([]string(nil), s.Moves...),
		Expect: &Expect{
			FEN:       report.FinalFEN,
			Check:     &check,
			Checkmate: &mate,
			Stalemate: &stale,
			Draw:      &draw,
			Winner:    report.Winner,
			Invalid:   append([]int(nil), report.Rejected...),
			Notation:  append([]string(nil), report.Notation...),
		},
	}
	if len(out.Expect.Invalid) == 0 {
		out.Expect.Invalid = nil
	}
	return out
}
