package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
)

const sessionHelp = `Commands:
  <move>       play a move, e.g. e2e4 or a7a8=N
  undo         take back the last move
  fen [n]      show the position, or the one n moves back
  legal        list the legal moves
  board        draw the board
  history      show the moves played
  load <fen>   start again from a position
  new          start again from the standard position
  help         show this text
  quit         leave
`

// session is an interactive game read line by line.
type session struct {
	g   *game.Game
	cfg *config.Config
	w   io.Writer

	// firstMove is the full move number the current game started at.
	firstMove uint
}

func newSession(g *game.Game, cfg *config.Config) *session {
	return &session{
		g:         g,
		cfg:       cfg,
		w:         cfg.OutputFile,
		firstMove: g.Position().MoveNumber,
	}
}

// runSession reads commands from r until quit or end of input.
func runSession(r io.Reader, g *game.Game, cfg *config.Config) error {
	s := newSession(g, cfg)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !s.exec(line) {
			return nil
		}
	}
	return scanner.Err()
}

// exec runs one command and reports whether the session goes on.
func (s *session) exec(line string) bool {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return false
	case "help", "?":
		fmt.Fprint(s.w, sessionHelp)
	case "undo":
		s.undo()
	case "fen":
		s.fen(arg)
	case "legal":
		s.legal()
	case "board":
		output.OutputBoard(s.w, s.positionPtr(), s.cfg.Output.Coordinates)
	case "history":
		if len(s.g.Notation()) == 0 {
			fmt.Fprintln(s.w, "No moves played.")
		} else {
			output.OutputMoveText(s.w, s.g.Notation(), s.firstMove, output.DefaultLineLength)
		}
	case "load":
		s.load(arg)
	case "new":
		s.g.Reset()
		s.firstMove = 1
		fmt.Fprintln(s.w, s.g.FEN())
	default:
		s.move(line)
	}
	return true
}

func (s *session) move(text string) {
	mover := s.g.Turn()
	ply := s.g.Plies() + 1

	res := s.g.Move(text)
	s.cfg.Logf(config.Commentary, "%s %s: %s", mover, text, strings.Join(res.Feedback, " "))

	if s.cfg.Output.JSONFormat {
		if err := output.OutputMoveResultJSON(s.w, res, ply, mover); err != nil {
			s.cfg.Logf(config.Summary, "Error writing move: %v", err)
		}
		return
	}
	output.OutputMoveResult(s.w, res)
	if res.Valid && s.cfg.Output.ShowBoard {
		output.OutputBoard(s.w, s.positionPtr(), s.cfg.Output.Coordinates)
	}
}

func (s *session) undo() {
	if err := s.g.Undo(); err != nil {
		fmt.Fprintln(s.w, "Nothing to undo.")
		return
	}
	fmt.Fprintln(s.w, s.g.FEN())
}

func (s *session) fen(arg string) {
	if arg == "" {
		fmt.Fprintln(s.w, s.g.FEN())
		return
	}
	steps, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintf(s.w, "Not a move count: %s\n", arg)
		return
	}
	fen, err := s.g.FENAfterUndo(steps)
	if err != nil {
		fmt.Fprintf(s.w, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(s.w, fen)
}

func (s *session) legal() {
	moves := s.g.LegalMoves()
	if len(moves) == 0 {
		fmt.Fprintln(s.w, "No legal moves.")
		return
	}
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	fmt.Fprintln(s.w, strings.Join(names, " "))
}

func (s *session) load(fen string) {
	if err := s.g.Load(fen); err != nil {
		fmt.Fprintf(s.w, "Error: %v\n", err)
		return
	}
	s.firstMove = s.g.Position().MoveNumber
	fmt.Fprintln(s.w, s.g.FEN())
}

func (s *session) positionPtr() *chess.Position {
	pos := s.g.Position()
	return &pos
}
