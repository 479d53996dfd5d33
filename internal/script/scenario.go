// Package script reads scenario files: a start position, a list of moves
// and the outcome the moves are expected to reach.
package script

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Scenario is one game to replay.
type Scenario struct {
	Name string `yaml:"name"`

	// FEN is the start position; empty means the standard starting position.
	FEN string `yaml:"fen,omitempty"`

	Moves  []string `yaml:"moves,flow"`
	Expect *Expect  `yaml:"expect,omitempty"`
}

// Expect lists the outcome a scenario must reach. Unset fields are not
// checked.
type Expect struct {
	FEN       string `yaml:"fen,omitempty"`
	Check     *bool  `yaml:"check,omitempty"`
	Checkmate *bool  `yaml:"checkmate,omitempty"`
	Stalemate *bool  `yaml:"stalemate,omitempty"`
	Draw      *bool  `yaml:"draw,omitempty"`

	// Winner is "white" or "black".
	Winner string `yaml:"winner,omitempty"`

	// Invalid holds the 0-based indexes of moves that must be rejected.
	Invalid []int `yaml:"invalid,flow,omitempty"`

	Notation []string `yaml:"notation,omitempty"`
}

// StartFEN returns the position the scenario starts from.
func (s *Scenario) StartFEN() string {
	if s.FEN == "" {
		return engine.InitialFEN
	}
	return s.FEN
}

// Parse decodes a YAML list of scenarios. Scenarios without a name are
// named after their position in the list.
func Parse(data []byte) ([]Scenario, error) {
	var scenarios []Scenario
	if err := yaml.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidScript)
	}

	for i := range scenarios {
		s := &scenarios[i]
		if s.Name == "" {
			s.Name = fmt.Sprintf("scenario %d", i+1)
		}
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name, err)
		}
	}
	return scenarios, nil
}

// LoadFile reads and parses a scenario file.
func LoadFile(filename string) ([]Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	scenarios, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", filename, err)
	}
	return scenarios, nil
}

// Write encodes scenarios as YAML.
func Write(w io.Writer, scenarios []Scenario) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(scenarios); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func (s *Scenario) validate() error {
	if s.FEN != "" {
		if _, err := engine.ParseFEN(s.FEN); err != nil {
			return fmt.Errorf("fen: %v: %w", err, errors.ErrInvalidScript)
		}
	}
	if s.Expect == nil {
		return nil
	}

	switch strings.ToLower(s.Expect.Winner) {
	case "", "white", "black":
	default:
		return fmt.Errorf("winner %q must be white or black: %w", s.Expect.Winner, errors.ErrInvalidScript)
	}
	if s.Expect.FEN != "" {
		if _, err := engine.ParseFEN(s.Expect.FEN); err != nil {
			return fmt.Errorf("expected fen: %v: %w", err, errors.ErrInvalidScript)
		}
	}
	for _, idx := range s.Expect.Invalid {
		if idx < 0 || idx >= len(s.Moves) {
			return fmt.Errorf("invalid move index %d outside 0..%d: %w", idx, len(s.Moves)-1, errors.ErrInvalidScript)
		}
	}
	return nil
}
