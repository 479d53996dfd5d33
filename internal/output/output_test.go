package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
)

func TestMoveText(t *testing.T) {
	tests := []struct {
		name      string
		notation  []string
		firstMove uint
		want      string
	}{
		{"white first", []string{"e4 e5", "Nf3"}, 1, "1. e4 e5 2. Nf3"},
		{"black first", []string{"... e5", "Nf3 Nc6"}, 7, "7... e5 8. Nf3 Nc6"},
		{"empty", nil, 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Join(MoveText(tt.notation, tt.firstMove), " ")
			if got != tt.want {
				t.Errorf("MoveText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOutputMoveText_Wraps(t *testing.T) {
	var notation []string
	for i := 0; i < 12; i++ {
		notation = append(notation, "Nf3 Nf6", "Ng1 Ng8")
	}

	var buf bytes.Buffer
	OutputMoveText(&buf, notation, 1, 40)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected wrapped output, got %q", buf.String())
	}
	for _, line := range lines {
		if len(line) > 40 {
			t.Errorf("line %q longer than 40", line)
		}
	}
	if !strings.HasPrefix(lines[0], "1. Nf3 Nf6 2. Ng1 Ng8") {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestOutputBoard(t *testing.T) {
	pos := engine.MustParseFEN(engine.InitialFEN)

	var buf bytes.Buffer
	OutputBoard(&buf, &pos, true)
	want := []string{
		"  +-----------------+",
		"8 | r n b q k b n r |",
		"7 | p p p p p p p p |",
		"6 | . . . . . . . . |",
		"5 | . . . . . . . . |",
		"4 | . . . . . . . . |",
		"3 | . . . . . . . . |",
		"2 | P P P P P P P P |",
		"1 | R N B Q K B N R |",
		"  +-----------------+",
		"    a b c d e f g h",
	}
	got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("board mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	OutputBoard(&buf, &pos, false)
	plain := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(plain) != 8 || plain[0] != "r n b q k b n r" {
		t.Errorf("plain board = %q", plain)
	}
}

func TestOutputMoveResult(t *testing.T) {
	g := game.New()
	var buf bytes.Buffer
	OutputMoveResult(&buf, g.Move("e2e5"))
	OutputMoveResult(&buf, g.Move("e2e4"))
	if got, want := buf.String(), "Invalid move\nMove successful.\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
