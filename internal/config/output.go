package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// ShowBoard prints an ASCII diagram of the final position
	ShowBoard bool

	// ShowFeedback prints the feedback lines of every move
	ShowFeedback bool

	// ShowNotation prints the move list of the game
	ShowNotation bool

	// Coordinates adds file letters and rank numbers around the board
	Coordinates bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowFeedback: true,
		ShowNotation: true,
		Coordinates:  true,
	}
}
