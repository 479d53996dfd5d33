// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Input options
	startFEN      = flag.String("fen", "", "Start position in FEN (default: standard starting position)")
	moveList      = flag.String("moves", "", "Moves to replay, separated by spaces (e.g. \"e2e4 e7e5\")")
	scriptFile    = flag.String("script", "", "Scenario file (YAML); more files may follow as arguments")
	stopOnInvalid = flag.Bool("stop", false, "Stop a replay at the first rejected move")
	failFast      = flag.Bool("failfast", false, "Skip the remaining scenarios after the first failure")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	showBoard    = flag.Bool("board", false, "Draw the final position as an ASCII diagram")
	noCoords     = flag.Bool("nocoords", false, "Draw the board without file letters and rank numbers")
	noFeedback   = flag.Bool("nofeedback", false, "Don't output the feedback of each move")
	noNotation   = flag.Bool("nonotation", false, "Don't output the move list")
	recordFile   = flag.String("record", "", "Write the replayed scenarios, with their outcome as expectations, to this YAML file")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", config.Summary, "Diagnostics level: 0 silent, 1 summary, 2 every move")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("j", 0, "Number of worker goroutines for scenario files (0 = auto-detect based on CPU cores)")
)

// buildConfig creates the configuration from the command-line flags.
func buildConfig() *config.Config {
	cfg := config.NewConfigBuilder().
		WithJSONOutput(*jsonOutput).
		WithBoard(*showBoard).
		WithStartFEN(*startFEN).
		WithWorkers(*workers).
		StopOnInvalid(*stopOnInvalid).
		FailFast(*failFast).
		WithVerbosity(*verbosity).
		Build()

	applyOutputFlags(cfg)
	if *quiet {
		cfg.Verbosity = config.Silent
	}
	return cfg
}

// applyOutputFlags configures what the text output includes.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.Coordinates = !*noCoords
	cfg.Output.ShowFeedback = !*noFeedback
	cfg.Output.ShowNotation = !*noNotation
	cfg.OutputFilename = *outputFile
	cfg.LogFilename = *logFile
	if *appendLog != "" {
		cfg.LogFilename = *appendLog
	}
}

// scriptFiles returns the scenario files named by -script and the
// positional arguments.
func scriptFiles(args []string) []string {
	var files []string
	if *scriptFile != "" {
		files = append(files, *scriptFile)
	}
	return append(files, args...)
}
