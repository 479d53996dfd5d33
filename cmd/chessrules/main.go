// chessrules replays chess moves under the standard rules: a move list, scenario
// files with expected outcomes, or an interactive game read from stdin.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := buildConfig()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	if err := setupLogFile(cfg, *appendLog != ""); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := setupOutputFile(cfg, *appendOutput); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	files := scriptFiles(flag.Args())
	if *moveList == "" && len(files) == 0 {
		runInteractive(cfg)
		return
	}

	passed, failed := runReplays(cfg, files)

	// Report statistics
	reportStatistics(cfg, passed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// setupLogFile points diagnostics at cfg.LogFilename, appending to it
// when appendMode is set.
func setupLogFile(cfg *config.Config, appendMode bool) error {
	if cfg.LogFilename == "" {
		return nil
	}
	file, err := openFile(cfg.LogFilename, appendMode)
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", cfg.LogFilename, err)
	}
	cfg.LogFile = file
	return nil
}

// setupOutputFile points output at cfg.OutputFilename, appending to it
// when appendMode is set.
func setupOutputFile(cfg *config.Config, appendMode bool) error {
	if cfg.OutputFilename == "" {
		return nil
	}
	file, err := openFile(cfg.OutputFilename, appendMode)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", cfg.OutputFilename, err)
	}
	cfg.SetOutput(file)
	return nil
}

func openFile(name string, appendMode bool) (*os.File, error) {
	if appendMode {
		return os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created files
	}
	return os.Create(name)
}

// runInteractive plays a game from commands read on stdin.
func runInteractive(cfg *config.Config) {
	g := game.New()
	if cfg.Replay.StartFEN != "" {
		var err error
		if g, err = game.NewFromFEN(cfg.Replay.StartFEN); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := runSession(os.Stdin, g, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

// runReplays replays the -moves list and every scenario file, and returns
// how many replays met their expectations.
func runReplays(cfg *config.Config, files []string) (passed, failed int) {
	var items []worker.WorkItem
	if *moveList != "" {
		items = append(items, worker.WorkItem{Scenario: movesScenario(*moveList, cfg)})
	}

	loaded, err := loadWorkItems(files, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	items = append(items, loaded...)

	results, err := replayItems(items, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	if *recordFile != "" {
		if err := writeRecordFile(*recordFile, items, results); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing record file %s: %v\n", *recordFile, err)
			os.Exit(1)
		}
		cfg.Logf(config.Summary, "Recorded %d scenario(s) to %s", len(items), *recordFile)
	}

	return worker.Summary(results)
}

// reportStatistics outputs the replay summary.
func reportStatistics(cfg *config.Config, passed, failed int) {
	cfg.Logf(config.Summary, "%d scenario(s) passed, %d failed.", passed, failed)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options] [scenario-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess moves and checks them against the rules.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nWithout -moves or scenario files, commands are read from stdin:\n\n")
	fmt.Fprint(os.Stderr, sessionHelp)
}
