package main

import (
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/script"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// movesScenario turns a move list given on the command line into a scenario
// with no expectations beyond every move being accepted.
func movesScenario(moves string, cfg *config.Config) script.Scenario {
	return script.Scenario{
		Name:  "moves",
		FEN:   cfg.Replay.StartFEN,
		Moves: strings.Fields(moves),
	}
}

// loadWorkItems reads every scenario file into work items. Scenarios
// without a start position take the one from the configuration.
func loadWorkItems(files []string, cfg *config.Config) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	for _, filename := range files {
		scenarios, err := script.LoadFile(filename)
		if err != nil {
			return nil, err
		}
		cfg.Logf(config.Commentary, "Loaded %d scenario(s) from %s", len(scenarios), filename)

		for _, s := range scenarios {
			if s.FEN == "" {
				s.FEN = cfg.Replay.StartFEN
			}
			items = append(items, worker.WorkItem{Scenario: s, Source: filename})
		}
	}
	return items, nil
}

// numWorkers resolves the worker count for n items.
func numWorkers(cfg *config.Config, n int) int {
	workers := cfg.Replay.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// replayItems replays the items in parallel and writes their reports in
// input order.
func replayItems(items []worker.WorkItem, cfg *config.Config) ([]worker.ProcessResult, error) {
	opts := script.Options{StopOnInvalid: cfg.Replay.StopOnInvalid}
	poolOpts := []worker.PoolOption{worker.WithFailFast(cfg.Replay.FailFast)}
	if cfg.Replay.BufferSize > 0 {
		poolOpts = append(poolOpts, worker.WithBufferSize(cfg.Replay.BufferSize))
	}
	results := worker.ReplayAll(items, numWorkers(cfg, len(items)), opts, poolOpts...)

	w := output.NewReportWriter(cfg.OutputFile, cfg)
	for _, res := range results {
		cfg.Logf(config.Summary, "%s", res.Describe())
		if res.Report == nil {
			continue
		}
		for _, move := range res.Report.Results {
			cfg.Logf(config.Commentary, "  %s: %s", move.Text, strings.Join(move.Feedback, " "))
		}
		if err := w.WriteReport(res.Report, res.Source); err != nil {
			return results, err
		}
	}
	if err := w.Close(); err != nil {
		return results, err
	}
	return results, nil
}

// recordScenarios writes the replayed scenarios to w with their actual
// outcome as expectations.
func recordScenarios(w io.Writer, items []worker.WorkItem, results []worker.ProcessResult) error {
	recorded := make([]script.Scenario, 0, len(results))
	for i, res := range results {
		if res.Report == nil || res.Report.Err != nil {
			continue
		}
		recorded = append(recorded, script.Record(items[i].Scenario, res.Report))
	}
	return script.Write(w, recorded)
}

// writeRecordFile creates filename and records the scenarios into it.
func writeRecordFile(filename string, items []worker.WorkItem, results []worker.ProcessResult) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := recordScenarios(file, items, results); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
