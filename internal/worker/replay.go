package worker

import (
	"context"
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/script"
)

// ReplayFunc returns a ProcessFunc that replays each scenario with opts.
// A scenario that cannot start is reported through ProcessResult.Error.
func ReplayFunc(opts script.Options) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		report := opts.Run(item.Scenario)
		res := ProcessResult{Index: item.Index, Source: item.Source, Report: report}
		if report.Err != nil {
			res.Error = errors.Wrapf(report.Err, "scenario %q", item.Scenario.Name)
		}
		return res
	}
}

// ReplayAll replays items on a pool of numWorkers goroutines and returns
// the results in input order. poolOpts are applied after the worker count
// and a queue of twice that size.
func ReplayAll(items []WorkItem, numWorkers int, opts script.Options, poolOpts ...PoolOption) []ProcessResult {
	all := append([]PoolOption{WithWorkers(numWorkers), WithBufferSize(2 * numWorkers)}, poolOpts...)
	return NewPool(ReplayFunc(opts), all...).Run(context.Background(), items)
}

// Summary counts the passed and failed results.
func Summary(results []ProcessResult) (passed, failed int) {
	for _, r := range results {
		if r.Passed() {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

// Describe returns a one-line description of a result for logs.
func (r ProcessResult) Describe() string {
	name := fmt.Sprintf("#%d", r.Index+1)
	if r.Report != nil {
		name = r.Report.Name
	}
	if r.Source != "" {
		name = r.Source + ": " + name
	}
	switch {
	case r.Error != nil:
		return fmt.Sprintf("%s: error: %v", name, r.Error)
	case r.Report == nil:
		return name + ": not run"
	case r.Report.Passed():
		return name + ": ok"
	default:
		return fmt.Sprintf("%s: %d mismatches", name, len(r.Report.Mismatches))
	}
}
