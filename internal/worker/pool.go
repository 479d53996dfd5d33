// Package worker provides a worker pool for replaying scenarios in parallel.
// Every work item gets its own game, so workers share no chess state.
package worker

import (
	"context"
	"fmt"
	"sync"

	"github.com/lgbarn/chessrules-go/internal/script"
)

// WorkItem represents a scenario to be replayed.
type WorkItem struct {
	Scenario script.Scenario
	Source   string // File the scenario came from (may be empty)
	Index    int    // Position in the input, set by Run
}

// ProcessResult represents the result of replaying a scenario.
type ProcessResult struct {
	Index  int
	Source string
	Report *script.Report
	Error  error
}

// Passed reports whether the scenario ran and met every expectation.
func (r ProcessResult) Passed() bool {
	return r.Error == nil && r.Report != nil && r.Report.Passed()
}

// ProcessFunc replays one work item. It is called from several goroutines
// at once and must not share mutable state between calls.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool replays work items on a fixed number of goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	failFast    bool
	processFunc ProcessFunc
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the capacity of the queue feeding the workers.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithFailFast makes Run skip the remaining items once one fails.
func WithFailFast(enabled bool) PoolOption {
	return func(p *Pool) {
		p.failFast = enabled
	}
}

// NewPool creates a pool. Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run replays every item and returns one result per item, in input order.
// Items not started when ctx is cancelled, or after a failure in fail-fast
// mode, get a result whose Error is the cancellation cause and no Report.
func (p *Pool) Run(ctx context.Context, items []WorkItem) []ProcessResult {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	results := make([]ProcessResult, len(items))
	queue := make(chan int, p.bufferSize)

	var wg sync.WaitGroup
	for w := 0; w < p.numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				results[idx] = p.runOne(ctx, items[idx], idx, cancel)
			}
		}()
	}

	for idx := range items {
		queue <- idx
	}
	close(queue)
	wg.Wait()

	return results
}

func (p *Pool) runOne(ctx context.Context, item WorkItem, idx int, cancel context.CancelCauseFunc) ProcessResult {
	item.Index = idx
	if ctx.Err() != nil {
		return ProcessResult{Index: idx, Source: item.Source, Error: context.Cause(ctx)}
	}

	res := p.processFunc(item)
	res.Index = idx
	if res.Source == "" {
		res.Source = item.Source
	}
	if p.failFast && !res.Passed() {
		cancel(fmt.Errorf("skipped after %q failed", item.Scenario.Name))
	}
	return res
}
