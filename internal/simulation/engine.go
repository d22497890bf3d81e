package simulation

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/guimove/workmap/internal/model"
)

// Engine runs a set of assignment strategies over the same units.
type Engine struct {
	Strategies  []Strategy
	Parallelism int
}

// NewEngine creates an engine for the given strategies. With none given it
// runs all of them.
func NewEngine(strategies ...Strategy) *Engine {
	if len(strategies) == 0 {
		strategies = All()
	}
	return &Engine{
		Strategies:  strategies,
		Parallelism: runtime.NumCPU(),
	}
}

// Run computes every strategy's assignment and metrics. Strategies share
// only the read-only units, so each runs on its own goroutine; results keep
// the engine's strategy order.
func (e *Engine) Run(
	ctx context.Context,
	units model.UnitSequence,
	workers, blockSize int,
) (*model.SimulationRun, error) {
	if workers <= 0 {
		return nil, ErrInvalidWorkers
	}
	if blockSize <= 0 {
		return nil, ErrInvalidBlockSize
	}
	if len(e.Strategies) == 0 {
		return nil, ErrNoStrategies
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	serial := SerialSum(units)
	results := make([]model.StrategyResult, len(e.Strategies))

	parallelism := e.Parallelism
	if parallelism <= 0 {
		parallelism = 1
	}
	sem := make(chan struct{}, parallelism)
	var wg sync.WaitGroup

	for i, s := range e.Strategies {
		wg.Add(1)
		go func(idx int, strategy Strategy) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			a := strategy.Assign(units, workers, blockSize)
			results[idx] = Evaluate(strategy, units, a, workers, serial)
		}(i, s)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &model.SimulationRun{
		Workers:   workers,
		BlockSize: blockSize,
		Units:     units,
		SerialSum: serial,
		Results:   results,
		Duration:  time.Since(start),
	}, nil
}
