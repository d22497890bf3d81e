package model

import "time"

// StrategyResult is the outcome of one assignment strategy over a run's units.
type StrategyResult struct {
	Strategy   string     `json:"strategy"`
	Label      string     `json:"label"`
	Assignment Assignment `json:"assignment"`
	Loads      LoadVector `json:"loads"`

	// Maximum is the heaviest worker load; Busiest is the first worker holding it.
	Maximum int64    `json:"maximum"`
	Busiest WorkerID `json:"busiest"`

	Speedup    float64 `json:"speedup"`
	Efficiency float64 `json:"efficiency"`

	// Units the strategy left off every worker (Block-Cyclic remainder)
	Unassigned int `json:"unassigned"`
}

// SimulationRun aggregates the configuration, the ingested units and the
// per-strategy results of a single simulation.
type SimulationRun struct {
	Workers   int              `json:"workers"`
	BlockSize int              `json:"block_size"`
	Units     UnitSequence     `json:"units"`
	SerialSum int64            `json:"serial_sum"`
	Results   []StrategyResult `json:"results"`

	Duration time.Duration `json:"simulation_duration"`
}

// Result returns the result for the named strategy.
func (r *SimulationRun) Result(strategy string) (StrategyResult, bool) {
	for _, res := range r.Results {
		if res.Strategy == strategy {
			return res, true
		}
	}
	return StrategyResult{}, false
}

// Best returns the result with the highest speedup among strategies that
// placed every unit. A partial result divides the full serial sum by the
// load of the placed units only, so it cannot compete. Ties keep the
// earlier strategy in reporting order.
func (r *SimulationRun) Best() (StrategyResult, bool) {
	var best StrategyResult
	found := false
	for _, res := range r.Results {
		if res.Unassigned > 0 {
			continue
		}
		if !found || res.Speedup > best.Speedup {
			best = res
			found = true
		}
	}
	return best, found
}
