package simulation

import "github.com/guimove/workmap/internal/model"

// SerialSum returns the single-worker baseline: the total cost of all units.
func SerialSum(units model.UnitSequence) int64 {
	return units.Sum()
}

// Loads sums the cost of the units assigned to each worker. Unassigned
// units contribute to no worker.
func Loads(units model.UnitSequence, a model.Assignment, workers int) model.LoadVector {
	loads := make(model.LoadVector, workers)
	for i, w := range a {
		if w == model.Unassigned {
			continue
		}
		loads[w] += units.At(i)
	}
	return loads
}

// Evaluate derives the load vector and the scalar metrics of an assignment.
// It has no side effects; calling it twice yields identical results.
func Evaluate(s Strategy, units model.UnitSequence, a model.Assignment, workers int, serialSum int64) model.StrategyResult {
	loads := Loads(units, a, workers)
	maximum, busiest := loads.Max()

	res := model.StrategyResult{
		Strategy:   s.Name(),
		Label:      s.Label(),
		Assignment: a,
		Loads:      loads,
		Maximum:    maximum,
		Busiest:    busiest,
		Unassigned: len(a) - a.Assigned(),
	}

	// maximum is zero for an empty run, or when Block-Cyclic places no
	// units because there are fewer units than one block
	if maximum > 0 {
		res.Speedup = float64(serialSum) / float64(maximum)
	}
	if workers > 0 {
		res.Efficiency = res.Speedup / float64(workers)
	}
	return res
}
