package model

import "encoding/json"

// WorkerID identifies an abstract worker in [0, workers).
type WorkerID int

// Unassigned marks a unit that a strategy did not place on any worker.
const Unassigned WorkerID = -1

// UnitSequence is an ordered, read-only sequence of work-unit costs.
// Every cost is strictly positive.
type UnitSequence struct {
	costs []int64
}

// NewUnitSequence returns a sequence holding a copy of costs.
// Non-positive costs are dropped.
func NewUnitSequence(costs []int64) UnitSequence {
	kept := make([]int64, 0, len(costs))
	for _, c := range costs {
		if c > 0 {
			kept = append(kept, c)
		}
	}
	return UnitSequence{costs: kept}
}

// Len returns the number of units.
func (s UnitSequence) Len() int { return len(s.costs) }

// At returns the cost of the unit at position i.
func (s UnitSequence) At(i int) int64 { return s.costs[i] }

// Values returns a copy of the unit costs in arrival order.
func (s UnitSequence) Values() []int64 {
	out := make([]int64, len(s.costs))
	copy(out, s.costs)
	return out
}

// Sum returns the total cost of all units.
func (s UnitSequence) Sum() int64 {
	var total int64
	for _, c := range s.costs {
		total += c
	}
	return total
}

func (s UnitSequence) MarshalJSON() ([]byte, error) {
	if s.costs == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.costs)
}

// Assignment maps each unit position to the worker that processes it.
type Assignment []WorkerID

// Assigned returns how many units were placed on a worker.
func (a Assignment) Assigned() int {
	n := 0
	for _, w := range a {
		if w != Unassigned {
			n++
		}
	}
	return n
}

// Counts returns the number of units placed on each worker.
func (a Assignment) Counts(workers int) []int {
	counts := make([]int, workers)
	for _, w := range a {
		if w >= 0 && int(w) < workers {
			counts[w]++
		}
	}
	return counts
}

// LoadVector holds the summed unit cost per worker, indexed by WorkerID.
type LoadVector []int64

// Max returns the largest load and the lowest worker index holding it.
// An empty vector yields (0, 0).
func (l LoadVector) Max() (int64, WorkerID) {
	var busiest WorkerID
	for i := range l {
		if l[i] > l[busiest] {
			busiest = WorkerID(i)
		}
	}
	if len(l) == 0 {
		return 0, 0
	}
	return l[busiest], busiest
}
