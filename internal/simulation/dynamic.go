package simulation

import "github.com/guimove/workmap/internal/model"

// DynamicGreedy hands each unit, in arrival order, to the worker with the
// smallest cost assigned so far. Ties go to the lowest worker index.
type DynamicGreedy struct{}

func (DynamicGreedy) Name() string  { return "dynamic" }
func (DynamicGreedy) Label() string { return "DYNAMIC" }
func (DynamicGreedy) sealed()       {}

func (DynamicGreedy) Assign(units model.UnitSequence, workers, _ int) model.Assignment {
	a := newAssignment(units.Len())
	// Running totals only steer decisions; reported loads are recomputed
	// from the final assignment.
	running := make([]int64, workers)
	for i := range a {
		w := argmin(running)
		a[i] = model.WorkerID(w)
		running[w] += units.At(i)
	}
	return a
}

func argmin(totals []int64) int {
	best := 0
	for i := range totals {
		if totals[i] < totals[best] {
			best = i
		}
	}
	return best
}
