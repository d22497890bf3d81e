package simulation

import "github.com/guimove/workmap/internal/model"

// Block splits the units into one contiguous range per worker.
// With n = w*q + r, the first r workers get q+1 units and the rest get q.
type Block struct{}

func (Block) Name() string  { return "block" }
func (Block) Label() string { return "BLOCK" }
func (Block) sealed()       {}

func (Block) Assign(units model.UnitSequence, workers, _ int) model.Assignment {
	a := newAssignment(units.Len())
	for w := 0; w < workers; w++ {
		start := blockStart(units.Len(), workers, w)
		stop := blockStart(units.Len(), workers, w+1)
		for i := start; i < stop; i++ {
			a[i] = model.WorkerID(w)
		}
	}
	return a
}

// blockStart returns the first unit index owned by worker w. The stop of
// one worker is the start of the next.
func blockStart(n, workers, w int) int {
	q, r := n/workers, n%workers
	return w*q + min(w, r)
}
