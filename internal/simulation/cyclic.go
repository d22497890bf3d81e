package simulation

import "github.com/guimove/workmap/internal/model"

// Cyclic deals units to workers round-robin: unit i goes to worker i mod w.
type Cyclic struct{}

func (Cyclic) Name() string  { return "cyclic" }
func (Cyclic) Label() string { return "CYCLIC" }
func (Cyclic) sealed()       {}

func (Cyclic) Assign(units model.UnitSequence, workers, _ int) model.Assignment {
	a := newAssignment(units.Len())
	for i := range a {
		a[i] = model.WorkerID(i % workers)
	}
	return a
}
