package simulation

import "github.com/guimove/workmap/internal/model"

// BlockCyclic deals fixed-size blocks of consecutive units round-robin:
// block k goes to worker k mod w.
//
// Only whole blocks are dealt. The trailing n mod b units stay Unassigned
// and count toward no worker's load, so this strategy's metrics describe
// the placed portion only.
type BlockCyclic struct{}

func (BlockCyclic) Name() string  { return "block-cyclic" }
func (BlockCyclic) Label() string { return "BLOCK-CYCLIC" }
func (BlockCyclic) sealed()       {}

func (BlockCyclic) Assign(units model.UnitSequence, workers, blockSize int) model.Assignment {
	a := newAssignment(units.Len())
	blocks := units.Len() / blockSize
	for k := 0; k < blocks; k++ {
		for j := 0; j < blockSize; j++ {
			a[k*blockSize+j] = model.WorkerID(k % workers)
		}
	}
	return a
}
