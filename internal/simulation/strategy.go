package simulation

import (
	"fmt"
	"strings"

	"github.com/guimove/workmap/internal/model"
)

// Strategy assigns every unit of a sequence to a worker.
//
// The set of strategies is closed: Block, Cyclic, BlockCyclic and
// DynamicGreedy are the only implementations.
type Strategy interface {
	// Name returns the short identifier used in flags and JSON.
	Name() string

	// Label returns the heading used in text reports.
	Label() string

	// Assign maps each unit position to a worker. workers and blockSize are
	// validated by the caller.
	Assign(units model.UnitSequence, workers, blockSize int) model.Assignment

	sealed()
}

// All returns one instance of every strategy in reporting order.
func All() []Strategy {
	return []Strategy{Block{}, Cyclic{}, BlockCyclic{}, DynamicGreedy{}}
}

// Names returns the names of all strategies in reporting order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name()
	}
	return names
}

// Lookup resolves a strategy by name, ignoring case.
func Lookup(name string) (Strategy, error) {
	for _, s := range All() {
		if strings.EqualFold(s.Name(), name) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownStrategy, name, strings.Join(Names(), ", "))
}

// Select resolves the named strategies and returns them in reporting
// order. An empty list selects all of them.
func Select(names []string) ([]Strategy, error) {
	if len(names) == 0 {
		return All(), nil
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		s, err := Lookup(strings.TrimSpace(n))
		if err != nil {
			return nil, err
		}
		wanted[s.Name()] = true
	}
	var out []Strategy
	for _, s := range All() {
		if wanted[s.Name()] {
			out = append(out, s)
		}
	}
	return out, nil
}

func newAssignment(n int) model.Assignment {
	a := make(model.Assignment, n)
	for i := range a {
		a[i] = model.Unassigned
	}
	return a
}
