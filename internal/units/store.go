package units

import (
	"errors"
	"fmt"

	"github.com/guimove/workmap/internal/model"
)

const (
	// InitialCapacity is the capacity allocated on the first append.
	InitialCapacity = 10

	// GrowthFactor multiplies the capacity each time the buffer is exhausted.
	GrowthFactor = 10
)

// ErrResourceExhausted is returned when the buffer cannot grow any further.
var ErrResourceExhausted = errors.New("cannot resize unit buffer")

// Store is the growable buffer holding ingested work-unit costs.
type Store struct {
	costs       []int64
	maxCapacity int // 0 = unlimited
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithMaxCapacity caps the buffer capacity. Growth beyond the cap fails
// with ErrResourceExhausted.
func WithMaxCapacity(n int) StoreOption {
	return func(s *Store) { s.maxCapacity = n }
}

// NewStore creates an empty store with zero capacity.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append adds a unit cost. Non-positive costs are dropped without error.
func (s *Store) Append(cost int64) error {
	if cost <= 0 {
		return nil
	}
	if len(s.costs) == cap(s.costs) {
		if err := s.grow(); err != nil {
			return err
		}
	}
	s.costs = append(s.costs, cost)
	return nil
}

func (s *Store) grow() error {
	next := InitialCapacity
	if cap(s.costs) > 0 {
		next = cap(s.costs) * GrowthFactor
	}
	if s.maxCapacity > 0 && next > s.maxCapacity {
		return fmt.Errorf("%w: capacity %d exceeds limit %d", ErrResourceExhausted, next, s.maxCapacity)
	}
	buf := make([]int64, len(s.costs), next)
	copy(buf, s.costs)
	s.costs = buf
	return nil
}

// Len returns the number of stored units.
func (s *Store) Len() int { return len(s.costs) }

// Cap returns the current buffer capacity.
func (s *Store) Cap() int { return cap(s.costs) }

// At returns the cost stored at position i.
func (s *Store) At(i int) int64 { return s.costs[i] }

// Sequence returns an immutable snapshot of the stored units.
func (s *Store) Sequence() model.UnitSequence {
	return model.NewUnitSequence(s.costs)
}
