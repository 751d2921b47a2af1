package puzzle

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Registry holds the solvers by day.
type Registry struct {
	solvers map[int]Solver
}

// NewRegistry creates a registry containing the given solvers.
func NewRegistry(solvers ...Solver) (*Registry, error) {
	r := &Registry{solvers: make(map[int]Solver, len(solvers))}
	for _, s := range solvers {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a solver. Registering the same day twice is an error.
func (r *Registry) Register(s Solver) error {
	if s.Day() < 1 || s.Day() > 25 {
		return fmt.Errorf("day %d out of range 1-25", s.Day())
	}
	if _, ok := r.solvers[s.Day()]; ok {
		return fmt.Errorf("day %d already registered", s.Day())
	}
	r.solvers[s.Day()] = s
	return nil
}

// Lookup returns the solver for day.
func (r *Registry) Lookup(day int) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, &UnknownDayError{Day: day}
	}
	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := lo.Keys(r.solvers)
	slices.Sort(days)
	return days
}

// Latest returns the solver with the highest day number.
func (r *Registry) Latest() (Solver, error) {
	days := r.Days()
	if len(days) == 0 {
		return nil, fmt.Errorf("no puzzles registered")
	}
	return r.solvers[days[len(days)-1]], nil
}

// All returns every solver ordered by day.
func (r *Registry) All() []Solver {
	return lo.Map(r.Days(), func(day int, _ int) Solver {
		return r.solvers[day]
	})
}
