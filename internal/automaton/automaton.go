package automaton

import "math/rand/v2"

// Policy is a tile-reorganization strategy applied to a grid every
// reorganization period. Implementations rearrange or overwrite whole
// tiles; they never apply the cell update rule themselves.
type Policy interface {
	Name() string
	Apply(g *Grid) error
}

// Automaton owns a grid, advances it one generation per Step, and invokes
// its policy every period steps.
type Automaton struct {
	grid    *Grid
	policy  Policy
	period  int
	steps   int
	changed int
	rng     *rand.Rand
}

// New constructs an automaton with a d×d grid that reorganizes every
// period steps using the given policy. The grid starts all dead; call
// Reset to seed it.
func New(d, period int, policy Policy, rng *rand.Rand) (*Automaton, error) {
	if period < 1 {
		return nil, ErrPeriod
	}
	if policy == nil {
		return nil, ErrNilPolicy
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	g, err := NewGrid(d)
	if err != nil {
		return nil, err
	}
	return &Automaton{grid: g, policy: policy, period: period, rng: rng}, nil
}

// Reset reseeds every cell independently at probability fillRate and
// zeroes the step counter.
func (a *Automaton) Reset(fillRate float64) error {
	if fillRate < 0 || fillRate > 1 {
		return ErrFillRate
	}
	a.grid.Seed(fillRate, a.rng)
	a.steps = 0
	a.changed = 0
	return nil
}

// Step advances one generation and, when the reorganization period
// elapses, applies the bound policy. The changed-cell count always comes
// from the rule update, never from the reorganization.
func (a *Automaton) Step() error {
	a.grid.ComputeNext()
	a.changed = a.grid.Commit()
	a.steps++
	if a.steps == a.period {
		a.steps = 0
		return a.policy.Apply(a.grid)
	}
	return nil
}

// ChangedCells reports how many cells changed in the last Step.
func (a *Automaton) ChangedCells() int { return a.changed }

// CellAt returns the committed value of the cell at (x, y).
func (a *Automaton) CellAt(x, y int) float64 { return a.grid.At(x, y) }

// StepsUntilReorganization reports how many steps remain before the
// policy fires.
func (a *Automaton) StepsUntilReorganization() int { return a.period - a.steps }

// Size returns the grid side length.
func (a *Automaton) Size() int { return a.grid.Size() }

// LiveCells counts currently live cells.
func (a *Automaton) LiveCells() int { return a.grid.LiveCells() }

// Policy exposes the bound reorganization policy.
func (a *Automaton) Policy() Policy { return a.policy }

// Grid exposes the underlying grid for rendering and tests.
func (a *Automaton) Grid() *Grid { return a.grid }
