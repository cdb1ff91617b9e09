package path

import (
	"fmt"

	"github.com/katalvlaran/goldgrid/grid"
)

// Path is a mutable, incrementally-built monotone route over one fixed Grid.
// It tracks the head position, the ordered step history, and the total gold
// collected over every visited Open cell, start cell included.
//
// Invariants (maintained by construction, AddStep is the only mutator):
//   - the head always lies within grid bounds;
//   - the head never rests on a Rock cell (the degenerate zero-step route on
//     a rock start cell being the single documented exception);
//   - replaying the step history from (0,0) reproduces the head exactly;
//   - TotalGold equals the sum of gold over all visited cells, each counted once.
//
// A Path holds a back-reference to its Grid, not ownership. Clone produces a
// fully independent copy; extending one copy never mutates another, which both
// solvers rely on when branching into alternative candidate continuations.
type Path struct {
	g        *grid.Grid
	row, col int
	gold     int
	steps    []Step
}

// New returns a fresh Path bound to g, positioned at (0,0) with empty step
// history. Gold starts at the start cell's value, or 0 when (0,0) is Rock.
// Panics on a nil grid: binding a route to no board is a programming error.
// Complexity: O(1).
func New(g *grid.Grid) *Path {
	if g == nil {
		panic("path: New called with nil grid")
	}
	p := &Path{g: g}
	if g.Kind(0, 0) == grid.Open {
		p.gold = g.Gold(0, 0)
	}

	return p
}

// IsStepValid reports whether taking s from the current head stays within
// grid bounds and lands on a non-Rock cell. Start (or any unknown value)
// is never a valid step. Pure query, no side effects. Complexity: O(1).
func (p *Path) IsStepValid(s Step) bool {
	i, j := p.row, p.col
	switch s {
	case Down:
		i++
	case Right:
		j++
	default:
		return false
	}

	return p.g.InBounds(i, j) && p.g.Kind(i, j) == grid.Open
}

// AddStep appends s to the route: the step is recorded, the head advances one
// cell, and the destination cell's gold joins the total. This is the only
// mutator. Callers must check IsStepValid first; violating that precondition
// panics. Complexity: O(1) amortized.
func (p *Path) AddStep(s Step) {
	if !p.IsStepValid(s) {
		panic(fmt.Sprintf("path: AddStep(%v) from head (%d,%d) is not a valid step", s, p.row, p.col))
	}
	if s == Down {
		p.row++
	} else {
		p.col++
	}
	p.gold += p.g.Gold(p.row, p.col)
	p.steps = append(p.steps, s)
}

// TotalGold returns the accumulated gold. Complexity: O(1).
func (p *Path) TotalGold() int { return p.gold }

// LastStep returns the most recently appended step, or the Start sentinel
// when no step has been taken yet. Complexity: O(1).
func (p *Path) LastStep() Step {
	if len(p.steps) == 0 {
		return Start
	}

	return p.steps[len(p.steps)-1]
}

// Len returns the number of steps taken. Complexity: O(1).
func (p *Path) Len() int { return len(p.steps) }

// Position returns the head coordinates (row, column). Complexity: O(1).
func (p *Path) Position() (i, j int) { return p.row, p.col }

// Steps returns a copy of the step history, oldest first.
// Complexity: O(L) where L is the route length.
func (p *Path) Steps() []Step {
	out := make([]Step, len(p.steps))
	copy(out, p.steps)

	return out
}

// Clone returns an independent copy of p bound to the same Grid.
// Extending the clone never mutates p and vice versa.
// Complexity: O(L).
func (p *Path) Clone() *Path {
	c := &Path{g: p.g, row: p.row, col: p.col, gold: p.gold}
	if len(p.steps) > 0 {
		c.steps = make([]Step, len(p.steps))
		copy(c.steps, p.steps)
	}

	return c
}

// String renders the route for debugging: head, gold, and step history.
func (p *Path) String() string {
	return fmt.Sprintf("path(head=(%d,%d), gold=%d, steps=%v)", p.row, p.col, p.gold, p.steps)
}
