package grid

import "fmt"

// From2D constructs a Grid from a non-empty, rectangular 2D slice.
// A negative value marks a Rock cell; a value ≥ 0 marks an Open cell
// carrying that much gold. The input is deep-copied to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(R×C) time and memory.
func From2D(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	r, c := len(values), len(values[0])
	for _, row := range values {
		if len(row) != c {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, r)
	for i := 0; i < r; i++ {
		cells[i] = make([]int, c)
		copy(cells[i], values[i])
	}

	return &Grid{rows: r, columns: c, cells: cells}, nil
}

// Rows returns the number of rows. Always ≥ 1. Complexity: O(1).
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns. Always ≥ 1. Complexity: O(1).
func (g *Grid) Columns() int { return g.columns }

// InBounds reports whether (i,j) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.rows && j >= 0 && j < g.columns
}

// Kind returns the kind of cell (i,j).
// Panics on out-of-range coordinates; callers guard with InBounds.
// Complexity: O(1).
func (g *Grid) Kind(i, j int) CellKind {
	g.mustContain(i, j)
	if g.cells[i][j] < 0 {
		return Rock
	}

	return Open
}

// Gold returns the gold value of Open cell (i,j), or 0 for a Rock cell
// (rock carries no meaningful value; callers check Kind first).
// Panics on out-of-range coordinates.
// Complexity: O(1).
func (g *Grid) Gold(i, j int) int {
	g.mustContain(i, j)
	if v := g.cells[i][j]; v > 0 {
		return v
	}

	return 0
}

// mustContain panics when (i,j) falls outside the grid.
func (g *Grid) mustContain(i, j int) {
	if !g.InBounds(i, j) {
		panic(fmt.Sprintf("grid: coordinates (%d,%d) outside %d×%d board", i, j, g.rows, g.columns))
	}
}
