// Package grid defines core types and sentinel errors
// for the grid subpackage of github.com/katalvlaran/goldgrid.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// CellKind classifies a single grid cell: traversable (Open) or blocked (Rock).
type CellKind int

const (
	// Open marks a traversable cell carrying a non-negative gold value.
	Open CellKind = iota
	// Rock marks a blocked cell; no path may ever occupy it.
	Rock
)

// String returns a human-readable kind name.
func (k CellKind) String() string {
	if k == Rock {
		return "Rock"
	}

	return "Open"
}

// Grid is an immutable rows×columns board of cells. Each cell is either
// Open with a non-negative gold value, or Rock. Dimensions are fixed at
// construction; cell contents never change afterwards.
// Coordinates are row-major: (i, j) addresses row i, column j.
type Grid struct {
	rows, columns int
	cells         [][]int // negative = Rock, value ≥ 0 = Open with that gold
}
