package search

import (
	"github.com/katalvlaran/goldgrid/grid"
	"github.com/katalvlaran/goldgrid/path"
)

// DynamicProgramming solves the monotone gold-harvest problem in polynomial
// time via optimal substructure: the best route reaching cell (i,j) through
// only Right/Down steps must arrive from (i-1,j) or (i,j-1), so the best
// arrival composed with one legal step is itself optimal for (i,j).
//
// A rows×columns table holds the best-known route per cell, nil marking
// cells that are Rock or unreachable (nil, not a sentinel route: "no value"
// must stay distinct from "zero-gold value"). Cells are filled in row-major
// order; when both arrivals exist the strictly richer one wins, a tie keeps
// the from-above arrival. A final row-major scan over the table, seeded with
// the start entry, picks the overall answer — again replacing only on
// strictly greater gold, so ties favor the earliest-scanned entry and the
// result is deterministic.
//
// A board whose start cell is Rock leaves the whole table empty; the
// degenerate zero-step, zero-gold route is returned (the same answer
// Exhaustive gives). Panics on a nil grid.
//
// Time complexity: O(R×C) table transitions; with route copying each
// transition costs O(R+C), giving O(R×C×(R+C)) overall. Memory: O(R×C×(R+C)).
func DynamicProgramming(g *grid.Grid) *path.Path {
	if g == nil {
		panic("search: DynamicProgramming called with nil grid")
	}

	rows, columns := g.Rows(), g.Columns()
	table := make([][]*path.Path, rows)
	for i := range table {
		table[i] = make([]*path.Path, columns)
	}
	// Base case: the zero-step route at the start, absent on a blocked start.
	if g.Kind(0, 0) == grid.Open {
		table[0][0] = path.New(g)
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < columns; j++ {
			if g.Kind(i, j) == grid.Rock {
				table[i][j] = nil
				continue
			}
			var fromAbove, fromLeft *path.Path
			if i > 0 && table[i-1][j] != nil {
				fromAbove = table[i-1][j].Clone()
				if fromAbove.IsStepValid(path.Down) {
					fromAbove.AddStep(path.Down)
				}
			}
			if j > 0 && table[i][j-1] != nil {
				fromLeft = table[i][j-1].Clone()
				if fromLeft.IsStepValid(path.Right) {
					fromLeft.AddStep(path.Right)
				}
			}
			switch {
			case fromAbove != nil && fromLeft != nil:
				if fromAbove.TotalGold() >= fromLeft.TotalGold() {
					table[i][j] = fromAbove
				} else {
					table[i][j] = fromLeft
				}
			case fromAbove != nil:
				table[i][j] = fromAbove
			case fromLeft != nil:
				table[i][j] = fromLeft
			}
		}
	}

	// Post-processing: row-major scan for the richest reachable cell,
	// seeded with the always-legal start entry.
	best := table[0][0]
	if best == nil {
		return path.New(g)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < columns; j++ {
			if table[i][j] != nil && table[i][j].TotalGold() > best.TotalGold() {
				best = table[i][j]
			}
		}
	}

	return best
}
