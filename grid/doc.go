// Package grid provides the immutable 2D board the goldgrid solvers run on.
//
// What:
//
//   - Grid wraps a rectangular [][]int board; negative values mark Rock cells,
//     values ≥ 0 mark Open cells carrying that much gold.
//   - Read-only queries: Rows, Columns, Kind, Gold, InBounds.
//   - Input is deep-copied at construction; a Grid never changes afterwards.
//
// Why:
//
//   - Mining maps: open terrain with gold deposits versus impassable rock.
//   - Safe sharing: a Grid may be read concurrently by any number of searches.
//
// Complexity:
//
//   - From2D:  O(R×C) time, O(R×C) memory.
//   - Queries: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
