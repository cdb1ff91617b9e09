// Package goldgrid solves the monotone gold-harvest problem on 2D grids:
// starting at the top-left cell and moving only right or down, find the
// route that collects the most gold without ever crossing a rock.
//
// 🚀 What is goldgrid?
//
//	A small, focused library that brings together:
//		• Grid primitives: immutable rectangular boards of open/rock cells
//		• Path primitives: incrementally-built monotone routes with gold tracking
//		• Exhaustive solver: enumerate every monotone route (exponential, exact)
//		• Dynamic-programming solver: optimal-substructure table (polynomial, exact)
//
// ✨ Why choose goldgrid?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – both solvers agree, tie-breaking is fully specified
//   - Pure Go – no cgo, no hidden deps
//   - Verifiable – every returned route can be replayed step by step
//
// Under the hood, everything is organized under three subpackages:
//
//	grid/   — the immutable board: dimensions, cell kinds, gold values
//	path/   — the monotone route: validity checks, step appending, gold total
//	search/ — the two solvers: Exhaustive and DynamicProgramming
//
// Quick ASCII example (digits = open cells with gold, X = rock):
//
//	1 2 0
//	3 X 4
//	0 5 9
//
//	the best route hugs the left column, then the bottom row.
//
// Dive into each package's doc.go for complexity notes and full examples.
//
//	go get github.com/katalvlaran/goldgrid
package goldgrid
