package search

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/goldgrid/grid"
	"github.com/katalvlaran/goldgrid/path"
)

// maxEnumerableSteps bounds the exhaustive enumeration: with rows+columns-2
// single-cell steps per route, the bit-pattern counter must stay below 2^64.
const maxEnumerableSteps = 64

// Exhaustive solves the monotone gold-harvest problem by enumerating every
// candidate route and keeping the best.
//
// Every route of length len (0 ≤ len ≤ rows+columns-2) is encoded as a
// len-bit integer read least-significant bit first: bit 1 steps Right,
// bit 0 steps Down. A step that would leave the board or strike a rock is
// silently dropped and decoding continues from the unchanged head, so one
// illegal bit never discards the whole candidate. The best candidate is
// replaced only on strictly greater gold, which keeps the first-found
// optimum under the enumeration order and makes the result deterministic.
//
// A board whose start cell is Rock yields the degenerate zero-step,
// zero-gold route (the same answer DynamicProgramming gives).
//
// Panics on a nil grid, and on boards where rows+columns-2 ≥ 64: the
// enumeration counter would overflow, a resource-bound assertion rather
// than a recoverable error. Callers bound runtime by bounding board size.
//
// WithWorkers(n) spreads the enumeration over n goroutines; chunks of the
// candidate space are reduced in enumeration order under the sequential
// tie-break rule, so the returned route is identical for any n.
//
// Time complexity: O(2^(R+C) · (R+C)) — viable for small boards only.
func Exhaustive(g *grid.Grid, opts ...Option) *path.Path {
	if g == nil {
		panic("search: Exhaustive called with nil grid")
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	maxSteps := g.Rows() + g.Columns() - 2
	if maxSteps >= maxEnumerableSteps {
		panic(fmt.Sprintf("search: board too large for exhaustive enumeration: rows+columns-2 = %d, limit %d",
			maxSteps, maxEnumerableSteps))
	}
	if g.Kind(0, 0) == grid.Rock {
		// Nothing is legally reachable from a blocked start; the zero-step
		// route is the defined degenerate answer.
		return path.New(g)
	}
	if o.Workers > 1 {
		return exhaustiveParallel(g, maxSteps, o.Workers)
	}

	best := path.New(g)
	for length := 0; length <= maxSteps; length++ {
		for bits := uint64(0); bits < uint64(1)<<length; bits++ {
			candidate := decodeCandidate(g, length, bits)
			if best.LastStep() == path.Start || candidate.TotalGold() > best.TotalGold() {
				best = candidate
			}
		}
	}

	return best
}

// decodeCandidate materializes the candidate route encoded by bits:
// length steps read LSB-first, 1 = Right, 0 = Down, invalid steps dropped.
func decodeCandidate(g *grid.Grid, length int, bits uint64) *path.Path {
	candidate := path.New(g)
	for k := 0; k < length; k++ {
		step := path.Down
		if (bits>>k)&1 == 1 {
			step = path.Right
		}
		if candidate.IsStepValid(step) {
			candidate.AddStep(step)
		}
	}

	return candidate
}

// bitsChunk is one contiguous slice [lo,hi) of the bit-pattern range for a
// single candidate length. Chunks are laid out in enumeration order.
type bitsChunk struct {
	length int
	lo, hi uint64
}

// exhaustiveParallel runs the enumeration over several goroutines.
// Each chunk's local best follows the sequential replace-on-strictly-greater
// rule; the final reduction walks chunk winners in enumeration order with the
// same rule, so the result matches the sequential search exactly.
func exhaustiveParallel(g *grid.Grid, maxSteps, workers int) *path.Path {
	var chunks []bitsChunk
	for length := 0; length <= maxSteps; length++ {
		total := uint64(1) << length
		size := (total + uint64(workers) - 1) / uint64(workers)
		for lo := uint64(0); lo < total; lo += size {
			hi := lo + size
			if hi > total {
				hi = total
			}
			chunks = append(chunks, bitsChunk{length: length, lo: lo, hi: hi})
		}
	}

	results := make([]*path.Path, len(chunks))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				c := chunks[idx]
				local := path.New(g)
				for bits := c.lo; bits < c.hi; bits++ {
					candidate := decodeCandidate(g, c.length, bits)
					if local.LastStep() == path.Start || candidate.TotalGold() > local.TotalGold() {
						local = candidate
					}
				}
				results[idx] = local
			}
		}()
	}
	for idx := range chunks {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	// Order-preserving reduce over chunk winners.
	best := path.New(g)
	for _, r := range results {
		if best.LastStep() == path.Start || r.TotalGold() > best.TotalGold() {
			best = r
		}
	}

	return best
}
