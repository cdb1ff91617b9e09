// Package search provides tunable options for the goldgrid solvers.
package search

import "fmt"

// Option configures solver behavior via functional arguments.
type Option func(*Options)

// Options holds parameters customizing the Exhaustive solver.
//
// The dynamic-programming solver takes no options; its single pass is
// already polynomial and fully deterministic.
type Options struct {
	// Workers sets how many goroutines share the exhaustive enumeration.
	// 1 (the default) keeps the search fully sequential. Any value keeps
	// the result byte-identical to the sequential run: candidate chunks
	// are reduced in enumeration order under the same tie-break rule.
	Workers int
}

// DefaultOptions returns Options with sane defaults: sequential search.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// WithWorkers spreads the exhaustive enumeration over n goroutines.
//
//	n == 1: sequential (default)
//	n > 1:  parallel with deterministic, order-preserving reduction
//	n < 1:  invalid — panics, solver entry points carry no error return
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(fmt.Sprintf("search: WithWorkers requires n ≥ 1, got %d", n))
		}
		o.Workers = n
	}
}
