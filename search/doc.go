// Package search solves the monotone gold-harvest problem two independent
// ways, letting each answer cross-check the other.
//
// What:
//
//   - Exhaustive enumerates every monotone route by decoding bit patterns
//     (1 = Right, 0 = Down, LSB first), silently dropping illegal single
//     steps, and keeps the first-found maximum.
//   - DynamicProgramming fills a rows×columns table of best-known routes by
//     optimal-substructure composition, then scans for the global best.
//   - Both return a *path.Path the caller can replay and verify; for the
//     same board the two always agree on total gold.
//
// Why:
//
//   - Route planning on blocked terrain: collect the most value moving only
//     right/down from the top-left corner, stopping anywhere.
//   - The exhaustive solver doubles as a reference oracle for the
//     polynomial one on boards small enough to enumerate.
//
// Complexity:
//
//   - Exhaustive:          O(2^(R+C) · (R+C)) — small boards only;
//     requires R+C-2 < 64 (enumeration counter fits 64 bits).
//   - DynamicProgramming:  O(R×C) transitions, O(R×C×(R+C)) with route copies.
//
// Options:
//
//   - WithWorkers(n): parallel exhaustive enumeration; the deterministic
//     tie-break of the sequential order is preserved for any n.
//
// Both solvers are pure functions over an immutable Grid: no state survives
// a call, and one Grid may serve any number of concurrent searches.
// Precondition violations (nil grid, oversized board for Exhaustive,
// WithWorkers(n<1)) panic — caller misuse, not recoverable conditions.
// A Rock start cell is not a violation: both solvers return the degenerate
// zero-step, zero-gold route for it.
package search
