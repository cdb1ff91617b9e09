// Package path models an in-progress monotone route over a goldgrid board.
//
// What:
//
//   - Path binds to one grid.Grid for its lifetime and grows one step at a
//     time via AddStep, the sole mutator.
//   - Only Down and Right steps exist; Start is a sentinel reported by
//     LastStep on a route with no steps yet.
//   - IsStepValid pre-validates a step: in bounds and not onto Rock.
//   - TotalGold tracks the exact sum of gold over every visited cell,
//     the start cell included.
//   - Clone gives copy-on-branch semantics: solvers extend copies freely
//     while ancestors and siblings stay untouched.
//
// Why:
//
//   - Both goldgrid solvers branch into alternative continuations of the
//     same prefix; independent copies make that branching safe, and the
//     replayable step history makes every answer externally verifiable.
//
// Complexity:
//
//   - IsStepValid, AddStep, TotalGold, LastStep, Position: O(1).
//   - Steps, Clone: O(L) for a route of L steps.
//
// Misuse (nil grid, AddStep without a prior IsStepValid check) panics:
// these are programming errors, not recoverable conditions.
package path
