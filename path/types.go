// Package path defines the step alphabet for monotone routes
// in github.com/katalvlaran/goldgrid.
package path

// Step is a single movement in a monotone route.
//
// Start is a sentinel, not a movement: it is what LastStep reports for a
// route that has taken no steps yet, letting callers distinguish "no route
// chosen" from a real zero-length candidate.
type Step int

const (
	// Start is the sentinel "no step taken yet". Zero value on purpose.
	Start Step = iota
	// Down moves the head one row down: (i,j) → (i+1,j).
	Down
	// Right moves the head one column right: (i,j) → (i,j+1).
	Right
)

// String returns a human-readable step name.
func (s Step) String() string {
	switch s {
	case Down:
		return "Down"
	case Right:
		return "Right"
	case Start:
		return "Start"
	}

	return "Step(?)"
}
