package path_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/goldgrid/grid"
	"github.com/katalvlaran/goldgrid/path"
)

// mustGrid builds a grid or fails the test immediately.
func mustGrid(t *testing.T, values [][]int) *grid.Grid {
	t.Helper()
	g, err := grid.From2D(values)
	require.NoError(t, err, "test grid must construct")

	return g
}

// TestNew_StartState verifies the freshly-built route: head (0,0), no steps,
// gold equal to the start cell's value.
func TestNew_StartState(t *testing.T) {
	p := path.New(mustGrid(t, [][]int{{7, 1}, {2, 3}}))

	i, j := p.Position()
	assert.Equal(t, 0, i, "fresh head row")
	assert.Equal(t, 0, j, "fresh head column")
	assert.Equal(t, 0, p.Len(), "fresh route has no steps")
	assert.Equal(t, path.Start, p.LastStep(), "LastStep must report the Start sentinel")
	assert.Equal(t, 7, p.TotalGold(), "gold starts at the start cell's value")
}

// TestNew_RockStart verifies the degenerate zero-gold route on a rock start.
func TestNew_RockStart(t *testing.T) {
	p := path.New(mustGrid(t, [][]int{{-1, 5}}))
	assert.Equal(t, 0, p.TotalGold(), "rock start contributes no gold")
	assert.Equal(t, path.Start, p.LastStep())
}

// TestNew_NilGridPanics verifies that binding to a nil grid panics.
func TestNew_NilGridPanics(t *testing.T) {
	assert.Panics(t, func() { path.New(nil) }, "New(nil) must panic")
}

// TestIsStepValid covers bounds, rock blocking, and the Start sentinel.
func TestIsStepValid(t *testing.T) {
	// 2×2 board with a rock to the right of the start.
	p := path.New(mustGrid(t, [][]int{{1, -1}, {4, 9}}))

	assert.False(t, p.IsStepValid(path.Right), "step onto rock must be invalid")
	assert.True(t, p.IsStepValid(path.Down), "step onto open cell must be valid")
	assert.False(t, p.IsStepValid(path.Start), "Start is a sentinel, never a valid step")

	p.AddStep(path.Down)
	p.AddStep(path.Right)
	assert.False(t, p.IsStepValid(path.Down), "step below the last row must be invalid")
	assert.False(t, p.IsStepValid(path.Right), "step past the last column must be invalid")
}

// TestAddStep_AdvancesAndAccumulates verifies head movement, step recording,
// and gold accumulation along a short route.
func TestAddStep_AdvancesAndAccumulates(t *testing.T) {
	p := path.New(mustGrid(t, [][]int{
		{1, 2, 0},
		{3, 0, 4},
	}))

	p.AddStep(path.Down)
	p.AddStep(path.Right)
	p.AddStep(path.Right)

	i, j := p.Position()
	assert.Equal(t, 1, i, "head row after Down,Right,Right")
	assert.Equal(t, 2, j, "head column after Down,Right,Right")
	assert.Equal(t, 1+3+0+4, p.TotalGold(), "gold = sum over visited cells")
	assert.Equal(t, []path.Step{path.Down, path.Right, path.Right}, p.Steps(), "step history in order")
	assert.Equal(t, path.Right, p.LastStep())
}

// TestAddStep_InvalidPanics verifies the asserted precondition on AddStep.
func TestAddStep_InvalidPanics(t *testing.T) {
	p := path.New(mustGrid(t, [][]int{{1}}))
	assert.Panics(t, func() { p.AddStep(path.Right) }, "AddStep off the board must panic")
	assert.Panics(t, func() { p.AddStep(path.Start) }, "AddStep(Start) must panic")
}

// TestClone_Independence verifies copy-on-branch semantics: extending a
// clone never mutates its ancestor, and vice versa.
func TestClone_Independence(t *testing.T) {
	p := path.New(mustGrid(t, [][]int{
		{1, 2},
		{3, 4},
	}))
	p.AddStep(path.Down)

	c := p.Clone()
	c.AddStep(path.Right)

	assert.Equal(t, 1, p.Len(), "ancestor length unchanged by clone extension")
	assert.Equal(t, 4, p.TotalGold(), "ancestor gold unchanged by clone extension")
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 8, c.TotalGold())

	// Extending the ancestor after cloning must not leak into the clone.
	p.AddStep(path.Right)
	assert.Equal(t, []path.Step{path.Down, path.Right}, c.Steps(), "clone history isolated from ancestor growth")
}

// TestSteps_ReturnsCopy verifies the defensive copy of the step history.
func TestSteps_ReturnsCopy(t *testing.T) {
	p := path.New(mustGrid(t, [][]int{{1, 2}}))
	p.AddStep(path.Right)

	s := p.Steps()
	s[0] = path.Down
	assert.Equal(t, path.Right, p.LastStep(), "mutating the returned slice must not affect the route")
}
