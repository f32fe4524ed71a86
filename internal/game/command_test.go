package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddrozdov/nparcade/internal/puzzle"
)

// fixedRound wraps a hand-built instance so command tests stay fully
// deterministic regardless of generator behavior.
func fixedRound(inst *puzzle.Instance) *Round {
	return &Round{
		Kind:      inst.Kind,
		Config:    puzzle.DefaultConfig(inst.Kind),
		Instance:  inst,
		Selection: puzzle.NewSelection(inst),
	}
}

func pathCoverRound() *Round {
	return fixedRound(&puzzle.Instance{
		Kind:    puzzle.VertexCover,
		Nodes:   3,
		Edges:   []puzzle.Edge{{A: 0, B: 1}, {A: 1, B: 2}},
		Target:  1,
		Witness: puzzle.Witness{Set: []int{1}},
	})
}

func squareTourRound() *Round {
	return fixedRound(&puzzle.Instance{
		Kind:  puzzle.Hamiltonian,
		Nodes: 4,
		Edges: []puzzle.Edge{
			{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 3}, {A: 3, B: 0},
		},
		Target:  4,
		Witness: puzzle.Witness{Cycle: []int{0, 1, 2, 3}},
	})
}

func triangleColoringRound() *Round {
	return fixedRound(&puzzle.Instance{
		Kind:    puzzle.Coloring,
		Nodes:   3,
		Edges:   []puzzle.Edge{{A: 0, B: 1}, {A: 0, B: 2}, {A: 1, B: 2}},
		Target:  puzzle.ColorCount,
		Witness: puzzle.Witness{Colors: []puzzle.Color{0, 1, 2}},
	})
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestUnknownCommandRejected(t *testing.T) {
	rd := pathCoverRound()
	assert.ErrorIs(t, rd.Apply("q", testRand()), ErrBadCommand)
	assert.ErrorIs(t, rd.Apply("", testRand()), ErrBadCommand)
}

func TestWrongArityRejected(t *testing.T) {
	rd := pathCoverRound()
	for _, line := range []string{"t", "t 1 2", "c 1", "p 0", "z 1"} {
		assert.ErrorIs(t, rd.Apply(line, testRand()), ErrBadCommand, "line %q", line)
	}
}

func TestNonNumericArgsRejected(t *testing.T) {
	rd := pathCoverRound()
	assert.ErrorIs(t, rd.Apply("t one", testRand()), ErrBadCommand)

	crd := triangleColoringRound()
	assert.ErrorIs(t, crd.Apply("c 0 red", testRand()), ErrBadCommand)
}

func TestWrongFamilyCommandsRejected(t *testing.T) {
	tests := []struct {
		rd   *Round
		line string
	}{
		{pathCoverRound(), "a 0"},
		{pathCoverRound(), "v 0"},
		{pathCoverRound(), "c 0 1"},
		{pathCoverRound(), "i 0"},
		{squareTourRound(), "t 0"},
		{triangleColoringRound(), "p"},
	}
	for _, test := range tests {
		assert.ErrorIs(t, test.rd.Apply(test.line, testRand()), ErrBadCommand,
			"%s on %s", test.line, test.rd.Kind)
	}
}

func TestOutOfRangeArgsRejected(t *testing.T) {
	tests := []struct {
		rd   *Round
		line string
	}{
		{pathCoverRound(), "t 99"},
		{pathCoverRound(), "t -1"},
		{squareTourRound(), "a 4"},
		{triangleColoringRound(), "c 0 7"},
		{triangleColoringRound(), "c 0 -2"},
		{triangleColoringRound(), "c 5 0"},
	}
	for _, test := range tests {
		assert.ErrorIs(t, test.rd.Apply(test.line, testRand()), ErrBadCommand,
			"%s on %s", test.line, test.rd.Kind)
	}
}

func TestBadCommandLeavesStateUntouched(t *testing.T) {
	rd := pathCoverRound()
	require.NoError(t, rd.Apply("t 0", testRand()))

	before, err := rd.Bytes()
	require.NoError(t, err)

	assert.Error(t, rd.Apply("t 99", testRand()))
	assert.Error(t, rd.Apply("bogus", testRand()))

	after, err := rd.Bytes()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestToggleTwiceRemovesThePick(t *testing.T) {
	rd := pathCoverRound()
	r := testRand()
	require.NoError(t, rd.Apply("t 0", r))
	assert.Equal(t, []int{0}, rd.Selection.Picked)
	require.NoError(t, rd.Apply("t 0", r))
	assert.Empty(t, rd.Selection.Picked)
}

func TestTourAppendAndPop(t *testing.T) {
	rd := squareTourRound()
	r := testRand()
	require.NoError(t, rd.Apply("a 0", r))
	require.NoError(t, rd.Apply("a 1", r))
	require.NoError(t, rd.Apply("p", r))
	assert.Equal(t, []int{0}, rd.Selection.Path)

	// popping an empty tour is a quiet no-op
	require.NoError(t, rd.Apply("p", r))
	require.NoError(t, rd.Apply("p", r))
	assert.Empty(t, rd.Selection.Path)
}

func TestClearResetsSelection(t *testing.T) {
	rd := triangleColoringRound()
	r := testRand()
	require.NoError(t, rd.Apply("c 0 1", r))
	require.NoError(t, rd.Apply("c 1 2", r))
	require.NoError(t, rd.Apply("x", r))
	assert.Equal(t, puzzle.NewSelection(rd.Instance), rd.Selection)
}

func TestCompletingTheWitnessWinsThroughCommands(t *testing.T) {
	rd := pathCoverRound()
	require.NoError(t, rd.Apply("t 1", testRand()))
	assert.Equal(t, 1, rd.Solved)
	assert.Equal(t, 3, rd.Score)
}

func TestBatchReportsFailingLine(t *testing.T) {
	rd := pathCoverRound()
	err := rd.ApplyBatch("g\nt bogus", testRand())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadCommand)
	assert.ErrorContains(t, err, "line 2")
}

func TestBatchSkipsBlankLines(t *testing.T) {
	rd := pathCoverRound()
	assert.NoError(t, rd.ApplyBatch("g\n\ng\n", testRand()))
}

func TestBatchStopsOnceTheRoundEnds(t *testing.T) {
	rd := pathCoverRound()
	require.NoError(t, rd.ApplyBatch("t 0\nz\nt 2", testRand()))
	assert.True(t, rd.Over)
	assert.True(t, puzzle.Win(rd.Instance, rd.Selection), "witness revealed")
}

func TestUnsetColorViaMinusOne(t *testing.T) {
	rd := triangleColoringRound()
	r := testRand()
	require.NoError(t, rd.Apply("c 0 2", r))
	require.NoError(t, rd.Apply("c 0 -1", r))
	assert.Equal(t, puzzle.NoColor, rd.Selection.Colors[0])
}
