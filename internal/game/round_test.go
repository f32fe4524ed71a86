package game

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddrozdov/nparcade/internal/puzzle"
)

func testRound(kind puzzle.Kind, seed uint64) (*Round, *rand.Rand) {
	r := rand.New(rand.NewPCG(seed, uint64(kind)))
	return NewRound(kind, puzzle.DefaultConfig(kind), r), r
}

// solveCurrent replays the current instance's witness through the
// command grammar, stopping as soon as the round advances. A formula
// can become satisfied before the whole hidden assignment is entered,
// so the early exit matters.
func solveCurrent(t *testing.T, rd *Round, r *rand.Rand) {
	t.Helper()
	w := rd.Instance.Witness
	var cmds []string
	switch rd.Kind {
	case puzzle.VertexCover, puzzle.IndependentSet, puzzle.Clique:
		for _, id := range w.Set {
			cmds = append(cmds, fmt.Sprintf("t %d", id))
		}
	case puzzle.Coloring:
		for id, c := range w.Colors {
			cmds = append(cmds, fmt.Sprintf("c %d %d", id, c))
		}
	case puzzle.Hamiltonian, puzzle.TSP:
		for _, id := range w.Cycle {
			cmds = append(cmds, fmt.Sprintf("a %d", id))
		}
	case puzzle.SAT:
		for v, set := range w.Assignment {
			if set {
				cmds = append(cmds, fmt.Sprintf("v %d", v))
			}
		}
	case puzzle.SubsetSum, puzzle.Partition:
		for _, i := range w.Set {
			cmds = append(cmds, fmt.Sprintf("i %d", i))
		}
	}
	before := rd.Solved
	for _, cmd := range cmds {
		require.NoError(t, rd.Apply(cmd, r))
		if rd.Solved > before {
			return
		}
	}
	require.Greater(t, rd.Solved, before, "witness commands did not win")
}

func TestNewRoundIsLive(t *testing.T) {
	for _, kind := range puzzle.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			rd, _ := testRound(kind, 1)
			assert.False(t, rd.Over)
			assert.False(t, rd.Revealed)
			assert.Zero(t, rd.Solved)
			assert.Zero(t, rd.Score)
			require.NotNil(t, rd.Instance)
			assert.False(t, puzzle.Win(rd.Instance, rd.Selection),
				"a fresh round must not start solved")
		})
	}
}

func TestSolvingAdvancesToAFreshInstance(t *testing.T) {
	for _, kind := range puzzle.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			rd, r := testRound(kind, 3)
			first := rd.Instance
			size := first.Size()

			solveCurrent(t, rd, r)

			assert.Equal(t, 1, rd.Solved)
			assert.Equal(t, size, rd.Score)
			assert.False(t, rd.Over, "a win keeps the round running")
			assert.NotSame(t, first, rd.Instance)
			assert.False(t, puzzle.Win(rd.Instance, rd.Selection))
		})
	}
}

func TestStreakAccumulates(t *testing.T) {
	rd, r := testRound(puzzle.SubsetSum, 5)
	want := 0
	for i := 0; i < 3; i++ {
		want += rd.Instance.Size()
		solveCurrent(t, rd, r)
	}
	assert.Equal(t, 3, rd.Solved)
	assert.Equal(t, want, rd.Score)
}

func TestTimeoutRevealsTheWitnessOnce(t *testing.T) {
	rd, r := testRound(puzzle.Clique, 9)
	require.NoError(t, rd.Apply("z", r))

	assert.True(t, rd.Over)
	assert.True(t, rd.Revealed)
	assert.Zero(t, rd.Solved, "a reveal banks nothing")
	assert.True(t, puzzle.Win(rd.Instance, rd.Selection),
		"the revealed selection is the witness")

	snapshot, err := rd.Bytes()
	require.NoError(t, err)

	require.NoError(t, rd.Apply("z", r))
	again, err := rd.Bytes()
	require.NoError(t, err)
	assert.Equal(t, snapshot, again, "a second timeout changes nothing")

	assert.ErrorIs(t, rd.Apply("t 0", r), ErrRoundOver)
}

func TestForfeitActsLikeTimeout(t *testing.T) {
	rd, r := testRound(puzzle.Coloring, 11)
	require.NoError(t, rd.Apply("r", r))
	assert.True(t, rd.Over)
	assert.True(t, rd.Revealed)
	assert.True(t, puzzle.Win(rd.Instance, rd.Selection))
}

func TestGobRoundTripPreservesState(t *testing.T) {
	for _, kind := range []puzzle.Kind{puzzle.VertexCover, puzzle.SAT, puzzle.TSP} {
		t.Run(kind.String(), func(t *testing.T) {
			rd, r := testRound(kind, 7)
			solveCurrent(t, rd, r)

			b, err := rd.Bytes()
			require.NoError(t, err)

			decoded, err := DecodeRound(b)
			require.NoError(t, err)
			assert.Equal(t, rd, decoded)
		})
	}
}

func TestDecodeRoundRejectsGarbage(t *testing.T) {
	_, err := DecodeRound([]byte("not a gob stream"))
	assert.Error(t, err)
}
