package puzzle

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference searches below are written independently of the bitmask
// solvers: branch-and-recurse over explicit picks, no mask arithmetic.

func naiveCoverSize(inst *Instance) int {
	picked := make(map[int]bool)
	var rec func() int
	rec = func() int {
		var uncovered *Edge
		for i := range inst.Edges {
			if !picked[inst.Edges[i].A] && !picked[inst.Edges[i].B] {
				uncovered = &inst.Edges[i]
				break
			}
		}
		if uncovered == nil {
			return len(picked)
		}
		best := inst.Nodes
		for _, id := range []int{uncovered.A, uncovered.B} {
			picked[id] = true
			if size := rec(); size < best {
				best = size
			}
			delete(picked, id)
		}
		return best
	}
	return rec()
}

func naiveMaxIndependentSize(inst *Instance) int {
	var rec func(id int, chosen []int) int
	rec = func(id int, chosen []int) int {
		if id == inst.Nodes {
			return len(chosen)
		}
		best := rec(id+1, chosen)
		blocked := false
		for _, c := range chosen {
			if inst.HasEdge(c, id) {
				blocked = true
				break
			}
		}
		if !blocked {
			if size := rec(id+1, append(chosen, id)); size > best {
				best = size
			}
		}
		return best
	}
	return rec(0, nil)
}

func naiveMaxCliqueSize(inst *Instance) int {
	var rec func(id int, chosen []int) int
	rec = func(id int, chosen []int) int {
		if id == inst.Nodes {
			return len(chosen)
		}
		best := rec(id+1, chosen)
		joined := true
		for _, c := range chosen {
			if !inst.HasEdge(c, id) {
				joined = false
				break
			}
		}
		if joined {
			if size := rec(id+1, append(chosen, id)); size > best {
				best = size
			}
		}
		return best
	}
	return rec(0, nil)
}

func naiveBestTourLength(inst *Instance) int {
	perm := make([]int, 0, inst.Nodes)
	used := make([]bool, inst.Nodes)
	best := -1
	var rec func()
	rec = func() {
		if len(perm) == inst.Nodes {
			length := 0
			for i := range perm {
				length += inst.EdgeWeight(perm[i], perm[(i+1)%len(perm)])
			}
			if best < 0 || length < best {
				best = length
			}
			return
		}
		for id := 0; id < inst.Nodes; id++ {
			if used[id] {
				continue
			}
			used[id] = true
			perm = append(perm, id)
			rec()
			perm = perm[:len(perm)-1]
			used[id] = false
		}
	}
	rec()
	return best
}

func naiveSubsetAchievable(values []int, target int) bool {
	var rec func(i, sum int) bool
	rec = func(i, sum int) bool {
		if sum == target {
			return true
		}
		if i == len(values) || sum > target {
			return false
		}
		return rec(i+1, sum+values[i]) || rec(i+1, sum)
	}
	return rec(0, 0)
}

func naivePartitionable(values []int) bool {
	var rec func(i, sumA, countA, sumB, countB int) bool
	rec = func(i, sumA, countA, sumB, countB int) bool {
		if i == len(values) {
			return sumA == sumB && countA > 0 && countB > 0
		}
		return rec(i+1, sumA+values[i], countA+1, sumB, countB) ||
			rec(i+1, sumA, countA, sumB+values[i], countB+1)
	}
	return rec(0, 0, 0, 0, 0)
}

func randomGraphInstance(kind Kind, n int, p float64, r *rand.Rand) *Instance {
	inst := &Instance{Kind: kind, Nodes: n}
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if r.Float64() < p {
				inst.Edges = append(inst.Edges, Edge{A: a, B: b})
			}
		}
	}
	return inst
}

func TestVertexCoverSolverMatchesNaiveSearch(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(21, 22))
	for range 200 {
		inst := randomGraphInstance(VertexCover, 4+r.IntN(5), 0.2+r.Float64()*0.6, r)
		w := solveVertexCover(inst)
		require.NotNil(t, w)
		require.True(t, coverMaskFeasible(inst, maskOf(w.Set)))
		assert.Equal(t, naiveCoverSize(inst), len(w.Set))
	}
}

func TestIndependentSetSolverMatchesNaiveSearch(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(23, 24))
	for range 200 {
		inst := randomGraphInstance(IndependentSet, 4+r.IntN(5), 0.2+r.Float64()*0.6, r)
		w := solveIndependentSet(inst)
		require.NotNil(t, w)
		require.True(t, independentMaskFeasible(inst, maskOf(w.Set)))
		assert.Equal(t, naiveMaxIndependentSize(inst), len(w.Set))
	}
}

func TestCliqueSolverMatchesNaiveSearch(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(25, 26))
	for range 200 {
		inst := randomGraphInstance(Clique, 4+r.IntN(5), 0.2+r.Float64()*0.6, r)
		w := solveClique(inst)
		require.NotNil(t, w)
		require.True(t, cliqueMaskFeasible(inst.adjacency(), maskOf(w.Set)))
		assert.Equal(t, naiveMaxCliqueSize(inst), len(w.Set))
	}
}

func TestTourSolverMatchesNaiveSearch(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(27, 28))
	cfg := DefaultConfig(TSP)
	for range 50 {
		inst, err := buildTSP(cfg.normalized(TSP), r)
		require.NoError(t, err)
		w := solveTSP(inst)
		require.NotNil(t, w)
		assert.Equal(t, naiveBestTourLength(inst), inst.CycleWeight(w.Cycle))
		assert.Equal(t, 0, w.Cycle[0])
	}
}

func TestSubsetSumSolverAgreesWithNaiveSearch(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(29, 30))
	for range 500 {
		n := 3 + r.IntN(6)
		values := make([]int, n)
		for i := range values {
			values[i] = 1 + r.IntN(30)
		}
		inst := &Instance{Kind: SubsetSum, Values: values, Target: r.IntN(120)}
		w := solveSubsetSum(inst)
		if naiveSubsetAchievable(values, inst.Target) {
			require.NotNil(t, w, "no witness for achievable target %d over %v", inst.Target, values)
			sum := 0
			for _, i := range w.Set {
				sum += values[i]
			}
			assert.Equal(t, inst.Target, sum)
		} else {
			assert.Nil(t, w)
		}
	}
}

func TestPartitionSolverAgreesWithNaiveSearch(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(31, 32))
	for range 500 {
		n := 2 + r.IntN(7)
		values := make([]int, n)
		for i := range values {
			values[i] = 1 + r.IntN(20)
		}
		inst := &Instance{Kind: Partition, Values: values}
		w := solvePartition(inst)
		if naivePartitionable(values) {
			require.NotNil(t, w, "no witness for partitionable %v", values)
			in := 0
			for _, i := range w.Set {
				in += values[i]
			}
			total := 0
			for _, v := range values {
				total += v
			}
			assert.Equal(t, total, 2*in)
			assert.NotEmpty(t, w.Set)
			assert.Less(t, len(w.Set), n)
		} else {
			assert.Nil(t, w)
		}
	}
}

func TestColoringSolverFindsProperColorings(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(33, 34))
	cfg := DefaultConfig(Coloring).normalized(Coloring)
	for range 100 {
		inst, err := buildColoring(cfg, r)
		require.NoError(t, err)
		w := solveColoring(inst)
		require.NotNil(t, w, "three-partition construction must be colorable: %s", inst)
		sel := NewSelection(inst)
		copy(sel.Colors, w.Colors)
		assert.True(t, Win(inst, sel))
	}
}

func TestColoringSolverRejectsFourClique(t *testing.T) {
	t.Parallel()
	inst := fallbackClique()
	inst.Kind = Coloring
	assert.Nil(t, solveColoring(inst))
}

func TestHamiltonianSolverFindsHiddenCycle(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(35, 36))
	cfg := DefaultConfig(Hamiltonian).normalized(Hamiltonian)
	for range 100 {
		inst, err := buildHamiltonian(cfg, r)
		require.NoError(t, err)
		w := solveHamiltonian(inst)
		require.NotNil(t, w, "hidden cycle construction must have a cycle: %s", inst)
		sel := NewSelection(inst)
		sel.Path = w.Cycle
		assert.True(t, hamiltonianFeasible(inst, sel))
	}
}

func TestHamiltonianSolverRejectsStarGraph(t *testing.T) {
	t.Parallel()
	inst := &Instance{
		Kind:  Hamiltonian,
		Nodes: 4,
		Edges: []Edge{{A: 0, B: 1}, {A: 0, B: 2}, {A: 0, B: 3}},
	}
	assert.Nil(t, solveHamiltonian(inst))
}
