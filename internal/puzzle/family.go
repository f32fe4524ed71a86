package puzzle

import (
	"fmt"
	"math/rand/v2"
)

// family bundles the strategy functions one problem kind plugs into the
// shared generate/solve/check pipeline.
type family struct {
	build    func(Config, *rand.Rand) (*Instance, error)
	solve    func(*Instance) *Witness
	feasible func(*Instance, *Selection) bool
	conflict func(*Instance, *Selection) *Conflict
	win      func(*Instance, *Selection) bool
	fallback func() *Instance
}

var families = map[Kind]*family{
	VertexCover: {
		build:    buildVertexCover,
		solve:    solveVertexCover,
		feasible: coverFeasible,
		conflict: coverConflict,
		win:      coverWin,
		fallback: fallbackVertexCover,
	},
	IndependentSet: {
		build:    buildIndependentSet,
		solve:    solveIndependentSet,
		feasible: independentFeasible,
		conflict: independentConflict,
		win:      independentWin,
		fallback: fallbackIndependentSet,
	},
	Clique: {
		build:    buildClique,
		solve:    solveClique,
		feasible: cliqueFeasible,
		conflict: cliqueConflict,
		win:      cliqueWin,
		fallback: fallbackClique,
	},
	Coloring: {
		build:    buildColoring,
		solve:    solveColoring,
		feasible: coloringFeasible,
		conflict: coloringConflict,
		win:      coloringWin,
		fallback: fallbackColoring,
	},
	Hamiltonian: {
		build:    buildHamiltonian,
		solve:    solveHamiltonian,
		feasible: hamiltonianFeasible,
		conflict: pathConflict,
		win:      hamiltonianWin,
		fallback: fallbackHamiltonian,
	},
	TSP: {
		build:    buildTSP,
		solve:    solveTSP,
		feasible: tourFeasible,
		conflict: pathConflict,
		win:      tourWin,
		fallback: fallbackTSP,
	},
	SAT: {
		build:    buildSAT,
		solve:    solveSAT,
		feasible: satFeasible,
		conflict: satConflict,
		win:      satFeasible,
		fallback: fallbackSAT,
	},
	SubsetSum: {
		build:    buildSubsetSum,
		solve:    solveSubsetSum,
		feasible: subsetFeasible,
		conflict: subsetConflict,
		win:      subsetFeasible,
		fallback: fallbackSubsetSum,
	},
	Partition: {
		build:    buildPartition,
		solve:    solvePartition,
		feasible: partitionFeasible,
		conflict: partitionConflict,
		win:      partitionFeasible,
		fallback: fallbackPartition,
	},
}

func familyOf(kind Kind) *family {
	f, ok := families[kind]
	if !ok {
		panic(AssertionError{fmt.Sprintf("no family registered for %v", kind)})
	}
	return f
}
