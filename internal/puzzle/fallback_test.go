package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackInstancesAreValid(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			inst := familyOf(kind).fallback()
			require.Equal(t, kind, inst.Kind)

			sel := WitnessSelection(inst)
			assert.True(t, Feasible(inst, sel), "witness must be feasible")
			assert.True(t, Win(inst, sel), "witness must win")

			require.NotNil(t, Solve(inst), "fallback must be solvable")
		})
	}
}

func TestFallbackTargetsAreOptimal(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			inst := familyOf(kind).fallback()
			w := Solve(inst)
			require.NotNil(t, w)

			switch kind {
			case VertexCover, IndependentSet, Clique:
				assert.Len(t, w.Set, inst.Target)
			case Coloring:
				assert.Equal(t, ColorCount, inst.Target)
				assert.NotContains(t, w.Colors, NoColor)
			case Hamiltonian:
				assert.Len(t, w.Cycle, inst.Target)
			case TSP:
				assert.Equal(t, inst.Target, inst.CycleWeight(w.Cycle))
			case SAT:
				assert.Equal(t, len(inst.Clauses), inst.Target)
			case SubsetSum:
				sum := 0
				for _, i := range w.Set {
					sum += inst.Values[i]
				}
				assert.Equal(t, inst.Target, sum)
			case Partition:
				total := 0
				for _, v := range inst.Values {
					total += v
				}
				assert.Equal(t, total, 2*inst.Target)
			}
		})
	}
}
