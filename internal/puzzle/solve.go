package puzzle

import (
	"fmt"
	"slices"
)

// Solve computes a ground-truth witness for the instance, or nil when
// none exists. Pure and deterministic: the same instance always yields
// the same witness. Only the generator needs it; play reads the witness
// embedded in the instance.
func Solve(inst *Instance) *Witness {
	return familyOf(inst.Kind).solve(inst)
}

func assertMaskable(n int) int {
	if n > maxMaskBits {
		panic(AssertionError{fmt.Sprintf("%d elements exceed subset enumeration bounds", n)})
	}
	return n
}

// solveVertexCover enumerates every node subset and keeps the smallest
// one covering all edges. Subsets that cannot beat the best so far are
// pruned before the edge scan.
func solveVertexCover(inst *Instance) *Witness {
	n := assertMaskable(inst.Nodes)
	var best mask
	bestSize := n + 1
	for i := 0; i < 1<<n; i++ {
		m := mask(i)
		if m.bitCount() >= bestSize {
			continue
		}
		if coverMaskFeasible(inst, m) {
			best, bestSize = m, m.bitCount()
		}
	}
	if bestSize > n {
		return nil
	}
	return &Witness{Set: best.indexes()}
}

func coverMaskFeasible(inst *Instance, m mask) bool {
	for _, e := range inst.Edges {
		if !m.has(e.A) && !m.has(e.B) {
			return false
		}
	}
	return true
}

// solveIndependentSet keeps the largest subset with no internal edge.
func solveIndependentSet(inst *Instance) *Witness {
	n := assertMaskable(inst.Nodes)
	var best mask
	bestSize := -1
	for i := 0; i < 1<<n; i++ {
		m := mask(i)
		if m.bitCount() <= bestSize {
			continue
		}
		if independentMaskFeasible(inst, m) {
			best, bestSize = m, m.bitCount()
		}
	}
	if bestSize < 0 {
		return nil
	}
	return &Witness{Set: best.indexes()}
}

func independentMaskFeasible(inst *Instance, m mask) bool {
	for _, e := range inst.Edges {
		if m.has(e.A) && m.has(e.B) {
			return false
		}
	}
	return true
}

// solveClique keeps the largest pairwise-adjacent subset.
func solveClique(inst *Instance) *Witness {
	n := assertMaskable(inst.Nodes)
	adj := inst.adjacency()
	var best mask
	bestSize := -1
	for i := 0; i < 1<<n; i++ {
		m := mask(i)
		if m.bitCount() <= bestSize {
			continue
		}
		if cliqueMaskFeasible(adj, m) {
			best, bestSize = m, m.bitCount()
		}
	}
	if bestSize < 0 {
		return nil
	}
	return &Witness{Set: best.indexes()}
}

func cliqueMaskFeasible(adj [][]bool, m mask) bool {
	ids := m.indexes()
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if !adj[ids[i]][ids[j]] {
				return false
			}
		}
	}
	return true
}

// The sat builder embeds the assignment its clauses were built around,
// so solving verifies that assignment instead of re-deriving one.
func solveSAT(inst *Instance) *Witness {
	a := inst.Witness.Assignment
	if len(a) != inst.VarCount {
		return nil
	}
	for _, c := range inst.Clauses {
		if !c.Satisfied(a) {
			return nil
		}
	}
	return &Witness{Assignment: slices.Clone(a)}
}

func solveSubsetSum(inst *Instance) *Witness {
	n := assertMaskable(len(inst.Values))
	for i := 0; i < 1<<n; i++ {
		if maskSum(inst.Values, mask(i)) == inst.Target {
			return &Witness{Set: mask(i).indexes()}
		}
	}
	return nil
}

func solvePartition(inst *Instance) *Witness {
	n := assertMaskable(len(inst.Values))
	total := 0
	for _, v := range inst.Values {
		total += v
	}
	if total%2 != 0 {
		return nil
	}
	// skip the empty and full masks: both sides must be non-empty
	for i := 1; i < 1<<n-1; i++ {
		if maskSum(inst.Values, mask(i)) == total/2 {
			return &Witness{Set: mask(i).indexes()}
		}
	}
	return nil
}

func maskSum(values []int, m mask) (sum int) {
	for i, v := range values {
		if m.has(i) {
			sum += v
		}
	}
	return
}
