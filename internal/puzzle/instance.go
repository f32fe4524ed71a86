package puzzle

import (
	"fmt"

	"github.com/samber/lo"
)

type Edge struct {
	A      int `json:"a"`
	B      int `json:"b"`
	Weight int `json:"weight,omitempty"` // tsp tours only, zero elsewhere
}

// A Clause holds three 1-based literals; negative means negated.
type Clause [3]int

func (c Clause) Satisfied(assignment []bool) bool {
	return lo.SomeBy(c[:], func(lit int) bool {
		v := lit
		if v < 0 {
			v = -v
		}
		if v < 1 || v > len(assignment) {
			return false
		}
		if lit < 0 {
			return !assignment[v-1]
		}
		return assignment[v-1]
	})
}

type Color int8

const (
	NoColor    Color = -1
	ColorCount       = 3
)

// Witness is a known-valid solution computed at generation time. Exactly
// one of its fields is populated, matching the instance kind.
type Witness struct {
	Set        []int   `json:"set,omitempty"`        // node ids or item indexes, ascending
	Cycle      []int   `json:"cycle,omitempty"`      // node visit order, closing edge implied
	Assignment []bool  `json:"assignment,omitempty"` // Assignment[i] is the value of variable i+1
	Colors     []Color `json:"colors,omitempty"`     // Colors[id] in 0..2
}

// Instance is one generated problem. Immutable once returned by
// [Generate]; a new round always installs a new Instance.
type Instance struct {
	Kind     Kind
	Nodes    int
	Points   []Point // display layout, indexed by node id
	Edges    []Edge
	Values   []int
	VarCount int
	Clauses  []Clause
	Target   int
	Witness  Witness
}

// Size is the count of selectable elements: nodes, items or variables.
func (inst *Instance) Size() int {
	switch inst.Kind {
	case SubsetSum, Partition:
		return len(inst.Values)
	case SAT:
		return inst.VarCount
	default:
		return inst.Nodes
	}
}

func (inst *Instance) HasEdge(a, b int) bool {
	for _, e := range inst.Edges {
		if (e.A == a && e.B == b) || (e.A == b && e.B == a) {
			return true
		}
	}
	return false
}

// EdgeWeight panics [AssertionError] when (a, b) is not an edge.
func (inst *Instance) EdgeWeight(a, b int) int {
	for _, e := range inst.Edges {
		if (e.A == a && e.B == b) || (e.A == b && e.B == a) {
			return e.Weight
		}
	}
	panic(AssertionError{fmt.Sprintf("no edge %d-%d", a, b)})
}

// CycleWeight is the total weight of the closed tour through cycle.
func (inst *Instance) CycleWeight(cycle []int) int {
	total := 0
	for i, a := range cycle {
		b := cycle[(i+1)%len(cycle)]
		total += inst.EdgeWeight(a, b)
	}
	return total
}

func (inst *Instance) String() string {
	switch inst.Kind {
	case SubsetSum, Partition:
		return fmt.Sprintf("%s(%d:%d)", inst.Kind, len(inst.Values), inst.Target)
	case SAT:
		return fmt.Sprintf("%s(%d:%d)", inst.Kind, inst.VarCount, len(inst.Clauses))
	default:
		return fmt.Sprintf("%s(%d:%d)", inst.Kind, inst.Nodes, len(inst.Edges))
	}
}

func (inst *Instance) adjacency() [][]bool {
	adj := make([][]bool, inst.Nodes)
	for i := range adj {
		adj[i] = make([]bool, inst.Nodes)
	}
	for _, e := range inst.Edges {
		adj[e.A][e.B] = true
		adj[e.B][e.A] = true
	}
	return adj
}
