package puzzle

import (
	"fmt"

	"github.com/samber/lo"
)

// Feasible reports whether the selection satisfies the instance's
// constraint predicate. Pure; safe to call on every player action.
// Out-of-range references in the selection are dropped or reported as
// conflicts, never a panic.
func Feasible(inst *Instance, sel *Selection) bool {
	return familyOf(inst.Kind).feasible(inst, sel)
}

// FindConflict locates a violated constraint for live error feedback,
// or returns nil. For sequence families a nil conflict does not mean
// the selection is complete, only that nothing picked so far is wrong.
func FindConflict(inst *Instance, sel *Selection) *Conflict {
	return familyOf(inst.Kind).conflict(inst, sel)
}

// Win reports whether the selection both satisfies the constraints and
// meets the family's optimality target.
func Win(inst *Instance, sel *Selection) bool {
	return familyOf(inst.Kind).win(inst, sel)
}

type ConflictKind int

const (
	UncoveredEdge ConflictKind = iota
	AdjacentPicks
	MissingEdge
	SameColorEdge
	OutOfRange
	RepeatNode
	BrokenPath
	UnsatClause
	SumMismatch
)

// Conflict describes one violated constraint. A and B are edge
// endpoints for the edge kinds, a node id for OutOfRange and
// RepeatNode, and a clause index for UnsatClause. Got and Want carry
// the mismatched sums for the numeric kinds.
type Conflict struct {
	Kind ConflictKind
	A, B int
	Got  int
	Want int
}

func (c *Conflict) String() string {
	switch c.Kind {
	case UncoveredEdge:
		return fmt.Sprintf("edge %d-%d is not covered", c.A, c.B)
	case AdjacentPicks:
		return fmt.Sprintf("nodes %d and %d are adjacent", c.A, c.B)
	case MissingEdge:
		return fmt.Sprintf("nodes %d and %d are not adjacent", c.A, c.B)
	case SameColorEdge:
		return fmt.Sprintf("nodes %d and %d share a color", c.A, c.B)
	case OutOfRange:
		return fmt.Sprintf("no element %d", c.A)
	case RepeatNode:
		return fmt.Sprintf("node %d repeats", c.A)
	case BrokenPath:
		return fmt.Sprintf("no edge between %d and %d", c.A, c.B)
	case UnsatClause:
		return fmt.Sprintf("clause %d is not satisfied", c.A+1)
	case SumMismatch:
		return fmt.Sprintf("sums %d and %d differ", c.Got, c.Want)
	}
	return "conflict"
}

func coverConflict(inst *Instance, sel *Selection) *Conflict {
	picked := sel.pickedSet(inst.Nodes)
	for _, e := range inst.Edges {
		if !picked[e.A] && !picked[e.B] {
			return &Conflict{Kind: UncoveredEdge, A: e.A, B: e.B}
		}
	}
	return nil
}

func coverFeasible(inst *Instance, sel *Selection) bool {
	return coverConflict(inst, sel) == nil
}

func coverWin(inst *Instance, sel *Selection) bool {
	return coverFeasible(inst, sel) && sel.pickedCount(inst.Nodes) == inst.Target
}

func independentConflict(inst *Instance, sel *Selection) *Conflict {
	picked := sel.pickedSet(inst.Nodes)
	for _, e := range inst.Edges {
		if picked[e.A] && picked[e.B] {
			return &Conflict{Kind: AdjacentPicks, A: e.A, B: e.B}
		}
	}
	return nil
}

func independentFeasible(inst *Instance, sel *Selection) bool {
	return independentConflict(inst, sel) == nil
}

func independentWin(inst *Instance, sel *Selection) bool {
	return independentFeasible(inst, sel) && sel.pickedCount(inst.Nodes) == inst.Target
}

func cliqueConflict(inst *Instance, sel *Selection) *Conflict {
	ids := sel.pickedIDs(inst.Nodes)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if !inst.HasEdge(ids[i], ids[j]) {
				return &Conflict{Kind: MissingEdge, A: ids[i], B: ids[j]}
			}
		}
	}
	return nil
}

func cliqueFeasible(inst *Instance, sel *Selection) bool {
	return cliqueConflict(inst, sel) == nil
}

func cliqueWin(inst *Instance, sel *Selection) bool {
	return cliqueFeasible(inst, sel) && sel.pickedCount(inst.Nodes) == inst.Target
}

func coloringConflict(inst *Instance, sel *Selection) *Conflict {
	for _, e := range inst.Edges {
		ca, cb := sel.colorOf(e.A), sel.colorOf(e.B)
		if ca != NoColor && ca == cb {
			return &Conflict{Kind: SameColorEdge, A: e.A, B: e.B}
		}
	}
	return nil
}

// A partial coloring with no clashing edge is feasible; winning
// additionally needs every node colored. Any proper coloring wins, not
// just the generator's.
func coloringFeasible(inst *Instance, sel *Selection) bool {
	return coloringConflict(inst, sel) == nil
}

func coloringWin(inst *Instance, sel *Selection) bool {
	if len(sel.Colors) != inst.Nodes || lo.Contains(sel.Colors, NoColor) {
		return false
	}
	return coloringFeasible(inst, sel)
}

// pathConflict reports the first break in an ordered node sequence:
// an unknown id, a revisited node, a step without an edge, or a full
// sequence that does not close back to its start.
func pathConflict(inst *Instance, sel *Selection) *Conflict {
	seen := make([]bool, inst.Nodes)
	for i, id := range sel.Path {
		if id < 0 || id >= inst.Nodes {
			return &Conflict{Kind: OutOfRange, A: id}
		}
		if seen[id] {
			return &Conflict{Kind: RepeatNode, A: id}
		}
		seen[id] = true
		if i > 0 && !inst.HasEdge(sel.Path[i-1], id) {
			return &Conflict{Kind: BrokenPath, A: sel.Path[i-1], B: id}
		}
	}
	if len(sel.Path) == inst.Nodes && inst.Nodes > 0 {
		first, last := sel.Path[0], sel.Path[len(sel.Path)-1]
		if !inst.HasEdge(last, first) {
			return &Conflict{Kind: BrokenPath, A: last, B: first}
		}
	}
	return nil
}

func hamiltonianFeasible(inst *Instance, sel *Selection) bool {
	return len(sel.Path) == inst.Nodes && pathConflict(inst, sel) == nil
}

// hamiltonianWin accepts the witness cycle in any rotation and either
// direction. A different valid cycle stays feasible but does not win.
func hamiltonianWin(inst *Instance, sel *Selection) bool {
	return hamiltonianFeasible(inst, sel) && cyclesEquivalent(sel.Path, inst.Witness.Cycle)
}

func tourFeasible(inst *Instance, sel *Selection) bool {
	return len(sel.Path) == inst.Nodes && pathConflict(inst, sel) == nil
}

// tourWin requires the exact optimal length: a valid but costlier tour
// does not win.
func tourWin(inst *Instance, sel *Selection) bool {
	return tourFeasible(inst, sel) && inst.CycleWeight(sel.Path) == inst.Target
}

func cyclesEquivalent(a, b []int) bool {
	n := len(a)
	if n == 0 || n != len(b) {
		return false
	}
	start := -1
	for i, id := range b {
		if id == a[0] {
			start = i
			break
		}
	}
	if start < 0 {
		return false
	}
	forward, backward := true, true
	for i := 0; i < n; i++ {
		if a[i] != b[(start+i)%n] {
			forward = false
		}
		if a[i] != b[(start-i+n)%n] {
			backward = false
		}
	}
	return forward || backward
}

func satConflict(inst *Instance, sel *Selection) *Conflict {
	a := sel.assignment(inst.VarCount)
	for i, c := range inst.Clauses {
		if !c.Satisfied(a) {
			return &Conflict{Kind: UnsatClause, A: i}
		}
	}
	return nil
}

// Any satisfying assignment wins, not just the hidden one.
func satFeasible(inst *Instance, sel *Selection) bool {
	return satConflict(inst, sel) == nil
}

func subsetConflict(inst *Instance, sel *Selection) *Conflict {
	got := truthSum(inst.Values, sel)
	if got != inst.Target {
		return &Conflict{Kind: SumMismatch, Got: got, Want: inst.Target}
	}
	return nil
}

func subsetFeasible(inst *Instance, sel *Selection) bool {
	return subsetConflict(inst, sel) == nil
}

func partitionConflict(inst *Instance, sel *Selection) *Conflict {
	in := truthSum(inst.Values, sel)
	out := 0
	for _, v := range inst.Values {
		out += v
	}
	out -= in
	if in != out {
		return &Conflict{Kind: SumMismatch, Got: in, Want: out}
	}
	return nil
}

func partitionFeasible(inst *Instance, sel *Selection) bool {
	return partitionConflict(inst, sel) == nil
}

func truthSum(values []int, sel *Selection) (sum int) {
	for i, in := range sel.assignment(len(values)) {
		if in {
			sum += values[i]
		}
	}
	return
}
