package puzzle

// Selection is the player's current candidate answer. Which field is in
// use depends on the instance kind: Picked for node and item sets, Path
// for ordered tours, Truth for boolean assignments, Colors for node
// colorings. The active round owns the Selection and replaces it
// whenever a new Instance is installed.
type Selection struct {
	Picked []int
	Path   []int
	Truth  []bool
	Colors []Color
}

func NewSelection(inst *Instance) *Selection {
	sel := &Selection{}
	switch inst.Kind {
	case Coloring:
		sel.Colors = make([]Color, inst.Nodes)
		for i := range sel.Colors {
			sel.Colors[i] = NoColor
		}
	case SAT:
		sel.Truth = make([]bool, inst.VarCount)
	case SubsetSum, Partition:
		sel.Truth = make([]bool, len(inst.Values))
	}
	return sel
}

// WitnessSelection expresses the instance's witness as a selection, for
// the post-timeout reveal and for validity checks.
func WitnessSelection(inst *Instance) *Selection {
	sel := NewSelection(inst)
	switch inst.Kind {
	case VertexCover, IndependentSet, Clique:
		sel.Picked = append(sel.Picked, inst.Witness.Set...)
	case Coloring:
		copy(sel.Colors, inst.Witness.Colors)
	case Hamiltonian, TSP:
		sel.Path = append(sel.Path, inst.Witness.Cycle...)
	case SAT:
		copy(sel.Truth, inst.Witness.Assignment)
	case SubsetSum, Partition:
		for _, i := range inst.Witness.Set {
			if 0 <= i && i < len(sel.Truth) {
				sel.Truth[i] = true
			}
		}
	}
	return sel
}

// pickedSet maps Picked onto membership over ids 0..n-1. Out-of-range
// and duplicate references are dropped, so checks never depend on
// insertion order.
func (sel *Selection) pickedSet(n int) []bool {
	set := make([]bool, n)
	for _, id := range sel.Picked {
		if 0 <= id && id < n {
			set[id] = true
		}
	}
	return set
}

func (sel *Selection) pickedCount(n int) (count int) {
	for _, in := range sel.pickedSet(n) {
		if in {
			count++
		}
	}
	return
}

// pickedIDs lists the distinct in-range picks in insertion order.
func (sel *Selection) pickedIDs(n int) []int {
	seen := make([]bool, n)
	ids := make([]int, 0, len(sel.Picked))
	for _, id := range sel.Picked {
		if 0 <= id && id < n && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

func (sel *Selection) colorOf(id int) Color {
	if id < 0 || id >= len(sel.Colors) {
		return NoColor
	}
	return sel.Colors[id]
}

// assignment returns Truth normalized to count values, padding with
// false and dropping any excess.
func (sel *Selection) assignment(count int) []bool {
	a := make([]bool, count)
	copy(a, sel.Truth)
	return a
}
