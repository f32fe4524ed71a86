package puzzle

// Hardcoded last-resort instances, used when repeated generation
// attempts keep getting rejected. Each is small, valid and carries its
// witness inline; the generator never surfaces an error.

func fallbackVertexCover() *Instance {
	return &Instance{
		Kind:    VertexCover,
		Nodes:   3,
		Points:  []Point{{60, 120}, {160, 120}, {260, 120}},
		Edges:   []Edge{{A: 0, B: 1}, {A: 1, B: 2}},
		Target:  1,
		Witness: Witness{Set: []int{1}},
	}
}

func fallbackIndependentSet() *Instance {
	return &Instance{
		Kind:    IndependentSet,
		Nodes:   3,
		Points:  []Point{{60, 120}, {160, 120}, {260, 120}},
		Edges:   []Edge{{A: 0, B: 1}, {A: 1, B: 2}},
		Target:  2,
		Witness: Witness{Set: []int{0, 2}},
	}
}

func fallbackClique() *Instance {
	return &Instance{
		Kind:   Clique,
		Nodes:  4,
		Points: []Point{{100, 60}, {220, 60}, {220, 180}, {100, 180}},
		Edges: []Edge{
			{A: 0, B: 1}, {A: 0, B: 2}, {A: 0, B: 3},
			{A: 1, B: 2}, {A: 1, B: 3}, {A: 2, B: 3},
		},
		Target:  4,
		Witness: Witness{Set: []int{0, 1, 2, 3}},
	}
}

func fallbackColoring() *Instance {
	return &Instance{
		Kind:    Coloring,
		Nodes:   3,
		Points:  []Point{{160, 60}, {60, 180}, {260, 180}},
		Edges:   []Edge{{A: 0, B: 1}, {A: 0, B: 2}, {A: 1, B: 2}},
		Target:  ColorCount,
		Witness: Witness{Colors: []Color{0, 1, 2}},
	}
}

func fallbackHamiltonian() *Instance {
	return &Instance{
		Kind:   Hamiltonian,
		Nodes:  4,
		Points: []Point{{100, 60}, {220, 60}, {220, 180}, {100, 180}},
		Edges: []Edge{
			{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 3}, {A: 3, B: 0},
		},
		Target:  4,
		Witness: Witness{Cycle: []int{0, 1, 2, 3}},
	}
}

func fallbackTSP() *Instance {
	return &Instance{
		Kind:   TSP,
		Nodes:  4,
		Points: []Point{{60, 60}, {160, 60}, {160, 160}, {60, 160}},
		Edges: []Edge{
			{A: 0, B: 1, Weight: 100},
			{A: 0, B: 2, Weight: 141},
			{A: 0, B: 3, Weight: 100},
			{A: 1, B: 2, Weight: 100},
			{A: 1, B: 3, Weight: 141},
			{A: 2, B: 3, Weight: 100},
		},
		Target:  400,
		Witness: Witness{Cycle: []int{0, 1, 2, 3}},
	}
}

func fallbackSAT() *Instance {
	return &Instance{
		Kind:     SAT,
		VarCount: 3,
		Clauses: []Clause{
			{1, 2, 3},
			{-1, 2, -3},
			{1, -2, 3},
		},
		Target:  3,
		Witness: Witness{Assignment: []bool{true, true, false}},
	}
}

func fallbackSubsetSum() *Instance {
	return &Instance{
		Kind:    SubsetSum,
		Values:  []int{4, 13, 20},
		Target:  37,
		Witness: Witness{Set: []int{0, 1, 2}},
	}
}

func fallbackPartition() *Instance {
	return &Instance{
		Kind:    Partition,
		Values:  []int{3, 1, 2},
		Target:  3,
		Witness: Witness{Set: []int{0}},
	}
}
