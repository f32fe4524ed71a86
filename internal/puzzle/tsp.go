package puzzle

import "fmt"

// solveTSP enumerates every tour with node 0 fixed as the start and
// keeps the cheapest closed one. (n-1)! orderings stay tractable only
// within maxTourNodes; the generator keeps instances inside that bound.
func solveTSP(inst *Instance) *Witness {
	n := inst.Nodes
	if n < 3 {
		return nil
	}
	if n > maxTourNodes {
		panic(AssertionError{fmt.Sprintf("tour search needs at most %d nodes, got %d", maxTourNodes, n)})
	}
	s := &tourSearch{
		weights:  weightMatrix(inst),
		used:     make([]bool, n),
		tour:     make([]int, 1, n),
		bestCost: -1,
	}
	s.used[0] = true
	s.extend(0)
	if s.bestCost < 0 {
		return nil
	}
	return &Witness{Cycle: s.best}
}

type tourSearch struct {
	weights  [][]int
	used     []bool
	tour     []int
	best     []int
	bestCost int
}

// extend tries every unused next node, undoing each move after the
// recursive call returns.
func (s *tourSearch) extend(cost int) {
	n := len(s.used)
	last := s.tour[len(s.tour)-1]
	if len(s.tour) == n {
		back := s.weights[last][s.tour[0]]
		if back < 0 {
			return
		}
		if total := cost + back; s.bestCost < 0 || total < s.bestCost {
			s.bestCost = total
			s.best = append(s.best[:0], s.tour...)
		}
		return
	}
	for next := 1; next < n; next++ {
		if s.used[next] {
			continue
		}
		step := s.weights[last][next]
		if step < 0 {
			continue
		}
		s.used[next] = true
		s.tour = append(s.tour, next)
		s.extend(cost + step)
		s.tour = s.tour[:len(s.tour)-1]
		s.used[next] = false
	}
}

// weightMatrix marks absent edges with -1.
func weightMatrix(inst *Instance) [][]int {
	w := make([][]int, inst.Nodes)
	for i := range w {
		w[i] = make([]int, inst.Nodes)
		for j := range w[i] {
			w[i][j] = -1
		}
	}
	for _, e := range inst.Edges {
		w[e.A][e.B] = e.Weight
		w[e.B][e.A] = e.Weight
	}
	return w
}
