package puzzle

// solveColoring assigns colors to nodes in id order, skipping any color
// already used by a colored neighbor, and returns the first complete
// proper coloring.
func solveColoring(inst *Instance) *Witness {
	adj := inst.adjacency()
	colors := make([]Color, inst.Nodes)
	for i := range colors {
		colors[i] = NoColor
	}
	if !colorNode(adj, colors, 0) {
		return nil
	}
	return &Witness{Colors: colors}
}

// colorNode tries each color for node id and recurses. Every failed
// branch resets the node before returning, so callers never see a
// partially committed coloring.
func colorNode(adj [][]bool, colors []Color, id int) bool {
	if id == len(colors) {
		return true
	}
	for c := Color(0); c < ColorCount; c++ {
		used := false
		for b := range colors {
			if adj[id][b] && colors[b] == c {
				used = true
				break
			}
		}
		if used {
			continue
		}
		colors[id] = c
		if colorNode(adj, colors, id+1) {
			return true
		}
		colors[id] = NoColor
	}
	return false
}

// solveHamiltonian searches for a cycle through every node, fixing node
// 0 as the start to cut rotational duplicates.
func solveHamiltonian(inst *Instance) *Witness {
	n := inst.Nodes
	if n < 3 {
		return nil
	}
	adj := inst.adjacency()
	path := make([]int, 1, n)
	used := make([]bool, n)
	used[0] = true
	if !extendCycle(adj, &path, used) {
		return nil
	}
	return &Witness{Cycle: path}
}

// extendCycle grows the path by one unused adjacent node at a time,
// undoing the move when a branch dies. A full path must close back to
// its first node.
func extendCycle(adj [][]bool, path *[]int, used []bool) bool {
	n := len(used)
	last := (*path)[len(*path)-1]
	if len(*path) == n {
		return adj[last][(*path)[0]]
	}
	for next := 1; next < n; next++ {
		if used[next] || !adj[last][next] {
			continue
		}
		*path = append(*path, next)
		used[next] = true
		if extendCycle(adj, path, used) {
			return true
		}
		used[next] = false
		*path = (*path)[:len(*path)-1]
	}
	return false
}
