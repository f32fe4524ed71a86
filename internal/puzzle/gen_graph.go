package puzzle

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/gammazero/deque"
)

func buildIndependentSet(cfg Config, r *rand.Rand) (*Instance, error) {
	return buildUniformGraph(IndependentSet, cfg, r)
}

func buildClique(cfg Config, r *rand.Rand) (*Instance, error) {
	return buildUniformGraph(Clique, cfg, r)
}

// buildUniformGraph includes each of the n*(n-1)/2 possible edges with
// probability cfg.EdgeP. A zero-edge result gets one forced edge so the
// round is not trivially won.
func buildUniformGraph(kind Kind, cfg Config, r *rand.Rand) (*Instance, error) {
	n := sizeIn(cfg, r)
	inst := &Instance{
		Kind:   kind,
		Nodes:  n,
		Points: PlacePoints(n, cfg.Width, cfg.Height, cfg.MinSep, r),
	}
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if r.Float64() < cfg.EdgeP {
				inst.Edges = append(inst.Edges, Edge{A: a, B: b})
			}
		}
	}
	if len(inst.Edges) == 0 {
		a := r.IntN(n)
		b := (a + 1 + r.IntN(n-1)) % n
		inst.Edges = append(inst.Edges, Edge{A: a, B: b})
	}
	return inst, nil
}

// buildVertexCover places nodes on the canvas and links each to its
// nearest neighbors, skipping any edge that would cross one already
// added. A disconnected result is patched with a path over consecutive
// ids, trading planarity for connectivity.
func buildVertexCover(cfg Config, r *rand.Rand) (*Instance, error) {
	n := sizeIn(cfg, r)
	points := PlacePoints(n, cfg.Width, cfg.Height, cfg.MinSep, r)
	inst := &Instance{Kind: VertexCover, Nodes: n, Points: points}

	for a := 0; a < n; a++ {
		for _, b := range nearestNeighbors(points, a, cfg.Neighbors) {
			if inst.HasEdge(a, b) || crossesExisting(inst, points, a, b) {
				continue
			}
			inst.Edges = append(inst.Edges, Edge{A: a, B: b})
		}
	}
	if !connected(inst) {
		for a := 0; a+1 < n; a++ {
			if !inst.HasEdge(a, a+1) {
				inst.Edges = append(inst.Edges, Edge{A: a, B: a + 1})
			}
		}
	}
	return inst, nil
}

func nearestNeighbors(points []Point, a, k int) []int {
	ids := make([]int, 0, len(points)-1)
	for b := range points {
		if b != a {
			ids = append(ids, b)
		}
	}
	slices.SortFunc(ids, func(x, y int) int {
		return cmp.Compare(dist(points[a], points[x]), dist(points[a], points[y]))
	})
	if len(ids) > k {
		ids = ids[:k]
	}
	return ids
}

func crossesExisting(inst *Instance, points []Point, a, b int) bool {
	for _, e := range inst.Edges {
		if e.A == a || e.A == b || e.B == a || e.B == b {
			// a shared endpoint is never a proper crossing
			continue
		}
		if SegmentsCross(points[a], points[b], points[e.A], points[e.B]) {
			return true
		}
	}
	return false
}

func connected(inst *Instance) bool {
	if inst.Nodes == 0 {
		return true
	}
	adj := inst.adjacency()
	seen := make([]bool, inst.Nodes)
	seen[0] = true
	reached := 0

	var queue deque.Deque[int]
	queue.PushBack(0)
	for queue.Len() > 0 {
		a := queue.PopFront()
		reached++
		for b := 0; b < inst.Nodes; b++ {
			if adj[a][b] && !seen[b] {
				seen[b] = true
				queue.PushBack(b)
			}
		}
	}
	return reached == inst.Nodes
}

// buildColoring hides a random 3-partition of the nodes and only ever
// connects nodes from different classes, so the partition itself is a
// proper coloring.
func buildColoring(cfg Config, r *rand.Rand) (*Instance, error) {
	n := sizeIn(cfg, r)
	classes := make([]Color, n)
	for i := range classes {
		classes[i] = Color(r.IntN(ColorCount))
	}
	if n > 1 && allSameClass(classes) {
		classes[n-1] = (classes[n-1] + 1) % ColorCount
	}

	inst := &Instance{
		Kind:   Coloring,
		Nodes:  n,
		Points: PlacePoints(n, cfg.Width, cfg.Height, cfg.MinSep, r),
	}
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if classes[a] != classes[b] && r.Float64() < cfg.EdgeP {
				inst.Edges = append(inst.Edges, Edge{A: a, B: b})
			}
		}
	}
	if len(inst.Edges) == 0 {
		for a := 0; a < n && len(inst.Edges) == 0; a++ {
			for b := a + 1; b < n; b++ {
				if classes[a] != classes[b] {
					inst.Edges = append(inst.Edges, Edge{A: a, B: b})
					break
				}
			}
		}
	}
	return inst, nil
}

func allSameClass(classes []Color) bool {
	for _, c := range classes {
		if c != classes[0] {
			return false
		}
	}
	return true
}

// buildHamiltonian lays a hidden random cycle through every node, then
// sprinkles extra edges over it.
func buildHamiltonian(cfg Config, r *rand.Rand) (*Instance, error) {
	n := sizeIn(cfg, r)
	if n < 3 {
		return nil, AssertionError{"a cycle needs at least 3 nodes"}
	}
	order := r.Perm(n)
	inst := &Instance{
		Kind:   Hamiltonian,
		Nodes:  n,
		Points: PlacePoints(n, cfg.Width, cfg.Height, cfg.MinSep, r),
	}
	for i, a := range order {
		inst.Edges = append(inst.Edges, Edge{A: a, B: order[(i+1)%n]})
	}
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if !inst.HasEdge(a, b) && r.Float64() < cfg.ExtraEdgeP {
				inst.Edges = append(inst.Edges, Edge{A: a, B: b})
			}
		}
	}
	return inst, nil
}

// buildTSP places nodes on the canvas and connects every pair, weighting
// edges by rounded Euclidean distance.
func buildTSP(cfg Config, r *rand.Rand) (*Instance, error) {
	n := sizeIn(cfg, r)
	points := PlacePoints(n, cfg.Width, cfg.Height, cfg.MinSep, r)
	inst := &Instance{Kind: TSP, Nodes: n, Points: points}
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			w := int(math.Round(dist(points[a], points[b])))
			if w < 1 {
				w = 1
			}
			inst.Edges = append(inst.Edges, Edge{A: a, B: b, Weight: w})
		}
	}
	return inst, nil
}
