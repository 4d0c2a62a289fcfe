package arcoffset

import (
	"math"
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// MergeCloseEndpoints flood-fill
// clusters every fragment endpoint within tolerance of another into a
// single group, snaps every member of a group to the group's centroid,
// and drops any fragment that became degenerate as a result.
func MergeCloseEndpoints(arcs []Arc, tolerance float64) []Arc {
	n := len(arcs)
	if n == 0 {
		return nil
	}
	positions := make([]Point, 2*n)
	for i, a := range arcs {
		positions[2*i] = a.A
		positions[2*i+1] = a.B
	}
	m := len(positions)

	grid := NewBroadPhaseGrid(math.Max(tolerance, 1e-12) * 4)
	for idx, p := range positions {
		grid.Add(idx, AABB{MinX: p.X - tolerance, MaxX: p.X + tolerance, MinY: p.Y - tolerance, MaxY: p.Y + tolerance})
	}

	snapped := make([]Point, m)
	copy(snapped, positions)
	used := make([]bool, m)

	for start := 0; start < m; start++ {
		if used[start] {
			continue
		}
		group := []int{start}
		used[start] = true
		queue := []int{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			p := positions[cur]
			box := AABB{MinX: p.X - tolerance, MaxX: p.X + tolerance, MinY: p.Y - tolerance, MaxY: p.Y + tolerance}
			for _, cand := range grid.Query(box) {
				if used[cand] {
					continue
				}
				if positions[cand].CloseEnough(p, tolerance) {
					used[cand] = true
					group = append(group, cand)
					queue = append(queue, cand)
				}
			}
		}
		if len(group) <= 1 {
			continue
		}
		var sum Point
		for _, idx := range group {
			sum = sum.Add(positions[idx])
		}
		centroid := sum.Scale(1.0 / float64(len(group)))
		for _, idx := range group {
			snapped[idx] = centroid
		}
	}

	out := make([]Arc, 0, n)
	for i, a := range arcs {
		newA := a
		newA.A = snapped[2*i]
		newA.B = snapped[2*i+1]
		if isArcTooSmall(newA, tolerance) {
			continue
		}
		out = append(out, newA)
	}
	return out
}

// isArcTooSmall reports whether a has collapsed under endpoint snapping: a
// segment is too small once its chord drops to tolerance or below; a true
// arc requires both its chord and its radius to have collapsed, since a
// tight chord alone is normal near a near-full-circle sweep.
func isArcTooSmall(a Arc, tolerance float64) bool {
	chord := a.A.DistanceTo(a.B)
	if a.IsSegment() {
		return chord <= tolerance
	}
	return chord <= tolerance && a.R <= tolerance
}

type graphEdge struct {
	arc      Arc
	from, to int
}

// cycleGraph is the undirected multigraph the reconnector builds over a
// set of surviving fragments: vertices are canonical endpoint positions,
// edges are the fragments themselves.
type cycleGraph struct {
	vertices  []Point
	adjacency map[int][]int
	edges     []graphEdge
}

func (g *cycleGraph) addVertex(p Point, tolerance float64) int {
	for i, v := range g.vertices {
		if v.CloseEnough(p, tolerance) {
			return i
		}
	}
	g.vertices = append(g.vertices, p)
	return len(g.vertices) - 1
}

// buildGraph turns fragments into the cycle graph: every arc becomes one
// edge between its
// (deduplicated) endpoint vertices.
func buildGraph(arcs []Arc, tolerance float64) *cycleGraph {
	g := &cycleGraph{adjacency: make(map[int][]int)}
	for _, a := range arcs {
		u := g.addVertex(a.A, tolerance)
		v := g.addVertex(a.B, tolerance)
		eid := len(g.edges)
		g.edges = append(g.edges, graphEdge{arc: a, from: u, to: v})
		g.adjacency[u] = append(g.adjacency[u], eid)
		g.adjacency[v] = append(g.adjacency[v], eid)
	}
	return g
}

func (g *cycleGraph) otherEndpoint(e graphEdge, v int) int {
	if e.from == v {
		return e.to
	}
	return e.from
}

// chooseRightmostEdge implements the planar-subdivision rightmost-turn
// rule: among the available outgoing edges at vertex, pick the one with
// the smallest positive turn angle relative to the incoming direction,
// falling back to the candidate with the largest (least negative) angle
// when no turn angle is positive. Tracing faces this way guarantees each emitted
// walk bounds a single face and cannot self-intersect.
func (g *cycleGraph) chooseRightmostEdge(vertex, incomingEdgeID int, available []int) int {
	pos := g.vertices[vertex]
	inDir := g.edges[incomingEdgeID].arc.Tangent(pos, true)

	type candidate struct {
		eid   int
		angle float64
	}
	cands := make([]candidate, 0, len(available))
	for _, eid := range available {
		outDir := g.edges[eid].arc.Tangent(pos, false)
		angle := math.Atan2(inDir.Perp(outDir), inDir.Dot(outDir))
		cands = append(cands, candidate{eid: eid, angle: angle})
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].angle < cands[j].angle })
	for _, c := range cands {
		if c.angle > 0 {
			return c.eid
		}
	}
	return cands[len(cands)-1].eid
}

// findCycleFromEdge walks the graph starting along startEdgeID, applying
// the rightmost-turn rule at every subsequent vertex, until the walk
// returns to its origin (success) or runs out of unused candidates
// (failure). A failed walk does not consume any of the edges it tried:
// they remain available to start other walks.
func findCycleFromEdge(g *cycleGraph, startEdgeID int, used *bitset.BitSet) ([]Arc, bool) {
	start := g.edges[startEdgeID]
	origin := start.from
	current := start.to
	path := []int{startEdgeID}
	tempUsed := bitset.New(uint(len(g.edges)))
	tempUsed.Set(uint(startEdgeID))
	cameFrom := startEdgeID

	for current != origin {
		var avail []int
		for _, eid := range g.adjacency[current] {
			if eid == cameFrom || used.Test(uint(eid)) || tempUsed.Test(uint(eid)) {
				continue
			}
			avail = append(avail, eid)
		}
		if len(avail) == 0 {
			return nil, false
		}
		var next int
		if len(avail) == 1 {
			next = avail[0]
		} else {
			next = g.chooseRightmostEdge(current, cameFrom, avail)
		}
		path = append(path, next)
		tempUsed.Set(uint(next))
		e := g.edges[next]
		current = g.otherEndpoint(e, current)
		cameFrom = next
	}

	arcs := make([]Arc, len(path))
	for i, eid := range path {
		used.Set(uint(eid))
		arcs[i] = g.edges[eid].arc
	}
	return arcs, true
}

// FindNonIntersectingCycles builds the fragment graph and traces every
// closed face with the rightmost-turn rule, returning each cycle as its
// fragments in traversal order.
func FindNonIntersectingCycles(arcs []Arc) [][]Arc {
	g := buildGraph(arcs, VertexTolerance)
	used := bitset.New(uint(len(g.edges)))
	var cycles [][]Arc
	for eid := range g.edges {
		if used.Test(uint(eid)) {
			continue
		}
		if cyc, ok := findCycleFromEdge(g, eid, used); ok {
			cycles = append(cycles, cyc)
		}
	}
	return cycles
}
