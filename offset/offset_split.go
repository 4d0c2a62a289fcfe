package arcoffset

import (
	"math"

	"github.com/bits-and-blooms/bitset"
)

// splitSafetyCap bounds the total number of worklist pops the global
// splitter will perform before giving up and returning whatever has
// accumulated so far. Exceeding it indicates a pathological input, not a
// normal exit.
const splitSafetyCap = 100000

// OffsetSplitArcs is the global splitter: given the pool of raw
// offsets and connectors for one polyline (already carrying (original,
// sentinel) ids from D and E), produces a fragment soup in which no two
// fragments descended from different original primitives cross
// transversally: every remaining intersection between them is either
// empty or a shared endpoint. off is used only to size the spatial
// index's grid cells to the pipeline's natural length scale.
func OffsetSplitArcs(pool []Arc, off float64) []Arc {
	valid := make([]Arc, 0, len(pool))
	for _, a := range pool {
		if a.IsValid(EpsCollapsed) {
			valid = append(valid, a)
		}
	}
	if len(valid) == 0 {
		return nil
	}

	cellSize := math.Abs(off)
	if cellSize <= 0 {
		cellSize = 1
	}
	grid := NewBroadPhaseGrid(cellSize)

	type splitItem struct {
		arc Arc
		box AABB
	}
	items := make([]splitItem, 0, 2*len(valid))
	live := bitset.New(uint(2 * len(valid)))
	var worklist []int

	add := func(a Arc) {
		id := len(items)
		box := AABBFromArc(a)
		items = append(items, splitItem{arc: a, box: box})
		live.Set(uint(id))
		grid.Add(id, box)
		worklist = append(worklist, id)
	}
	for _, a := range valid {
		add(a)
	}

	var final []Arc
	iterations := 0
	for len(worklist) > 0 {
		iterations++
		if iterations > splitSafetyCap {
			break
		}
		pid := worklist[0]
		worklist = worklist[1:]
		if !live.Test(uint(pid)) {
			continue
		}
		p := items[pid]

		candidates := grid.Query(p.box)
		split := false
		for _, cid := range candidates {
			if cid == pid || !live.Test(uint(cid)) {
				continue
			}
			c := items[cid]
			if effectiveID(c.arc.ID) == effectiveID(p.arc.ID) {
				continue
			}
			frags, ok := trySplit(p.arc, c.arc)
			if !ok {
				continue
			}
			live.Clear(uint(pid))
			live.Clear(uint(cid))
			for _, f := range frags {
				add(f)
			}
			split = true
			break
		}
		if !split {
			final = append(final, p.arc)
			live.Clear(uint(pid))
		}
	}
	return final
}

// trySplit dispatches a pairwise split attempt on the segment/arc
// combination of p and c.
func trySplit(p, c Arc) ([]Arc, bool) {
	switch {
	case p.IsSegment() && c.IsSegment():
		return splitSegmentSegment(p, c)
	case p.IsSegment() && !c.IsSegment():
		return splitSegmentArc(p, c)
	case !p.IsSegment() && c.IsSegment():
		return splitSegmentArc(c, p)
	default:
		return splitArcArc(p, c)
	}
}

// withEndpoints returns a copy of src re-ended at a, b and re-id'd, sharing
// src's circle (or the segment sentinel) so fragments of an arc stay on
// the same supporting circle.
func withEndpoints(src Arc, a, b Point, id uint64) Arc {
	if src.IsSegment() {
		return Arc{A: a, B: b, C: Point{X: math.Inf(1), Y: math.Inf(1)}, R: math.Inf(1), ID: id}
	}
	return Arc{A: a, B: b, C: src.C, R: src.R, ID: id}
}

func filterValid(frags []Arc) []Arc {
	out := frags[:0]
	for _, f := range frags {
		if f.IsValid(EpsCollapsed) {
			out = append(out, f)
		}
	}
	return out
}

// orderAlongArc returns p, q in the order they're encountered sweeping CCW
// from anchor, swapping them if Orient2D(anchor, p, q) indicates they were
// given in the opposite order.
func orderAlongArc(anchor, p, q Point) (Point, Point) {
	if Orient2D(anchor, p, q) >= 0 {
		return p, q
	}
	return q, p
}

func sharesEndpoint(arc0, arc1 Arc, p Point) bool {
	const eps = 1e-10
	return p.CloseEnough(arc0.A, eps) || p.CloseEnough(arc0.B, eps) ||
		p.CloseEnough(arc1.A, eps) || p.CloseEnough(arc1.B, eps)
}

// splitSegmentSegment splits two crossing segments at their shared
// point, or slices a collinear overlap into its three disjoint pieces.
func splitSegmentSegment(seg0, seg1 Arc) ([]Arc, bool) {
	s0, s1 := NewSegment(seg0.A, seg0.B), NewSegment(seg1.A, seg1.B)
	cfg := IntersectSegmentSegment(s0, s1)
	switch cfg.Kind {
	case SegmentNoIntersection:
		return nil, false
	case SegmentOnePoint:
		if IsTouchingSegmentSegment(s0, s1) {
			return nil, false
		}
		sp := cfg.P
		frags := []Arc{
			withEndpoints(seg0, seg0.A, sp, childID(seg0.ID)),
			withEndpoints(seg0, sp, seg0.B, childID(seg0.ID)),
			withEndpoints(seg1, seg1.A, sp, childID(seg1.ID)),
			withEndpoints(seg1, sp, seg1.B, childID(seg1.ID)),
		}
		return filterValid(frags), true
	default: // SegmentTwoPoints: collinear overlap, P0..P3 already sorted.
		frags := []Arc{
			withEndpoints(seg0, cfg.P0, cfg.P1, childID(seg0.ID)),
			withEndpoints(seg0, cfg.P1, cfg.P2, childID(seg0.ID)),
			withEndpoints(seg1, cfg.P2, cfg.P3, childID(seg1.ID)),
		}
		return filterValid(frags), true
	}
}

// splitSegmentArc splits a segment and an arc at their one or two
// crossing points, arc pieces ordered along the arc's CCW sweep.
func splitSegmentArc(line, arc Arc) ([]Arc, bool) {
	seg := NewSegment(line.A, line.B)
	cfg := IntersectSegmentArc(seg, arc)
	switch cfg.Kind {
	case SegmentArcNoIntersection:
		return nil, false
	case SegmentArcOnePoint:
		if IsTouchingSegmentArc(seg, arc) {
			return nil, false
		}
		p := cfg.P0
		frags := []Arc{
			withEndpoints(line, line.A, p, childID(line.ID)),
			withEndpoints(line, p, line.B, childID(line.ID)),
			withEndpoints(arc, arc.A, p, childID(arc.ID)),
			withEndpoints(arc, p, arc.B, childID(arc.ID)),
		}
		return filterValid(frags), true
	default: // SegmentArcTwoPoints
		if sharesEndpoint(line, arc, cfg.P0) && sharesEndpoint(line, arc, cfg.P1) {
			return nil, false
		}
		lp0, lp1 := cfg.P0, cfg.P1
		if cfg.T0 > cfg.T1 {
			lp0, lp1 = lp1, lp0
		}
		ap0, ap1 := orderAlongArc(arc.A, cfg.P0, cfg.P1)
		frags := []Arc{
			withEndpoints(line, line.A, lp0, childID(line.ID)),
			withEndpoints(line, lp0, lp1, childID(line.ID)),
			withEndpoints(line, lp1, line.B, childID(line.ID)),
			withEndpoints(arc, arc.A, ap0, childID(arc.ID)),
			withEndpoints(arc, ap0, ap1, childID(arc.ID)),
			withEndpoints(arc, ap1, arc.B, childID(arc.ID)),
		}
		return filterValid(frags), true
	}
}

// splitArcArc splits two arcs against each other, covering both the
// non-cocircular and every cocircular variant.
//
// The two rare "one point touching plus one overlapping arc" cocircular
// variants collapse their touch point and their overlap region into the
// single already-merged arc IntersectArcArc computes for them: the touch
// point is zero-dimensional and contributes nothing to the output
// boundary, so a single replacement fragment satisfies the
// no-transversal-crossing contract.
func splitArcArc(arc0, arc1 Arc) ([]Arc, bool) {
	cfg := IntersectArcArc(arc0, arc1)
	switch cfg.Kind {
	case ArcArcNoIntersection, ArcArcCocircularOnePoint0, ArcArcCocircularOnePoint1, ArcArcCocircularTwoPoints:
		return nil, false

	case ArcArcNonCocircularOnePoint:
		p := cfg.P0
		if sharesEndpoint(arc0, arc1, p) {
			return nil, false
		}
		frags := []Arc{
			withEndpoints(arc0, arc0.A, p, childID(arc0.ID)),
			withEndpoints(arc0, p, arc0.B, childID(arc0.ID)),
			withEndpoints(arc1, arc1.A, p, childID(arc1.ID)),
			withEndpoints(arc1, p, arc1.B, childID(arc1.ID)),
		}
		return filterValid(frags), true

	case ArcArcNonCocircularTwoPoints:
		if sharesEndpoint(arc0, arc1, cfg.P0) && sharesEndpoint(arc0, arc1, cfg.P1) {
			return nil, false
		}
		p0, p1 := orderAlongArc(arc0.A, cfg.P0, cfg.P1)
		q0, q1 := orderAlongArc(arc1.A, cfg.P0, cfg.P1)
		frags := []Arc{
			withEndpoints(arc0, arc0.A, p0, childID(arc0.ID)),
			withEndpoints(arc0, p0, p1, childID(arc0.ID)),
			withEndpoints(arc0, p1, arc0.B, childID(arc0.ID)),
			withEndpoints(arc1, arc1.A, q0, childID(arc1.ID)),
			withEndpoints(arc1, q0, q1, childID(arc1.ID)),
			withEndpoints(arc1, q1, arc1.B, childID(arc1.ID)),
		}
		return filterValid(frags), true

	case ArcArcCocircularOneArc0:
		// arc0 and arc1 are identical; one replacement fragment absorbs both.
		frags := []Arc{withEndpoints(arc0, arc0.A, arc0.B, childID(arc0.ID))}
		return filterValid(frags), true

	case ArcArcCocircularOneArc1:
		// arc0 lies entirely inside arc1.
		frags := []Arc{
			withEndpoints(arc1, arc1.A, arc0.A, childID(arc1.ID)),
			withEndpoints(arc0, arc0.A, arc0.B, childID(arc0.ID)),
			withEndpoints(arc1, arc0.B, arc1.B, childID(arc1.ID)),
		}
		return filterValid(frags), true

	case ArcArcCocircularOneArc2:
		// CCW order arc1.A, arc0.A, arc1.B, arc0.B: arc0 starts inside arc1's
		// span and extends past arc1's end.
		frags := []Arc{
			withEndpoints(arc1, arc1.A, arc0.A, childID(arc1.ID)),
			withEndpoints(arc0, arc0.A, arc1.B, childID(arc0.ID)),
			withEndpoints(arc0, arc1.B, arc0.B, childID(arc0.ID)),
		}
		return filterValid(frags), true

	case ArcArcCocircularOneArc3:
		// CCW order arc0.A, arc1.A, arc0.B, arc1.B: arc1 starts inside arc0's
		// span and extends past arc0's end.
		frags := []Arc{
			withEndpoints(arc0, arc0.A, arc1.A, childID(arc0.ID)),
			withEndpoints(arc0, arc1.A, arc0.B, childID(arc0.ID)),
			withEndpoints(arc1, arc0.B, arc1.B, childID(arc1.ID)),
		}
		return filterValid(frags), true

	case ArcArcCocircularOneArc4:
		// arc1 lies entirely inside arc0.
		frags := []Arc{
			withEndpoints(arc0, arc0.A, arc1.A, childID(arc0.ID)),
			withEndpoints(arc1, arc1.A, arc1.B, childID(arc1.ID)),
			withEndpoints(arc0, arc1.B, arc0.B, childID(arc0.ID)),
		}
		return filterValid(frags), true

	case ArcArcCocircularTwoArcs:
		frags := []Arc{
			withEndpoints(arc0, arc0.A, arc1.B, childID(arc0.ID)),
			withEndpoints(arc1, arc1.A, arc0.B, childID(arc1.ID)),
		}
		return filterValid(frags), true

	case ArcArcCocircularOnePointOneArc0, ArcArcCocircularOnePointOneArc1:
		frags := []Arc{withEndpoints(cfg.Arc0, cfg.Arc0.A, cfg.Arc0.B, childID(arc0.ID))}
		return filterValid(frags), true

	default:
		return nil, false
	}
}
