package arcoffset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func stampAll(arcs []Arc) []Arc {
	gen := NewIDGenerator()
	out := make([]Arc, len(arcs))
	for i, a := range arcs {
		out[i] = a.WithID(gen.Next())
	}
	return out
}

// TestSplitTwoCrossingSegments checks the canonical X: each segment
// splits at the shared point, yielding four fragments meeting there.
func TestSplitTwoCrossingSegments(t *testing.T) {
	pool := stampAll([]Arc{
		ArcFromBulge(NewPoint(0, 0), NewPoint(2, 2), 0),
		ArcFromBulge(NewPoint(0, 2), NewPoint(2, 0), 0),
	})
	frags := OffsetSplitArcs(pool, 1)
	require.Len(t, frags, 4)

	center := NewPoint(1, 1)
	for _, f := range frags {
		touches := f.A.CloseEnough(center, 1e-9) || f.B.CloseEnough(center, 1e-9)
		require.True(t, touches, "fragment %v does not touch the crossing", f)
	}
}

// TestSplitSegmentArcTwoPoints checks a chord crossing an arc twice
// yields three pieces of each.
func TestSplitSegmentArcTwoPoints(t *testing.T) {
	// Vertical chord through the right half of the unit circle, crossing
	// it at (0.5, +-sqrt(3)/2).
	pool := stampAll([]Arc{
		ArcFromBulge(NewPoint(0.5, -2), NewPoint(0.5, 2), 0),
		{A: NewPoint(0, -1), B: NewPoint(0, 1), C: NewPoint(0, 0), R: 1},
	})
	frags := OffsetSplitArcs(pool, 1)
	require.Len(t, frags, 6)

	segs, arcs := 0, 0
	for _, f := range frags {
		if f.IsSegment() {
			segs++
		} else {
			arcs++
		}
	}
	require.Equal(t, 3, segs)
	require.Equal(t, 3, arcs)
}

// TestSplitTouchingSegmentsUntouched checks segments sharing an endpoint
// do not split each other.
func TestSplitTouchingSegmentsUntouched(t *testing.T) {
	pool := stampAll([]Arc{
		ArcFromBulge(NewPoint(0, 0), NewPoint(1, 0), 0),
		ArcFromBulge(NewPoint(1, 0), NewPoint(1, 1), 0),
	})
	frags := OffsetSplitArcs(pool, 1)
	require.Len(t, frags, 2)
}

// TestSplitCocircularOverlap checks chained cocircular arcs resolve into
// three non-overlapping pieces.
func TestSplitCocircularOverlap(t *testing.T) {
	pool := stampAll([]Arc{
		unitArc(0, 180),
		unitArc(90, 270),
	})
	frags := OffsetSplitArcs(pool, 1)
	require.Len(t, frags, 3)
}

// transversalCrossing reports whether u and v meet somewhere other than a
// shared endpoint.
func transversalCrossing(u, v Arc) bool {
	interior := func(p Point) bool {
		const eps = 1e-7
		return !p.CloseEnough(u.A, eps) && !p.CloseEnough(u.B, eps) &&
			!p.CloseEnough(v.A, eps) && !p.CloseEnough(v.B, eps)
	}
	switch {
	case u.IsSegment() && v.IsSegment():
		cfg := IntersectSegmentSegment(NewSegment(u.A, u.B), NewSegment(v.A, v.B))
		switch cfg.Kind {
		case SegmentOnePoint:
			return interior(cfg.P)
		case SegmentTwoPoints:
			return cfg.P1.DistanceTo(cfg.P2) > 1e-7
		}
		return false
	case u.IsSegment() != v.IsSegment():
		seg, arc := u, v
		if v.IsSegment() {
			seg, arc = v, u
		}
		cfg := IntersectSegmentArc(NewSegment(seg.A, seg.B), arc)
		switch cfg.Kind {
		case SegmentArcOnePoint:
			return interior(cfg.P0)
		case SegmentArcTwoPoints:
			return interior(cfg.P0) || interior(cfg.P1)
		}
		return false
	default:
		cfg := IntersectArcArc(u, v)
		switch cfg.Kind {
		case ArcArcNonCocircularOnePoint:
			return interior(cfg.P0)
		case ArcArcNonCocircularTwoPoints:
			return interior(cfg.P0) || interior(cfg.P1)
		case ArcArcNoIntersection, ArcArcCocircularOnePoint0, ArcArcCocircularOnePoint1,
			ArcArcCocircularTwoPoints:
			return false
		default:
			// Any remaining cocircular overlap variant is 1-dimensional.
			return true
		}
	}
}

// TestSplitterNoTransversalCrossings is the splitter's termination
// contract on randomized input: after splitting, no two fragments of
// different lineage cross anywhere but at shared endpoints.
func TestSplitterNoTransversalCrossings(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var pool []Arc
	for i := 0; i < 30; i++ {
		a := NewPoint(rng.Float64()*10, rng.Float64()*10)
		b := NewPoint(rng.Float64()*10, rng.Float64()*10)
		if a.DistanceTo(b) < 0.5 {
			continue
		}
		if i%4 == 0 {
			g := 0.3 + rng.Float64()*0.7
			pool = append(pool, ArcFromBulge(a, b, g))
		} else {
			pool = append(pool, ArcFromBulge(a, b, 0))
		}
	}
	pool = stampAll(pool)

	frags := OffsetSplitArcs(pool, 1)
	require.NotEmpty(t, frags)

	for i := 0; i < len(frags); i++ {
		for j := i + 1; j < len(frags); j++ {
			u, v := frags[i], frags[j]
			if effectiveID(u.ID) == effectiveID(v.ID) {
				continue
			}
			if transversalCrossing(u, v) {
				t.Fatalf("fragments %d and %d still cross transversally:\n%v\n%v", i, j, u, v)
			}
		}
	}
}
