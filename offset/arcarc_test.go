package arcoffset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// unitArc builds the CCW arc of the unit circle from angle a0 to angle a1
// (degrees).
func unitArc(a0, a1 float64) Arc {
	rad := func(deg float64) Point {
		return NewPoint(math.Cos(deg*math.Pi/180), math.Sin(deg*math.Pi/180))
	}
	return Arc{A: rad(a0), B: rad(a1), C: NewPoint(0, 0), R: 1}
}

// TestIntersectArcArcNonCocircular checks the transversal configurations
// of arcs on distinct circles.
func TestIntersectArcArcNonCocircular(t *testing.T) {
	// Right half of the unit circle against the left half of the unit
	// circle shifted to (1,0): both crossing points lie on both spans.
	a0 := Arc{A: NewPoint(0, -1), B: NewPoint(0, 1), C: NewPoint(0, 0), R: 1}
	a1 := Arc{A: NewPoint(1, 1), B: NewPoint(1, -1), C: NewPoint(1, 0), R: 1}
	two := IntersectArcArc(a0, a1)
	require.Equal(t, ArcArcNonCocircularTwoPoints, two.Kind)

	// Keep only the upper quarter of a1: one crossing point drops out.
	upper := Arc{A: NewPoint(1, 1), B: NewPoint(0, 0), C: NewPoint(1, 0), R: 1}
	one := IntersectArcArc(a0, upper)
	require.Equal(t, ArcArcNonCocircularOnePoint, one.Kind)
	require.InDelta(t, 0.5, one.P0.X, 1e-12)
	require.True(t, one.P0.Y > 0)

	// Far apart circles never meet.
	miss := IntersectArcArc(a0, Arc{A: NewPoint(6, -1), B: NewPoint(6, 1), C: NewPoint(5, 0), R: 1})
	require.Equal(t, ArcArcNoIntersection, miss.Kind)
}

// TestIntersectArcArcCocircular walks the cocircular family: arcs on the
// same circle meeting in an arc, bare points, or two disjoint arcs.
func TestIntersectArcArcCocircular(t *testing.T) {
	t.Run("identical arcs", func(t *testing.T) {
		got := IntersectArcArc(unitArc(0, 180), unitArc(0, 180))
		require.Equal(t, ArcArcCocircularOneArc0, got.Kind)
		require.Equal(t, unitArc(0, 180).A, got.Arc0.A)
		require.Equal(t, unitArc(0, 180).B, got.Arc0.B)
	})

	t.Run("first inside second", func(t *testing.T) {
		got := IntersectArcArc(unitArc(45, 90), unitArc(0, 180))
		require.Equal(t, ArcArcCocircularOneArc1, got.Kind)
		require.Equal(t, unitArc(45, 90).A, got.Arc0.A)
		require.Equal(t, unitArc(45, 90).B, got.Arc0.B)
	})

	t.Run("second inside first", func(t *testing.T) {
		got := IntersectArcArc(unitArc(0, 180), unitArc(45, 90))
		require.Equal(t, ArcArcCocircularOneArc4, got.Kind)
		require.Equal(t, unitArc(45, 90).A, got.Arc0.A)
		require.Equal(t, unitArc(45, 90).B, got.Arc0.B)
	})

	t.Run("chained overlap", func(t *testing.T) {
		// A0 sweeps 0..180, A1 sweeps 90..270: they share 90..180.
		got := IntersectArcArc(unitArc(0, 180), unitArc(90, 270))
		require.Equal(t, ArcArcCocircularOneArc3, got.Kind)
		require.InDelta(t, 0, got.Arc0.A.X, 1e-12)
		require.InDelta(t, 1, got.Arc0.A.Y, 1e-12)
		require.InDelta(t, -1, got.Arc0.B.X, 1e-12)
		require.InDelta(t, 0, got.Arc0.B.Y, 1e-12)
	})

	t.Run("two disjoint overlap arcs", func(t *testing.T) {
		// A0 sweeps 0..270, A1 sweeps 180..90: overlaps are 0..90 and
		// 180..270.
		got := IntersectArcArc(unitArc(0, 270), unitArc(180, 90))
		require.Equal(t, ArcArcCocircularTwoArcs, got.Kind)
	})

	t.Run("complementary halves touch at two points", func(t *testing.T) {
		// Exact endpoints, not trig-derived ones: the two-point variant
		// requires both endpoint pairs to coincide bitwise.
		upper := Arc{A: NewPoint(1, 0), B: NewPoint(-1, 0), C: NewPoint(0, 0), R: 1}
		lower := Arc{A: NewPoint(-1, 0), B: NewPoint(1, 0), C: NewPoint(0, 0), R: 1}
		got := IntersectArcArc(upper, lower)
		require.Equal(t, ArcArcCocircularTwoPoints, got.Kind)
	})

	t.Run("disjoint arcs on one circle", func(t *testing.T) {
		got := IntersectArcArc(unitArc(0, 45), unitArc(90, 180))
		require.Equal(t, ArcArcNoIntersection, got.Kind)
	})

	t.Run("touching at one shared endpoint", func(t *testing.T) {
		got := IntersectArcArc(unitArc(0, 90), unitArc(90, 180))
		require.True(t, got.Kind == ArcArcCocircularOnePoint0 || got.Kind == ArcArcCocircularOnePoint1)
	})
}
