package arcoffset

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// TestArcFromBulgeQuarterCircle checks the parametrization on the arc
// everyone can verify by hand: a 90 degree sweep of the unit circle.
func TestArcFromBulgeQuarterCircle(t *testing.T) {
	g := math.Tan(math.Pi / 8)
	arc := ArcFromBulge(NewPoint(1, 0), NewPoint(0, 1), g)

	require.False(t, arc.IsSegment())
	require.InDelta(t, 0.0, arc.C.X, 1e-12)
	require.InDelta(t, 0.0, arc.C.Y, 1e-12)
	require.InDelta(t, 1.0, arc.R, 1e-12)
}

// TestArcFromBulgeZeroIsSegment checks g == 0 degenerates to a segment.
func TestArcFromBulgeZeroIsSegment(t *testing.T) {
	arc := ArcFromBulge(NewPoint(0, 0), NewPoint(3, 4), 0)
	if !arc.IsSegment() {
		t.Fatalf("expected a segment, got arc with r=%v", arc.R)
	}
	if arc.A != NewPoint(0, 0) || arc.B != NewPoint(3, 4) {
		t.Fatalf("segment endpoints moved: %v %v", arc.A, arc.B)
	}
}

// TestArcFromBulgeNegativeSwapsEndpoints checks that a negative bulge is
// normalized to the counterclockwise representation with swapped
// endpoints.
func TestArcFromBulgeNegativeSwapsEndpoints(t *testing.T) {
	g := -math.Tan(math.Pi / 8)
	arc := ArcFromBulge(NewPoint(1, 0), NewPoint(0, 1), g)

	require.Equal(t, NewPoint(0, 1), arc.A)
	require.Equal(t, NewPoint(1, 0), arc.B)
	require.InDelta(t, 1.0, arc.R, 1e-12)
}

// TestBulgeFromArcQuarterCircle checks the inverse on the same hand
// verifiable arc, minor and major sweep both.
func TestBulgeFromArcQuarterCircle(t *testing.T) {
	minor := BulgeFromArc(NewPoint(1, 0), NewPoint(0, 1), NewPoint(0, 0), 1)
	require.InDelta(t, math.Tan(math.Pi/8), minor, 1e-12)

	// Same endpoints, center on the other side of the chord: the CCW
	// sweep from a to b is now three quarters of the circle.
	major := BulgeFromArc(NewPoint(1, 0), NewPoint(0, 1), NewPoint(1, 1), 1)
	require.InDelta(t, math.Tan(3*math.Pi/8), major, 1e-12)
}

// TestBulgeRoundTrip checks the parametrization round trip: for any
// arc constructed from (a, b, g), recovering the bulge from the arc's
// (a, b, c, r) form reproduces |g| to within 1e-8 relative.
func TestBulgeRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParametersWithSeed(1)
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("bulge survives arc round trip", prop.ForAll(
		func(ax, ay, bx, by, g float64) bool {
			a, b := NewPoint(ax, ay), NewPoint(bx, by)
			if a.DistanceTo(b) < 1e-3 {
				return true
			}
			arc := ArcFromBulge(a, b, g)
			got := BulgeFromArc(arc.A, arc.B, arc.C, arc.R)
			want := math.Abs(g)
			return math.Abs(got-want) <= 1e-8*math.Max(1, want)
		},
		gen.Float64Range(-100, 100),
		gen.Float64Range(-100, 100),
		gen.Float64Range(-100, 100),
		gen.Float64Range(-100, 100),
		gen.Float64Range(-8, 8).SuchThat(func(g float64) bool { return math.Abs(g) > 1e-3 }),
	))

	properties.TestingRun(t)
}

// TestIsValid covers the degeneracy filter, full circles included.
func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		arc  Arc
		want bool
	}{
		{
			name: "ordinary segment",
			arc:  ArcFromBulge(NewPoint(0, 0), NewPoint(1, 0), 0),
			want: true,
		},
		{
			name: "zero length segment",
			arc:  ArcFromBulge(NewPoint(1, 1), NewPoint(1, 1), 0),
			want: false,
		},
		{
			name: "ordinary arc",
			arc:  Arc{A: NewPoint(1, 0), B: NewPoint(0, 1), C: NewPoint(0, 0), R: 1},
			want: true,
		},
		{
			name: "negative radius arc",
			arc:  Arc{A: NewPoint(1, 0), B: NewPoint(0, 1), C: NewPoint(0, 0), R: -0.5},
			want: false,
		},
		{
			name: "full circle",
			arc:  Arc{A: NewPoint(1, 0), B: NewPoint(1, 0), C: NewPoint(0, 0), R: 1},
			want: true,
		},
		{
			name: "sliver arc with near coincident endpoints",
			arc:  Arc{A: NewPoint(1, 0), B: NewPoint(1, 1e-12), C: NewPoint(0, 0), R: 1},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.arc.IsValid(EpsCollapsed); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestArcTangents checks the travel directions at the endpoints of a
// quarter circle: at (1,0) the CCW tangent points straight up, at (0,1)
// straight left.
func TestArcTangents(t *testing.T) {
	arc := Arc{A: NewPoint(1, 0), B: NewPoint(0, 1), C: NewPoint(0, 0), R: 1}
	tangents := arc.Tangents()

	require.InDelta(t, 0, tangents[0].X, 1e-12)
	require.InDelta(t, 1, tangents[0].Y, 1e-12)
	require.InDelta(t, -1, tangents[1].X, 1e-12)
	require.InDelta(t, 0, tangents[1].Y, 1e-12)

	seg := ArcFromBulge(NewPoint(0, 0), NewPoint(2, 0), 0)
	segTangents := seg.Tangents()
	require.Equal(t, NewPoint(1, 0), segTangents[0])
	require.Equal(t, segTangents[0], segTangents[1])
}

// TestOrient2D pins the sign convention and the invariance properties:
// consistency under translation and positive scaling.
func TestOrient2D(t *testing.T) {
	if Orient2D(NewPoint(0, 0), NewPoint(1, 0), NewPoint(0, 1)) <= 0 {
		t.Fatal("counterclockwise triple must be positive")
	}
	if Orient2D(NewPoint(0, 0), NewPoint(0, 1), NewPoint(1, 0)) >= 0 {
		t.Fatal("clockwise triple must be negative")
	}
	if Orient2D(NewPoint(0, 0), NewPoint(1, 1), NewPoint(2, 2)) != 0 {
		t.Fatal("collinear triple must be zero")
	}

	parameters := gopter.DefaultTestParametersWithSeed(2)
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("sign invariant under translation and scaling", prop.ForAll(
		func(px, py, qx, qy, rx, ry, tx, ty, s float64) bool {
			p, q, r := NewPoint(px, py), NewPoint(qx, qy), NewPoint(rx, ry)
			base := Orient2D(p, q, r)
			shift := NewPoint(tx, ty)
			moved := Orient2D(p.Add(shift), q.Add(shift), r.Add(shift))
			scaled := Orient2D(p.Scale(s), q.Scale(s), r.Scale(s))
			sign := func(v float64) int {
				switch {
				case v > 0:
					return 1
				case v < 0:
					return -1
				}
				return 0
			}
			// Translation may legitimately flip a near-degenerate triple;
			// only insist on agreement when clearly non-collinear.
			if math.Abs(base) < 1e-6 {
				return true
			}
			return sign(base) == sign(moved) && sign(base) == sign(scaled)
		},
		gen.Float64Range(-10, 10), gen.Float64Range(-10, 10),
		gen.Float64Range(-10, 10), gen.Float64Range(-10, 10),
		gen.Float64Range(-10, 10), gen.Float64Range(-10, 10),
		gen.Float64Range(-10, 10), gen.Float64Range(-10, 10),
		gen.Float64Range(0.1, 10),
	))

	properties.TestingRun(t)
}
