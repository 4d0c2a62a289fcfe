package arcoffset

import "math"

// Tolerances shared across the pipeline, in input coordinate units.
// Changing them shifts which near-degenerate fragments get collapsed or
// merged.
const (
	// EpsCollapsed is how close an arc's radius may get to zero or to
	// infinite curvature before it is treated as collapsed.
	EpsCollapsed = 1e-10
	// EpsPrune is the slack given to the validity pruner when
	// comparing a candidate fragment's distance against the requested
	// offset.
	EpsPrune = 1e-8
	// MergeTolerance is the radius within which two fragment endpoints
	// are folded into a single topology vertex.
	MergeTolerance = 1e-8
	// VertexTolerance is used when deduplicating vertices inside the
	// cycle-extraction graph.
	VertexTolerance = 1e-8
)

// Point is a 2D point or free vector, depending on context.
type Point struct {
	X, Y float64
}

// NewPoint builds a Point.
func NewPoint(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point      { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point      { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(s float64) Point  { return Point{p.X * s, p.Y * s} }
func (p Point) Neg() Point             { return Point{-p.X, -p.Y} }
func (p Point) Dot(q Point) float64    { return p.X*q.X + p.Y*q.Y }
func (p Point) Perp(q Point) float64   { return diffOfProd(p.X, q.Y, p.Y, q.X) }
func (p Point) Norm() float64          { return math.Hypot(p.X, p.Y) }
func (p Point) DistanceTo(q Point) float64 { return p.Sub(q).Norm() }

// Normalize returns the unit vector along p and its original length. A
// zero-length vector normalizes to the zero vector, not NaN.
func (p Point) Normalize() (Point, float64) {
	n := p.Norm()
	if n > 0 {
		return Point{p.X / n, p.Y / n}, n
	}
	return Point{}, 0
}

// AlmostEqual reports whether p and q are within ulps representable
// floating point steps of each other, componentwise.
func (p Point) AlmostEqual(q Point) bool {
	return almostEqualAsInt(p.X, q.X, 10) && almostEqualAsInt(p.Y, q.Y, 10)
}

// CloseEnough reports whether p and q are within eps of each other.
func (p Point) CloseEnough(q Point, eps float64) bool {
	return closeEnough(p.X, q.X, eps) && closeEnough(p.Y, q.Y, eps)
}

// Circle is a center and radius.
type Circle struct {
	C Point
	R float64
}

// NewCircle builds a Circle. Panics if r is not positive: a
// non-positive radius is a construction error, not a geometric
// degeneracy the pipeline is expected to absorb.
func NewCircle(c Point, r float64) Circle {
	if r <= 0 {
		panic("arcoffset: circle radius must be positive")
	}
	return Circle{C: c, R: r}
}

// Arc is the fundamental boundary primitive: the arc of circle C,R from
// point A to point B, travelling counterclockwise. A straight segment is
// represented as an Arc with R == math.Inf(1) (equivalently, bulge 0); see
// ArcFromBulge.
type Arc struct {
	A, B Point
	C    Point
	R    float64
	ID   uint64
}

// IsSegment reports whether this Arc is really a straight line segment.
func (a Arc) IsSegment() bool { return math.IsInf(a.R, 1) }

// Contains reports whether p lies on the arc's side of the chord A-B,
// i.e. Orient2D(A, p, B) >= 0. Callers pass points known to lie on the
// arc's circle; for a segment the answer is always false.
func (a Arc) Contains(p Point) bool {
	if a.IsSegment() {
		return false
	}
	return Orient2D(a.A, p, a.B) >= 0
}

// WithID returns a copy of the arc with its ID field set.
func (a Arc) WithID(id uint64) Arc {
	a.ID = id
	return a
}

// PVertex is one vertex of a bulge Polyline: a point plus the bulge of the
// segment that starts there and runs to the next vertex.
type PVertex struct {
	P Point
	G float64
}

// NewPVertex builds a PVertex.
func NewPVertex(p Point, g float64) PVertex { return PVertex{P: p, G: g} }

// Polyline is a closed sequence of bulge vertices.
type Polyline []PVertex

// Arcline is a closed sequence of arc primitives, each ending where the
// next begins.
type Arcline []Arc

// Reverse returns poly traversed in the opposite direction, negating
// bulges the way a bulge-polyline direction reversal must.
func (poly Polyline) Reverse() Polyline {
	n := len(poly)
	if n == 0 {
		return nil
	}
	res := make(Polyline, 0, n)
	for i := n - 1; i > 0; i-- {
		res = append(res, NewPVertex(poly[i].P, -poly[i-1].G))
	}
	res = append(res, NewPVertex(poly[0].P, -poly[n-1].G))
	return res
}

// Scale returns poly with every vertex scaled about the origin.
func (poly Polyline) Scale(s float64) Polyline {
	res := make(Polyline, len(poly))
	for i, v := range poly {
		res[i] = NewPVertex(v.P.Scale(s), v.G)
	}
	return res
}

// Translate returns poly with every vertex shifted by t.
func (poly Polyline) Translate(t Point) Polyline {
	res := make(Polyline, len(poly))
	for i, v := range poly {
		res[i] = NewPVertex(v.P.Add(t), v.G)
	}
	return res
}

// OffsetRaw pairs a raw per-primitive offset arc with the original vertex
// it was produced from and the bulge that produced it, the unit of work
// the connector insertion stage consumes.
type OffsetRaw struct {
	Arc  Arc
	Orig Point
	G    float64
}

// NewOffsetRaw builds an OffsetRaw.
func NewOffsetRaw(arc Arc, orig Point, g float64) OffsetRaw {
	return OffsetRaw{Arc: arc, Orig: orig, G: g}
}

func next(i, size int) int {
	if i+1 < size {
		return i + 1
	}
	return 0
}

func prev(i, size int) int {
	if i > 0 {
		return i - 1
	}
	return size - 1
}
