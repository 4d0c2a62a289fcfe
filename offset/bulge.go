package arcoffset

import "math"

// ArcFromBulge builds the Arc swept from a to b by bulge g, the standard
// bulge parametrization: g = tan(theta/4) where theta is the included
// angle, signed so that g > 0 bulges to the right of a->b and g < 0 bulges
// to the left. g == 0 yields a straight segment.
func ArcFromBulge(aa, bb Point, gg float64) Arc {
	a, b, g := aa, bb, gg
	if g < 0 {
		a, b, g = bb, aa, -gg
	}
	if g == 0 {
		return Arc{A: a, B: b, C: Point{X: math.Inf(1), Y: math.Inf(1)}, R: math.Inf(1)}
	}
	t2 := b.Sub(a).Norm()
	dt2 := (1.0 + g) * (1.0 - g) / (4.0 * g)
	cx := 0.5*a.X + 0.5*b.X + dt2*(a.Y-b.Y)
	cy := 0.5*a.Y + 0.5*b.Y + dt2*(b.X-a.X)
	r := 0.25 * t2 * math.Abs(1.0/g+g)
	return Arc{A: a, B: b, C: Point{X: cx, Y: cy}, R: r}
}

// BulgeFromArc recovers the bulge g that would reproduce the arc from a to
// b around center c with radius r via ArcFromBulge. The sign of
// Orient2D(a, b, c) picks the sagitta branch: a center left of the chord
// means the counterclockwise sweep from a to b is the minor arc (sagitta
// r - sqrt(...)), a center right of it means the major arc (sagitta
// r + sqrt(...)).
func BulgeFromArc(a, b, c Point, r float64) float64 {
	dist := b.Sub(a).Norm()
	if dist < 1e-10 {
		return 0
	}
	perp := Orient2D(a, b, c)
	ddd := 4.0*r*r - dist*dist
	if ddd < 0 {
		ddd = 0
	}
	if perp > 0 {
		seg := r - 0.5*math.Sqrt(ddd)
		return 2.0 * seg / dist
	}
	seg := r + 0.5*math.Sqrt(ddd)
	return 2.0 * seg / dist
}

// BoundingCircle returns a circle guaranteed to contain the arc swept from
// a to b by bulge g, used to build conservative AABBs for the spatial
// index.
func BoundingCircle(a, b Point, g float64) Circle {
	cx := 0.5*a.X + 0.5*b.X
	cy := 0.5*a.Y + 0.5*b.Y
	if math.Abs(g) <= 1 {
		r := 0.5 * b.Sub(a).Norm()
		if r == 0 {
			r = EpsCollapsed
		}
		return Circle{C: Point{X: cx, Y: cy}, R: r}
	}
	t2 := b.Sub(a).Norm()
	dt2 := (1.0 + g) * (1.0 - g) / (4.0 * g)
	cx = cx + dt2*(a.Y-b.Y)
	cy = cy + dt2*(b.X-a.X)
	r := 0.25 * t2 * (1.0/g + g)
	return Circle{C: Point{X: cx, Y: cy}, R: math.Abs(r)}
}

// IsValid reports whether the arc is large enough to survive the
// pipeline's degeneracy filters: its chord must exceed eps, and if it is
// a true arc (not a segment) its radius must be positive and exceed eps.
// A negative radius is how a connector built on the concave side of a
// corner, or an arc offset past its own center, announces itself; both
// are rejected here rather than at every call site. The one zero-chord
// shape that stays valid is the full circle, encoded as a proper arc
// whose endpoints are bitwise equal.
func (a Arc) IsValid(eps float64) bool {
	chord := a.A.DistanceTo(a.B)
	if a.IsSegment() {
		return chord > eps
	}
	if a.R <= eps {
		return false
	}
	if a.A == a.B {
		return true
	}
	return chord > eps
}

// Tangents returns the unit tangent directions of travel at the arc's
// start (index 0) and end (index 1) points, both oriented along the arc's
// counterclockwise sweep from A to B. For a segment both entries are the
// same unit direction vector; for a true arc each is the radius vector at
// that endpoint rotated a quarter turn counterclockwise.
func (a Arc) Tangents() [2]Point {
	if a.IsSegment() {
		dir, _ := a.B.Sub(a.A).Normalize()
		return [2]Point{dir, dir}
	}
	radiusAt := func(p Point) Point {
		d := p.Sub(a.C)
		ccw := Point{X: -d.Y, Y: d.X}
		unit, _ := ccw.Normalize()
		return unit
	}
	return [2]Point{radiusAt(a.A), radiusAt(a.B)}
}

// Tangent returns the travel direction at vertex, used by the topology
// reconnector to decide turning angles when threading fragments into
// cycles. incoming selects whether the direction points into the vertex
// (true) or away from it (false). A vertex matching neither endpoint
// falls back to chord directions against the nearer endpoint.
func (a Arc) Tangent(vertex Point, incoming bool) Point {
	const tol = 1e-10
	tangents := a.Tangents()
	atStart := vertex.Sub(a.A).Norm() < tol
	atEnd := vertex.Sub(a.B).Norm() < tol
	switch {
	case atStart:
		if incoming {
			return tangents[0].Neg()
		}
		return tangents[0]
	case atEnd:
		if incoming {
			return tangents[1]
		}
		return tangents[1].Neg()
	default:
		toA := vertex.Sub(a.A).Norm()
		toB := vertex.Sub(a.B).Norm()
		if incoming {
			if toA < toB {
				dir, _ := vertex.Sub(a.A).Normalize()
				return dir
			}
			dir, _ := vertex.Sub(a.B).Normalize()
			return dir
		}
		if toA < toB {
			dir, _ := a.B.Sub(vertex).Normalize()
			return dir
		}
		dir, _ := a.A.Sub(vertex).Normalize()
		return dir
	}
}
