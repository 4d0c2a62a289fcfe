package arcoffset

// Orient2D returns twice the signed area of triangle (p, q, r), a value
// positive when p, q, r turn counterclockwise, negative when clockwise, zero
// when collinear. Every sidedness decision in this package routes through
// here rather than a raw determinant, because a naive
// (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X) loses its sign near collinear
// triples to floating point cancellation, and the cocircular arc-arc
// branch and the connector convexity test both depend on getting that sign
// right.
//
// This is not a full adaptive multi-stage expansion; a compensated
// cross product resolves the dominant failure mode, a bare
// double-precision determinant losing its sign near collinearity, the
// same way util.go's diffOfProd already does for Point.Perp.
func Orient2D(p, q, r Point) float64 {
	return diffOfProd(q.X-p.X, r.Y-p.Y, q.Y-p.Y, r.X-p.X)
}
