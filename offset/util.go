package arcoffset

import "math"

// diffOfProd computes a*b - c*d with a Kahan-style FMA compensation step
// so that near-cancelling products don't lose precision.
func diffOfProd(a, b, c, d float64) float64 {
	cd := c * d
	err := math.FMA(-c, d, cd)
	dop := math.FMA(a, b, -cd)
	return dop + err
}

// sumOfProd computes a*b + c*d with the matching compensation step.
func sumOfProd(a, b, c, d float64) float64 {
	cd := c * d
	err := math.FMA(c, d, -cd)
	sop := math.FMA(a, b, cd)
	return sop + err
}

// closeEnough reports whether a and b are within eps of each other.
func closeEnough(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// almostEqualAsInt compares two floats by the integer distance between
// their bit patterns (ULPs), the representation-agnostic way to ask "are
// these within N floating point steps of each other".
func almostEqualAsInt(a, b float64, ulps int64) bool {
	if math.Signbit(a) != math.Signbit(b) {
		return a == b
	}
	const signMask = int64(math.MinInt64)
	ai := int64(math.Float64bits(a))
	bi := int64(math.Float64bits(b))
	if ai < 0 {
		ai = signMask - ai
	}
	if bi < 0 {
		bi = signMask - bi
	}
	d := ai - bi
	if d < 0 {
		d = -d
	}
	return d <= ulps
}

// sortParallelPoints orders four points known to lie on a common line by
// their signed position along dir, used to sort overlapping collinear
// segment endpoints without dividing by the line's direction.
func sortParallelPoints(dir Point, pts [4]Point) [4]Point {
	key := func(p Point) float64 { return p.Dot(dir) }
	res := pts
	for i := 1; i < len(res); i++ {
		for j := i; j > 0 && key(res[j-1]) > key(res[j]); j-- {
			res[j-1], res[j] = res[j], res[j-1]
		}
	}
	return res
}
