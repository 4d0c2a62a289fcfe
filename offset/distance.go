package arcoffset

import "math"

// DistancePointSegment returns the distance from p to the nearest point on
// seg, plus that nearest point.
func DistancePointSegment(p Point, seg Segment) (float64, Point) {
	direction := seg.B.Sub(seg.A)
	diff := p.Sub(seg.B)
	t := direction.Dot(diff)
	var closest Point
	if t >= 0 {
		closest = seg.B
	} else {
		diff = p.Sub(seg.A)
		t = direction.Dot(diff)
		if t <= 0 {
			closest = seg.A
		} else {
			sqrLen := direction.Dot(direction)
			if sqrLen > 0 {
				t = t / sqrLen
				closest = seg.A.Add(direction.Scale(t))
			} else {
				closest = seg.A
			}
		}
	}
	return p.Sub(closest).Norm(), closest
}

// DistancePointCircle returns the distance from p to circle, the nearest
// point on the circle, and whether p sits exactly at the center (in which
// case every point on the circle is equally near and an arbitrary one,
// along +X, is returned).
func DistancePointCircle(p Point, circle Circle) (float64, Point, bool) {
	diff := p.Sub(circle.C)
	length := diff.Dot(diff)
	if length > 0 {
		length = math.Sqrt(length)
		unit := diff.Scale(1 / length)
		return math.Abs(length - circle.R), circle.C.Add(unit.Scale(circle.R)), false
	}
	unit := Point{X: 1, Y: 0}
	return circle.R, circle.C.Add(unit.Scale(circle.R)), true
}

// DistancePointArc returns the distance from point to arc and the nearest
// point on it.
func DistancePointArc(point Point, arc Arc) (float64, Point) {
	circle := Circle{C: arc.C, R: arc.R}
	dist, closest, equidistant := DistancePointCircle(point, circle)
	if equidistant {
		return arc.R, arc.A
	}
	if arc.Contains(closest) {
		return dist, closest
	}
	diff0 := arc.A.Sub(point)
	diff1 := arc.B.Sub(point)
	sqr0 := diff0.Dot(diff0)
	sqr1 := diff1.Dot(diff1)
	if sqr0 <= sqr1 {
		return math.Sqrt(sqr0), arc.A
	}
	return math.Sqrt(sqr1), arc.B
}

// DistanceSegmentSegment returns the distance between two finite
// segments: zero when they intersect (including touching or
// overlapping), otherwise the minimum over the four
// endpoint-to-opposite-segment distances. The pruner only ever needs the
// minimum value, never the closest-point pair, so the fuller
// closest-point-on-both-segments minimization buys nothing here.
func DistanceSegmentSegment(seg0, seg1 Segment) float64 {
	inter := IntersectSegmentSegment(seg0, seg1)
	if inter.Kind != SegmentNoIntersection {
		return 0
	}
	_, c0 := DistancePointSegment(seg0.A, seg1)
	_, c1 := DistancePointSegment(seg0.B, seg1)
	_, c2 := DistancePointSegment(seg1.A, seg0)
	_, c3 := DistancePointSegment(seg1.B, seg0)
	d0 := seg0.A.DistanceTo(c0)
	d1 := seg0.B.DistanceTo(c1)
	d2 := seg1.A.DistanceTo(c2)
	d3 := seg1.B.DistanceTo(c3)
	return math.Min(math.Min(d0, d1), math.Min(d2, d3))
}

// DistanceSegmentArc returns the distance between a segment and an arc,
// zero if they intersect, otherwise the least of the four
// endpoint-to-opposite-primitive distances, the same candidate-set
// simplification as DistanceSegmentSegment.
func DistanceSegmentArc(seg Segment, arc Arc) float64 {
	inter := IntersectSegmentArc(seg, arc)
	if inter.Kind != SegmentArcNoIntersection {
		return 0
	}
	_, p0 := DistancePointArc(seg.A, arc)
	_, p1 := DistancePointArc(seg.B, arc)
	_, p2 := DistancePointSegment(arc.A, seg)
	_, p3 := DistancePointSegment(arc.B, seg)
	d0 := seg.A.DistanceTo(p0)
	d1 := seg.B.DistanceTo(p1)
	d2 := arc.A.DistanceTo(p2)
	d3 := arc.B.DistanceTo(p3)
	return math.Min(math.Min(d0, d1), math.Min(d2, d3))
}

// DistanceArcArc returns the distance between two arcs: zero if they
// intersect in any way (including cocircular overlap), otherwise the
// least of the four endpoint-to-opposite-arc distances, refined by the
// two extra candidate points where the center-to-center line crosses each
// arc (the closest approach between two non-intersecting, non-cocircular
// arcs can fall strictly between their endpoints, on the side of each
// circle nearest the other).
func DistanceArcArc(arc0, arc1 Arc) float64 {
	if IntersectArcArc(arc0, arc1).Kind != ArcArcNoIntersection {
		return 0
	}

	dist0, _ := DistancePointArc(arc0.A, arc1)
	dist1, _ := DistancePointArc(arc0.B, arc1)
	dist2, _ := DistancePointArc(arc1.A, arc0)
	dist3, _ := DistancePointArc(arc1.B, arc0)
	minDist := math.Min(math.Min(dist0, dist1), math.Min(dist2, dist3))

	if arc0.C.CloseEnough(arc1.C, 10e-10) {
		return minDist
	}

	lineAA := Line{Origin: arc0.C, Dir: arc1.C.Sub(arc0.C)}
	res0 := IntersectLineArc(lineAA, arc0)
	res1 := IntersectLineArc(lineAA, arc1)

	consider := func(a, b Point) {
		if d := a.DistanceTo(b); d < minDist {
			minDist = d
		}
	}

	switch {
	case res0.Kind == LineArcOnePoint && res1.Kind == LineArcOnePoint:
		consider(res0.P0, res1.P0)
	case res0.Kind == LineArcTwoPoints && res1.Kind == LineArcOnePoint:
		consider(res0.P0, res1.P0)
		consider(res0.P1, res1.P0)
	case res0.Kind == LineArcOnePoint && res1.Kind == LineArcTwoPoints:
		consider(res0.P0, res1.P0)
		consider(res0.P0, res1.P1)
	case res0.Kind == LineArcTwoPoints && res1.Kind == LineArcTwoPoints:
		consider(res0.P0, res1.P0)
		consider(res0.P0, res1.P1)
		consider(res0.P1, res1.P0)
		consider(res0.P1, res1.P1)
	}

	return minDist
}

// DistLineCircleKind tags whether a line comes closest to a circle along
// one closest pair (the line misses or grazes the circle) or two (the
// line crosses it, and each crossing is its own coincident pair).
type DistLineCircleKind int

const (
	DistLineCircleOnePair DistLineCircleKind = iota
	DistLineCircleTwoPairs
)

// DistLineCircleConfig is the result of DistanceLineCircle.
type DistLineCircleConfig struct {
	Kind                 DistLineCircleKind
	Dist                 float64
	Param0, Param1       float64
	Closest00, Closest01 Point
	Closest10, Closest11 Point
}

// DistanceLineCircle finds the closest approach between an infinite line
// and a circle, a GTE-style closest-point routine.
func DistanceLineCircle(line Line, circle Circle) DistLineCircleConfig {
	delta := line.Origin.Sub(circle.C)
	direction := line.Dir
	radius := circle.R

	dotDirDir := direction.Dot(direction)
	dotDirDel := direction.Dot(delta)
	dotPerpDirDel := direction.Perp(delta)
	rSqr := radius * radius

	test := diffOfProd(dotPerpDirDel, dotPerpDirDel, rSqr, dotDirDir)
	var param [2]float64
	var closest [2][2]Point
	numPairs := 1
	if test >= 0 {
		param[0] = -dotDirDel / dotDirDir
		closest[0][0] = delta.Add(direction.Scale(param[0]))
		closest[0][1] = closest[0][0]
		if test > 0 {
			unit, _ := closest[0][1].Normalize()
			closest[0][1] = unit.Scale(radius)
		}
	} else {
		a0 := delta.Dot(delta) - radius*radius
		a1 := dotDirDel
		a2 := dotDirDir
		discr := math.Max(a1*a1-a0*a2, 0)
		sqrtDiscr := math.Sqrt(discr)
		temp := -dotDirDel
		if dotDirDel > 0 {
			temp -= sqrtDiscr
		} else {
			temp += sqrtDiscr
		}
		numPairs = 2
		param[0] = temp / dotDirDir
		param[1] = a0 / temp
		if param[0] > param[1] {
			param[0], param[1] = param[1], param[0]
		}
		closest[0][0] = delta.Add(direction.Scale(param[0]))
		closest[0][1] = closest[0][0]
		closest[1][0] = delta.Add(direction.Scale(param[1]))
		closest[1][1] = closest[1][0]
	}

	for j := 0; j < numPairs; j++ {
		for i := 0; i < 2; i++ {
			closest[j][i] = closest[j][i].Add(circle.C)
		}
	}

	if numPairs == 1 {
		// Line misses (or grazes) the circle: the gap between the line's
		// nearest point and the circle's nearest point.
		dist := closest[0][0].Sub(closest[0][1]).Norm()
		return DistLineCircleConfig{
			Kind: DistLineCircleOnePair, Dist: dist, Param0: param[0],
			Closest00: closest[0][0], Closest01: closest[0][1],
		}
	}
	return DistLineCircleConfig{
		Kind: DistLineCircleTwoPairs, Param0: param[0], Param1: param[1],
		Closest00: closest[0][0], Closest01: closest[0][1],
		Closest10: closest[1][0], Closest11: closest[1][1],
	}
}

// DistSegmentCircleKind tags the shape of a segment/circle distance
// result.
type DistSegmentCircleKind int

const (
	DistSegmentCircleOnePoint DistSegmentCircleKind = iota
	DistSegmentCircleTwoPoints
)

// DistSegmentCircleConfig is the result of DistanceSegmentCircle.
type DistSegmentCircleConfig struct {
	Kind   DistSegmentCircleKind
	Dist   float64
	P0, P1 Point
}

// DistanceSegmentCircle finds the closest approach between a finite
// segment and a circle by running DistanceLineCircle against the
// segment's supporting line and clamping the result to the segment's
// parameter range [0, 1].
func DistanceSegmentCircle(seg Segment, circle Circle) DistSegmentCircleConfig {
	line := Line{Origin: seg.A, Dir: seg.B.Sub(seg.A)}
	dlc := DistanceLineCircle(line, circle)

	distToCircle := func() (float64, Point) {
		d0, p0, _ := DistancePointCircle(seg.A, circle)
		d1, p1, _ := DistancePointCircle(seg.B, circle)
		if d0 <= d1 {
			return d0, p0
		}
		return d1, p1
	}

	switch dlc.Kind {
	case DistLineCircleTwoPairs:
		p0, p1 := dlc.Param0, dlc.Param1
		switch {
		case p0 > 1 && p1 > 1:
			d2, pp := distToCircle()
			return DistSegmentCircleConfig{Kind: DistSegmentCircleOnePoint, Dist: d2, P0: pp}
		case p0 >= 0 && p0 <= 1 && p1 > 1:
			return DistSegmentCircleConfig{Kind: DistSegmentCircleOnePoint, P0: dlc.Closest01}
		case p0 >= 0 && p0 <= 1 && p1 >= 0 && p1 <= 1:
			return DistSegmentCircleConfig{Kind: DistSegmentCircleTwoPoints, P0: dlc.Closest01, P1: dlc.Closest11}
		case p0 < 0 && p1 > 1:
			d2, pp := distToCircle()
			return DistSegmentCircleConfig{Kind: DistSegmentCircleOnePoint, Dist: d2, P0: pp}
		case p0 < 0 && p1 >= 0 && p1 <= 1:
			return DistSegmentCircleConfig{Kind: DistSegmentCircleOnePoint, P0: dlc.Closest11}
		default:
			d2, pp := distToCircle()
			return DistSegmentCircleConfig{Kind: DistSegmentCircleOnePoint, Dist: d2, P0: pp}
		}
	default: // DistLineCircleOnePair
		switch {
		case dlc.Param0 < 0:
			d, p, _ := DistancePointCircle(seg.A, circle)
			return DistSegmentCircleConfig{Kind: DistSegmentCircleOnePoint, Dist: d, P0: p}
		case dlc.Param0 > 1:
			d0, p0, _ := DistancePointCircle(seg.A, circle)
			d1, p1, _ := DistancePointCircle(seg.B, circle)
			if d0 <= d1 {
				return DistSegmentCircleConfig{Kind: DistSegmentCircleOnePoint, Dist: d0, P0: p0}
			}
			return DistSegmentCircleConfig{Kind: DistSegmentCircleOnePoint, Dist: d1, P0: p1}
		default:
			return DistSegmentCircleConfig{Kind: DistSegmentCircleOnePoint, Dist: dlc.Dist, P0: dlc.Closest01}
		}
	}
}

