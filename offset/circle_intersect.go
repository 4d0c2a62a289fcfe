package arcoffset

import "math"

// CircleKind tags the shape of a circle/circle intersection result.
type CircleKind int

const (
	CircleNoIntersection CircleKind = iota
	CircleNoncocircularOnePoint
	CircleNoncocircularTwoPoints
	CircleSameCircles
)

// CircleConfig is the result of IntersectCircleCircle.
type CircleConfig struct {
	Kind   CircleKind
	P0, P1 Point
}

// IntersectCircleCircle classifies how two circles meet.
func IntersectCircleCircle(c0, c1 Circle) CircleConfig {
	u := c1.C.Sub(c0.C)
	usqrLen := u.Dot(u)
	r0, r1 := c0.R, c1.R
	r0mr1 := r0 - r1

	if usqrLen == 0 && r0mr1 == 0 {
		return CircleConfig{Kind: CircleSameCircles}
	}

	r0mr1Sqr := r0mr1 * r0mr1
	if usqrLen < r0mr1Sqr {
		return CircleConfig{Kind: CircleNoIntersection}
	}

	r0pr1 := r0 + r1
	r0pr1Sqr := r0pr1 * r0pr1
	if usqrLen > r0pr1Sqr {
		return CircleConfig{Kind: CircleNoIntersection}
	}

	if usqrLen < r0pr1Sqr {
		if r0mr1Sqr < usqrLen {
			invUsqrLen := 1.0 / usqrLen
			s := 0.5 * ((r0*r0-r1*r1)*invUsqrLen + 1.0)
			discr := r0*r0*invUsqrLen - s*s
			if discr < 0 {
				discr = 0
			}
			t := math.Sqrt(discr)
			v := Point{X: u.Y, Y: -u.X}
			tmp := c0.C.Add(u.Scale(s))
			p0 := tmp.Sub(v.Scale(t))
			p1 := tmp.Add(v.Scale(t))
			if t > 0 {
				return CircleConfig{Kind: CircleNoncocircularTwoPoints, P0: p0, P1: p1}
			}
			return CircleConfig{Kind: CircleNoncocircularOnePoint, P0: p0}
		}
		p0 := c0.C.Add(u.Scale(r0 / r0mr1))
		return CircleConfig{Kind: CircleNoncocircularOnePoint, P0: p0}
	}
	p0 := c0.C.Add(u.Scale(r0 / r0pr1))
	return CircleConfig{Kind: CircleNoncocircularOnePoint, P0: p0}
}

// SegmentKind tags the shape of a segment/segment intersection result.
type SegmentKind int

const (
	SegmentNoIntersection SegmentKind = iota
	SegmentOnePoint
	SegmentTwoPoints
)

// SegmentConfig is the result of IntersectSegmentSegment. TwoPoints holds
// the four collinear-overlap endpoints sorted along the shared direction
// (P0..P3), the order the splitter slices fragments against.
type SegmentConfig struct {
	Kind           SegmentKind
	P              Point
	S0, S1         float64
	P0, P1, P2, P3 Point
}

// IntersectSegmentSegment intersects two finite segments.
func IntersectSegmentSegment(seg0, seg1 Segment) SegmentConfig {
	seg0Origin, seg0Dir, seg0Extent := seg0.CenteredForm()
	seg1Origin, seg1Dir, seg1Extent := seg1.CenteredForm()
	line0 := Line{Origin: seg0Origin, Dir: seg0Dir}
	line1 := Line{Origin: seg1Origin, Dir: seg1Dir}

	ll := IntersectLineLine(line0, line1)
	switch ll.Kind {
	case LineParallelDistinct:
		return SegmentConfig{Kind: SegmentNoIntersection}
	case LineOnePoint:
		if math.Abs(ll.S0) <= seg0Extent && math.Abs(ll.S1) <= seg1Extent {
			return SegmentConfig{Kind: SegmentOnePoint, P: ll.P, S0: ll.S0, S1: ll.S1}
		}
		return SegmentConfig{Kind: SegmentNoIntersection}
	default: // LineParallelTheSame
		diff := seg1Origin.Sub(seg0Origin)
		t := seg0Dir.Dot(diff)
		iv0 := Interval{Lo: -seg0Extent, Hi: seg0Extent}
		iv1 := Interval{Lo: t - seg1Extent, Hi: t + seg1Extent}

		ii := IntersectIntervalInterval(iv0, iv1)
		switch ii.Kind {
		case IntervalOverlap:
			sorted := sortParallelPoints(seg0Dir, [4]Point{seg0.A, seg0.B, seg1.A, seg1.B})
			return SegmentConfig{Kind: SegmentTwoPoints, P0: sorted[0], P1: sorted[1], P2: sorted[2], P3: sorted[3]}
		default:
			return SegmentConfig{Kind: SegmentNoIntersection}
		}
	}
}

// IsTouchingSegmentSegment reports whether s0 and s1 share an endpoint
// exactly.
func IsTouchingSegmentSegment(s0, s1 Segment) bool {
	return s0.A == s1.A || s0.A == s1.B || s0.B == s1.A || s0.B == s1.B
}

// SegmentCircleKind tags the shape of a segment/circle intersection
// result.
type SegmentCircleKind int

const (
	SegmentCircleNoIntersection SegmentCircleKind = iota
	SegmentCircleOnePoint
	SegmentCircleTwoPoints
)

// SegmentCircleConfig is the result of IntersectSegmentCircle.
type SegmentCircleConfig struct {
	Kind   SegmentCircleKind
	P0, P1 Point
	T0, T1 float64
}

// IntersectSegmentCircle intersects a finite segment with a circle.
func IntersectSegmentCircle(seg Segment, circle Circle) SegmentCircleConfig {
	segOrigin, segDir, segExtent := seg.CenteredForm()
	lc := IntersectLineCircle(Line{Origin: segOrigin, Dir: segDir}, circle)
	segInterval := Interval{Lo: -segExtent, Hi: segExtent}
	switch lc.Kind {
	case LineCircleNoIntersection:
		return SegmentCircleConfig{Kind: SegmentCircleNoIntersection}
	case LineCircleOnePoint:
		if segInterval.Contains(lc.T0) {
			return SegmentCircleConfig{Kind: SegmentCircleOnePoint, P0: lc.P0, T0: lc.T0}
		}
		return SegmentCircleConfig{Kind: SegmentCircleNoIntersection}
	default:
		b0 := segInterval.Contains(lc.T0)
		b1 := segInterval.Contains(lc.T1)
		switch {
		case b0 && b1:
			return SegmentCircleConfig{Kind: SegmentCircleTwoPoints, P0: lc.P0, P1: lc.P1, T0: lc.T0, T1: lc.T1}
		case b0:
			return SegmentCircleConfig{Kind: SegmentCircleOnePoint, P0: lc.P0, T0: lc.T0}
		case b1:
			return SegmentCircleConfig{Kind: SegmentCircleOnePoint, P0: lc.P1, T0: lc.T1}
		default:
			return SegmentCircleConfig{Kind: SegmentCircleNoIntersection}
		}
	}
}

// SegmentArcKind tags the shape of a segment/arc intersection result.
type SegmentArcKind int

const (
	SegmentArcNoIntersection SegmentArcKind = iota
	SegmentArcOnePoint
	SegmentArcTwoPoints
)

// SegmentArcConfig is the result of IntersectSegmentArc.
type SegmentArcConfig struct {
	Kind   SegmentArcKind
	P0, P1 Point
	T0, T1 float64
}

// IntersectSegmentArc intersects segment with arc's supporting circle and
// keeps only the points arc.Contains accepts.
func IntersectSegmentArc(seg Segment, arc Arc) SegmentArcConfig {
	circle := Circle{C: arc.C, R: arc.R}
	sc := IntersectSegmentCircle(seg, circle)
	switch sc.Kind {
	case SegmentCircleNoIntersection:
		return SegmentArcConfig{Kind: SegmentArcNoIntersection}
	case SegmentCircleOnePoint:
		if arc.Contains(sc.P0) {
			return SegmentArcConfig{Kind: SegmentArcOnePoint, P0: sc.P0, T0: sc.T0}
		}
		return SegmentArcConfig{Kind: SegmentArcNoIntersection}
	default:
		b0, b1 := arc.Contains(sc.P0), arc.Contains(sc.P1)
		switch {
		case b0 && b1:
			return SegmentArcConfig{Kind: SegmentArcTwoPoints, P0: sc.P0, P1: sc.P1, T0: sc.T0, T1: sc.T1}
		case b0:
			return SegmentArcConfig{Kind: SegmentArcOnePoint, P0: sc.P0, T0: sc.T0}
		case b1:
			return SegmentArcConfig{Kind: SegmentArcOnePoint, P0: sc.P1, T0: sc.T1}
		default:
			return SegmentArcConfig{Kind: SegmentArcNoIntersection}
		}
	}
}

// IsTouchingSegmentArc reports whether seg shares an endpoint exactly
// with arc.
func IsTouchingSegmentArc(s Segment, a Arc) bool {
	return s.A == a.A || s.A == a.B || s.B == a.A || s.B == a.B
}
