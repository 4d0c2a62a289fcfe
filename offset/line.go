package arcoffset

import "math"

// Line is an infinite line through origin along direction dir. dir need
// not be a unit vector; the intersection routines carry its scale through
// into their returned parameters.
type Line struct {
	Origin, Dir Point
}

// NewLine builds a Line.
func NewLine(origin, dir Point) Line { return Line{Origin: origin, Dir: dir} }

// LineKind tags the shape of a line/line intersection result.
type LineKind int

const (
	LineParallelDistinct LineKind = iota
	LineParallelTheSame
	LineOnePoint
)

// LineConfig is the result of IntersectLineLine.
type LineConfig struct {
	Kind   LineKind
	P      Point
	S0, S1 float64
}

// IntersectLineLine classifies how two infinite lines meet.
func IntersectLineLine(l0, l1 Line) LineConfig {
	q := l1.Origin.Sub(l0.Origin)
	dotD0PerpD1 := l0.Dir.Perp(l1.Dir)
	if dotD0PerpD1 != 0 {
		dotQPerpD0 := q.Perp(l0.Dir)
		dotQPerpD1 := q.Perp(l1.Dir)
		s0 := dotQPerpD1 / dotD0PerpD1
		s1 := dotQPerpD0 / dotD0PerpD1
		p := l0.Origin.Add(l0.Dir.Scale(s0))
		return LineConfig{Kind: LineOnePoint, P: p, S0: s0, S1: s1}
	}
	dotQPerpD1 := q.Perp(l1.Dir)
	if dotQPerpD1 != 0 {
		return LineConfig{Kind: LineParallelDistinct}
	}
	return LineConfig{Kind: LineParallelTheSame}
}

// LineCircleKind tags the shape of a line/circle intersection result.
type LineCircleKind int

const (
	LineCircleNoIntersection LineCircleKind = iota
	LineCircleOnePoint
	LineCircleTwoPoints
)

// LineCircleConfig is the result of IntersectLineCircle.
type LineCircleConfig struct {
	Kind   LineCircleKind
	P0, P1 Point
	T0, T1 float64
}

// IntersectLineCircle finds where line meets circle, parametrized by the
// line's own direction scale.
func IntersectLineCircle(line Line, circle Circle) LineCircleConfig {
	diff := line.Origin.Sub(circle.C)
	a0 := diff.Dot(diff) - circle.R*circle.R
	a1 := line.Dir.Dot(diff)
	dd := line.Dir.Dot(line.Dir)
	discr := math.FMA(a1, a1, -dd*a0)
	switch {
	case discr > 0:
		root := math.Sqrt(discr)
		t0 := (-a1 - root) / dd
		t1 := (-a1 + root) / dd
		p0 := line.Origin.Add(line.Dir.Scale(t0))
		p1 := line.Origin.Add(line.Dir.Scale(t1))
		return LineCircleConfig{Kind: LineCircleTwoPoints, P0: p0, P1: p1, T0: t0, T1: t1}
	case discr < 0:
		return LineCircleConfig{Kind: LineCircleNoIntersection}
	default:
		t0 := -a1 / dd
		p0 := line.Origin.Add(line.Dir.Scale(t0))
		return LineCircleConfig{Kind: LineCircleOnePoint, P0: p0, T0: t0}
	}
}

// LineArcKind tags the shape of a line/arc intersection result.
type LineArcKind int

const (
	LineArcNoIntersection LineArcKind = iota
	LineArcOnePoint
	LineArcTwoPoints
)

// LineArcConfig is the result of IntersectLineArc.
type LineArcConfig struct {
	Kind   LineArcKind
	P0, P1 Point
	T0, T1 float64
}

// IntersectLineArc intersects line with arc's supporting circle and keeps
// only the points arc.Contains accepts, collapsing TwoPoints to OnePoint
// or NoIntersection when one or both candidates fall outside the arc's
// span.
func IntersectLineArc(line Line, arc Arc) LineArcConfig {
	circle := Circle{C: arc.C, R: arc.R}
	lc := IntersectLineCircle(line, circle)
	switch lc.Kind {
	case LineCircleNoIntersection:
		return LineArcConfig{Kind: LineArcNoIntersection}
	case LineCircleOnePoint:
		if arc.Contains(lc.P0) {
			return LineArcConfig{Kind: LineArcOnePoint, P0: lc.P0, T0: lc.T0}
		}
		return LineArcConfig{Kind: LineArcNoIntersection}
	default:
		b0, b1 := arc.Contains(lc.P0), arc.Contains(lc.P1)
		switch {
		case b0 && b1:
			return LineArcConfig{Kind: LineArcTwoPoints, P0: lc.P0, P1: lc.P1, T0: lc.T0, T1: lc.T1}
		case b0:
			return LineArcConfig{Kind: LineArcOnePoint, P0: lc.P0, T0: lc.T0}
		case b1:
			return LineArcConfig{Kind: LineArcOnePoint, P0: lc.P1, T0: lc.T1}
		default:
			return LineArcConfig{Kind: LineArcNoIntersection}
		}
	}
}
