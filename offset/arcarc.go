package arcoffset

// ArcArcKind tags the shape of an arc/arc intersection result. Cocircular
// results are richer than point results: two arcs sharing a circle can
// overlap over a sub-arc, touch at one point with a leftover arc, or meet
// at two separate points, all distinguished below.
type ArcArcKind int

const (
	ArcArcNoIntersection ArcArcKind = iota
	ArcArcNonCocircularOnePoint
	ArcArcNonCocircularTwoPoints
	ArcArcCocircularOnePoint0
	ArcArcCocircularOnePoint1
	ArcArcCocircularTwoPoints
	ArcArcCocircularOnePointOneArc0
	ArcArcCocircularOnePointOneArc1
	ArcArcCocircularOneArc0
	ArcArcCocircularOneArc1
	ArcArcCocircularOneArc2
	ArcArcCocircularOneArc3
	ArcArcCocircularOneArc4
	ArcArcCocircularTwoArcs
)

// ArcArcConfig is the result of IntersectArcArc. Which fields are
// populated depends on Kind; see the construction site of each Kind in
// IntersectArcArc.
type ArcArcConfig struct {
	Kind       ArcArcKind
	P0, P1     Point
	Arc0, Arc1 Arc
}

// IntersectArcArc intersects two arcs sharing or not sharing a circle,
// built on IntersectCircleCircle plus arc.Contains filtering.
func IntersectArcArc(arc0, arc1 Arc) ArcArcConfig {
	circle0 := Circle{C: arc0.C, R: arc0.R}
	circle1 := Circle{C: arc1.C, R: arc1.R}
	cc := IntersectCircleCircle(circle0, circle1)

	switch cc.Kind {
	case CircleNoIntersection:
		return ArcArcConfig{Kind: ArcArcNoIntersection}

	case CircleSameCircles:
		if arc1.Contains(arc0.A) {
			if arc1.Contains(arc0.B) {
				if arc0.Contains(arc1.A) && arc0.Contains(arc1.B) {
					if arc0.A == arc1.A && arc0.B == arc1.B {
						return ArcArcConfig{Kind: ArcArcCocircularOneArc0, Arc0: arc0}
					}
					if arc0.A != arc1.B {
						if arc1.A != arc0.B {
							resArc0 := Arc{A: arc0.A, B: arc1.B, C: arc0.C, R: arc0.R}
							resArc1 := Arc{A: arc1.A, B: arc0.B, C: arc0.C, R: arc0.R}
							return ArcArcConfig{Kind: ArcArcCocircularTwoArcs, Arc0: resArc0, Arc1: resArc1}
						}
						resArc0 := Arc{A: arc0.A, B: arc1.B, C: arc0.C, R: arc0.R}
						return ArcArcConfig{Kind: ArcArcCocircularOnePointOneArc0, P0: arc0.B, Arc0: resArc0}
					}
					if arc1.A != arc0.B {
						resArc0 := Arc{A: arc1.A, B: arc0.B, C: arc0.C, R: arc0.R}
						return ArcArcConfig{Kind: ArcArcCocircularOnePointOneArc1, P0: arc0.A, Arc0: resArc0}
					}
					return ArcArcConfig{Kind: ArcArcCocircularTwoPoints, P0: arc0.A, P1: arc0.B}
				}
				return ArcArcConfig{Kind: ArcArcCocircularOneArc1, Arc0: arc0}
			}
			if arc0.A != arc1.B {
				resArc0 := Arc{A: arc0.A, B: arc1.B, C: arc0.C, R: arc0.R}
				return ArcArcConfig{Kind: ArcArcCocircularOneArc2, Arc0: resArc0}
			}
			return ArcArcConfig{Kind: ArcArcCocircularOnePoint0, P0: arc0.A}
		}
		if arc1.Contains(arc0.B) {
			if arc0.B != arc1.A {
				resArc0 := Arc{A: arc1.A, B: arc0.B, C: arc0.C, R: arc0.R}
				return ArcArcConfig{Kind: ArcArcCocircularOneArc3, Arc0: resArc0}
			}
			return ArcArcConfig{Kind: ArcArcCocircularOnePoint1, P0: arc1.A}
		}
		if arc0.Contains(arc1.A) {
			return ArcArcConfig{Kind: ArcArcCocircularOneArc4, Arc0: arc1}
		}
		return ArcArcConfig{Kind: ArcArcNoIntersection}

	case CircleNoncocircularOnePoint:
		if arc0.Contains(cc.P0) && arc1.Contains(cc.P0) {
			return ArcArcConfig{Kind: ArcArcNonCocircularOnePoint, P0: cc.P0}
		}
		return ArcArcConfig{Kind: ArcArcNoIntersection}

	default: // CircleNoncocircularTwoPoints
		b0 := arc0.Contains(cc.P0) && arc1.Contains(cc.P0)
		b1 := arc0.Contains(cc.P1) && arc1.Contains(cc.P1)
		switch {
		case b0 && b1:
			return ArcArcConfig{Kind: ArcArcNonCocircularTwoPoints, P0: cc.P0, P1: cc.P1}
		case b0:
			return ArcArcConfig{Kind: ArcArcNonCocircularOnePoint, P0: cc.P0}
		case b1:
			return ArcArcConfig{Kind: ArcArcNonCocircularOnePoint, P0: cc.P1}
		default:
			return ArcArcConfig{Kind: ArcArcNoIntersection}
		}
	}
}
