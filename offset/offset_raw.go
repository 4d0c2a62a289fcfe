package arcoffset

import "math"

// OffsetPolylineRaw computes the raw per-segment
// offset of every bulge-polyline in plines by off, each already converted
// to OffsetRaw form by PolylinesToRaws/ArclinesToRaws.
func OffsetPolylineRaw(plines [][]OffsetRaw, off float64) [][]OffsetRaw {
	result := make([][]OffsetRaw, len(plines))
	for i, pline := range plines {
		result[i] = offsetPolylineRawSingle(pline, off)
	}
	return result
}

func offsetPolylineRawSingle(pline []OffsetRaw, off float64) []OffsetRaw {
	result := make([]OffsetRaw, len(pline))
	for i, p := range pline {
		result[i] = OffsetSegment(p.Arc, p.Orig, p.G, off)
	}
	return result
}

// OffsetSegment offsets a single arc-or-segment primitive by off,
// dispatching on whether it is a straight segment or a true arc.
func OffsetSegment(seg Arc, orig Point, g, off float64) OffsetRaw {
	if seg.IsSegment() {
		return lineOffset(seg, orig, off)
	}
	return arcOffset(seg, orig, g, off)
}

// lineOffset shifts a line segment perpendicular to its own direction by
// off, to its right (a positive off shifts to the side the rotated
// perpendicular (dy, -dx) points toward).
func lineOffset(seg Arc, orig Point, off float64) OffsetRaw {
	dir := seg.B.Sub(seg.A)
	perp, _ := Point{X: dir.Y, Y: -dir.X}.Normalize()
	offsetVec := perp.Scale(off)
	arc := Arc{A: seg.A.Add(offsetVec), B: seg.B.Add(offsetVec), C: Point{X: math.Inf(1), Y: math.Inf(1)}, R: math.Inf(1), ID: seg.ID}
	return OffsetRaw{Arc: arc, Orig: orig, G: 0}
}

// arcOffset shifts an arc radially by off, outward for a positive bulge
// and inward for a negative one, collapsing to a straight segment (with
// endpoints swapped, so a collapsed arc becomes a line from b to a) when
// the resulting radius goes non-positive, is NaN, or the endpoints have
// coincided.
func arcOffset(seg Arc, orig Point, bulge, offset float64) OffsetRaw {
	v0ToCenter, _ := seg.A.Sub(seg.C).Normalize()
	v1ToCenter, _ := seg.B.Sub(seg.C).Normalize()

	off := offset
	if bulge < 0 {
		off = -offset
	}
	offsetRadius := seg.R + off
	a := seg.A.Add(v0ToCenter.Scale(off))
	b := seg.B.Add(v1ToCenter.Scale(off))

	if seg.A == seg.B {
		// Full circle: both endpoints shift to the same point on the
		// offset circle. A radius collapsed past the center leaves a
		// zero-length segment for the validity filters to drop.
		if offsetRadius < EpsCollapsed || math.IsNaN(offsetRadius) {
			arc := Arc{A: a, B: a, C: Point{X: math.Inf(1), Y: math.Inf(1)}, R: math.Inf(1), ID: seg.ID}
			return OffsetRaw{Arc: arc, Orig: orig, G: 0}
		}
		arc := Arc{A: a, B: a, C: seg.C, R: offsetRadius, ID: seg.ID}
		return OffsetRaw{Arc: arc, Orig: orig, G: bulge}
	}

	if offsetRadius < EpsCollapsed || math.IsNaN(offsetRadius) || a.CloseEnough(b, EpsCollapsed) {
		arc := Arc{A: b, B: a, C: Point{X: math.Inf(1), Y: math.Inf(1)}, R: math.Inf(1), ID: seg.ID}
		return OffsetRaw{Arc: arc, Orig: orig, G: 0}
	}
	arc := Arc{A: a, B: b, C: seg.C, R: offsetRadius, ID: seg.ID}
	return OffsetRaw{Arc: arc, Orig: orig, G: bulge}
}

// PolylinesToRaws converts each bulge-Polyline in plines into its
// OffsetRaw form, ready for OffsetPolylineRaw.
func PolylinesToRaws(plines []Polyline) [][]OffsetRaw {
	result := make([][]OffsetRaw, len(plines))
	for i, pline := range plines {
		result[i] = PolylineToRawsSingle(pline)
	}
	return result
}

// PolylineToRawsSingle converts one closed bulge-Polyline into its
// OffsetRaw segments, dropping any segment too short to survive
// EpsCollapsed.
func PolylineToRawsSingle(pline Polyline) []OffsetRaw {
	n := len(pline)
	offs := make([]OffsetRaw, 0, n)
	if n == 0 {
		return offs
	}
	addSegment := func(p0, p1 Point, bulge float64) {
		seg := ArcFromBulge(p0, p1, bulge)
		if !seg.IsValid(EpsCollapsed) {
			return
		}
		orig := seg.B
		if bulge < 0 {
			orig = seg.A
		}
		offs = append(offs, OffsetRaw{Arc: seg, Orig: orig, G: bulge})
	}
	for i := 0; i < n-1; i++ {
		addSegment(pline[i].P, pline[i+1].P, pline[i].G)
	}
	addSegment(pline[n-1].P, pline[0].P, pline[n-1].G)
	return offs
}

// ArclinesToRaws converts each Arcline in arcss into its OffsetRaw form.
func ArclinesToRaws(arcss []Arcline) [][]OffsetRaw {
	result := make([][]OffsetRaw, len(arcss))
	for i, arcs := range arcss {
		result[i] = ArclineToRawsSingle(arcs)
	}
	return result
}

// ArclineToRawsSingle converts one closed Arcline into its OffsetRaw
// segments, dropping any arc too small to survive EpsCollapsed.
func ArclineToRawsSingle(arcs Arcline) []OffsetRaw {
	offs := make([]OffsetRaw, 0, len(arcs))
	add := func(seg Arc) {
		if !seg.IsValid(EpsCollapsed) {
			return
		}
		bulge := BulgeFromArc(seg.A, seg.B, seg.C, seg.R)
		orig := seg.B
		if bulge < 0 {
			orig = seg.A
		}
		offs = append(offs, OffsetRaw{Arc: seg, Orig: orig, G: bulge})
	}
	for _, seg := range arcs {
		add(seg)
	}
	return offs
}
