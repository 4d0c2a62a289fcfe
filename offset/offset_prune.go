package arcoffset

import "math"

// OffsetPruneInvalid removes fragments
// lying inside the offset band, i.e. closer to the source boundary than
// the intended offset magnitude. This is where the self-intersecting
// "dog-ear" lobes produced near sharp concave corners get eliminated.
func OffsetPruneInvalid(sources []Arc, fragments []Arc, off float64) []Arc {
	valid := make([]Arc, 0, len(sources))
	for _, s := range sources {
		if s.IsValid(EpsPrune) {
			valid = append(valid, s)
		}
	}
	if len(valid) == 0 {
		return fragments
	}

	cellSize := math.Abs(off)
	if cellSize <= 0 {
		cellSize = 1
	}
	grid := NewBroadPhaseGrid(cellSize)
	expand := math.Abs(off) + EpsPrune
	for i, s := range valid {
		grid.Add(i, AABBFromArc(s).Expand(expand))
	}

	threshold := math.Abs(off) - EpsPrune
	kept := make([]Arc, 0, len(fragments))
	for _, f := range fragments {
		box := AABBFromArc(f)
		reject := false
		for _, idx := range grid.Query(box) {
			s := valid[idx]
			if effectiveID(s.ID) == effectiveID(f.ID) {
				continue
			}
			if distanceElementElement(s, f) < threshold {
				reject = true
				break
			}
		}
		if !reject {
			kept = append(kept, f)
		}
	}
	return kept
}

// distanceElementElement dispatches to the exact primitive-primitive
// distance routine for the segment/arc combination of a and b.
func distanceElementElement(a, b Arc) float64 {
	switch {
	case a.IsSegment() && b.IsSegment():
		return DistanceSegmentSegment(NewSegment(a.A, a.B), NewSegment(b.A, b.B))
	case a.IsSegment() && !b.IsSegment():
		return DistanceSegmentArc(NewSegment(a.A, a.B), b)
	case !a.IsSegment() && b.IsSegment():
		return DistanceSegmentArc(NewSegment(b.A, b.B), a)
	default:
		return DistanceArcArc(a, b)
	}
}
