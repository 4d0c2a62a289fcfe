package arcoffset

// Segment is the straight line from A to B.
type Segment struct {
	A, B Point
}

// NewSegment builds a Segment.
func NewSegment(a, b Point) Segment { return Segment{A: a, B: b} }

// CenteredForm returns the segment's midpoint, unit direction, and half
// length, the parametrization the line/circle intersection routines run
// their interval tests against.
func (s Segment) CenteredForm() (center, dir Point, halfExtent float64) {
	center = s.A.Add(s.B).Scale(0.5)
	full := s.B.Sub(s.A)
	dir, length := full.Normalize()
	return center, dir, 0.5 * length
}
