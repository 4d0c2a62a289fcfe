package arcoffset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConnectorSingleConvexCorner pins the connector sign convention on
// one concrete corner: two edges of a counterclockwise unit square offset
// outward (positive offset, right of travel). The shared corner is convex
// as seen from the offset side, so exactly one quarter-circle connector
// appears, sweeping counterclockwise from the end of the first raw to the
// start of the second.
func TestConnectorSingleConvexCorner(t *testing.T) {
	off := 0.1
	e0 := ArcFromBulge(NewPoint(0, 0), NewPoint(1, 0), 0)
	e1 := ArcFromBulge(NewPoint(1, 0), NewPoint(1, 1), 0)
	raw0 := OffsetSegment(e0, e0.B, 0, off)
	raw1 := OffsetSegment(e1, e1.B, 0, off)

	connect, ok := arcConnectNew(raw0.Arc, raw1.Arc, 0, 0, NewPoint(1, 0), off)
	require.True(t, ok)
	require.Equal(t, NewPoint(1, -0.1), connect.A)
	require.InDelta(t, 1.1, connect.B.X, 1e-12)
	require.InDelta(t, 0.0, connect.B.Y, 1e-12)
	require.Equal(t, NewPoint(1, 0), connect.C)
	require.Equal(t, off, connect.R)

	// Quarter sweep, counterclockwise.
	g := BulgeFromArc(connect.A, connect.B, connect.C, connect.R)
	require.InDelta(t, math.Tan(math.Pi/8), g, 1e-9)
}

// TestConnectorConcaveCornerRejected checks the same corner offset inward
// (negative offset) yields no connector: the candidate's radius is
// negative and fails validity, leaving the overlap for the splitter.
func TestConnectorConcaveCornerRejected(t *testing.T) {
	off := -0.1
	e0 := ArcFromBulge(NewPoint(0, 0), NewPoint(1, 0), 0)
	e1 := ArcFromBulge(NewPoint(1, 0), NewPoint(1, 1), 0)
	raw0 := OffsetSegment(e0, e0.B, 0, off)
	raw1 := OffsetSegment(e1, e1.B, 0, off)

	_, ok := arcConnectNew(raw0.Arc, raw1.Arc, 0, 0, NewPoint(1, 0), off)
	require.False(t, ok)
}

// TestOffsetConnectRawSquare runs the stage over a whole square's raws:
// four corners, four connectors, each tagged with a padded id.
func TestOffsetConnectRawSquare(t *testing.T) {
	square := Polyline{
		NewPVertex(NewPoint(0, 0), 0),
		NewPVertex(NewPoint(1, 0), 0),
		NewPVertex(NewPoint(1, 1), 0),
		NewPVertex(NewPoint(0, 1), 0),
	}
	raws := PolylinesToRaws([]Polyline{square})
	gen := NewIDGenerator()
	for j := range raws[0] {
		raws[0][j].Arc.ID = gen.Next()
	}
	offRaws := OffsetPolylineRaw(raws, 0.1)

	connectors := OffsetConnectRaw(offRaws, 0.1)
	require.Len(t, connectors, 1)
	require.Len(t, connectors[0], 4)
	for _, c := range connectors[0] {
		require.False(t, c.IsSegment())
		require.InDelta(t, 0.1, c.R, 1e-12)
		original, parent := unpackID(c.ID)
		require.Equal(t, idParentSentinel, parent)
		require.GreaterOrEqual(t, original, idConnectorPadding)
	}

	// Inward: all four corners concave, no connectors at all.
	inRaws := OffsetPolylineRaw(raws, -0.1)
	require.Empty(t, OffsetConnectRaw(inRaws, -0.1)[0])
}
