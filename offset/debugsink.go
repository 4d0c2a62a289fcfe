package arcoffset

// DebugSink receives intermediate geometry from the offset pipeline when
// OffsetCfg.SVG is set. The library never renders anything itself; a
// caller that wants stage-by-stage visualization plugs in a sink (an SVG
// writer, typically) and flips the per-stage toggles on OffsetCfg.
type DebugSink interface {
	// Polyline emits one bulge polyline in the given color.
	Polyline(poly Polyline, color string)
	// Polylines emits a family of bulge polylines in the given color.
	Polylines(polys []Polyline, color string)
	// Arcline emits one arc sequence in the given color.
	Arcline(arcs Arcline, color string)
	// Arclines emits a family of arc sequences in the given color.
	Arclines(arcss []Arcline, color string)
}
