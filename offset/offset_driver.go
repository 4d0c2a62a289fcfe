package arcoffset

import (
	"github.com/rs/zerolog"
)

// OffsetCfg carries the options recognized by the offsetting entry
// points. The zero value disables reconnection and all debug output; use
// DefaultOffsetCfg for the configuration most callers want.
type OffsetCfg struct {
	// SVG, when non-nil, receives intermediate geometry from whichever
	// stages have their toggle below set.
	SVG DebugSink
	// Reconnect controls whether the topology stage runs. When false the pruned
	// fragment soup is returned as a single flat sequence instead of
	// closed loops.
	Reconnect bool
	// Per-stage debug output toggles. Each is consulted only when SVG is
	// non-nil.
	SvgOrig    bool
	SvgRaw     bool
	SvgConnect bool
	SvgSplit   bool
	SvgPrune   bool
	SvgFinal   bool
	// Logger receives one debug event per pipeline stage. The zero
	// Logger logs nothing useful; DefaultOffsetCfg installs
	// zerolog.Nop().
	Logger zerolog.Logger
}

// DefaultOffsetCfg returns the configuration the entry points expect by
// default: reconnection on, no debug output, no logging.
func DefaultOffsetCfg() *OffsetCfg {
	return &OffsetCfg{Reconnect: true, Logger: zerolog.Nop()}
}

// OffsetPolylineToPolyline offsets the closed bulge polyline poly by off
// and returns the resulting closed loops as bulge polylines. A positive
// off offsets to the right of the polyline's direction of travel; to
// offset the other way, reverse the polyline rather than negating off.
//
// The input must be closed (the last vertex's segment runs back to the
// first) and simple; behavior on a self-intersecting boundary is
// undefined. Degenerate inputs and offsets that collapse the whole
// boundary produce an empty result, never an error.
func OffsetPolylineToPolyline(poly Polyline, off float64, cfg *OffsetCfg) []Polyline {
	if cfg.SVG != nil && cfg.SvgOrig {
		cfg.SVG.Polyline(poly, "red")
	}
	polyRaws := PolylinesToRaws([]Polyline{poly})
	offsetArcs := offsetSingle(polyRaws, off, cfg)

	var finalPolys []Polyline
	if cfg.Reconnect {
		finalPolys = ArcsToPolylines(OffsetReconnectArcs(offsetArcs))
	} else {
		finalPolys = ArcsToPolylines([]Arcline{offsetArcs})
	}
	cfg.Logger.Debug().
		Int("loops", len(finalPolys)).
		Msg("offset polyline done")

	if cfg.SVG != nil && cfg.SvgFinal {
		cfg.SVG.Polylines(finalPolys, "violet")
	}
	return finalPolys
}

// OffsetArclineToArcline offsets the closed arc sequence arcs by off and
// returns the resulting closed loops as arc sequences. Same contract as
// OffsetPolylineToPolyline, without the bulge round trip on either side.
func OffsetArclineToArcline(arcs Arcline, off float64, cfg *OffsetCfg) []Arcline {
	if cfg.SVG != nil && cfg.SvgOrig {
		cfg.SVG.Arcline(arcs, "red")
	}
	raws := ArclinesToRaws([]Arcline{arcs})
	offsetArcs := offsetSingle(raws, off, cfg)

	var finalArcs []Arcline
	if cfg.Reconnect {
		finalArcs = OffsetReconnectArcs(offsetArcs)
	} else {
		finalArcs = []Arcline{offsetArcs}
	}
	cfg.Logger.Debug().
		Int("loops", len(finalArcs)).
		Msg("offset arcline done")

	if cfg.SVG != nil && cfg.SvgFinal {
		cfg.SVG.Arclines(finalArcs, "violet")
	}
	return finalArcs
}

// OffsetPolylineMultiple offsets poly repeatedly, at start, start+step,
// start+2*step, ... while the offset stays below end, and returns every
// resulting loop in one flat family. This is the progressive-insetting
// convenience used by pocketing tool paths; each distance is an
// independent offset of the source boundary, not of the previous ring.
func OffsetPolylineMultiple(poly Polyline, step, start, end float64, cfg *OffsetCfg) []Polyline {
	var polylines []Polyline
	for off := start; off < end; off += step {
		polylines = append(polylines, OffsetPolylineToPolyline(poly, off, cfg)...)
	}
	return polylines
}

// offsetSingle runs the pipeline from raw offsets through pruning over
// one boundary's raw records,
// stamping fresh ids first so raw offsets, their connectors, and their
// source primitives stay correlated through splitting and pruning.
func offsetSingle(polyRaws [][]OffsetRaw, off float64, cfg *OffsetCfg) []Arc {
	gen := NewIDGenerator()
	for i := range polyRaws {
		for j := range polyRaws[i] {
			polyRaws[i][j].Arc.ID = gen.Next()
		}
	}

	offsetRaw := OffsetPolylineRaw(polyRaws, off)
	cfg.Logger.Debug().Int("raws", countRaws(offsetRaw)).Msg("raw offsets")
	if cfg.SVG != nil && cfg.SvgRaw {
		cfg.SVG.Arclines(rawsToArclines(offsetRaw), "blue")
	}

	offsetConnect := OffsetConnectRaw(offsetRaw, off)
	cfg.Logger.Debug().Int("connectors", countArcs(offsetConnect)).Msg("connectors")
	if cfg.SVG != nil && cfg.SvgConnect {
		cfg.SVG.Arclines(toArclines(offsetConnect), "violet")
	}

	pool := make([]Arc, 0, countRaws(offsetRaw)+countArcs(offsetConnect))
	for _, raws := range offsetRaw {
		for _, r := range raws {
			pool = append(pool, r.Arc)
		}
	}
	for _, arcs := range offsetConnect {
		pool = append(pool, arcs...)
	}

	offsetSplit := OffsetSplitArcs(pool, off)
	cfg.Logger.Debug().Int("fragments", len(offsetSplit)).Msg("split")
	if cfg.SVG != nil && cfg.SvgSplit {
		cfg.SVG.Arcline(offsetSplit, "violet")
	}

	sources := make([]Arc, 0, countRaws(polyRaws))
	for _, raws := range polyRaws {
		for _, r := range raws {
			sources = append(sources, r.Arc)
		}
	}
	offsetPrune := OffsetPruneInvalid(sources, offsetSplit, off)
	cfg.Logger.Debug().Int("fragments", len(offsetPrune)).Msg("prune")
	if cfg.SVG != nil && cfg.SvgPrune {
		cfg.SVG.Arcline(offsetPrune, "violet")
	}
	return offsetPrune
}

// OffsetReconnectArcs reconnects a pruned fragment soup: endpoints
// within MergeTolerance are fused, then the rightmost-turn walk extracts
// every closed, non-self-intersecting cycle.
func OffsetReconnectArcs(arcs []Arc) []Arcline {
	merged := MergeCloseEndpoints(arcs, MergeTolerance)
	cycles := FindNonIntersectingCycles(merged)
	res := make([]Arcline, len(cycles))
	for i, c := range cycles {
		res[i] = c
	}
	return res
}

// ArclineFromPolyline converts a closed bulge polyline into the
// equivalent arc sequence, dropping degenerate segments. Arcs built from
// a negative bulge come out in their normalized counterclockwise form
// (endpoints swapped), so they run against the polyline's direction of
// travel; the returned Arcline keeps no record of which arcs were swapped.
func ArclineFromPolyline(poly Polyline) Arcline {
	n := len(poly)
	arcs := make(Arcline, 0, n)
	for i := 0; i < n; i++ {
		arc := ArcFromBulge(poly[i].P, poly[(i+1)%n].P, poly[i].G)
		if arc.IsValid(EpsCollapsed) {
			arcs = append(arcs, arc)
		}
	}
	return arcs
}

// ArcsToPolylines converts each reconnected cycle back into a bulge
// polyline.
func ArcsToPolylines(cycles []Arcline) []Polyline {
	polylines := make([]Polyline, 0, len(cycles))
	for _, arcs := range cycles {
		polylines = append(polylines, arcsToPolylineSingle(arcs))
	}
	return polylines
}

// arcsToPolylineSingle converts one cycle into a bulge polyline. A cycle
// is a loop of arcs, but the walk may traverse an individual arc either
// a-to-b or b-to-a; orientation is recovered by chaining each arc onto
// the previous arc's end point, negating the bulge when the arc runs
// reversed.
func arcsToPolylineSingle(arcs Arcline) Polyline {
	var polyline Polyline
	if len(arcs) == 0 {
		return polyline
	}

	currentEnd := arcs[0].B
	for i, arc := range arcs {
		var start, end Point
		var bulge float64
		forward := i == 0 || currentEnd.CloseEnough(arc.A, 1e-10)
		if forward {
			start, end = arc.A, arc.B
			if !arc.IsSegment() {
				bulge = BulgeFromArc(arc.A, arc.B, arc.C, arc.R)
			}
		} else {
			start, end = arc.B, arc.A
			if !arc.IsSegment() {
				bulge = -BulgeFromArc(arc.A, arc.B, arc.C, arc.R)
			}
		}
		polyline = append(polyline, NewPVertex(start, bulge))
		currentEnd = end
	}
	return polyline
}

func countRaws(raws [][]OffsetRaw) int {
	n := 0
	for _, r := range raws {
		n += len(r)
	}
	return n
}

func countArcs(arcs [][]Arc) int {
	n := 0
	for _, a := range arcs {
		n += len(a)
	}
	return n
}

func rawsToArclines(raws [][]OffsetRaw) []Arcline {
	res := make([]Arcline, len(raws))
	for i, rs := range raws {
		line := make(Arcline, len(rs))
		for j, r := range rs {
			line[j] = r.Arc
		}
		res[i] = line
	}
	return res
}

func toArclines(arcss [][]Arc) []Arcline {
	res := make([]Arcline, len(arcss))
	for i, a := range arcss {
		res[i] = a
	}
	return res
}
