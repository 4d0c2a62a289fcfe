// Package arcoffset computes planar offset curves of closed boundaries made
// of circular arcs and line segments.
//
// # Overview
//
// A boundary is represented either as a Polyline (a sequence of vertices
// each carrying a bulge factor, AutoCAD/DXF style) or an Arcline (a
// sequence of explicit Arc primitives, where a straight segment is an arc
// with zero curvature). Offsetting walks five stages: per-primitive raw
// offset, convex-corner connector insertion, global splitting at every
// crossing, pruning of fragments that collapse into the offset band, and
// topological reconnection into closed cycles via a rightmost-turn walk.
//
// # Error Handling
//
// Offsetting never returns an error. Degenerate input (zero-length arcs,
// a boundary with fewer than two vertices, a radius that collapses under
// the requested offset) reduces the output, it does not fail the call;
// callers get fewer or empty polylines/arclines back. Construction helpers
// that are handed nonsensical parameters (a negative radius) panic, since
// that is a programmer error rather than a geometric degeneracy.
//
// # Coordinate System
//
// All coordinates are float64. The library is agnostic to which way Y
// points; sidedness and offset direction follow the boundary's own
// winding, not a fixed screen convention.
package arcoffset
