package arcoffset

// OffsetConnectRaw runs the connector stage: for every adjacent pair
// of raw offsets in each polyline's raw sequence (including the cyclic
// wrap), synthesize a connector arc bridging the convex exterior gap
// between them, dropping the connector where the corner is concave.
func OffsetConnectRaw(raws [][]OffsetRaw, off float64) [][]Arc {
	result := make([][]Arc, len(raws))
	for i, raw := range raws {
		result[i] = offsetConnectRawSingle(raw, off)
	}
	return result
}

func offsetConnectRawSingle(raws []OffsetRaw, off float64) []Arc {
	n := len(raws)
	res := make([]Arc, 0, n)
	for i := 0; i < n; i++ {
		cur := raws[i]
		nxt := raws[next(i, n)]
		connect, ok := arcConnectNew(cur.Arc, nxt.Arc, cur.G, nxt.G, cur.Orig, off)
		if ok {
			connect.ID = connectorID(cur.Arc.ID)
			res = append(res, connect)
		}
	}
	return res
}

// arcConnectNew builds the candidate connector between old and oldNext
// around orig, choosing the bridged endpoints by the signs of the two
// bulges, and reports whether it should be kept: the rotation
// p -> orig -> q must turn clockwise (Orient2D(p, orig, q) < 0, the
// convex exterior side) and the arc itself must be valid. The radius is
// the signed off, not its magnitude: an inward offset produces a
// negative radius that IsValid rejects, which is what keeps connectors
// off concave corners entirely.
func arcConnectNew(old, oldNext Arc, g0, g1 float64, orig Point, off float64) (Arc, bool) {
	var p, q Point
	switch {
	case g0 >= 0 && g1 >= 0:
		p, q = old.B, oldNext.A
	case g0 >= 0 && g1 < 0:
		p, q = old.B, oldNext.B
	case g0 < 0 && g1 >= 0:
		p, q = old.A, oldNext.A
	default:
		p, q = old.A, oldNext.B
	}

	seg := Arc{A: p, B: q, C: orig, R: off}
	convex := Orient2D(p, orig, q) < 0
	if seg.IsValid(EpsCollapsed) && convex {
		return seg, true
	}
	return seg, false
}
