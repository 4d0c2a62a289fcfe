package arcoffset

import "math"

// AABB is an axis-aligned bounding box.
type AABB struct {
	MinX, MaxX, MinY, MaxY float64
}

// NewAABB builds an AABB.
func NewAABB(minX, maxX, minY, maxY float64) AABB {
	return AABB{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
}

// Overlaps reports whether two AABBs intersect, inclusive of their edges.
func (a AABB) Overlaps(b AABB) bool {
	return !(a.MaxX < b.MinX || a.MinX > b.MaxX || a.MaxY < b.MinY || a.MinY > b.MaxY)
}

// Expand returns a grown by eps on every side.
func (a AABB) Expand(eps float64) AABB {
	return AABB{MinX: a.MinX - eps, MaxX: a.MaxX + eps, MinY: a.MinY - eps, MaxY: a.MaxY + eps}
}

// AABBFromSegment returns the tight AABB of the segment a-b.
func AABBFromSegment(a, b Point) AABB {
	return AABB{
		MinX: math.Min(a.X, b.X), MaxX: math.Max(a.X, b.X),
		MinY: math.Min(a.Y, b.Y), MaxY: math.Max(a.Y, b.Y),
	}
}

// AABBFromArc returns a loose AABB for arc: the endpoint bounds expanded
// to the full supporting circle. Cheap and O(1), at the cost of being up
// to ~40x larger than the tight bound for a small arc on a large circle;
// the spatial index trades that looseness for never running a
// bounding-circle computation per candidate.
func AABBFromArc(arc Arc) AABB {
	minX := math.Min(arc.A.X, arc.B.X)
	maxX := math.Max(arc.A.X, arc.B.X)
	minY := math.Min(arc.A.Y, arc.B.Y)
	maxY := math.Max(arc.A.Y, arc.B.Y)
	if arc.IsSegment() {
		return AABB{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
	}
	r := arc.R
	minX = math.Min(minX, arc.C.X-r)
	maxX = math.Max(maxX, arc.C.X+r)
	minY = math.Min(minY, arc.C.Y-r)
	maxY = math.Max(maxY, arc.C.Y+r)
	return AABB{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
}

type gridCell struct{ x, y int32 }

type gridItem struct {
	id   int
	bbox AABB
}

// BroadPhaseGrid is a uniform-grid AABB broad-phase index: every item is
// registered in every cell its box touches, and a query collects the
// union of items in the cells its own box touches, deduplicated. A grid
// was chosen over an R-tree because cell size can be picked directly from
// the offset distance (the natural length scale of every query this
// pipeline runs), and insertion never needs rebalancing, both of which
// matter for a structure rebuilt from scratch at every pipeline stage.
type BroadPhaseGrid struct {
	cellSize float64
	cells    map[gridCell][]gridItem
}

// NewBroadPhaseGrid builds a grid with the given cell size.
func NewBroadPhaseGrid(cellSize float64) *BroadPhaseGrid {
	if cellSize <= 0 {
		panic("arcoffset: grid cell size must be positive")
	}
	return &BroadPhaseGrid{cellSize: cellSize, cells: make(map[gridCell][]gridItem)}
}

func (g *BroadPhaseGrid) worldToGrid(coord float64) int32 {
	return int32(math.Floor(coord / g.cellSize))
}

func (g *BroadPhaseGrid) cellsFor(box AABB) []gridCell {
	gxMin, gxMax := g.worldToGrid(box.MinX), g.worldToGrid(box.MaxX)
	gyMin, gyMax := g.worldToGrid(box.MinY), g.worldToGrid(box.MaxY)
	cells := make([]gridCell, 0, (gxMax-gxMin+1)*(gyMax-gyMin+1))
	for gx := gxMin; gx <= gxMax; gx++ {
		for gy := gyMin; gy <= gyMax; gy++ {
			cells = append(cells, gridCell{gx, gy})
		}
	}
	return cells
}

// Add registers id with bounding box box.
func (g *BroadPhaseGrid) Add(id int, box AABB) {
	for _, c := range g.cellsFor(box) {
		g.cells[c] = append(g.cells[c], gridItem{id: id, bbox: box})
	}
}

// Query returns the ids of every registered item whose box overlaps box,
// deduplicated.
func (g *BroadPhaseGrid) Query(box AABB) []int {
	seen := make(map[int]struct{})
	var out []int
	for _, c := range g.cellsFor(box) {
		for _, item := range g.cells[c] {
			if _, ok := seen[item.id]; ok {
				continue
			}
			if item.bbox.Overlaps(box) {
				seen[item.id] = struct{}{}
				out = append(out, item.id)
			}
		}
	}
	return out
}
