package table

import (
	"math"

	"github.com/ccgkit/go-card-table/geom"
)

// GridCell is the uniform cell size of the snapping grid, in world pixels.
const GridCell = 48.0

type Cell struct {
	X, Y int
}

// Neighbor probe order for free-slot search: right, left, up, down, then the
// diagonals upper-right, lower-right, upper-left, lower-left.
var neighborOffsets = [8]Cell{
	{1, 0}, {-1, 0}, {0, -1}, {0, 1},
	{1, -1}, {1, 1}, {-1, -1}, {-1, 1},
}

// blockMargin centers a span-sized cell block over a sprite of the given
// pixel size. Sprites smaller than their reserved block float centered in it.
func blockMargin(size geom.Vec2, spanX, spanY int) geom.Vec2 {
	return geom.V(
		math.Max(0, (float64(spanX)*GridCell-size.X)/2),
		math.Max(0, (float64(spanY)*GridCell-size.Y)/2),
	)
}

// snapPosition returns the top-left position after snapping a sprite's cell
// block to the nearest grid lines.
func snapPosition(pos, size geom.Vec2, spanX, spanY int) geom.Vec2 {
	margin := blockMargin(size, spanX, spanY)
	candidate := pos.Sub(margin)
	cellX := math.Round(candidate.X / GridCell)
	cellY := math.Round(candidate.Y / GridCell)
	return geom.V(cellX*GridCell, cellY*GridCell).Add(margin).Round()
}

// cellOf is the inverse of snapPosition: the grid cell a sprite's block
// currently occupies.
func cellOf(pos, size geom.Vec2, spanX, spanY int) Cell {
	margin := blockMargin(size, spanX, spanY)
	candidate := pos.Sub(margin)
	return Cell{
		X: int(math.Round(candidate.X / GridCell)),
		Y: int(math.Round(candidate.Y / GridCell)),
	}
}

// SnapToGrid commits an object's position onto the grid.
func (s *Scene) SnapToGrid(o *Object) {
	r := o.Rect()
	sx, sy := o.GridSpan()
	o.Pos = snapPosition(o.Pos, geom.V(r.W, r.H), sx, sy)
}

// FindFreeSlot probes the eight cell blocks adjacent to anchor for the first
// one where a sprite of the given size and span fits without overlapping any
// live world object. Objects in ignore and the anchor itself do not block.
// The boolean result is false when all eight probes are occupied; callers
// fall back to the pre-action state.
func (s *Scene) FindFreeSlot(anchor *Object, size geom.Vec2, spanX, spanY int, ignore ...*Object) (geom.Vec2, bool) {
	ar := anchor.Rect()
	asx, asy := anchor.GridSpan()
	anchorCell := cellOf(anchor.Pos, geom.V(ar.W, ar.H), asx, asy)
	margin := blockMargin(size, spanX, spanY)

	skip := map[*Object]bool{anchor: true}
	for _, o := range ignore {
		skip[o] = true
	}

	for _, off := range neighborOffsets {
		cell := Cell{X: anchorCell.X + off.X*spanX, Y: anchorCell.Y + off.Y*spanY}
		pos := geom.V(float64(cell.X)*GridCell, float64(cell.Y)*GridCell).Add(margin).Round()
		candidate := geom.R(pos.X, pos.Y, size.X, size.Y)
		if !s.rectBlocked(candidate, skip) {
			return pos, true
		}
	}
	return geom.Vec2{}, false
}

func (s *Scene) rectBlocked(r geom.Rect, skip map[*Object]bool) bool {
	for _, o := range s.Objects {
		if skip[o] || o.inHand {
			continue
		}
		if r.Overlaps(o.Rect()) {
			return true
		}
	}
	return false
}
