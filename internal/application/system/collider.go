package system

import (
	"github.com/solarlune/resolv"

	"github.com/younwookim/shadowgrove/internal/domain/entity"
)

const tagSolid = "solid"

// TileCollider keeps bodies out of solid tiles. Solid tiles live in a
// resolv.Space; a probe object stands in for the body being checked.
type TileCollider struct {
	stage *entity.Stage
	space *resolv.Space
	probe *resolv.Object
}

// NewTileCollider builds the collision space for a stage
func NewTileCollider(stage *entity.Stage) *TileCollider {
	ts := stage.TileSize
	w, h := stage.PixelSize()
	space := resolv.NewSpace(w, h, ts, ts)

	for y := 0; y < stage.Height; y++ {
		for x := 0; x < stage.Width; x++ {
			if !stage.GetTile(x, y).Solid {
				continue
			}
			fs := float64(ts)
			obj := resolv.NewObject(float64(x*ts), float64(y*ts), fs, fs, tagSolid)
			obj.SetShape(resolv.NewRectangle(0, 0, fs, fs))
			space.Add(obj)
		}
	}

	probe := resolv.NewObject(0, 0, 1, 1, "probe")
	space.Add(probe)

	return &TileCollider{stage: stage, space: space, probe: probe}
}

// Blocked reports whether r leaves the stage or overlaps a solid tile
func (c *TileCollider) Blocked(r entity.Rect) bool {
	if !c.stage.Contains(r) {
		return true
	}

	c.probe.X, c.probe.Y = r.X, r.Y
	c.probe.W, c.probe.H = r.W, r.H
	c.probe.Update()

	check := c.probe.Check(0, 0, tagSolid)
	if check == nil {
		return false
	}
	// Cell occupancy is coarser than the body; confirm with the exact rects.
	for _, obj := range check.ObjectsByTags(tagSolid) {
		if r.Overlaps(entity.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}) {
			return true
		}
	}
	return false
}

// Correct undoes an illegal move from (prevX, prevY). Each axis is tried on
// its own so a body pressed against a wall still slides along it. It
// reports whether the position was changed.
func (c *TileCollider) Correct(e *entity.Entity, prevX, prevY float64) bool {
	if !c.Blocked(e.Hitbox()) {
		return false
	}

	newX, newY := e.X, e.Y

	e.X, e.Y = newX, prevY
	if newX != prevX && !c.Blocked(e.Hitbox()) {
		return true
	}

	e.X, e.Y = prevX, newY
	if newY != prevY && !c.Blocked(e.Hitbox()) {
		return true
	}

	e.X, e.Y = prevX, prevY
	return true
}
