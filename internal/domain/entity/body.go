package entity

import "github.com/younwookim/shadowgrove/internal/domain/geom"

// Rect is an axis-aligned rectangle in world pixels
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two rects intersect
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Entity is the record shared by the player and enemies.
// X, Y is the center point in world pixels.
type Entity struct {
	ID            EntityID
	X, Y          float64
	Width, Height float64
	Direction     geom.Direction
	HP, MaxHP     int
	Anim          Animator
}

// Hitbox returns the body rect derived from position and size
func (e *Entity) Hitbox() Rect {
	return Rect{
		X: e.X - e.Width/2,
		Y: e.Y - e.Height/2,
		W: e.Width,
		H: e.Height,
	}
}

// Position returns the center point
func (e *Entity) Position() (x, y float64) {
	return e.X, e.Y
}

// Facing returns the current direction
func (e *Entity) Facing() geom.Direction {
	return e.Direction
}

// Health returns current and maximum hit points
func (e *Entity) Health() (hp, maxHP int) {
	return e.HP, e.MaxHP
}

// IsAlive returns true while hp is above zero
func (e *Entity) IsAlive() bool {
	return e.HP > 0
}

// AnimationFrame returns the frame cursor of the current clip
func (e *Entity) AnimationFrame() int {
	return e.Anim.Frame
}

// AnimationFrames returns the frame count of the current clip, 0 if unknown
func (e *Entity) AnimationFrames() int {
	return e.Anim.TotalFrames()
}

// DistanceTo returns the distance from the center to (x, y)
func (e *Entity) DistanceTo(x, y float64) float64 {
	return geom.Distance(e.X, e.Y, x, y)
}

// Translate moves the entity by (dx, dy)
func (e *Entity) Translate(dx, dy float64) {
	e.X += dx
	e.Y += dy
}

// applyDamage subtracts hp, clamped to [0, MaxHP]
func (e *Entity) applyDamage(amount int) {
	e.HP -= amount
	if e.HP < 0 {
		e.HP = 0
	}
	if e.HP > e.MaxHP {
		e.HP = e.MaxHP
	}
}
