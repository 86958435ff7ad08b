package entity

import "github.com/younwookim/shadowgrove/internal/domain/geom"

// Key is an abstract player control
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyAttack
	KeyDodge
)

// Input is the per-tick control surface read by player states.
// Held is level-triggered, Pressed is edge-triggered (true for one tick).
type Input interface {
	Held(k Key) bool
	Pressed(k Key) bool
}

type noInput struct{}

func (noInput) Held(Key) bool    { return false }
func (noInput) Pressed(Key) bool { return false }

func heldDirection(in Input) (geom.Direction, bool) {
	return geom.FromKeys(in.Held(KeyUp), in.Held(KeyDown), in.Held(KeyLeft), in.Held(KeyRight))
}
