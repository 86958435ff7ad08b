// Package geom provides the spatial helpers shared by entities and systems:
// distances, angles and 8-way direction quantization in screen space
// (x grows right, y grows down).
package geom

import "math"

// Direction is one of the 8 compass directions
type Direction int

const (
	DirE Direction = iota
	DirSE
	DirS
	DirSW
	DirW
	DirNW
	DirN
	DirNE
)

var directionNames = [...]string{"E", "SE", "S", "SW", "W", "NW", "N", "NE"}

// String returns the compass abbreviation
func (d Direction) String() string {
	if d < DirE || d > DirNE {
		return "?"
	}
	return directionNames[d]
}

// Distance returns the Euclidean distance between two points
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// Normalize returns the unit vector of (dx, dy) and its original length.
// A zero vector stays zero.
func Normalize(dx, dy float64) (ux, uy, length float64) {
	length = math.Hypot(dx, dy)
	if length == 0 {
		return 0, 0, 0
	}
	return dx / length, dy / length, length
}

// AngleToDirection quantizes an angle in radians (atan2 convention) into a
// compass direction.
func AngleToDirection(radians float64) Direction {
	return AngleToDirectionDeg(radians * 180 / math.Pi)
}

// AngleToDirectionDeg quantizes an angle in degrees. Sectors are 45° wide and
// half-open: a boundary belongs to the sector it opens.
func AngleToDirectionDeg(deg float64) Direction {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	sector := int(math.Floor((deg+22.5)/45)) % 8
	return Direction(sector)
}

// DirectionTo returns the direction from (ax, ay) toward (bx, by)
func DirectionTo(ax, ay, bx, by float64) Direction {
	return AngleToDirection(math.Atan2(by-ay, bx-ax))
}

// UnitVector maps a direction to per-axis signs. Diagonals are (±1, ±1) and
// are not rescaled to unit length.
func UnitVector(d Direction) (x, y float64) {
	switch d {
	case DirE:
		return 1, 0
	case DirSE:
		return 1, 1
	case DirS:
		return 0, 1
	case DirSW:
		return -1, 1
	case DirW:
		return -1, 0
	case DirNW:
		return -1, -1
	case DirN:
		return 0, -1
	case DirNE:
		return 1, -1
	}
	return 0, 0
}

// DirectionAngle returns the center angle of a direction in radians
func DirectionAngle(d Direction) float64 {
	return float64(d) * math.Pi / 4
}

// AngleDiff returns the absolute difference between two angles in radians,
// folded into [0, π].
func AngleDiff(a, b float64) float64 {
	diff := math.Mod(math.Abs(a-b), 2*math.Pi)
	if diff > math.Pi {
		diff = 2*math.Pi - diff
	}
	return diff
}

// FromKeys resolves held movement keys into a direction. Opposing keys
// cancel. ok is false when no direction results.
func FromKeys(up, down, left, right bool) (d Direction, ok bool) {
	dx, dy := 0, 0
	if left {
		dx--
	}
	if right {
		dx++
	}
	if up {
		dy--
	}
	if down {
		dy++
	}
	if dx == 0 && dy == 0 {
		return DirE, false
	}
	return AngleToDirection(math.Atan2(float64(dy), float64(dx))), true
}
