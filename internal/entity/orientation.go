package entity

import "github.com/samdwyer/dungeoncrawl/internal/world"

// Orientation is the cardinal direction the player faces. It is never
// stored; Player.Orientation derives it from the last step taken.
type Orientation int

const (
	North Orientation = iota
	East
	South
	West
)

// String returns the orientation name as shown to the player.
func (o Orientation) String() string {
	switch o {
	case North:
		return "NORTH"
	case East:
		return "EAST"
	case South:
		return "SOUTH"
	case West:
		return "WEST"
	default:
		return "UNKNOWN"
	}
}

// Glyph returns the map marker for a player facing o.
func (o Orientation) Glyph() rune {
	switch o {
	case North:
		return '^'
	case East:
		return '>'
	case South:
		return 'v'
	case West:
		return '<'
	default:
		return '?'
	}
}

// Relative directions passed to Player.Move. They are expressed in the
// player's own frame, where forward is +y and right is +x.
var (
	Forward = world.Vec2{X: 0, Y: 1}
	Back    = world.Vec2{X: 0, Y: -1}
	Left    = world.Vec2{X: -1, Y: 0}
	Right   = world.Vec2{X: 1, Y: 0}
)

// orientationFromDelta maps a unit step to the orientation it implies.
func orientationFromDelta(d world.Vec2) (Orientation, bool) {
	switch d {
	case world.Vec2{X: 0, Y: 1}:
		return North, true
	case world.Vec2{X: 1, Y: 0}:
		return East, true
	case world.Vec2{X: 0, Y: -1}:
		return South, true
	case world.Vec2{X: -1, Y: 0}:
		return West, true
	default:
		return 0, false
	}
}
