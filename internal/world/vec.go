package world

import "fmt"

// Vec2 is a grid coordinate or a unit step between coordinates.
type Vec2 struct {
	X, Y int
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// String formats the vector as "[x, y]".
func (v Vec2) String() string {
	return fmt.Sprintf("[%d, %d]", v.X, v.Y)
}
