// Package entity provides the player and their movement.
package entity

import (
	"fmt"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Starting stats for a new player.
const (
	DefaultMaxHealth = 20
	startingFood     = 5
	startingRope     = 1
	startingHook     = 1
)

// Position tracks where the player is and where they came from.
// Previous is always exactly one unit step from Current.
type Position struct {
	Current  world.Vec2
	Previous world.Vec2
}

// Health is kept within [0, Max].
type Health struct {
	Current int
	Max     int
}

// Player is the adventurer exploring the dungeon.
type Player struct {
	Position  Position
	Health    Health
	Inventory Inventory
}

// NewPlayer creates a player standing at spawn facing north, with full
// health and a starting kit of food, a rope and a hook.
func NewPlayer(spawn world.Vec2) *Player {
	p := &Player{
		Position: Position{
			Current: spawn,
			// Only used for orientation, so the previous cell may be
			// outside the grid.
			Previous: spawn.Sub(Forward),
		},
		Health: Health{
			Current: DefaultMaxHealth,
			Max:     DefaultMaxHealth,
		},
	}
	p.Inventory.Add(world.ItemFood, startingFood)
	p.Inventory.Add(world.ItemRope, startingRope)
	p.Inventory.Add(world.ItemHook, startingHook)
	return p
}

// Facing returns the unit step the player last took. It panics if the
// position history is not a single cardinal step.
func (p *Player) Facing() world.Vec2 {
	delta := p.Position.Current.Sub(p.Position.Previous)
	if _, ok := orientationFromDelta(delta); !ok {
		panic(fmt.Sprintf("entity: invalid orientation delta %v (current %v, previous %v)",
			delta, p.Position.Current, p.Position.Previous))
	}
	return delta
}

// Orientation returns the direction the player is facing.
func (p *Player) Orientation() Orientation {
	o, _ := orientationFromDelta(p.Facing())
	return o
}

// Move steps the player one room in a direction relative to their facing.
//
// The facing f is used as the basis of a 2x2 rotation matrix
//
//	| f.y  f.x |
//	| -f.x f.y |
//
// applied to rel, so Forward keeps going the same way, Back reverses and
// Left/Right turn 90 degrees. Bounds are not checked; callers validate the
// new position against the dungeon and use Restore to undo the step.
func (p *Player) Move(rel world.Vec2) {
	f := p.Facing()
	step := world.Vec2{
		X: rel.X*f.Y + rel.Y*f.X,
		Y: rel.Y*f.Y - rel.X*f.X,
	}
	p.Position.Previous = p.Position.Current
	p.Position.Current = p.Position.Current.Add(step)
}

// Restore puts back a position saved before Move.
func (p *Player) Restore(pos Position) {
	p.Position = pos
}

// AdjustHealth adds delta to current health, clamped to [0, Max], and
// returns the change actually applied.
func (p *Player) AdjustHealth(delta int) int {
	before := p.Health.Current
	p.Health.Current = min(max(before+delta, 0), p.Health.Max)
	return p.Health.Current - before
}

// Kill drops health to 0.
func (p *Player) Kill() {
	p.Health.Current = 0
}

// IsAlive returns true while the player has health remaining.
func (p *Player) IsAlive() bool {
	return p.Health.Current > 0
}
