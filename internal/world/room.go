// Package world provides dungeon generation and the room grid.
package world

// RoomType identifies what occupies a room.
type RoomType int

const (
	RoomEmpty RoomType = iota
	RoomItem
	RoomPit
	RoomTrap
	RoomEnemy
	RoomTreasure
	RoomSpawn

	// RoomTypeCount is the number of room types. A dungeon needs at least
	// this many rooms so every type can appear.
	RoomTypeCount = int(RoomSpawn) + 1
)

// String returns the room type name.
func (t RoomType) String() string {
	switch t {
	case RoomEmpty:
		return "empty"
	case RoomItem:
		return "item"
	case RoomPit:
		return "pit"
	case RoomTrap:
		return "trap"
	case RoomEnemy:
		return "enemy"
	case RoomTreasure:
		return "treasure"
	case RoomSpawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// Content is the type-specific state of a room. The set of
// implementations is closed: Empty, Cache, Pit, *Trap, *Enemy, Treasure
// and Spawn. Trap and Enemy are pointers because encounters mutate them
// in place.
type Content interface {
	Type() RoomType
	content()
}

// Empty is a room with nothing in it.
type Empty struct{}

// Cache is an ITEM room holding a single item.
type Cache struct {
	Item ItemType
}

// Pit is a room the player must jump, swing across, or back out of.
type Pit struct{}

// Trap damages the player on entry. MaxDamage decays on every trigger and
// the trap is removed once it reaches 0.
type Trap struct {
	MaxDamage int
}

// Enemy is a beast guarding the room.
type Enemy struct {
	Health    int
	MaxDamage int
}

// Treasure ends the game in victory when entered.
type Treasure struct{}

// Spawn is the dungeon entrance.
type Spawn struct{}

func (Empty) Type() RoomType    { return RoomEmpty }
func (Cache) Type() RoomType    { return RoomItem }
func (Pit) Type() RoomType      { return RoomPit }
func (*Trap) Type() RoomType    { return RoomTrap }
func (*Enemy) Type() RoomType   { return RoomEnemy }
func (Treasure) Type() RoomType { return RoomTreasure }
func (Spawn) Type() RoomType    { return RoomSpawn }

func (Empty) content()    {}
func (Cache) content()    {}
func (Pit) content()      {}
func (*Trap) content()    {}
func (*Enemy) content()   {}
func (Treasure) content() {}
func (Spawn) content()    {}

// Room is a single grid cell.
type Room struct {
	Content Content
	// Visited is set once the player's turn in the room has resolved.
	Visited bool
}

// Type returns the type of the room's content.
func (r *Room) Type() RoomType {
	if r.Content == nil {
		return RoomEmpty
	}
	return r.Content.Type()
}

// Clear replaces the room's content with Empty. Visited is kept.
func (r *Room) Clear() {
	r.Content = Empty{}
}
