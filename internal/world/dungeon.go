package world

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/rng"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 10
	DefaultHeight = 10
)

// distribution weights the proportional fill by room type. Treasure and
// spawn are weighted 0 and still appear exactly once through the
// per-type minimum.
var distribution = [RoomTypeCount]int{
	RoomEmpty:    50,
	RoomItem:     25,
	RoomPit:      10,
	RoomTrap:     10,
	RoomEnemy:    15,
	RoomTreasure: 0,
	RoomSpawn:    0,
}

// Room payload ranges, half-open.
const (
	trapDamageMin  = 2
	trapDamageMax  = 6
	enemyHealthMin = 4
	enemyHealthMax = 8
	enemyDamageMin = 3
	enemyDamageMax = 6
)

// Dungeon is a row-major grid of rooms.
type Dungeon struct {
	Width    int
	Height   int
	Spawn    Vec2
	Treasure Vec2
	Rooms    []Room
}

// Generate builds a width x height dungeon. It panics if the grid cannot
// hold every room type at least once.
func Generate(ctx context.Context, width, height int, r *rng.Rand) *Dungeon {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	totalRooms := width * height
	if width <= 0 || height <= 0 || totalRooms < RoomTypeCount {
		panic(fmt.Sprintf("world: dungeon %dx%d is too small to hold %d room types", width, height, RoomTypeCount))
	}

	types := fillRoomTypes(totalRooms)
	shuffle(types, r)

	d := &Dungeon{
		Width:  width,
		Height: height,
		Rooms:  make([]Room, totalRooms),
	}
	d.populate(types, r)

	span.SetAttributes(
		attribute.Int("dungeon.width", width),
		attribute.Int("dungeon.height", height),
		attribute.String("dungeon.spawn", d.Spawn.String()),
		attribute.String("dungeon.treasure", d.Treasure.String()),
		attribute.Int64("dungeon.generation_us", time.Since(startTime).Microseconds()),
	)

	return d
}

// fillRoomTypes lays room types out linearly, giving each type at least
// one slot and otherwise its floored share of the weight table. Slots
// left over are empty rooms.
//
// A type never takes the slots reserved for the types after it, so
// grids whose floored shares already add up to totalRooms (7..11, 22,
// 44, ...) still get a treasure and a spawn.
func fillRoomTypes(totalRooms int) []RoomType {
	totalWeight := 0
	for _, w := range distribution {
		totalWeight += w
	}

	types := make([]RoomType, totalRooms)
	cursor := 0
	for t := RoomType(0); int(t) < RoomTypeCount; t++ {
		minimumCount := max(1, distribution[t]*totalRooms/totalWeight)
		limit := totalRooms - (RoomTypeCount - 1 - int(t))
		for count := 0; count < minimumCount && cursor < limit; count++ {
			types[cursor] = t
			cursor++
		}
	}
	for ; cursor < totalRooms; cursor++ {
		types[cursor] = RoomEmpty
	}
	return types
}

// shuffle is a Fisher-Yates shuffle driven by r.
func shuffle(types []RoomType, r *rng.Rand) {
	for i := range types {
		j := r.Int(i, len(types))
		types[i], types[j] = types[j], types[i]
	}
}

// populate initializes every room's content in row-major order and
// records the spawn and treasure positions.
func (d *Dungeon) populate(types []RoomType, r *rng.Rand) {
	spawnFound, treasureFound := false, false

	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			pos := Vec2{x, y}
			room := d.Room(pos)

			switch t := types[d.Index(pos)]; t {
			case RoomEmpty:
				room.Content = Empty{}
			case RoomItem:
				room.Content = Cache{Item: ItemType(r.Int(0, ItemTypeCount))}
			case RoomPit:
				room.Content = Pit{}
			case RoomTrap:
				room.Content = &Trap{MaxDamage: r.Int(trapDamageMin, trapDamageMax)}
			case RoomEnemy:
				room.Content = &Enemy{
					Health:    r.Int(enemyHealthMin, enemyHealthMax),
					MaxDamage: r.Int(enemyDamageMin, enemyDamageMax),
				}
			case RoomTreasure:
				if treasureFound {
					panic(fmt.Sprintf("world: second treasure room at %v (first at %v)", pos, d.Treasure))
				}
				treasureFound = true
				d.Treasure = pos
				room.Content = Treasure{}
			case RoomSpawn:
				if spawnFound {
					panic(fmt.Sprintf("world: second spawn room at %v (first at %v)", pos, d.Spawn))
				}
				spawnFound = true
				d.Spawn = pos
				room.Content = Spawn{}
			default:
				panic(fmt.Sprintf("world: unknown room type %d at %v", t, pos))
			}
		}
	}

	if !treasureFound {
		panic("world: no treasure room generated")
	}
	if !spawnFound {
		panic("world: no spawn room generated")
	}
}

// Index returns the row-major index of pos.
func (d *Dungeon) Index(pos Vec2) int {
	return pos.Y*d.Width + pos.X
}

// Contains reports whether pos lies inside the grid.
func (d *Dungeon) Contains(pos Vec2) bool {
	return pos.X >= 0 && pos.X < d.Width && pos.Y >= 0 && pos.Y < d.Height
}

// Room returns the room at pos. pos must be inside the grid.
func (d *Dungeon) Room(pos Vec2) *Room {
	return &d.Rooms[d.Index(pos)]
}

// Count returns how many rooms currently hold content of type t.
func (d *Dungeon) Count(t RoomType) int {
	n := 0
	for i := range d.Rooms {
		if d.Rooms[i].Type() == t {
			n++
		}
	}
	return n
}
