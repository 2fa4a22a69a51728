package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// RoomDef holds the presentation of a room type.
type RoomDef struct {
	Type    string `yaml:"type"`    // matches world.RoomType.String()
	Color   string `yaml:"color"`   // hex color for the map pane
	Arrival string `yaml:"arrival"` // shown when the player enters
}

// RoomsFile represents the structure of rooms.yaml.
type RoomsFile struct {
	Rooms []RoomDef `yaml:"rooms"`
}

// RoomRegistry looks up room presentation by type.
type RoomRegistry struct {
	rooms  map[world.RoomType]RoomDef
	colors map[world.RoomType]tcell.Color
}

// NewRoomRegistry creates a registry from loaded definitions. It fails on
// an unknown type name or a malformed color.
func NewRoomRegistry(defs []RoomDef) (*RoomRegistry, error) {
	byName := make(map[string]world.RoomType, world.RoomTypeCount)
	for t := world.RoomType(0); int(t) < world.RoomTypeCount; t++ {
		byName[t.String()] = t
	}

	registry := &RoomRegistry{
		rooms:  make(map[world.RoomType]RoomDef, len(defs)),
		colors: make(map[world.RoomType]tcell.Color, len(defs)),
	}
	for _, def := range defs {
		t, ok := byName[def.Type]
		if !ok {
			return nil, fmt.Errorf("unknown room type %q", def.Type)
		}
		color, err := ParseHexColor(def.Color)
		if err != nil {
			return nil, fmt.Errorf("room type %s: %w", def.Type, err)
		}
		registry.rooms[t] = def
		registry.colors[t] = color
	}
	return registry, nil
}

// LoadRoomRegistry loads and creates a registry from the embedded rooms.yaml.
func LoadRoomRegistry() (*RoomRegistry, error) {
	file, err := Load[RoomsFile]("rooms.yaml")
	if err != nil {
		return nil, err
	}
	return NewRoomRegistry(file.Rooms)
}

// MustLoadRoomRegistry loads a registry, panicking on error.
func MustLoadRoomRegistry() *RoomRegistry {
	registry, err := LoadRoomRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Arrival returns the text shown on entering a room of type t, or "" if
// none is defined.
func (r *RoomRegistry) Arrival(t world.RoomType) string {
	return r.rooms[t].Arrival
}

// Color returns the map color for room type t.
func (r *RoomRegistry) Color(t world.RoomType) tcell.Color {
	if c, ok := r.colors[t]; ok {
		return c
	}
	return tcell.ColorWhite
}

// ParseHexColor converts "#RRGGBB" or the short form "#RGB" (leading '#'
// optional) to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}
