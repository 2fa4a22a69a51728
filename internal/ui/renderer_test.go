package ui

import (
	"strings"
	"testing"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

func testDungeon(width, height int) *world.Dungeon {
	return &world.Dungeon{
		Width:  width,
		Height: height,
		Rooms:  make([]world.Room, width*height),
	}
}

func TestRenderMap(t *testing.T) {
	d := testDungeon(3, 3)
	pit := d.Room(world.Vec2{X: 1, Y: 1})
	pit.Content = world.Pit{}
	pit.Visited = true

	p := entity.NewPlayer(world.Vec2{X: 1, Y: 0})

	want := []string{
		"  - - - - -",
		"2 | ? ? ? |",
		"1 | ? O ? |",
		"0 | ? ^ ? |",
		"  - - - - -",
		"    0 1 2  ",
	}
	got := RenderMap(d, p)
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("RenderMap() =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestRenderMapPlayerFacing(t *testing.T) {
	d := testDungeon(3, 3)
	p := entity.NewPlayer(world.Vec2{X: 1, Y: 1})
	p.Move(entity.Right)

	got := RenderMap(d, p)
	// Row y=1 is the third line.
	if got[2] != "1 | ? ? > |" {
		t.Errorf("row 1 = %q, want %q", got[2], "1 | ? ? > |")
	}
}

func TestRenderMapSize(t *testing.T) {
	d := testDungeon(10, 10)
	p := entity.NewPlayer(world.Vec2{X: 0, Y: 0})

	lines := RenderMap(d, p)
	w, h := MapSize(d)
	if len(lines) != h {
		t.Errorf("len(lines) = %d, want %d", len(lines), h)
	}
	for i, line := range lines {
		if textWidth(line) != w {
			t.Errorf("line %d width = %d, want %d", i, textWidth(line), w)
		}
	}
}

func TestRoomGlyph(t *testing.T) {
	tests := []struct {
		content world.Content
		visited bool
		want    string
	}{
		{world.Empty{}, false, "?"},
		{world.Empty{}, true, "."},
		{world.Cache{Item: world.ItemRope}, true, "+"},
		{world.Pit{}, true, "O"},
		{&world.Trap{MaxDamage: 3}, true, "X"},
		{&world.Enemy{Health: 4, MaxDamage: 3}, true, "E"},
		{world.Treasure{}, true, "*"},
		{world.Spawn{}, true, "H"},
		{world.Spawn{}, false, "?"},
	}

	for _, tt := range tests {
		room := &world.Room{Content: tt.content, Visited: tt.visited}
		if got := RoomGlyph(room); got != tt.want {
			t.Errorf("RoomGlyph(%s, visited=%v) = %q, want %q", room.Type(), tt.visited, got, tt.want)
		}
	}
}
